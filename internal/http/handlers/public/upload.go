package public

import (
	"errors"

	"github.com/dropmart/dropmart/internal/http/response"
	"github.com/dropmart/dropmart/internal/service"

	"github.com/gin-gonic/gin"
)

// Upload 上传文件（商品图 / 店铺 Logo）
func (h *Handler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	scene := c.DefaultPostForm("scene", "common")
	ref, err := h.UploadService.SaveFile(file, scene)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUploadFileTooLarge),
			errors.Is(err, service.ErrUploadTypeInvalid):
			respondError(c, response.CodeBadRequest, "error.upload_invalid", nil)
		default:
			respondError(c, response.CodeInternal, "error.upload_failed", err)
		}
		return
	}
	response.Success(c, gin.H{"ref": ref})
}
