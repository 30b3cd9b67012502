package public

import (
	"github.com/dropmart/dropmart/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ImportProduct 分销商导入商品到自己店铺（重复导入幂等）
func (h *Handler) ImportProduct(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	productID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	record, created, err := h.ImportService.ImportProduct(userID, productID)
	if err != nil {
		respondWithMappedError(c, err, importErrorRules, response.CodeInternal, "error.import_failed")
		return
	}
	response.Success(c, gin.H{
		"import":  record,
		"created": created,
	})
}

// ListMyImports 分销商导入台账
func (h *Handler) ListMyImports(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	records, err := h.ImportService.ListImports(userID)
	if err != nil {
		respondError(c, response.CodeInternal, "error.import_failed", err)
		return
	}
	response.Success(c, records)
}
