package public

import (
	"strconv"
	"strings"

	"github.com/dropmart/dropmart/internal/http/response"
	"github.com/dropmart/dropmart/internal/service"

	"github.com/gin-gonic/gin"
)

// GetShop 公开店铺资料
func (h *Handler) GetShop(c *gin.Context) {
	shopID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	shop, err := h.ShopService.GetShop(shopID)
	if err != nil {
		respondWithMappedError(c, err, shopWriteErrorRules, response.CodeInternal, "error.shop_fetch_failed")
		return
	}
	response.Success(c, shop)
}

// ListMyShops 当前用户名下店铺
func (h *Handler) ListMyShops(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	shops, err := h.ShopService.ListMyShops(userID)
	if err != nil {
		respondError(c, response.CodeInternal, "error.shop_fetch_failed", err)
		return
	}
	response.Success(c, shops)
}

// GetOrCreateMyShopRequest 店铺解析请求；shop_type 缺省时按调用者角色推导
type GetOrCreateMyShopRequest struct {
	ShopType string `json:"shop_type"`
}

// GetOrCreateMyShop 获取或懒创建当前用户的店铺，返回店铺及店内商品清单
func (h *Handler) GetOrCreateMyShop(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	var req GetOrCreateMyShopRequest
	if c.Request.Body != nil && c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, response.CodeBadRequest, "error.bad_request", err)
			return
		}
	}
	shopType := strings.TrimSpace(req.ShopType)
	if shopType == "" {
		shopType = service.ShopTypeForRole(getUserRole(c))
	}
	if shopType == "" {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	shop, err := h.ShopService.GetOrCreateShop(userID, shopType)
	if err != nil {
		respondWithMappedError(c, err, shopWriteErrorRules, response.CodeInternal, "error.shop_fetch_failed")
		return
	}
	products, err := h.ProductService.ListShopProducts(shop.ID)
	if err != nil {
		respondError(c, response.CodeInternal, "error.shop_fetch_failed", err)
		return
	}
	response.Success(c, service.ShopView{Shop: *shop, Products: products})
}

// UpdateShopRequest 店铺更新请求
type UpdateShopRequest struct {
	Name        *string `json:"name"`
	CompanyName *string `json:"company_name"`
	Description *string `json:"description"`
	LogoRef     *string `json:"logo_ref"`
}

// UpdateMyShop 更新店铺资料（仅店主）
func (h *Handler) UpdateMyShop(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	shopID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req UpdateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	shop, err := h.ShopService.UpdateShop(shopID, userID, service.UpdateShopInput{
		Name:        req.Name,
		CompanyName: req.CompanyName,
		Description: req.Description,
		LogoRef:     req.LogoRef,
	})
	if err != nil {
		respondWithMappedError(c, err, shopWriteErrorRules, response.CodeInternal, "error.shop_update_failed")
		return
	}
	response.Success(c, shop)
}

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || value == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return 0, false
	}
	return uint(value), true
}
