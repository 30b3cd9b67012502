package public

import (
	"strconv"

	"github.com/dropmart/dropmart/internal/constants"
	handlershared "github.com/dropmart/dropmart/internal/http/handlers/shared"
	"github.com/dropmart/dropmart/internal/http/response"
	"github.com/dropmart/dropmart/internal/models"
	"github.com/dropmart/dropmart/internal/service"

	"github.com/gin-gonic/gin"
)

// ListPublicProducts 公共目录：vendor 店铺内的上架商品
func (h *Handler) ListPublicProducts(c *gin.Context) {
	input := parseProductListInput(c)
	views, total, err := h.ProductService.ListPublic(input)
	if err != nil {
		respondError(c, response.CodeInternal, "error.product_fetch_failed", err)
		return
	}
	response.SuccessWithPage(c, views, buildPagination(input.Page, input.PageSize, total))
}

// GetPublicProduct 公开商品详情
func (h *Handler) GetPublicProduct(c *gin.Context) {
	productID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	product, err := h.ProductService.GetProduct(productID)
	if err != nil {
		respondWithMappedError(c, err, productWriteErrorRules, response.CodeInternal, "error.product_fetch_failed")
		return
	}
	response.Success(c, product)
}

// ListMyProducts 按角色列出自己的商品：
// 商家返回其供货商品，分销商返回其店铺内的商品（叠加店铺名与 Logo）。
func (h *Handler) ListMyProducts(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	input := parseProductListInput(c)
	switch getUserRole(c) {
	case constants.RoleVendor:
		products, total, err := h.ProductService.ListByVendor(userID, input)
		if err != nil {
			respondError(c, response.CodeInternal, "error.product_fetch_failed", err)
			return
		}
		response.SuccessWithPage(c, products, buildPagination(input.Page, input.PageSize, total))
	case constants.RoleDropshipper:
		views, total, err := h.ProductService.ListByDropshipper(userID, input)
		if err != nil {
			respondError(c, response.CodeInternal, "error.product_fetch_failed", err)
			return
		}
		response.SuccessWithPage(c, views, buildPagination(input.Page, input.PageSize, total))
	default:
		respondError(c, response.CodeForbidden, "error.forbidden", nil)
	}
}

// CreateProductRequest 商品创建请求
type CreateProductRequest struct {
	ShopID      uint         `json:"shop_id"`
	Title       string       `json:"title" binding:"required"`
	Description string       `json:"description"`
	Price       models.Money `json:"price" binding:"required"`
	Category    string       `json:"category"`
	Stock       int          `json:"stock"`
	ImageRef    string       `json:"image_ref"`
}

// CreateProduct 商家创建商品
func (h *Handler) CreateProduct(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	product, err := h.ProductService.CreateProduct(service.CreateProductInput{
		VendorID:    userID,
		ShopID:      req.ShopID,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Stock:       req.Stock,
		ImageRef:    req.ImageRef,
	})
	if err != nil {
		respondWithMappedError(c, err, productWriteErrorRules, response.CodeInternal, "error.product_create_failed")
		return
	}
	response.Success(c, product)
}

// UpdateProductRequest 商品更新请求
type UpdateProductRequest struct {
	Title       *string       `json:"title"`
	Description *string       `json:"description"`
	Price       *models.Money `json:"price"`
	Category    *string       `json:"category"`
	Stock       *int          `json:"stock"`
	ImageRef    *string       `json:"image_ref"`
	IsActive    *bool         `json:"is_active"`
}

// UpdateProduct 更新商品（店主）
func (h *Handler) UpdateProduct(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	productID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	product, err := h.ProductService.UpdateProduct(productID, userID, service.UpdateProductInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Stock:       req.Stock,
		ImageRef:    req.ImageRef,
		IsActive:    req.IsActive,
	})
	if err != nil {
		respondWithMappedError(c, err, productWriteErrorRules, response.CodeInternal, "error.product_update_failed")
		return
	}
	response.Success(c, product)
}

// DeactivateProduct 下架商品（店主）
func (h *Handler) DeactivateProduct(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	productID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	product, err := h.ProductService.DeactivateProduct(productID, userID)
	if err != nil {
		respondWithMappedError(c, err, productWriteErrorRules, response.CodeInternal, "error.product_update_failed")
		return
	}
	response.Success(c, product)
}

func parseProductListInput(c *gin.Context) service.ProductListInput {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)
	return service.ProductListInput{
		Page:     page,
		PageSize: pageSize,
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}
}

func buildPagination(page, pageSize int, total int64) response.Pagination {
	totalPage := int64(0)
	if pageSize > 0 {
		totalPage = (total + int64(pageSize) - 1) / int64(pageSize)
	}
	return response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: totalPage,
	}
}
