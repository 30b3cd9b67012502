package public

import (
	"strconv"

	handlershared "github.com/dropmart/dropmart/internal/http/handlers/shared"
	"github.com/dropmart/dropmart/internal/http/response"
	"github.com/dropmart/dropmart/internal/service"

	"github.com/gin-gonic/gin"
)

// ContactRequest 下单联系信息
type ContactRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Address         string `json:"address"`
	ShippingPhone   string `json:"shipping_phone"`
	ShippingAddress string `json:"shipping_address"`
}

func (r ContactRequest) toContactInfo() service.ContactInfo {
	return service.ContactInfo{
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		Address:         r.Address,
		ShippingPhone:   r.ShippingPhone,
		ShippingAddress: r.ShippingAddress,
	}
}

// CreateOrderRequest 下单请求
type CreateOrderRequest struct {
	Contact           ContactRequest       `json:"contact"`
	DropshipperShopID uint                 `json:"dropshipper_shop_id"`
	Lines             []service.BasketLine `json:"lines" binding:"required"`
}

// CreateOrder 登录用户下单
func (h *Handler) CreateOrder(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	h.createOrder(c, userID)
}

// CreateGuestOrder 游客下单
func (h *Handler) CreateGuestOrder(c *gin.Context) {
	h.createOrder(c, 0)
}

func (h *Handler) createOrder(c *gin.Context, userID uint) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	order, err := h.OrderService.CreateOrder(service.CreateOrderInput{
		UserID:            userID,
		Contact:           req.Contact.toContactInfo(),
		DropshipperShopID: req.DropshipperShopID,
		Lines:             req.Lines,
	})
	if err != nil {
		respondOrderCreateError(c, err)
		return
	}
	response.Success(c, order)
}

// GetGuestOrder 游客按订单号加邮箱查询订单
func (h *Handler) GetGuestOrder(c *gin.Context) {
	orderNo := c.Param("order_no")
	email := c.Query("email")
	if orderNo == "" || email == "" {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	order, err := h.OrderService.GetGuestOrder(orderNo, email)
	if err != nil {
		respondWithMappedError(c, err, orderStatusErrorRules, response.CodeInternal, "error.order_fetch_failed")
		return
	}
	response.Success(c, order)
}

// ListOrders 按角色维度列出订单
func (h *Handler) ListOrders(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	orders, total, err := h.OrderService.ListOrders(userID, getUserRole(c), page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.order_fetch_failed", err)
		return
	}
	response.SuccessWithPage(c, orders, buildPagination(page, pageSize, total))
}

// GetOrder 获取订单详情（按角色校验可见性）
func (h *Handler) GetOrder(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	orderID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	order, err := h.OrderService.GetOrder(orderID, userID, getUserRole(c))
	if err != nil {
		respondWithMappedError(c, err, orderStatusErrorRules, response.CodeInternal, "error.order_fetch_failed")
		return
	}
	response.Success(c, order)
}

// UpdateOrderStatusRequest 订单状态更新请求
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateOrderStatus 商家推进订单状态
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	orderID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	order, err := h.OrderService.UpdateOrderStatus(orderID, userID, req.Status)
	if err != nil {
		respondWithMappedError(c, err, orderStatusErrorRules, response.CodeInternal, "error.order_update_failed")
		return
	}
	response.Success(c, order)
}
