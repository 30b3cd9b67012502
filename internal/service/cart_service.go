package service

import (
	"github.com/dropmart/dropmart/internal/logger"
	"github.com/dropmart/dropmart/internal/models"
	"github.com/dropmart/dropmart/internal/repository"
)

// CartItemDetail 购物车项详情（用于响应）
type CartItemDetail struct {
	ProductID uint            `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice models.Money    `json:"unit_price"`
	Product   *models.Product `json:"product"`
}

// CartService 购物车服务
type CartService struct {
	cartRepo     repository.CartRepository
	productRepo  repository.ProductRepository
	orderService *OrderService
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository, orderService *OrderService) *CartService {
	return &CartService{
		cartRepo:     cartRepo,
		productRepo:  productRepo,
		orderService: orderService,
	}
}

// ListByUser 获取用户购物车，顺带清理已失效商品
func (s *CartService) ListByUser(userID uint) ([]CartItemDetail, error) {
	if userID == 0 {
		return nil, ErrCartItemInvalid
	}
	items, err := s.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	details := make([]CartItemDetail, 0, len(items))
	for _, item := range items {
		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil || !product.IsActive {
			_ = s.cartRepo.DeleteByUserAndProduct(userID, item.ProductID)
			continue
		}
		details = append(details, CartItemDetail{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: product.Price,
			Product:   product,
		})
	}
	return details, nil
}

// AddItem 加购：已有同商品行时数量累加
func (s *CartService) AddItem(userID, productID uint, quantity int) error {
	if userID == 0 || productID == 0 || quantity <= 0 {
		return ErrCartItemInvalid
	}
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil || !product.IsActive {
		return ErrProductNotFound
	}
	existing, err := s.cartRepo.GetByUserAndProduct(userID, productID)
	if err != nil {
		return err
	}
	if existing != nil {
		return s.cartRepo.UpdateQuantity(existing.ID, existing.Quantity+quantity)
	}
	return s.cartRepo.Create(&models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	})
}

// SetQuantity 覆盖购物车项数量
func (s *CartService) SetQuantity(userID, productID uint, quantity int) error {
	if userID == 0 || productID == 0 || quantity <= 0 {
		return ErrCartItemInvalid
	}
	existing, err := s.cartRepo.GetByUserAndProduct(userID, productID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrCartItemInvalid
	}
	return s.cartRepo.UpdateQuantity(existing.ID, quantity)
}

// RemoveItem 删除购物车项
func (s *CartService) RemoveItem(userID, productID uint) error {
	if userID == 0 || productID == 0 {
		return ErrCartItemInvalid
	}
	return s.cartRepo.DeleteByUserAndProduct(userID, productID)
}

// Clear 清空购物车
func (s *CartService) Clear(userID uint) error {
	if userID == 0 {
		return ErrCartItemInvalid
	}
	return s.cartRepo.ClearByUser(userID)
}

// Checkout 从购物车下单：按加入顺序生成清单行，成功后清空购物车
func (s *CartService) Checkout(userID uint, contact ContactInfo, dropshipperShopID uint) (*models.Order, error) {
	if userID == 0 {
		return nil, ErrCartItemInvalid
	}
	items, err := s.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrCartEmpty
	}
	lines := make([]BasketLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, BasketLine{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	order, err := s.orderService.CreateOrder(CreateOrderInput{
		UserID:            userID,
		Contact:           contact,
		DropshipperShopID: dropshipperShopID,
		Lines:             lines,
	})
	if err != nil {
		return nil, err
	}
	if err := s.cartRepo.ClearByUser(userID); err != nil {
		// 订单已落库，清空失败不回滚下单，只记日志便于排查残留购物车
		logger.Warnw("cart_clear_failed", "user_id", userID, "order_no", order.OrderNo, "error", err)
	}
	return order, nil
}
