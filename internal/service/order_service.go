package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/dropmart/dropmart/internal/constants"
	"github.com/dropmart/dropmart/internal/logger"
	"github.com/dropmart/dropmart/internal/models"
	"github.com/dropmart/dropmart/internal/queue"
	"github.com/dropmart/dropmart/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ContactInfo 下单联系信息，空字段按用户资料与哨兵值回填
type ContactInfo struct {
	Name            string
	Email           string
	Phone           string
	Address         string
	ShippingPhone   string
	ShippingAddress string
}

// CreateOrderInput 下单输入
type CreateOrderInput struct {
	UserID            uint // 0 表示游客
	Contact           ContactInfo
	DropshipperShopID uint // 显式归因店铺，0 表示按导入台账扫描
	Lines             []BasketLine
}

// OrderService 订单引擎
type OrderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	importRepo  repository.ImportRepository
	shopRepo    repository.ShopRepository
	userRepo    repository.UserRepository
	basket      *BasketValidator
	queueClient *queue.Client
}

// NewOrderService 创建订单服务
func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	importRepo repository.ImportRepository,
	shopRepo repository.ShopRepository,
	userRepo repository.UserRepository,
	basket *BasketValidator,
	queueClient *queue.Client,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		importRepo:  importRepo,
		shopRepo:    shopRepo,
		userRepo:    userRepo,
		basket:      basket,
		queueClient: queueClient,
	}
}

// CreateOrder 创建订单：校验清单、归因分销商店铺、回填联系信息，
// 订单头与明细在同一事务写入。成功后尽力投递下单邮件任务。
func (s *OrderService) CreateOrder(input CreateOrderInput) (*models.Order, error) {
	validated, err := s.basket.ValidateLines(input.Lines)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, line := range validated {
		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	attribution, err := s.resolveAttribution(input.DropshipperShopID, validated)
	if err != nil {
		return nil, err
	}

	contact, err := s.backfillContact(input.UserID, input.Contact)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		OrderNo:         generateOrderNo(),
		UserID:          input.UserID,
		GuestName:       contact.Name,
		GuestEmail:      contact.Email,
		GuestPhone:      contact.Phone,
		GuestAddress:    contact.Address,
		ShippingPhone:   contact.ShippingPhone,
		ShippingAddress: contact.ShippingAddress,
		Status:          constants.OrderStatusPending,
		TotalAmount:     models.NewMoneyFromDecimal(total),
	}
	if attribution != nil {
		shopID := attribution.ID
		order.DropshipperShopID = &shopID
		order.DropshipperShopName = attribution.Name
		order.DropshipperShopLogo = attribution.LogoRef
	}

	items := make([]models.OrderItem, 0, len(validated))
	for _, line := range validated {
		items = append(items, models.OrderItem{
			ProductID:    line.Product.ID,
			ProductTitle: line.Product.Title,
			Quantity:     line.Quantity,
			Price:        line.Price,
			VendorID:     line.Product.VendorID,
		})
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		return s.orderRepo.WithTx(tx).Create(order, items)
	})
	if err != nil {
		return nil, err
	}

	if s.queueClient != nil {
		if err := s.queueClient.EnqueueOrderCreatedEmail(queue.OrderCreatedEmailPayload{OrderID: order.ID}); err != nil {
			logger.Warnw("order_created_email_enqueue_failed", "order_id", order.ID, "order_no", order.OrderNo, "error", err)
		}
	}
	return order, nil
}

// GetOrder 获取订单并按角色校验可见性，不可见一律返回 ErrOrderNotFound
func (s *OrderService) GetOrder(orderID, callerID uint, role string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	visible, err := s.isOrderVisible(order, callerID, role)
	if err != nil {
		return nil, err
	}
	if !visible {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// GetGuestOrder 游客按订单号加邮箱查询订单
func (s *OrderService) GetGuestOrder(orderNo, email string) (*models.Order, error) {
	order, err := s.orderRepo.GetByOrderNo(strings.TrimSpace(orderNo))
	if err != nil {
		return nil, err
	}
	if order == nil || !strings.EqualFold(order.GuestEmail, strings.TrimSpace(email)) {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListOrders 按角色维度列出订单
func (s *OrderService) ListOrders(callerID uint, role string, page, pageSize int) ([]models.Order, int64, error) {
	filter := repository.OrderListFilter{Page: page, PageSize: pageSize}
	switch role {
	case constants.RoleVendor:
		filter.VendorID = callerID
	case constants.RoleDropshipper:
		filter.DropshipperOwnerID = callerID
	case constants.RoleCustomer:
		filter.UserID = callerID
	default:
		return []models.Order{}, 0, nil
	}
	return s.orderRepo.List(filter)
}

// UpdateOrderStatus 商家推进订单状态。
// 订单不存在或商家无供货行都返回 ErrOrderNotFound，不泄露订单存在性。
func (s *OrderService) UpdateOrderStatus(orderID, vendorID uint, newStatus string) (*models.Order, error) {
	status := normalizeOrderStatus(newStatus)
	if !isValidOrderStatus(status) {
		return nil, ErrOrderStatusInvalid
	}

	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	hasLine, err := s.orderRepo.HasVendorLine(orderID, vendorID)
	if err != nil {
		return nil, err
	}
	if !hasLine {
		return nil, ErrOrderNotFound
	}
	if !isTransitionAllowed(order.Status, status) {
		return nil, ErrOrderStatusTransition
	}

	if err := s.orderRepo.UpdateStatus(orderID, status); err != nil {
		return nil, err
	}
	order.Status = status
	logger.Infow("order_status_updated",
		"order_id", order.ID,
		"order_no", order.OrderNo,
		"vendor_id", vendorID,
		"status", status,
	)
	return order, nil
}

// resolveAttribution 解析归因店铺：显式店铺优先，否则按台账扫描首个匹配。
// 扫描键为行的底层商品 ID（克隆副本取其原始商品）。
func (s *OrderService) resolveAttribution(explicitShopID uint, lines []ValidatedLine) (*models.Shop, error) {
	if explicitShopID > 0 {
		shop, err := s.shopRepo.GetByID(explicitShopID)
		if err != nil {
			return nil, err
		}
		if shop == nil {
			return nil, ErrShopNotFound
		}
		return shop, nil
	}

	underlying := make([]uint, 0, len(lines))
	for _, line := range lines {
		underlying = append(underlying, line.Product.UnderlyingProductID())
	}
	records, err := s.importRepo.ListByProductIDs(underlying)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	firstImport := make(map[uint]*models.DropshipImport, len(records))
	for i := range records {
		if _, ok := firstImport[records[i].ProductID]; !ok {
			firstImport[records[i].ProductID] = &records[i]
		}
	}
	// 按行顺序取首个命中的导入记录
	for _, line := range lines {
		record, ok := firstImport[line.Product.UnderlyingProductID()]
		if !ok {
			continue
		}
		shop, err := s.shopRepo.GetByID(record.ShopID)
		if err != nil {
			return nil, err
		}
		if shop != nil {
			return shop, nil
		}
	}
	return nil, nil
}

// backfillContact 回填联系信息：空字段依次取用户资料、哨兵值
func (s *OrderService) backfillContact(userID uint, contact ContactInfo) (ContactInfo, error) {
	filled := ContactInfo{
		Name:            strings.TrimSpace(contact.Name),
		Email:           strings.TrimSpace(contact.Email),
		Phone:           strings.TrimSpace(contact.Phone),
		Address:         strings.TrimSpace(contact.Address),
		ShippingPhone:   strings.TrimSpace(contact.ShippingPhone),
		ShippingAddress: strings.TrimSpace(contact.ShippingAddress),
	}
	if userID != 0 {
		user, err := s.userRepo.GetByID(userID)
		if err != nil {
			return filled, err
		}
		if user != nil {
			if filled.Name == "" {
				filled.Name = strings.TrimSpace(user.DisplayName)
			}
			if filled.Email == "" {
				filled.Email = strings.TrimSpace(user.Email)
			}
			if filled.Phone == "" {
				filled.Phone = strings.TrimSpace(user.Phone)
			}
			if filled.Address == "" {
				filled.Address = strings.TrimSpace(user.Address)
			}
		}
	}
	if filled.Name == "" {
		filled.Name = constants.GuestNameFallback
	}
	if filled.Email == "" {
		filled.Email = constants.GuestEmailFallback
	}
	if filled.Phone == "" {
		filled.Phone = constants.GuestPhoneFallback
	}
	if filled.Address == "" {
		filled.Address = constants.GuestAddressFallback
	}
	if filled.ShippingPhone == "" {
		filled.ShippingPhone = filled.Phone
	}
	if filled.ShippingAddress == "" {
		filled.ShippingAddress = filled.Address
	}
	return filled, nil
}

func (s *OrderService) isOrderVisible(order *models.Order, callerID uint, role string) (bool, error) {
	if callerID == 0 {
		return false, nil
	}
	switch role {
	case constants.RoleCustomer:
		return order.UserID == callerID, nil
	case constants.RoleVendor:
		return s.orderRepo.HasVendorLine(order.ID, callerID)
	case constants.RoleDropshipper:
		if order.DropshipperShopID == nil {
			return false, nil
		}
		shop, err := s.shopRepo.GetByID(*order.DropshipperShopID)
		if err != nil {
			return false, err
		}
		return shop != nil && shop.OwnerID == callerID, nil
	default:
		return false, nil
	}
}

func generateOrderNo() string {
	now := time.Now().Format("20060102150405")
	randPart := randNumeric(6)
	return fmt.Sprintf("DM%s%s", now, randPart)
}

func randNumeric(length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			b.WriteString("0")
			continue
		}
		b.WriteString(fmt.Sprintf("%d", n.Int64()))
	}
	return b.String()
}
