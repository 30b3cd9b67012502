package service

import (
	"strings"

	"github.com/dropmart/dropmart/internal/constants"
	"github.com/dropmart/dropmart/internal/models"
	"github.com/dropmart/dropmart/internal/repository"

	"github.com/shopspring/decimal"
)

// CreateProductInput 商品创建输入
type CreateProductInput struct {
	VendorID    uint
	ShopID      uint // 0 表示解析商家的 vendor 店铺
	Title       string
	Description string
	Price       models.Money
	Category    string
	Stock       int
	ImageRef    string
}

// UpdateProductInput 商品更新输入，nil 字段保持不变
type UpdateProductInput struct {
	Title       *string
	Description *string
	Price       *models.Money
	Category    *string
	Stock       *int
	ImageRef    *string
	IsActive    *bool
}

// ProductListInput 商品列表查询输入
type ProductListInput struct {
	Page     int
	PageSize int
	Category string
	Search   string
}

// ShopViewContext 展示用店铺上下文（分销商店铺视角）
type ShopViewContext struct {
	ShopID   uint
	ShopName string
	ShopLogo string
}

// ProductView 商品展示视图，叠加店铺名与 Logo，不回写存储行
type ProductView struct {
	models.Product
	ShopName string `json:"shop_name,omitempty"`
	ShopLogo string `json:"shop_logo,omitempty"`
}

// present 纯函数：按视角上下文生成展示视图，存储行不变
func present(product models.Product, viewCtx *ShopViewContext) ProductView {
	view := ProductView{Product: product}
	if viewCtx != nil {
		view.ShopName = viewCtx.ShopName
		view.ShopLogo = viewCtx.ShopLogo
	}
	return view
}

// ProductService 商品目录服务
type ProductService struct {
	productRepo repository.ProductRepository
	shopRepo    repository.ShopRepository
	shopService *ShopService
}

// NewProductService 创建商品服务
func NewProductService(productRepo repository.ProductRepository, shopRepo repository.ShopRepository, shopService *ShopService) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		shopRepo:    shopRepo,
		shopService: shopService,
	}
}

// CreateProduct 创建商品；未指定店铺时解析商家的 vendor 店铺（懒创建）
func (s *ProductService) CreateProduct(input CreateProductInput) (*models.Product, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrProductTitleRequired
	}
	if input.Price.LessThanOrEqual(decimal.Zero) {
		return nil, ErrProductPriceInvalid
	}
	if input.Stock < 0 {
		return nil, ErrProductStockInvalid
	}

	var shopID uint
	if input.ShopID > 0 {
		shop, err := s.shopRepo.GetByID(input.ShopID)
		if err != nil {
			return nil, err
		}
		if shop == nil {
			return nil, ErrShopNotFound
		}
		if shop.OwnerID != input.VendorID {
			return nil, ErrShopForbidden
		}
		shopID = shop.ID
	} else {
		shop, err := s.shopService.GetOrCreateShop(input.VendorID, constants.ShopTypeVendor)
		if err != nil {
			return nil, err
		}
		shopID = shop.ID
	}

	product := &models.Product{
		VendorID:    input.VendorID,
		ShopID:      &shopID,
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Price:       models.NewMoneyFromDecimal(input.Price.Decimal),
		Category:    strings.TrimSpace(input.Category),
		Stock:       input.Stock,
		ImageRef:    strings.TrimSpace(input.ImageRef),
		IsActive:    true,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetProduct 获取商品
func (s *ProductService) GetProduct(productID uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// UpdateProduct 更新商品，仅所属店铺店主可操作。
// 克隆副本归分销商店铺，价格等字段可独立于原商品修改。
func (s *ProductService) UpdateProduct(productID, callerID uint, input UpdateProductInput) (*models.Product, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if !s.isProductOwner(product, callerID) {
		return nil, ErrProductForbidden
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, ErrProductTitleRequired
		}
		product.Title = title
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		if input.Price.LessThanOrEqual(decimal.Zero) {
			return nil, ErrProductPriceInvalid
		}
		product.Price = models.NewMoneyFromDecimal(input.Price.Decimal)
	}
	if input.Category != nil {
		product.Category = strings.TrimSpace(*input.Category)
	}
	if input.Stock != nil {
		if *input.Stock < 0 {
			return nil, ErrProductStockInvalid
		}
		product.Stock = *input.Stock
	}
	if input.ImageRef != nil {
		product.ImageRef = strings.TrimSpace(*input.ImageRef)
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeactivateProduct 下架商品
func (s *ProductService) DeactivateProduct(productID, callerID uint) (*models.Product, error) {
	inactive := false
	return s.UpdateProduct(productID, callerID, UpdateProductInput{IsActive: &inactive})
}

// ListPublic 公共目录：仅 vendor 类型店铺内的上架商品
func (s *ProductService) ListPublic(input ProductListInput) ([]ProductView, int64, error) {
	products, total, err := s.productRepo.List(repository.ProductListFilter{
		Page:       input.Page,
		PageSize:   input.PageSize,
		Category:   input.Category,
		Search:     input.Search,
		OnlyActive: true,
		InShopType: constants.ShopTypeVendor,
	})
	if err != nil {
		return nil, 0, err
	}
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, present(p, nil))
	}
	return views, total, nil
}

// ListShopProducts 获取店铺内全部商品（店铺视图的嵌套清单用）
func (s *ProductService) ListShopProducts(shopID uint) ([]models.Product, error) {
	return s.productRepo.ListByShop(shopID)
}

// ListByVendor 商家维度：该商家供货的全部商品（含克隆副本）
func (s *ProductService) ListByVendor(vendorID uint, input ProductListInput) ([]models.Product, int64, error) {
	return s.productRepo.List(repository.ProductListFilter{
		Page:     input.Page,
		PageSize: input.PageSize,
		Category: input.Category,
		Search:   input.Search,
		VendorID: vendorID,
	})
}

// ListByDropshipper 分销商维度：其店铺内的商品，叠加店铺名与 Logo
func (s *ProductService) ListByDropshipper(ownerID uint, input ProductListInput) ([]ProductView, int64, error) {
	shop, err := s.shopRepo.GetByOwnerAndType(ownerID, constants.ShopTypeDropshipper)
	if err != nil {
		return nil, 0, err
	}
	if shop == nil {
		return []ProductView{}, 0, nil
	}
	products, total, err := s.productRepo.List(repository.ProductListFilter{
		Page:     input.Page,
		PageSize: input.PageSize,
		Category: input.Category,
		Search:   input.Search,
		ShopID:   shop.ID,
	})
	if err != nil {
		return nil, 0, err
	}
	viewCtx := &ShopViewContext{ShopID: shop.ID, ShopName: shop.Name, ShopLogo: shop.LogoRef}
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, present(p, viewCtx))
	}
	return views, total, nil
}

func (s *ProductService) isProductOwner(product *models.Product, callerID uint) bool {
	if product.ShopID != nil && *product.ShopID > 0 {
		shop, err := s.shopRepo.GetByID(*product.ShopID)
		if err == nil && shop != nil {
			return shop.OwnerID == callerID
		}
	}
	return product.SourceProductID == nil && product.VendorID == callerID
}
