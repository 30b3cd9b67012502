package repository

import (
	"errors"

	"github.com/dropmart/dropmart/internal/models"

	"gorm.io/gorm"
)

// ProductRepository 商品数据访问接口
type ProductRepository interface {
	GetByID(id uint) (*models.Product, error)
	ListByIDs(ids []uint) ([]models.Product, error)
	ListByShop(shopID uint) ([]models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	List(filter ProductListFilter) ([]models.Product, int64, error)
	WithTx(tx *gorm.DB) *GormProductRepository
}

// GormProductRepository GORM 实现
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓库
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// WithTx 绑定事务
func (r *GormProductRepository) WithTx(tx *gorm.DB) *GormProductRepository {
	if tx == nil {
		return r
	}
	return &GormProductRepository{db: tx}
}

// GetByID 根据 ID 获取商品
func (r *GormProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// ListByIDs 批量获取商品（保持传入顺序由调用方处理）
func (r *GormProductRepository) ListByIDs(ids []uint) ([]models.Product, error) {
	if len(ids) == 0 {
		return []models.Product{}, nil
	}
	var products []models.Product
	if err := r.db.Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ListByShop 获取店铺内全部商品；空店铺返回空切片而非 nil
func (r *GormProductRepository) ListByShop(shopID uint) ([]models.Product, error) {
	products := make([]models.Product, 0)
	if shopID == 0 {
		return products, nil
	}
	if err := r.db.Where("shop_id = ?", shopID).Order("id ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Create 创建商品
func (r *GormProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// Update 更新商品
func (r *GormProductRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}

// List 商品列表
func (r *GormProductRepository) List(filter ProductListFilter) ([]models.Product, int64, error) {
	query := r.db.Model(&models.Product{})

	if filter.OnlyActive {
		query = query.Where("products.is_active = ?", true)
	}
	if filter.VendorID > 0 {
		query = query.Where("products.vendor_id = ?", filter.VendorID)
	}
	if filter.ShopID > 0 {
		query = query.Where("products.shop_id = ?", filter.ShopID)
	}
	if filter.Category != "" {
		query = query.Where("products.category = ?", filter.Category)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("products.title LIKE ? OR products.description LIKE ?", like, like)
	}
	if filter.ShopOwnerID > 0 || filter.InShopType != "" {
		query = query.Joins("JOIN shops ON shops.id = products.shop_id AND shops.deleted_at IS NULL")
		if filter.ShopOwnerID > 0 {
			query = query.Where("shops.owner_id = ?", filter.ShopOwnerID)
		}
		if filter.InShopType != "" {
			query = query.Where("shops.shop_type = ?", filter.InShopType)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var products []models.Product
	if err := query.Order("products.id DESC").Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}
