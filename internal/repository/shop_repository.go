package repository

import (
	"errors"

	"github.com/dropmart/dropmart/internal/models"

	"gorm.io/gorm"
)

// ShopRepository 店铺数据访问接口
type ShopRepository interface {
	GetByID(id uint) (*models.Shop, error)
	GetByOwnerAndType(ownerID uint, shopType string) (*models.Shop, error)
	ListByOwner(ownerID uint) ([]models.Shop, error)
	Create(shop *models.Shop) error
	Update(shop *models.Shop) error
	WithTx(tx *gorm.DB) ShopRepository
}

// GormShopRepository GORM 实现
type GormShopRepository struct {
	db *gorm.DB
}

// NewShopRepository 创建店铺仓库
func NewShopRepository(db *gorm.DB) *GormShopRepository {
	return &GormShopRepository{db: db}
}

// WithTx 绑定事务
func (r *GormShopRepository) WithTx(tx *gorm.DB) ShopRepository {
	if tx == nil {
		return r
	}
	return &GormShopRepository{db: tx}
}

// GetByID 根据 ID 获取店铺
func (r *GormShopRepository) GetByID(id uint) (*models.Shop, error) {
	var shop models.Shop
	if err := r.db.First(&shop, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &shop, nil
}

// GetByOwnerAndType 获取用户指定类型的店铺
func (r *GormShopRepository) GetByOwnerAndType(ownerID uint, shopType string) (*models.Shop, error) {
	var shop models.Shop
	if err := r.db.Where("owner_id = ? AND shop_type = ?", ownerID, shopType).First(&shop).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &shop, nil
}

// ListByOwner 获取用户名下全部店铺
func (r *GormShopRepository) ListByOwner(ownerID uint) ([]models.Shop, error) {
	var shops []models.Shop
	if err := r.db.Where("owner_id = ?", ownerID).Order("id ASC").Find(&shops).Error; err != nil {
		return nil, err
	}
	return shops, nil
}

// Create 创建店铺
func (r *GormShopRepository) Create(shop *models.Shop) error {
	return r.db.Create(shop).Error
}

// Update 更新店铺
func (r *GormShopRepository) Update(shop *models.Shop) error {
	return r.db.Save(shop).Error
}
