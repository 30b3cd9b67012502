package repository

import (
	"errors"

	"github.com/dropmart/dropmart/internal/models"

	"gorm.io/gorm"
)

// ImportRepository 分销导入台账数据访问接口
type ImportRepository interface {
	GetByTriple(dropshipperID, shopID, productID uint) (*models.DropshipImport, error)
	ListByProductIDs(productIDs []uint) ([]models.DropshipImport, error)
	ListByDropshipper(dropshipperID uint) ([]models.DropshipImport, error)
	Create(record *models.DropshipImport) error
	WithTx(tx *gorm.DB) ImportRepository
}

// GormImportRepository GORM 实现
type GormImportRepository struct {
	db *gorm.DB
}

// NewImportRepository 创建导入台账仓库
func NewImportRepository(db *gorm.DB) *GormImportRepository {
	return &GormImportRepository{db: db}
}

// WithTx 绑定事务
func (r *GormImportRepository) WithTx(tx *gorm.DB) ImportRepository {
	if tx == nil {
		return r
	}
	return &GormImportRepository{db: tx}
}

// GetByTriple 按唯一三元组获取导入记录
func (r *GormImportRepository) GetByTriple(dropshipperID, shopID, productID uint) (*models.DropshipImport, error) {
	var record models.DropshipImport
	err := r.db.Where("dropshipper_id = ? AND shop_id = ? AND product_id = ?", dropshipperID, shopID, productID).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// ListByProductIDs 批量获取原始商品的导入记录（按 ID 升序，归因取首条）
func (r *GormImportRepository) ListByProductIDs(productIDs []uint) ([]models.DropshipImport, error) {
	if len(productIDs) == 0 {
		return []models.DropshipImport{}, nil
	}
	var records []models.DropshipImport
	if err := r.db.Where("product_id IN ?", productIDs).Order("id ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// ListByDropshipper 获取分销商全部导入记录
func (r *GormImportRepository) ListByDropshipper(dropshipperID uint) ([]models.DropshipImport, error) {
	var records []models.DropshipImport
	if err := r.db.Where("dropshipper_id = ?", dropshipperID).Order("id DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Create 创建导入记录
func (r *GormImportRepository) Create(record *models.DropshipImport) error {
	return r.db.Create(record).Error
}
