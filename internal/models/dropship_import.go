package models

import (
	"time"

	"gorm.io/gorm"
)

// DropshipImport 分销导入台账
//
// ProductID 始终指向商家的原始商品；CloneProductID 指向导入时生成的副本。
// 同一分销商同一店铺对同一原始商品只允许一条记录。
type DropshipImport struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	DropshipperID  uint           `gorm:"not null;uniqueIndex:idx_import_unique" json:"dropshipper_id"` // 分销商用户 ID
	ShopID         uint           `gorm:"not null;uniqueIndex:idx_import_unique" json:"shop_id"`        // 分销商店铺 ID
	ProductID      uint           `gorm:"not null;uniqueIndex:idx_import_unique" json:"product_id"`     // 原始商品 ID
	CloneProductID uint           `gorm:"not null;index" json:"clone_product_id"`                       // 克隆副本商品 ID
	CreatedAt      time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName 指定表名
func (DropshipImport) TableName() string {
	return "dropship_imports"
}
