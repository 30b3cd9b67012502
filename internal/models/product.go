package models

import (
	"time"

	"gorm.io/gorm"
)

// Product 商品表
//
// 商家原始商品 SourceProductID 为空；分销商导入时克隆一份副本，
// 副本的 SourceProductID 指向原始商品，价格等字段可独立修改。
type Product struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	VendorID        uint           `gorm:"not null;index" json:"vendor_id"`           // 供货商家用户 ID（克隆副本仍指向原商家）
	ShopID          *uint          `gorm:"index" json:"shop_id"`                      // 所属店铺 ID（副本指向分销商店铺）
	SourceProductID *uint          `gorm:"index" json:"source_product_id,omitempty"`  // 原始商品 ID（仅克隆副本有值）
	Title           string         `gorm:"not null" json:"title"`                     // 商品标题
	Description     string         `gorm:"type:text" json:"description"`              // 商品描述
	Price           Money          `gorm:"type:decimal(20,2);not null" json:"price"`  // 售价
	Category        string         `gorm:"default:'';index" json:"category"`          // 分类
	Stock           int            `gorm:"not null;default:0" json:"stock"`           // 库存
	ImageRef        string         `gorm:"default:''" json:"image_ref"`               // 商品图相对路径
	IsActive        bool           `gorm:"not null;default:true;index" json:"is_active"` // 是否上架
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}

// UnderlyingProductID 返回归因用的底层商品 ID（克隆副本返回原始 ID）
func (p *Product) UnderlyingProductID() uint {
	if p.SourceProductID != nil && *p.SourceProductID > 0 {
		return *p.SourceProductID
	}
	return p.ID
}
