package models

import (
	"time"

	"gorm.io/gorm"
)

// Shop 店铺表（每个商家/分销商各一家，懒创建）
type Shop struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	OwnerID     uint           `gorm:"not null;uniqueIndex:idx_shop_owner_type" json:"owner_id"`                  // 店主用户 ID
	ShopType    string         `gorm:"type:varchar(20);not null;uniqueIndex:idx_shop_owner_type" json:"shop_type"` // 店铺类型（vendor/dropshipper）
	Name        string         `gorm:"not null" json:"name"`                                                      // 店铺名称
	CompanyName string         `gorm:"default:''" json:"company_name"`                                            // 公司名
	Description string         `gorm:"default:''" json:"description"`                                             // 店铺简介
	LogoRef     string         `gorm:"default:''" json:"logo_ref"`                                                // 店铺 Logo 相对路径
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName 指定表名
func (Shop) TableName() string {
	return "shops"
}
