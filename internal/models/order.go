package models

import (
	"time"

	"gorm.io/gorm"
)

// Order 订单表
type Order struct {
	ID                  uint           `gorm:"primarykey" json:"id"`
	OrderNo             string         `gorm:"uniqueIndex;not null" json:"order_no"`             // 订单号
	UserID              uint           `gorm:"not null;default:0;index" json:"user_id"`          // 下单用户 ID（0 表示游客单）
	GuestName           string         `gorm:"not null;default:''" json:"guest_name"`            // 收单人姓名
	GuestEmail          string         `gorm:"not null;default:'';index" json:"guest_email"`     // 收单人邮箱
	GuestPhone          string         `gorm:"not null;default:''" json:"guest_phone"`           // 收单人电话
	GuestAddress        string         `gorm:"not null;default:''" json:"guest_address"`         // 收单人地址
	ShippingPhone       string         `gorm:"not null;default:''" json:"shipping_phone"`        // 收货电话
	ShippingAddress     string         `gorm:"not null;default:''" json:"shipping_address"`      // 收货地址
	DropshipperShopID   *uint          `gorm:"index" json:"dropshipper_shop_id,omitempty"`       // 归因分销商店铺 ID
	DropshipperShopName string         `gorm:"default:''" json:"dropshipper_shop_name"`          // 归因店铺名快照
	DropshipperShopLogo string         `gorm:"default:''" json:"dropshipper_shop_logo"`          // 归因店铺 Logo 快照
	Status              string         `gorm:"type:varchar(20);not null;index" json:"status"`    // 订单状态
	TotalAmount         Money          `gorm:"type:decimal(20,2);not null" json:"total_amount"`  // 订单总额
	Items               []OrderItem    `gorm:"foreignKey:OrderID" json:"items,omitempty"`        // 订单明细
	CreatedAt           time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}

// IsGuest 是否游客订单
func (o *Order) IsGuest() bool {
	return o.UserID == 0
}
