package models

import (
	"time"
)

// OrderItem 订单明细表（下单时刻的商品快照）
type OrderItem struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	OrderID      uint      `gorm:"not null;index" json:"order_id"`
	ProductID    uint      `gorm:"not null;index" json:"product_id"`                // 下单时引用的商品 ID
	ProductTitle string    `gorm:"not null" json:"product_title"`                   // 标题快照
	Quantity     int       `gorm:"not null" json:"quantity"`                        // 数量
	Price        Money     `gorm:"type:decimal(20,2);not null" json:"price"`        // 单价快照
	VendorID     uint      `gorm:"not null;index" json:"vendor_id"`                 // 供货商家快照
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}
