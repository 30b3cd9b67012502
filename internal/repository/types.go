package repository

import "time"

// ProductListFilter 查询商品列表的过滤条件
type ProductListFilter struct {
	Page          int
	PageSize      int
	Category      string
	Search        string
	OnlyActive    bool
	VendorID      uint   // 仅该商家供货的商品
	ShopID        uint   // 仅该店铺内的商品
	ShopOwnerID   uint   // 仅该用户名下店铺的商品
	InShopType    string // 仅该类型店铺内的商品（公共目录用 vendor）
}

// OrderListFilter 查询订单列表的过滤条件
type OrderListFilter struct {
	Page               int
	PageSize           int
	UserID             uint // 下单用户维度
	VendorID           uint // 商家维度：订单含该商家供货行
	DropshipperOwnerID uint // 分销商维度：归因店铺属于该用户
	Status             string
	OrderNo            string
	GuestEmail         string
	CreatedFrom        *time.Time
	CreatedTo          *time.Time
}
