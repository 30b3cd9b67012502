package constants

// 用户角色常量
const (
	RoleCustomer    = "customer"
	RoleVendor      = "vendor"
	RoleDropshipper = "dropshipper"
)

// SupportedRoles 支持的注册角色
var SupportedRoles = []string{RoleCustomer, RoleVendor, RoleDropshipper}

// 店铺类型常量
const (
	ShopTypeVendor      = "vendor"
	ShopTypeDropshipper = "dropshipper"
)

// 订单状态常量
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusCompleted  = "completed"
	OrderStatusCanceled   = "canceled"
)

// 游客订单联系信息兜底值
// 订单联系字段在存储层非空，缺省时写入固定占位值而非报错
const (
	GuestNameFallback    = "Guest Customer"
	GuestEmailFallback   = "guest@example.com"
	GuestPhoneFallback   = "N/A"
	GuestAddressFallback = "N/A"
)

// 用户状态常量
const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)

// 队列常量
const (
	QueueDefault          = "default"
	TaskOrderCreatedEmail = "order:created_email"
)

// 缓存默认配置常量
const (
	RedisPrefixDefault = "dm"
)

// 站点语言常量
const (
	LocaleEnUS = "en-US"
	LocaleZhCN = "zh-CN"
	LocaleZhTW = "zh-TW"
)

// 支持的站点语言顺序（含回退顺序）
var SupportedLocales = []string{LocaleEnUS, LocaleZhCN, LocaleZhTW}
