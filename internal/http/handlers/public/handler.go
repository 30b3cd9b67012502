package public

import "github.com/dropmart/dropmart/internal/provider"

// Handler 市场 API 处理器入口
// 说明：覆盖公开目录、游客下单与登录用户（买家/商家/分销商）侧接口。
type Handler struct {
	*provider.Container
}

// New 创建处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
