package i18n

import (
	"strings"

	"github.com/dropmart/dropmart/internal/constants"

	"github.com/gin-gonic/gin"
)

// 语言常量（与 constants.SupportedLocales 保持一致）
const (
	LocaleEN = constants.LocaleEnUS
	LocaleCN = constants.LocaleZhCN
	LocaleTW = constants.LocaleZhTW
)

// DefaultLocale 默认语言
const DefaultLocale = LocaleEN

// ResolveLocale 解析请求语言：优先 lang 参数，其次 Accept-Language 头
func ResolveLocale(c *gin.Context) string {
	if c == nil {
		return DefaultLocale
	}
	if lang := normalizeLocale(c.Query("lang")); lang != "" {
		return lang
	}
	header := c.GetHeader("Accept-Language")
	for _, part := range strings.Split(header, ",") {
		tag := part
		if idx := strings.Index(tag, ";"); idx >= 0 {
			tag = tag[:idx]
		}
		if lang := normalizeLocale(tag); lang != "" {
			return lang
		}
	}
	return DefaultLocale
}

func normalizeLocale(raw string) string {
	value := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case value == "":
		return ""
	case strings.HasPrefix(value, "zh-tw"), strings.HasPrefix(value, "zh-hant"), strings.HasPrefix(value, "zh-hk"):
		return LocaleTW
	case strings.HasPrefix(value, "zh"):
		return LocaleCN
	case strings.HasPrefix(value, "en"):
		return LocaleEN
	default:
		return ""
	}
}

// T 返回指定语言的文案，缺失时回退默认语言，再回退 key 本身
func T(locale, key string) string {
	if msgs, ok := messages[locale]; ok {
		if text, ok := msgs[key]; ok {
			return text
		}
	}
	if msgs, ok := messages[DefaultLocale]; ok {
		if text, ok := msgs[key]; ok {
			return text
		}
	}
	return key
}

var messages = map[string]map[string]string{
	LocaleEN: {
		"error.bad_request":                "invalid request",
		"error.unauthorized":               "unauthorized",
		"error.forbidden":                  "forbidden",
		"error.internal":                   "internal error",
		"error.auth_header_missing":        "authorization header missing",
		"error.auth_header_invalid":        "authorization header invalid",
		"error.jwt_secret_missing":         "jwt secret not configured",
		"error.token_invalid":              "token invalid",
		"error.token_revoked":              "token revoked",
		"error.user_disabled":              "account disabled",
		"error.user_id_invalid":            "user id invalid",
		"error.user_id_type_invalid":       "user id type invalid",
		"error.email_invalid":              "email invalid",
		"error.email_exists":               "email already registered",
		"error.invalid_credentials":        "email or password incorrect",
		"error.password_too_weak":          "password does not meet the policy",
		"error.role_invalid":               "role invalid",
		"error.register_failed":            "register failed",
		"error.login_failed":               "login failed",
		"error.login_too_many":             "too many login attempts, try again later",
		"error.rate_limit_unavailable":     "rate limiter unavailable",
		"error.rate_limited":               "too many requests",
		"error.shop_not_found":             "shop not found",
		"error.shop_forbidden":             "not the shop owner",
		"error.shop_update_failed":         "shop update failed",
		"error.shop_fetch_failed":          "shop fetch failed",
		"error.product_not_found":          "product not found",
		"error.product_forbidden":          "not the product owner",
		"error.product_price_invalid":      "product price invalid",
		"error.product_stock_invalid":      "product stock invalid",
		"error.product_title_required":     "product title required",
		"error.product_create_failed":      "product create failed",
		"error.product_update_failed":      "product update failed",
		"error.product_fetch_failed":       "product fetch failed",
		"error.import_forbidden":           "only dropshippers can import products",
		"error.import_failed":              "product import failed",
		"error.basket_empty":               "basket is empty",
		"error.basket_quantity_invalid":    "line quantity must be at least 1",
		"error.order_not_found":            "order not found",
		"error.order_create_failed":        "order create failed",
		"error.order_fetch_failed":         "order fetch failed",
		"error.order_update_failed":        "order update failed",
		"error.order_status_invalid":       "order status invalid",
		"error.order_status_transition":    "order status transition not allowed",
		"error.cart_item_invalid":          "cart item invalid",
		"error.cart_empty":                 "cart is empty",
		"error.upload_failed":              "upload failed",
		"error.upload_invalid":             "file not allowed",
	},
	LocaleCN: {
		"error.bad_request":                "请求参数错误",
		"error.unauthorized":               "未登录或登录已过期",
		"error.forbidden":                  "无权限操作",
		"error.internal":                   "服务内部错误",
		"error.auth_header_missing":        "缺少认证头",
		"error.auth_header_invalid":        "认证头格式错误",
		"error.jwt_secret_missing":         "JWT 密钥未配置",
		"error.token_invalid":              "登录凭证无效",
		"error.token_revoked":              "登录凭证已失效",
		"error.user_disabled":              "账号已被禁用",
		"error.user_id_invalid":            "用户 ID 无效",
		"error.user_id_type_invalid":       "用户 ID 类型错误",
		"error.email_invalid":              "邮箱格式错误",
		"error.email_exists":               "邮箱已被注册",
		"error.invalid_credentials":        "邮箱或密码错误",
		"error.password_too_weak":          "密码强度不足",
		"error.role_invalid":               "角色无效",
		"error.register_failed":            "注册失败",
		"error.login_failed":               "登录失败",
		"error.login_too_many":             "登录过于频繁，请稍后再试",
		"error.rate_limit_unavailable":     "限流服务不可用",
		"error.rate_limited":               "请求过于频繁",
		"error.shop_not_found":             "店铺不存在",
		"error.shop_forbidden":             "非店铺所有者",
		"error.shop_update_failed":         "店铺更新失败",
		"error.shop_fetch_failed":          "店铺获取失败",
		"error.product_not_found":          "商品不存在",
		"error.product_forbidden":          "非商品所有者",
		"error.product_price_invalid":      "商品价格无效",
		"error.product_stock_invalid":      "商品库存无效",
		"error.product_title_required":     "商品标题不能为空",
		"error.product_create_failed":      "商品创建失败",
		"error.product_update_failed":      "商品更新失败",
		"error.product_fetch_failed":       "商品获取失败",
		"error.import_forbidden":           "仅分销商可导入商品",
		"error.import_failed":              "商品导入失败",
		"error.basket_empty":               "购物清单为空",
		"error.basket_quantity_invalid":    "商品数量至少为 1",
		"error.order_not_found":            "订单不存在",
		"error.order_create_failed":        "订单创建失败",
		"error.order_fetch_failed":         "订单获取失败",
		"error.order_update_failed":        "订单更新失败",
		"error.order_status_invalid":       "订单状态无效",
		"error.order_status_transition":    "订单状态不允许该变更",
		"error.cart_item_invalid":          "购物车项无效",
		"error.cart_empty":                 "购物车为空",
		"error.upload_failed":              "上传失败",
		"error.upload_invalid":             "文件类型不被允许",
	},
	LocaleTW: {
		"error.bad_request":                "請求參數錯誤",
		"error.unauthorized":               "未登入或登入已過期",
		"error.forbidden":                  "無權限操作",
		"error.internal":                   "服務內部錯誤",
		"error.auth_header_missing":        "缺少認證頭",
		"error.auth_header_invalid":        "認證頭格式錯誤",
		"error.jwt_secret_missing":         "JWT 密鑰未配置",
		"error.token_invalid":              "登入憑證無效",
		"error.token_revoked":              "登入憑證已失效",
		"error.user_disabled":              "帳號已被停用",
		"error.user_id_invalid":            "用戶 ID 無效",
		"error.user_id_type_invalid":       "用戶 ID 類型錯誤",
		"error.email_invalid":              "郵箱格式錯誤",
		"error.email_exists":               "郵箱已被註冊",
		"error.invalid_credentials":        "郵箱或密碼錯誤",
		"error.password_too_weak":          "密碼強度不足",
		"error.role_invalid":               "角色無效",
		"error.register_failed":            "註冊失敗",
		"error.login_failed":               "登入失敗",
		"error.login_too_many":             "登入過於頻繁，請稍後再試",
		"error.rate_limit_unavailable":     "限流服務不可用",
		"error.rate_limited":               "請求過於頻繁",
		"error.shop_not_found":             "店鋪不存在",
		"error.shop_forbidden":             "非店鋪所有者",
		"error.shop_update_failed":         "店鋪更新失敗",
		"error.shop_fetch_failed":          "店鋪獲取失敗",
		"error.product_not_found":          "商品不存在",
		"error.product_forbidden":          "非商品所有者",
		"error.product_price_invalid":      "商品價格無效",
		"error.product_stock_invalid":      "商品庫存無效",
		"error.product_title_required":     "商品標題不能為空",
		"error.product_create_failed":      "商品創建失敗",
		"error.product_update_failed":      "商品更新失敗",
		"error.product_fetch_failed":       "商品獲取失敗",
		"error.import_forbidden":           "僅分銷商可導入商品",
		"error.import_failed":              "商品導入失敗",
		"error.basket_empty":               "購物清單為空",
		"error.basket_quantity_invalid":    "商品數量至少為 1",
		"error.order_not_found":            "訂單不存在",
		"error.order_create_failed":        "訂單創建失敗",
		"error.order_fetch_failed":         "訂單獲取失敗",
		"error.order_update_failed":        "訂單更新失敗",
		"error.order_status_invalid":       "訂單狀態無效",
		"error.order_status_transition":    "訂單狀態不允許該變更",
		"error.cart_item_invalid":          "購物車項無效",
		"error.cart_empty":                 "購物車為空",
		"error.upload_failed":              "上傳失敗",
		"error.upload_invalid":             "文件類型不被允許",
	},
}
