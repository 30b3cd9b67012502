package service

import "errors"

// 业务哨兵错误，handler 层据此映射响应码与文案
var (
	ErrEmailInvalid       = errors.New("email invalid")
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrWeakPassword       = errors.New("password too weak")
	ErrRoleInvalid        = errors.New("role invalid")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserDisabled       = errors.New("user disabled")

	ErrShopNotFound  = errors.New("shop not found")
	ErrShopForbidden = errors.New("shop forbidden")

	ErrProductNotFound      = errors.New("product not found")
	ErrProductForbidden     = errors.New("product forbidden")
	ErrProductPriceInvalid  = errors.New("product price invalid")
	ErrProductStockInvalid  = errors.New("product stock invalid")
	ErrProductTitleRequired = errors.New("product title required")

	ErrImportForbidden = errors.New("import forbidden")

	ErrBasketEmpty           = errors.New("basket empty")
	ErrBasketQuantityInvalid = errors.New("basket quantity invalid")

	ErrOrderNotFound         = errors.New("order not found")
	ErrOrderStatusInvalid    = errors.New("order status invalid")
	ErrOrderStatusTransition = errors.New("order status transition not allowed")

	ErrCartItemInvalid = errors.New("cart item invalid")
	ErrCartEmpty       = errors.New("cart empty")

	ErrEmailServiceDisabled      = errors.New("email service disabled")
	ErrEmailServiceNotConfigured = errors.New("email service not configured")

	ErrUploadFileTooLarge = errors.New("upload file too large")
	ErrUploadTypeInvalid  = errors.New("upload type invalid")
)
