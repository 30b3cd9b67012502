package public

import (
	"errors"

	"github.com/dropmart/dropmart/internal/http/response"
	"github.com/dropmart/dropmart/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	key    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.key, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackKey, err)
}

func concatMappedHandlerErrors(groups ...[]mappedHandlerError) []mappedHandlerError {
	total := 0
	for _, group := range groups {
		total += len(group)
	}
	result := make([]mappedHandlerError, 0, total)
	for _, group := range groups {
		result = append(result, group...)
	}
	return result
}

var basketErrorRules = []mappedHandlerError{
	{target: service.ErrBasketEmpty, code: response.CodeBadRequest, key: "error.basket_empty"},
	{target: service.ErrBasketQuantityInvalid, code: response.CodeBadRequest, key: "error.basket_quantity_invalid"},
	{target: service.ErrProductNotFound, code: response.CodeBadRequest, key: "error.product_not_found"},
}

var orderCreateErrorRules = []mappedHandlerError{
	{target: service.ErrShopNotFound, code: response.CodeBadRequest, key: "error.shop_not_found"},
	{target: service.ErrEmailInvalid, code: response.CodeBadRequest, key: "error.email_invalid"},
}

var orderStatusErrorRules = []mappedHandlerError{
	{target: service.ErrOrderNotFound, code: response.CodeNotFound, key: "error.order_not_found"},
	{target: service.ErrOrderStatusInvalid, code: response.CodeBadRequest, key: "error.order_status_invalid"},
	{target: service.ErrOrderStatusTransition, code: response.CodeBadRequest, key: "error.order_status_transition"},
}

var productWriteErrorRules = []mappedHandlerError{
	{target: service.ErrProductNotFound, code: response.CodeNotFound, key: "error.product_not_found"},
	{target: service.ErrProductForbidden, code: response.CodeForbidden, key: "error.product_forbidden"},
	{target: service.ErrProductTitleRequired, code: response.CodeBadRequest, key: "error.product_title_required"},
	{target: service.ErrProductPriceInvalid, code: response.CodeBadRequest, key: "error.product_price_invalid"},
	{target: service.ErrProductStockInvalid, code: response.CodeBadRequest, key: "error.product_stock_invalid"},
	{target: service.ErrShopNotFound, code: response.CodeBadRequest, key: "error.shop_not_found"},
	{target: service.ErrShopForbidden, code: response.CodeForbidden, key: "error.shop_forbidden"},
}

var importErrorRules = []mappedHandlerError{
	{target: service.ErrImportForbidden, code: response.CodeForbidden, key: "error.import_forbidden"},
	{target: service.ErrProductNotFound, code: response.CodeNotFound, key: "error.product_not_found"},
}

var shopWriteErrorRules = []mappedHandlerError{
	{target: service.ErrShopNotFound, code: response.CodeNotFound, key: "error.shop_not_found"},
	{target: service.ErrShopForbidden, code: response.CodeForbidden, key: "error.shop_forbidden"},
}

var cartErrorRules = []mappedHandlerError{
	{target: service.ErrCartItemInvalid, code: response.CodeBadRequest, key: "error.cart_item_invalid"},
	{target: service.ErrCartEmpty, code: response.CodeBadRequest, key: "error.cart_empty"},
	{target: service.ErrProductNotFound, code: response.CodeBadRequest, key: "error.product_not_found"},
}

func respondOrderCreateError(c *gin.Context, err error) {
	respondWithMappedError(c, err, concatMappedHandlerErrors(basketErrorRules, orderCreateErrorRules), response.CodeInternal, "error.order_create_failed")
}

func respondCartCheckoutError(c *gin.Context, err error) {
	respondWithMappedError(c, err, concatMappedHandlerErrors(cartErrorRules, basketErrorRules, orderCreateErrorRules), response.CodeInternal, "error.order_create_failed")
}
