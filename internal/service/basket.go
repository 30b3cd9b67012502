package service

import (
	"github.com/dropmart/dropmart/internal/models"
	"github.com/dropmart/dropmart/internal/repository"
)

// BasketLine 购物清单原始行
type BasketLine struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// ValidatedLine 校验通过的行，价格为当前售价快照
type ValidatedLine struct {
	Product  *models.Product
	Quantity int
	Price    models.Money
}

// BasketValidator 购物清单校验器
type BasketValidator struct {
	productRepo repository.ProductRepository
}

// NewBasketValidator 创建购物清单校验器
func NewBasketValidator(productRepo repository.ProductRepository) *BasketValidator {
	return &BasketValidator{productRepo: productRepo}
}

// ValidateLines 校验购物清单。
// 保持输入顺序，相同商品的重复行不合并；任一行非法则整体失败。
func (v *BasketValidator) ValidateLines(lines []BasketLine) ([]ValidatedLine, error) {
	if len(lines) == 0 {
		return nil, ErrBasketEmpty
	}
	ids := make([]uint, 0, len(lines))
	for _, line := range lines {
		if line.Quantity < 1 {
			return nil, ErrBasketQuantityInvalid
		}
		if line.ProductID == 0 {
			return nil, ErrProductNotFound
		}
		ids = append(ids, line.ProductID)
	}

	products, err := v.productRepo.ListByIDs(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]*models.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	validated := make([]ValidatedLine, 0, len(lines))
	for _, line := range lines {
		product, ok := byID[line.ProductID]
		if !ok || !product.IsActive {
			return nil, ErrProductNotFound
		}
		validated = append(validated, ValidatedLine{
			Product:  product,
			Quantity: line.Quantity,
			Price:    product.Price,
		})
	}
	return validated, nil
}
