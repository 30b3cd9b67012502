package service

import (
	"errors"
	"testing"

	"github.com/dropmart/dropmart/internal/constants"
	"github.com/dropmart/dropmart/internal/repository"
)

func TestValidateLinesEmptyBasket(t *testing.T) {
	db := setupTestDB(t, "basket_empty")
	validator := NewBasketValidator(repository.NewProductRepository(db))

	if _, err := validator.ValidateLines(nil); !errors.Is(err, ErrBasketEmpty) {
		t.Fatalf("expected ErrBasketEmpty, got: %v", err)
	}
	if _, err := validator.ValidateLines([]BasketLine{}); !errors.Is(err, ErrBasketEmpty) {
		t.Fatalf("expected ErrBasketEmpty, got: %v", err)
	}
}

func TestValidateLinesRejectsInvalidQuantity(t *testing.T) {
	db := setupTestDB(t, "basket_quantity")
	vendor := createTestUser(t, db, "vendor@test.dev", constants.RoleVendor)
	shop := createTestShop(t, db, vendor.ID, constants.ShopTypeVendor, "Vendor Store")
	product := createTestProduct(t, db, vendor.ID, shop.ID, "Widget", 5.00)

	validator := NewBasketValidator(repository.NewProductRepository(db))
	lines := []BasketLine{
		{ProductID: product.ID, Quantity: 1},
		{ProductID: product.ID, Quantity: 0},
	}
	if _, err := validator.ValidateLines(lines); !errors.Is(err, ErrBasketQuantityInvalid) {
		t.Fatalf("expected ErrBasketQuantityInvalid, got: %v", err)
	}
}

func TestValidateLinesRejectsMissingOrInactiveProduct(t *testing.T) {
	db := setupTestDB(t, "basket_inactive")
	vendor := createTestUser(t, db, "vendor@test.dev", constants.RoleVendor)
	shop := createTestShop(t, db, vendor.ID, constants.ShopTypeVendor, "Vendor Store")
	inactive := createTestProduct(t, db, vendor.ID, shop.ID, "Retired", 5.00)
	inactive.IsActive = false
	if err := db.Save(inactive).Error; err != nil {
		t.Fatalf("deactivate product failed: %v", err)
	}

	validator := NewBasketValidator(repository.NewProductRepository(db))
	if _, err := validator.ValidateLines([]BasketLine{{ProductID: 9999, Quantity: 1}}); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound for missing product, got: %v", err)
	}
	if _, err := validator.ValidateLines([]BasketLine{{ProductID: inactive.ID, Quantity: 1}}); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound for inactive product, got: %v", err)
	}
}

func TestValidateLinesKeepsOrderAndDuplicates(t *testing.T) {
	db := setupTestDB(t, "basket_order")
	vendor := createTestUser(t, db, "vendor@test.dev", constants.RoleVendor)
	shop := createTestShop(t, db, vendor.ID, constants.ShopTypeVendor, "Vendor Store")
	a := createTestProduct(t, db, vendor.ID, shop.ID, "A", 1.00)
	b := createTestProduct(t, db, vendor.ID, shop.ID, "B", 2.00)

	validator := NewBasketValidator(repository.NewProductRepository(db))
	lines := []BasketLine{
		{ProductID: b.ID, Quantity: 1},
		{ProductID: a.ID, Quantity: 2},
		{ProductID: b.ID, Quantity: 3},
	}
	validated, err := validator.ValidateLines(lines)
	if err != nil {
		t.Fatalf("ValidateLines error: %v", err)
	}
	if len(validated) != 3 {
		t.Fatalf("expected 3 lines without merging, got %d", len(validated))
	}
	if validated[0].Product.ID != b.ID || validated[1].Product.ID != a.ID || validated[2].Product.ID != b.ID {
		t.Fatalf("expected input order preserved, got: %d %d %d",
			validated[0].Product.ID, validated[1].Product.ID, validated[2].Product.ID)
	}
	if validated[2].Quantity != 3 {
		t.Fatalf("expected quantity 3 on last line, got %d", validated[2].Quantity)
	}
}
