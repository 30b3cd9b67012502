package service

import (
	"errors"
	"testing"

	"github.com/dropmart/dropmart/internal/constants"
	"github.com/dropmart/dropmart/internal/models"
	"github.com/dropmart/dropmart/internal/repository"

	"gorm.io/gorm"
)

func newTestCartService(db *gorm.DB) *CartService {
	return NewCartService(repository.NewCartRepository(db), repository.NewProductRepository(db), newTestOrderService(db))
}

func TestAddCartItemAccumulatesQuantity(t *testing.T) {
	db := setupTestDB(t, "cart_accumulate")
	vendor := createTestUser(t, db, "vendor@test.dev", constants.RoleVendor)
	shop := createTestShop(t, db, vendor.ID, constants.ShopTypeVendor, "Vendor Store")
	product := createTestProduct(t, db, vendor.ID, shop.ID, "Widget", 5.00)
	customer := createTestUser(t, db, "buyer@test.dev", constants.RoleCustomer)

	svc := newTestCartService(db)
	if err := svc.AddItem(customer.ID, product.ID, 2); err != nil {
		t.Fatalf("AddItem error: %v", err)
	}
	if err := svc.AddItem(customer.ID, product.ID, 3); err != nil {
		t.Fatalf("second AddItem error: %v", err)
	}

	items, err := svc.ListByUser(customer.ID)
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 cart line, got %d", len(items))
	}
	if items[0].Quantity != 5 {
		t.Fatalf("expected accumulated quantity 5, got %d", items[0].Quantity)
	}
}

func TestSetCartQuantityRequiresExistingLine(t *testing.T) {
	db := setupTestDB(t, "cart_set_quantity")
	vendor := createTestUser(t, db, "vendor@test.dev", constants.RoleVendor)
	shop := createTestShop(t, db, vendor.ID, constants.ShopTypeVendor, "Vendor Store")
	product := createTestProduct(t, db, vendor.ID, shop.ID, "Widget", 5.00)
	customer := createTestUser(t, db, "buyer@test.dev", constants.RoleCustomer)

	svc := newTestCartService(db)
	if err := svc.SetQuantity(customer.ID, product.ID, 4); !errors.Is(err, ErrCartItemInvalid) {
		t.Fatalf("expected ErrCartItemInvalid for missing line, got: %v", err)
	}
	if err := svc.AddItem(customer.ID, product.ID, 1); err != nil {
		t.Fatalf("AddItem error: %v", err)
	}
	if err := svc.SetQuantity(customer.ID, product.ID, 4); err != nil {
		t.Fatalf("SetQuantity error: %v", err)
	}
	items, err := svc.ListByUser(customer.ID)
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if items[0].Quantity != 4 {
		t.Fatalf("expected overridden quantity 4, got %d", items[0].Quantity)
	}
}

func TestListCartPrunesInactiveProducts(t *testing.T) {
	db := setupTestDB(t, "cart_prune")
	vendor := createTestUser(t, db, "vendor@test.dev", constants.RoleVendor)
	shop := createTestShop(t, db, vendor.ID, constants.ShopTypeVendor, "Vendor Store")
	keep := createTestProduct(t, db, vendor.ID, shop.ID, "Keep", 5.00)
	drop := createTestProduct(t, db, vendor.ID, shop.ID, "Drop", 5.00)
	customer := createTestUser(t, db, "buyer@test.dev", constants.RoleCustomer)

	svc := newTestCartService(db)
	if err := svc.AddItem(customer.ID, keep.ID, 1); err != nil {
		t.Fatalf("AddItem error: %v", err)
	}
	if err := svc.AddItem(customer.ID, drop.ID, 1); err != nil {
		t.Fatalf("AddItem error: %v", err)
	}
	drop.IsActive = false
	if err := db.Save(drop).Error; err != nil {
		t.Fatalf("deactivate product failed: %v", err)
	}

	items, err := svc.ListByUser(customer.ID)
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if len(items) != 1 || items[0].ProductID != keep.ID {
		t.Fatalf("expected only active product, got: %+v", items)
	}

	var count int64
	if err := db.Model(&models.CartItem{}).Where("user_id = ?", customer.ID).Count(&count).Error; err != nil {
		t.Fatalf("count cart items failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected stale line removed, got %d", count)
	}
}

func TestCheckoutCreatesOrderAndClearsCart(t *testing.T) {
	db := setupTestDB(t, "cart_checkout")
	vendor := createTestUser(t, db, "vendor@test.dev", constants.RoleVendor)
	shop := createTestShop(t, db, vendor.ID, constants.ShopTypeVendor, "Vendor Store")
	a := createTestProduct(t, db, vendor.ID, shop.ID, "A", 2.00)
	b := createTestProduct(t, db, vendor.ID, shop.ID, "B", 3.00)
	customer := createTestUser(t, db, "buyer@test.dev", constants.RoleCustomer)

	svc := newTestCartService(db)
	if err := svc.AddItem(customer.ID, a.ID, 2); err != nil {
		t.Fatalf("AddItem error: %v", err)
	}
	if err := svc.AddItem(customer.ID, b.ID, 1); err != nil {
		t.Fatalf("AddItem error: %v", err)
	}

	order, err := svc.Checkout(customer.ID, ContactInfo{}, 0)
	if err != nil {
		t.Fatalf("Checkout error: %v", err)
	}
	if len(order.Items) != 2 {
		t.Fatalf("expected 2 order items, got %d", len(order.Items))
	}
	// 按加购顺序生成清单行
	if order.Items[0].ProductID != a.ID || order.Items[1].ProductID != b.ID {
		t.Fatalf("expected cart order preserved, got: %d %d", order.Items[0].ProductID, order.Items[1].ProductID)
	}
	if order.UserID != customer.ID {
		t.Fatalf("expected customer order, got user %d", order.UserID)
	}

	items, err := svc.ListByUser(customer.ID)
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected cart cleared after checkout, got %d lines", len(items))
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	db := setupTestDB(t, "cart_checkout_empty")
	customer := createTestUser(t, db, "buyer@test.dev", constants.RoleCustomer)

	svc := newTestCartService(db)
	if _, err := svc.Checkout(customer.ID, ContactInfo{}, 0); !errors.Is(err, ErrCartEmpty) {
		t.Fatalf("expected ErrCartEmpty, got: %v", err)
	}
}
