package service

import (
	"errors"
	"testing"

	"github.com/dropmart/dropmart/internal/config"
	"github.com/dropmart/dropmart/internal/constants"
	"github.com/dropmart/dropmart/internal/models"
	"github.com/dropmart/dropmart/internal/repository"

	"gorm.io/gorm"
)

func newTestShopService(db *gorm.DB, cfg *config.ShopConfig) *ShopService {
	return NewShopService(repository.NewShopRepository(db), repository.NewUserRepository(db), nil, cfg)
}

func TestGetOrCreateShopLazyCreatesOnce(t *testing.T) {
	db := setupTestDB(t, "shop_lazy_create")
	vendor := createTestUser(t, db, "vendor@test.dev", constants.RoleVendor)

	svc := newTestShopService(db, nil)
	first, err := svc.GetOrCreateShop(vendor.ID, constants.ShopTypeVendor)
	if err != nil {
		t.Fatalf("GetOrCreateShop error: %v", err)
	}
	if first.OwnerID != vendor.ID || first.ShopType != constants.ShopTypeVendor {
		t.Fatalf("unexpected shop: %+v", first)
	}

	second, err := svc.GetOrCreateShop(vendor.ID, constants.ShopTypeVendor)
	if err != nil {
		t.Fatalf("second GetOrCreateShop error: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("expected same shop, got %d vs %d", second.ID, first.ID)
	}

	var count int64
	if err := db.Model(&models.Shop{}).Where("owner_id = ?", vendor.ID).Count(&count).Error; err != nil {
		t.Fatalf("count shops failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly 1 shop, got %d", count)
	}
}

func TestGetOrCreateShopSeparateTypesPerRole(t *testing.T) {
	db := setupTestDB(t, "shop_per_type")
	user := createTestUser(t, db, "both@test.dev", constants.RoleVendor)

	svc := newTestShopService(db, nil)
	vendorShop, err := svc.GetOrCreateShop(user.ID, constants.ShopTypeVendor)
	if err != nil {
		t.Fatalf("vendor shop error: %v", err)
	}
	dropShop, err := svc.GetOrCreateShop(user.ID, constants.ShopTypeDropshipper)
	if err != nil {
		t.Fatalf("dropshipper shop error: %v", err)
	}
	if vendorShop.ID == dropShop.ID {
		t.Fatalf("expected distinct shops per type")
	}

	if _, err := svc.GetOrCreateShop(user.ID, "warehouse"); !errors.Is(err, ErrShopNotFound) {
		t.Fatalf("expected ErrShopNotFound for unknown type, got: %v", err)
	}
}

func TestGetOrCreateShopDefaultName(t *testing.T) {
	db := setupTestDB(t, "shop_default_name")
	user := createTestUser(t, db, "alice@test.dev", constants.RoleVendor)
	user.DisplayName = "Alice"
	user.CompanyName = "Alice Co."
	if err := db.Save(user).Error; err != nil {
		t.Fatalf("update user failed: %v", err)
	}

	svc := newTestShopService(db, &config.ShopConfig{DefaultNameSuffix: " Store"})
	shop, err := svc.GetOrCreateShop(user.ID, constants.ShopTypeVendor)
	if err != nil {
		t.Fatalf("GetOrCreateShop error: %v", err)
	}
	if shop.Name != "Alice Store" {
		t.Fatalf("expected default name from display name, got %q", shop.Name)
	}
	if shop.CompanyName != "Alice Co." {
		t.Fatalf("expected company name from profile, got %q", shop.CompanyName)
	}
}

// blindShopRepo 模拟并发对手：前 misses 次 owner+type 查询装作没看见
// 已提交的行，让创建撞上唯一索引，逼出回滚后的回查恢复路径。
type blindShopRepo struct {
	repository.ShopRepository
	misses int
}

func (r *blindShopRepo) GetByOwnerAndType(ownerID uint, shopType string) (*models.Shop, error) {
	if r.misses > 0 {
		r.misses--
		return nil, nil
	}
	return r.ShopRepository.GetByOwnerAndType(ownerID, shopType)
}

func (r *blindShopRepo) WithTx(tx *gorm.DB) repository.ShopRepository {
	return r
}

func TestGetOrCreateShopRecoversFromConcurrentCreate(t *testing.T) {
	db := setupTestDB(t, "shop_concurrent_create")
	owner := createTestUser(t, db, "vendor@test.dev", constants.RoleVendor)
	winner := createTestShop(t, db, owner.ID, constants.ShopTypeVendor, "Winner Store")

	// 外层检查和事务内检查都没看见 winner，创建撞 idx_shop_owner_type
	repo := &blindShopRepo{ShopRepository: repository.NewShopRepository(db), misses: 2}
	svc := NewShopService(repo, repository.NewUserRepository(db), nil, nil)

	shop, err := svc.GetOrCreateShop(owner.ID, constants.ShopTypeVendor)
	if err != nil {
		t.Fatalf("GetOrCreateShop error: %v", err)
	}
	if shop.ID != winner.ID {
		t.Fatalf("expected recovery to return existing shop %d, got %d", winner.ID, shop.ID)
	}

	var count int64
	if err := db.Model(&models.Shop{}).Where("owner_id = ?", owner.ID).Count(&count).Error; err != nil {
		t.Fatalf("count shops failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected single shop row after conflict, got %d", count)
	}
}

func TestShopTypeForRole(t *testing.T) {
	if got := ShopTypeForRole(" Vendor "); got != constants.ShopTypeVendor {
		t.Fatalf("expected vendor shop type, got %q", got)
	}
	if got := ShopTypeForRole(constants.RoleDropshipper); got != constants.ShopTypeDropshipper {
		t.Fatalf("expected dropshipper shop type, got %q", got)
	}
	if got := ShopTypeForRole(constants.RoleCustomer); got != "" {
		t.Fatalf("expected empty type for customer, got %q", got)
	}
	if got := ShopTypeForRole(""); got != "" {
		t.Fatalf("expected empty type for blank role, got %q", got)
	}
}

func TestUpdateShopOwnerOnly(t *testing.T) {
	db := setupTestDB(t, "shop_update_owner")
	owner := createTestUser(t, db, "owner@test.dev", constants.RoleVendor)
	stranger := createTestUser(t, db, "stranger@test.dev", constants.RoleVendor)
	shop := createTestShop(t, db, owner.ID, constants.ShopTypeVendor, "Owner Store")

	svc := newTestShopService(db, nil)
	name := "Renamed Store"
	desc := "About us"
	if _, err := svc.UpdateShop(shop.ID, stranger.ID, UpdateShopInput{Name: &name}); !errors.Is(err, ErrShopForbidden) {
		t.Fatalf("expected ErrShopForbidden, got: %v", err)
	}

	updated, err := svc.UpdateShop(shop.ID, owner.ID, UpdateShopInput{Name: &name, Description: &desc})
	if err != nil {
		t.Fatalf("UpdateShop error: %v", err)
	}
	if updated.Name != "Renamed Store" || updated.Description != "About us" {
		t.Fatalf("unexpected update result: %+v", updated)
	}

	if _, err := svc.UpdateShop(9999, owner.ID, UpdateShopInput{Name: &name}); !errors.Is(err, ErrShopNotFound) {
		t.Fatalf("expected ErrShopNotFound, got: %v", err)
	}
}
