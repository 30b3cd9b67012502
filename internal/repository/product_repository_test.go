package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/dropmart/dropmart/internal/constants"
	"github.com/dropmart/dropmart/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupProductRepositoryTest(t *testing.T, name string) (*GormProductRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Shop{}, &models.Product{}); err != nil {
		t.Fatalf("migrate shop/product failed: %v", err)
	}
	return NewProductRepository(db), db
}

func createRepoShop(t *testing.T, db *gorm.DB, ownerID uint, shopType string) *models.Shop {
	t.Helper()
	shop := &models.Shop{
		OwnerID:  ownerID,
		ShopType: shopType,
		Name:     fmt.Sprintf("shop-%d-%s", ownerID, shopType),
	}
	if err := db.Create(shop).Error; err != nil {
		t.Fatalf("create shop failed: %v", err)
	}
	return shop
}

func createRepoProduct(t *testing.T, repo *GormProductRepository, vendorID uint, shopID uint, title string, category string, isActive bool) *models.Product {
	t.Helper()
	id := shopID
	product := &models.Product{
		VendorID: vendorID,
		ShopID:   &id,
		Title:    title,
		Category: category,
		Price:    models.NewMoneyFromDecimal(decimal.NewFromInt(10)),
		Stock:    5,
		IsActive: isActive,
	}
	if err := repo.Create(product); err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestProductGetByIDMissingReturnsNil(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t, "product_get_missing")
	product, err := repo.GetByID(9999)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if product != nil {
		t.Fatalf("missing product want nil got %+v", product)
	}
}

func TestProductListByIDsEmptyInput(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t, "product_list_by_ids")
	products, err := repo.ListByIDs(nil)
	if err != nil {
		t.Fatalf("ListByIDs failed: %v", err)
	}
	if len(products) != 0 {
		t.Fatalf("empty input want 0 products got %d", len(products))
	}
}

func TestProductListByShop(t *testing.T) {
	repo, db := setupProductRepositoryTest(t, "product_list_by_shop")
	shop := createRepoShop(t, db, 1, constants.ShopTypeVendor)
	other := createRepoShop(t, db, 2, constants.ShopTypeVendor)

	first := createRepoProduct(t, repo, 1, shop.ID, "First", "", true)
	second := createRepoProduct(t, repo, 1, shop.ID, "Second", "", false)
	createRepoProduct(t, repo, 1, other.ID, "Elsewhere", "", true)

	products, err := repo.ListByShop(shop.ID)
	if err != nil {
		t.Fatalf("list by shop failed: %v", err)
	}
	// 店铺清单包含下架商品，按 ID 升序
	if len(products) != 2 || products[0].ID != first.ID || products[1].ID != second.ID {
		t.Fatalf("want both shop products in id order, got: %+v", products)
	}

	empty, err := repo.ListByShop(9999)
	if err != nil {
		t.Fatalf("list missing shop failed: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Fatalf("missing shop want empty non-nil slice, got: %#v", empty)
	}
}

func TestProductListFiltersByShopType(t *testing.T) {
	repo, db := setupProductRepositoryTest(t, "product_list_shop_type")
	vendorShop := createRepoShop(t, db, 1, constants.ShopTypeVendor)
	dropShop := createRepoShop(t, db, 2, constants.ShopTypeDropshipper)

	visible := createRepoProduct(t, repo, 1, vendorShop.ID, "Visible", "gadgets", true)
	createRepoProduct(t, repo, 1, vendorShop.ID, "Inactive", "gadgets", false)
	createRepoProduct(t, repo, 1, dropShop.ID, "CloneListing", "gadgets", true)

	products, total, err := repo.List(ProductListFilter{
		Page:       1,
		PageSize:   20,
		OnlyActive: true,
		InShopType: constants.ShopTypeVendor,
	})
	if err != nil {
		t.Fatalf("list by shop type failed: %v", err)
	}
	if total != 1 || len(products) != 1 {
		t.Fatalf("want 1 vendor-shop listing got total=%d len=%d", total, len(products))
	}
	if products[0].ID != visible.ID {
		t.Fatalf("listing want product %d got %d", visible.ID, products[0].ID)
	}
}

func TestProductListFiltersByShopOwner(t *testing.T) {
	repo, db := setupProductRepositoryTest(t, "product_list_shop_owner")
	mine := createRepoShop(t, db, 7, constants.ShopTypeDropshipper)
	other := createRepoShop(t, db, 8, constants.ShopTypeDropshipper)

	kept := createRepoProduct(t, repo, 1, mine.ID, "Mine", "", true)
	createRepoProduct(t, repo, 1, other.ID, "Other", "", true)

	products, total, err := repo.List(ProductListFilter{
		Page:        1,
		PageSize:    20,
		ShopOwnerID: 7,
	})
	if err != nil {
		t.Fatalf("list by shop owner failed: %v", err)
	}
	if total != 1 || len(products) != 1 || products[0].ID != kept.ID {
		t.Fatalf("want only owner listing, got total=%d products=%+v", total, products)
	}
}

func TestProductListSearchAndCategory(t *testing.T) {
	repo, db := setupProductRepositoryTest(t, "product_list_search")
	shop := createRepoShop(t, db, 1, constants.ShopTypeVendor)

	earphones := createRepoProduct(t, repo, 1, shop.ID, "Wireless Earphones", "audio", true)
	createRepoProduct(t, repo, 1, shop.ID, "Power Bank", "power", true)

	products, total, err := repo.List(ProductListFilter{
		Page:     1,
		PageSize: 20,
		Search:   "Earphones",
		Category: "audio",
	})
	if err != nil {
		t.Fatalf("list by search failed: %v", err)
	}
	if total != 1 || len(products) != 1 || products[0].ID != earphones.ID {
		t.Fatalf("want matched listing, got total=%d products=%+v", total, products)
	}

	_, total, err = repo.List(ProductListFilter{Page: 1, PageSize: 20, Category: "missing"})
	if err != nil {
		t.Fatalf("list by missing category failed: %v", err)
	}
	if total != 0 {
		t.Fatalf("missing category want 0 got %d", total)
	}
}
