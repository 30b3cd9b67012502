package public

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dropmart/dropmart/internal/constants"
	"github.com/dropmart/dropmart/internal/models"
	"github.com/dropmart/dropmart/internal/provider"
	"github.com/dropmart/dropmart/internal/repository"
	"github.com/dropmart/dropmart/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupShopHandlerTest(t *testing.T, name string) (*Handler, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Shop{}, &models.Product{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db

	userRepo := repository.NewUserRepository(db)
	shopRepo := repository.NewShopRepository(db)
	shopService := service.NewShopService(shopRepo, userRepo, nil, nil)
	productService := service.NewProductService(repository.NewProductRepository(db), shopRepo, shopService)
	return New(&provider.Container{
		ShopService:    shopService,
		ProductService: productService,
	}), db
}

func newShopHandlerContext(t *testing.T, userID uint, role, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/my/shops", strings.NewReader(body))
	if body != "" {
		c.Request.Header.Set("Content-Type", "application/json")
	}
	c.Set("user_id", userID)
	c.Set("user_role", role)
	return c, w
}

type shopViewResponse struct {
	StatusCode int    `json:"status_code"`
	Msg        string `json:"msg"`
	Data       struct {
		ID       uint   `json:"id"`
		ShopType string `json:"shop_type"`
		Products []struct {
			ID    uint   `json:"id"`
			Title string `json:"title"`
		} `json:"products"`
	} `json:"data"`
}

func TestGetOrCreateMyShopDefaultsTypeByRole(t *testing.T) {
	handler, db := setupShopHandlerTest(t, "shop_handler_default_type")
	vendor := &models.User{Email: "vendor@test.dev", PasswordHash: "x", Role: constants.RoleVendor, Status: constants.UserStatusActive}
	if err := db.Create(vendor).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}

	// 空请求体，shop_type 由角色推导
	c, w := newShopHandlerContext(t, vendor.ID, constants.RoleVendor, "")
	handler.GetOrCreateMyShop(c)

	var resp shopViewResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp.StatusCode != 0 {
		t.Fatalf("status_code want 0 got %d (%s)", resp.StatusCode, resp.Msg)
	}
	if resp.Data.ShopType != constants.ShopTypeVendor {
		t.Fatalf("shop_type want vendor got %q", resp.Data.ShopType)
	}
	if resp.Data.Products == nil {
		t.Fatalf("expected products list in shop view")
	}

	var count int64
	if err := db.Model(&models.Shop{}).Where("owner_id = ?", vendor.ID).Count(&count).Error; err != nil {
		t.Fatalf("count shops failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected lazily created shop, got %d rows", count)
	}
}

func TestGetOrCreateMyShopIncludesNestedProducts(t *testing.T) {
	handler, db := setupShopHandlerTest(t, "shop_handler_nested")
	dropshipper := &models.User{Email: "drop@test.dev", PasswordHash: "x", Role: constants.RoleDropshipper, Status: constants.UserStatusActive}
	if err := db.Create(dropshipper).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	shop := &models.Shop{OwnerID: dropshipper.ID, ShopType: constants.ShopTypeDropshipper, Name: "Drop Store"}
	if err := db.Create(shop).Error; err != nil {
		t.Fatalf("create shop failed: %v", err)
	}
	shopID := shop.ID
	product := &models.Product{
		VendorID: 42,
		ShopID:   &shopID,
		Title:    "Widget",
		Price:    models.NewMoneyFromDecimal(decimal.NewFromInt(10)),
		IsActive: true,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	c, w := newShopHandlerContext(t, dropshipper.ID, constants.RoleDropshipper, `{"shop_type":"dropshipper"}`)
	handler.GetOrCreateMyShop(c)

	var resp shopViewResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp.StatusCode != 0 {
		t.Fatalf("status_code want 0 got %d (%s)", resp.StatusCode, resp.Msg)
	}
	if resp.Data.ID != shop.ID {
		t.Fatalf("shop id want %d got %d", shop.ID, resp.Data.ID)
	}
	if len(resp.Data.Products) != 1 || resp.Data.Products[0].Title != "Widget" {
		t.Fatalf("expected nested product list, got: %+v", resp.Data.Products)
	}
}

func TestGetOrCreateMyShopRejectsRoleWithoutShop(t *testing.T) {
	handler, db := setupShopHandlerTest(t, "shop_handler_customer")
	customer := &models.User{Email: "buyer@test.dev", PasswordHash: "x", Role: constants.RoleCustomer, Status: constants.UserStatusActive}
	if err := db.Create(customer).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}

	c, w := newShopHandlerContext(t, customer.ID, constants.RoleCustomer, "")
	handler.GetOrCreateMyShop(c)

	var resp shopViewResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp.StatusCode != 400 {
		t.Fatalf("status_code want 400 got %d", resp.StatusCode)
	}
}
