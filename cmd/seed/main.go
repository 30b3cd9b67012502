package main

import (
	"fmt"
	"log"

	"github.com/dropmart/dropmart/internal/config"
	"github.com/dropmart/dropmart/internal/constants"
	"github.com/dropmart/dropmart/internal/logger"
	"github.com/dropmart/dropmart/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// 演示账号统一密码
const demoPassword = "Dropmart123"

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		stdLog.Fatalf("Failed to hash demo password: %v", err)
	}

	// 演示用户
	users := []models.User{
		{
			Email:        "vendor@dropmart.dev",
			PasswordHash: string(hash),
			DisplayName:  "Acme Supply",
			Role:         constants.RoleVendor,
			CompanyName:  "Acme Supply Co.",
			Phone:        "+1-202-555-0101",
			Address:      "100 Warehouse Ave, Springfield",
		},
		{
			Email:        "dropshipper@dropmart.dev",
			PasswordHash: string(hash),
			DisplayName:  "Nova Retail",
			Role:         constants.RoleDropshipper,
			CompanyName:  "Nova Retail LLC",
			Phone:        "+1-202-555-0102",
			Address:      "200 Market St, Springfield",
		},
		{
			Email:        "customer@dropmart.dev",
			PasswordHash: string(hash),
			DisplayName:  "Demo Customer",
			Role:         constants.RoleCustomer,
			Phone:        "+1-202-555-0103",
			Address:      "300 Main St, Springfield",
		},
	}

	userIDs := map[string]uint{}
	for _, user := range users {
		var existing models.User
		if err := models.DB.Where("email = ?", user.Email).First(&existing).Error; err != nil {
			if err := models.DB.Create(&user).Error; err != nil {
				stdLog.Printf("Failed to create user %s: %v", user.Email, err)
				continue
			}
			stdLog.Printf("Created user: %s (%s)", user.Email, user.Role)
			userIDs[user.Role] = user.ID
		} else {
			stdLog.Printf("User already exists: %s", existing.Email)
			userIDs[existing.Role] = existing.ID
		}
	}

	vendorID := userIDs[constants.RoleVendor]
	dropshipperID := userIDs[constants.RoleDropshipper]
	if vendorID == 0 || dropshipperID == 0 {
		stdLog.Fatalf("Seed users missing (vendor=%d dropshipper=%d)", vendorID, dropshipperID)
	}

	// 演示店铺
	vendorShop := ensureShop(stdLog, models.Shop{
		OwnerID:     vendorID,
		ShopType:    constants.ShopTypeVendor,
		Name:        "Acme Supply Store",
		CompanyName: "Acme Supply Co.",
		Description: "Wholesale electronics and accessories.",
	})
	dropshipperShop := ensureShop(stdLog, models.Shop{
		OwnerID:     dropshipperID,
		ShopType:    constants.ShopTypeDropshipper,
		Name:        "Nova Retail Storefront",
		CompanyName: "Nova Retail LLC",
		Description: "Curated gadgets, fast shipping.",
	})
	if vendorShop == nil || dropshipperShop == nil {
		stdLog.Fatalf("Seed shops missing")
	}

	// 演示商品（商家原始商品）
	shopID := vendorShop.ID
	products := []models.Product{
		{
			VendorID:    vendorID,
			ShopID:      &shopID,
			Title:       "Wireless Bluetooth Earphones",
			Description: "High quality sound, long battery life, comfortable to wear.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(29.99)),
			Category:    "electronics",
			Stock:       120,
			IsActive:    true,
		},
		{
			VendorID:    vendorID,
			ShopID:      &shopID,
			Title:       "Smart Watch",
			Description: "Health monitoring, fitness tracking, message notifications.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(59.99)),
			Category:    "electronics",
			Stock:       60,
			IsActive:    true,
		},
		{
			VendorID:    vendorID,
			ShopID:      &shopID,
			Title:       "Portable Power Bank",
			Description: "High capacity, fast charging, multi-device compatible.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(19.99)),
			Category:    "accessories",
			Stock:       200,
			IsActive:    true,
		},
	}

	var firstProduct *models.Product
	for _, prod := range products {
		var existing models.Product
		if err := models.DB.Where("vendor_id = ? AND title = ? AND source_product_id IS NULL", prod.VendorID, prod.Title).First(&existing).Error; err != nil {
			if err := models.DB.Create(&prod).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", prod.Title, err)
				continue
			}
			stdLog.Printf("Created product: %s", prod.Title)
			existing = prod
		} else {
			stdLog.Printf("Product already exists: %s", existing.Title)
		}
		if firstProduct == nil {
			p := existing
			firstProduct = &p
		}
	}

	// 演示导入：分销商把第一个商品克隆进自己的店铺
	if firstProduct != nil {
		seedImport(stdLog, dropshipperID, dropshipperShop.ID, firstProduct)
	}

	fmt.Println("\n✅ Seed data created successfully!")
	fmt.Println("Summary:")
	fmt.Println("- 3 Users (vendor / dropshipper / customer), password: " + demoPassword)
	fmt.Println("- 2 Shops (vendor + dropshipper)")
	fmt.Println("- 3 Vendor products")
	fmt.Println("- 1 Dropship import with cloned listing")
}

func ensureShop(stdLog *log.Logger, shop models.Shop) *models.Shop {
	var existing models.Shop
	if err := models.DB.Where("owner_id = ? AND shop_type = ?", shop.OwnerID, shop.ShopType).First(&existing).Error; err != nil {
		if err := models.DB.Create(&shop).Error; err != nil {
			stdLog.Printf("Failed to create shop %s: %v", shop.Name, err)
			return nil
		}
		stdLog.Printf("Created shop: %s", shop.Name)
		return &shop
	}
	stdLog.Printf("Shop already exists: %s", existing.Name)
	return &existing
}

func seedImport(stdLog *log.Logger, dropshipperID, shopID uint, original *models.Product) {
	var existing models.DropshipImport
	if err := models.DB.Where("dropshipper_id = ? AND shop_id = ? AND product_id = ?", dropshipperID, shopID, original.ID).First(&existing).Error; err == nil {
		stdLog.Printf("Import already exists for product: %s", original.Title)
		return
	}

	sourceID := original.ID
	clone := models.Product{
		VendorID:        original.VendorID,
		ShopID:          &shopID,
		SourceProductID: &sourceID,
		Title:           original.Title,
		Description:     original.Description,
		Price:           original.Price,
		Category:        original.Category,
		Stock:           original.Stock,
		ImageRef:        original.ImageRef,
		IsActive:        original.IsActive,
	}
	if err := models.DB.Create(&clone).Error; err != nil {
		stdLog.Printf("Failed to create cloned listing for %s: %v", original.Title, err)
		return
	}

	record := models.DropshipImport{
		DropshipperID:  dropshipperID,
		ShopID:         shopID,
		ProductID:      original.ID,
		CloneProductID: clone.ID,
	}
	if err := models.DB.Create(&record).Error; err != nil {
		stdLog.Printf("Failed to create import record for %s: %v", original.Title, err)
		return
	}
	stdLog.Printf("Seeded dropship import for product: %s", original.Title)
}
