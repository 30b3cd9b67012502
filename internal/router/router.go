package router

import (
	"fmt"
	"strings"

	"github.com/dropmart/dropmart/internal/cache"
	"github.com/dropmart/dropmart/internal/config"
	"github.com/dropmart/dropmart/internal/constants"
	publichandlers "github.com/dropmart/dropmart/internal/http/handlers/public"
	"github.com/dropmart/dropmart/internal/logger"
	"github.com/dropmart/dropmart/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	handler := publichandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "dm"
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.LoginRateLimit.BlockSeconds,
		MessageKey:    "error.login_too_many",
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// 静态文件服务（上传的图片）
	r.Static("/uploads", "./uploads")

	apiV1 := r.Group("/api/v1")
	{
		// 公开接口
		public := apiV1.Group("/public")
		{
			public.GET("/products", handler.ListPublicProducts)
			public.GET("/products/:id", handler.GetPublicProduct)
			public.GET("/shops/:id", handler.GetShop)
		}

		// 游客接口
		guest := apiV1.Group("/guest")
		{
			guest.POST("/orders", handler.CreateGuestOrder)
			guest.GET("/orders/:order_no", handler.GetGuestOrder)
		}

		// 用户认证接口
		auth := apiV1.Group("/auth")
		{
			auth.POST("/register", handler.UserRegister)
			auth.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("email")), handler.UserLogin)
		}

		// 用户接口（需鉴权）
		user := apiV1.Group("")
		user.Use(UserJWTAuthMiddleware(cfg.JWT.SecretKey, c.UserRepo))
		{
			user.GET("/me", handler.Me)

			user.GET("/my/shops", handler.ListMyShops)
			user.POST("/my/shops", handler.GetOrCreateMyShop)
			user.PUT("/my/shops/:id", handler.UpdateMyShop)

			user.GET("/my/products", handler.ListMyProducts)
			user.GET("/my/imports", RequireRole(constants.RoleDropshipper), handler.ListMyImports)

			user.POST("/products", RequireRole(constants.RoleVendor), handler.CreateProduct)
			user.PUT("/products/:id", handler.UpdateProduct)
			user.POST("/products/:id/deactivate", handler.DeactivateProduct)
			user.POST("/products/:id/import", RequireRole(constants.RoleDropshipper), handler.ImportProduct)

			user.GET("/cart", handler.ListCart)
			user.POST("/cart/items", handler.AddCartItem)
			user.PUT("/cart/items/:product_id", handler.SetCartItemQuantity)
			user.DELETE("/cart/items/:product_id", handler.RemoveCartItem)
			user.DELETE("/cart", handler.ClearCart)
			user.POST("/cart/checkout", handler.Checkout)

			user.POST("/orders", handler.CreateOrder)
			user.GET("/orders", handler.ListOrders)
			user.GET("/orders/:id", handler.GetOrder)
			user.PATCH("/orders/:id/status", RequireRole(constants.RoleVendor), handler.UpdateOrderStatus)

			user.POST("/upload", handler.Upload)
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
