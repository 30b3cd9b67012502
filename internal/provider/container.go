package provider

import (
	"github.com/dropmart/dropmart/internal/cache"
	"github.com/dropmart/dropmart/internal/config"
	"github.com/dropmart/dropmart/internal/logger"
	"github.com/dropmart/dropmart/internal/models"
	"github.com/dropmart/dropmart/internal/queue"
	"github.com/dropmart/dropmart/internal/repository"
	"github.com/dropmart/dropmart/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	UserRepo    repository.UserRepository
	ShopRepo    repository.ShopRepository
	ProductRepo repository.ProductRepository
	ImportRepo  repository.ImportRepository
	OrderRepo   repository.OrderRepository
	CartRepo    repository.CartRepository

	// Services
	UserAuthService *service.UserAuthService
	EmailService    *service.EmailService
	UploadService   *service.UploadService
	ShopService     *service.ShopService
	ProductService  *service.ProductService
	ImportService   *service.ImportService
	BasketValidator *service.BasketValidator
	OrderService    *service.OrderService
	CartService     *service.CartService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.ShopRepo = repository.NewShopRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.ImportRepo = repository.NewImportRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
}

func (c *Container) initServices() {
	c.EmailService = service.NewEmailService(&c.Config.Email)
	c.UserAuthService = service.NewUserAuthService(c.Config, c.UserRepo)
	c.UploadService = service.NewUploadService(c.Config)
	c.ShopService = service.NewShopService(c.ShopRepo, c.UserRepo, c.UploadService, &c.Config.Shop)
	c.ProductService = service.NewProductService(c.ProductRepo, c.ShopRepo, c.ShopService)
	c.ImportService = service.NewImportService(c.UserRepo, c.ProductRepo, c.ImportRepo, c.ShopService)
	c.BasketValidator = service.NewBasketValidator(c.ProductRepo)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.ProductRepo, c.ImportRepo, c.ShopRepo, c.UserRepo, c.BasketValidator, c.QueueClient)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo, c.OrderService)
}
