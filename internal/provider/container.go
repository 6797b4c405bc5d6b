package provider

import (
	"github.com/shopnext/internal/cache"
	"github.com/shopnext/internal/config"
	"github.com/shopnext/internal/logger"
	"github.com/shopnext/internal/models"
	"github.com/shopnext/internal/queue"
	"github.com/shopnext/internal/repository"
	"github.com/shopnext/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	UserRepo    repository.UserRepository
	ProductRepo repository.ProductRepository
	CartRepo    repository.CartRepository

	// Services
	StockValidator  *service.StockValidator
	CartService     *service.CartService
	ProductService  *service.ProductService
	UserAuthService *service.UserAuthService
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

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
}

func (c *Container) initServices() {
	c.StockValidator = service.NewStockValidator()
	c.ProductService = service.NewProductService(c.ProductRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo, c.StockValidator, c.QueueClient)
	c.UserAuthService = service.NewUserAuthService(c.UserRepo, c.Config.UserJWT)
}
