package provider

import (
	"github.com/pizzafy/pizzafy/internal/authz"
	"github.com/pizzafy/pizzafy/internal/cache"
	"github.com/pizzafy/pizzafy/internal/config"
	"github.com/pizzafy/pizzafy/internal/logger"
	"github.com/pizzafy/pizzafy/internal/models"
	"github.com/pizzafy/pizzafy/internal/queue"
	"github.com/pizzafy/pizzafy/internal/repository"
	"github.com/pizzafy/pizzafy/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	UserRepo     repository.UserRepository
	PizzaRepo    repository.PizzaRepository
	CheckoutRepo repository.CheckoutRepository
	OrderRepo    repository.OrderRepository
	PaymentRepo  repository.PaymentRepository

	// Services
	AuthzService    *authz.Service
	AuthService     *service.AuthService
	PizzaService    *service.PizzaService
	CheckoutService *service.CheckoutService
	OrderService    *service.OrderService
	PaymentService  *service.PaymentService
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
	c.PizzaRepo = repository.NewPizzaRepository(db)
	c.CheckoutRepo = repository.NewCheckoutRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.PaymentRepo = repository.NewPaymentRepository(db)
}

func (c *Container) initServices() {
	authzService, err := authz.NewService(models.DB)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
		panic(err)
	}
	c.AuthzService = authzService
	if err := authz.BootstrapBuiltinRoles(c.AuthzService); err != nil {
		logger.Errorw("provider_bootstrap_builtin_roles_failed", "error", err)
		panic(err)
	}

	c.AuthService = service.NewAuthService(c.Config, c.UserRepo)
	c.PizzaService = service.NewPizzaService(c.PizzaRepo)
	c.CheckoutService = service.NewCheckoutService(c.CheckoutRepo, c.PizzaRepo, c.OrderRepo, c.PaymentRepo, c.UserRepo, c.QueueClient)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.QueueClient)
	c.PaymentService = service.NewPaymentService(c.PaymentRepo, c.CheckoutRepo)
}
