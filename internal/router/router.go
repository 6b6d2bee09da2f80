package router

import (
	"fmt"
	"strings"

	"github.com/pizzafy/pizzafy/internal/cache"
	"github.com/pizzafy/pizzafy/internal/config"
	adminhandlers "github.com/pizzafy/pizzafy/internal/http/handlers/admin"
	publichandlers "github.com/pizzafy/pizzafy/internal/http/handlers/public"
	"github.com/pizzafy/pizzafy/internal/logger"
	"github.com/pizzafy/pizzafy/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	// 初始化 Handler（按顾客端/管理端分组）
	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "pz"
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

	authRequired := JWTAuthMiddleware(cfg.JWT.SecretKey, c.UserRepo)
	rbac := RBACMiddleware(c.AuthzService)

	// API 路由组
	api := r.Group("/api")
	{
		// 认证接口
		auth := api.Group("/auth")
		{
			auth.POST("/register", publicHandler.Register)
			auth.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("username_or_email")), publicHandler.Login)
			auth.POST("/token/refresh", publicHandler.RefreshToken)
			auth.PUT("/update-profile", authRequired, rbac, publicHandler.UpdateProfile)
		}

		// 披萨目录（读公开给所有登录角色，写仅管理员）
		pizza := api.Group("/pizza")
		pizza.Use(authRequired, rbac)
		{
			pizza.GET("", publicHandler.ListPizzas)
			pizza.GET("/:id", publicHandler.GetPizza)
			pizza.POST("", adminHandler.CreatePizza)
			pizza.PUT("/:id", adminHandler.UpdatePizza)
			pizza.DELETE("/:id", adminHandler.DeletePizza)
			pizza.PATCH("/:id/update_stock", adminHandler.UpdatePizzaStock)
		}

		// 购物车、订单与支付
		checkout := api.Group("/checkout")
		checkout.Use(authRequired, rbac)
		{
			checkout.GET("/checkouts", publicHandler.ListCheckouts)
			checkout.GET("/checkouts/:id", publicHandler.GetCheckout)
			checkout.POST("/create-checkout", publicHandler.CreateCheckout)
			checkout.POST("/update-checkout/:id", publicHandler.UpdateCheckout)
			checkout.POST("/complete-checkout", publicHandler.CompleteCheckout)
			checkout.PATCH("/update-order-status/:order_id", publicHandler.UpdateOrderStatus)
			checkout.POST("/orders/:order_id/review", publicHandler.CreateReview)
			checkout.GET("/my-orders", publicHandler.MyOrders)
			checkout.POST("/payment/create", publicHandler.CreatePayment)
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
