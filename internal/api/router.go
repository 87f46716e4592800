package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/ims-platform/inventory-system/docs"
	"github.com/ims-platform/inventory-system/internal/api/handler"
	"github.com/ims-platform/inventory-system/internal/api/middleware"
	"github.com/ims-platform/inventory-system/internal/core/domain"
	"github.com/ims-platform/inventory-system/internal/core/service"
	"github.com/ims-platform/inventory-system/internal/core/token"
	"github.com/ims-platform/inventory-system/internal/infrastructure/config"
	mysqlrepo "github.com/ims-platform/inventory-system/internal/infrastructure/db/mysql"
	redisstore "github.com/ims-platform/inventory-system/internal/infrastructure/db/redis"
	"github.com/ims-platform/inventory-system/internal/infrastructure/queue"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The audit dispatcher is constructed by the caller so its lifecycle (Start,
// shutdown) stays with main.
func NewRouter(db *sql.DB, rdb *redis.Client, cfg *config.Config, log zerolog.Logger, audit *queue.Dispatcher) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("ims"))

	// --- Dependencies ---
	userRepo := mysqlrepo.NewUserRepository(db)
	orderRepo := mysqlrepo.NewOrderRepository(db)
	productRepo := mysqlrepo.NewProductRepository(db)
	idempotency := redisstore.NewIdempotencyStore(rdb)

	codec := token.NewCodec(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, codec, log)
	agentService := service.NewAgentService(userRepo, cfg.BcryptCost, log)
	orderService := service.NewOrderService(orderRepo, productRepo, userRepo, idempotency, audit, log)

	authHandler := handler.NewAuthHandler(authService)
	agentHandler := handler.NewAgentHandler(agentService)
	orderHandler := handler.NewOrderHandler(orderService)

	authed := middleware.Auth(codec)
	adminOrOwner := middleware.RBAC(domain.RoleAdmin, domain.RoleOwner)
	ownerOnly := middleware.RBAC(domain.RoleOwner)

	// --- Operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/api/health", healthHandler.Liveness)
	e.GET("/api/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/verify-token", authHandler.VerifyToken)
	auth.GET("/profile", authHandler.Profile, authed)
	auth.POST("/logout", authHandler.Logout, authed)
	auth.GET("/users", authHandler.ListUsers, authed, adminOrOwner)

	// --- Agent management ---
	agents := e.Group("/api/agents", authed, adminOrOwner)
	agents.POST("", agentHandler.Create)
	agents.GET("", agentHandler.List)
	agents.GET("/:id", agentHandler.Get)
	agents.PUT("/:id", agentHandler.Update)
	agents.PUT("/:id/password", agentHandler.UpdatePassword)
	agents.PUT("/:id/deactivate", agentHandler.Deactivate)
	agents.PUT("/:id/activate", agentHandler.Activate)

	// --- Orders ---
	orders := e.Group("/api/orders", authed)
	orders.GET("", orderHandler.List, adminOrOwner)
	orders.GET("/statistics", orderHandler.Statistics, adminOrOwner)
	orders.GET("/products", orderHandler.ListProducts, adminOrOwner)
	orders.POST("", orderHandler.Create, ownerOnly)
	orders.PUT("/:id/status", orderHandler.UpdateStatus, adminOrOwner)
	orders.DELETE("/:id", orderHandler.Delete, ownerOnly)

	return e
}
