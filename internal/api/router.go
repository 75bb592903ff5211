package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/leaflink/storefront/internal/api/handler"
	"github.com/leaflink/storefront/internal/api/middleware"
	"github.com/leaflink/storefront/internal/auth"
	"github.com/leaflink/storefront/internal/core/domain"
	"github.com/leaflink/storefront/internal/core/service"
	mongorepo "github.com/leaflink/storefront/internal/infrastructure/db/mongo"
	redisinfra "github.com/leaflink/storefront/internal/infrastructure/db/redis"
)

// Config carries the settings the router needs beyond its connections.
type Config struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// NewRouter builds the Echo instance with every route registered behind its
// middleware chain: Authenticate resolves the identity, RequireRole gates by
// role, and the HTTP error handler is the single failure-translation point.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("leaflink"))

	// --- Dependencies ---
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	userRepo := mongorepo.NewUserRepository(db)
	itemRepo := mongorepo.NewItemRepository(db)
	employeeRepo := mongorepo.NewEmployeeRepository(db)
	paymentRepo := mongorepo.NewPaymentRepository(db)

	throttle := redisinfra.NewLoginThrottle(rdb)

	authService := service.NewAuthService(userRepo, tokens, throttle, log)
	userService := service.NewUserService(userRepo, log)
	itemService := service.NewItemService(itemRepo, log)
	employeeService := service.NewEmployeeService(employeeRepo, log)
	paymentService := service.NewPaymentService(paymentRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	itemHandler := handler.NewItemHandler(itemService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)
	paymentHandler := handler.NewPaymentHandler(paymentService)

	authenticate := middleware.Authenticate(tokens, userRepo)
	backOffice := middleware.RequireRole(domain.RoleAdmin, domain.RoleManager)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)

	// --- User routes ---
	user := e.Group("/user", authenticate)
	user.GET("/profile", userHandler.GetProfile)
	user.PUT("/profile", userHandler.UpdateProfile)
	user.GET("/profile/:id", userHandler.GetProfileByID)
	user.PUT("/profile/:id", userHandler.UpdateProfileByID)
	user.DELETE("/profile/:id", userHandler.Delete, adminOnly)
	user.GET("/all", userHandler.ListProfiles, adminOnly)
	user.PUT("/role/:id", userHandler.UpdateRole, adminOnly)

	// --- Catalog routes: public reads, back-office writes ---
	e.GET("/items", itemHandler.List)
	e.GET("/items/:id", itemHandler.Get)
	e.POST("/items", itemHandler.Create, authenticate, backOffice)
	e.PUT("/items/:id", itemHandler.Update, authenticate, backOffice)
	e.DELETE("/items/:id", itemHandler.Delete, authenticate, backOffice)

	// --- Employee routes: back-office only ---
	employees := e.Group("/employees", authenticate, backOffice)
	employees.POST("", employeeHandler.Create)
	employees.GET("", employeeHandler.List)
	employees.GET("/:id", employeeHandler.Get)
	employees.PUT("/:id", employeeHandler.Update)
	employees.DELETE("/:id", employeeHandler.Delete)

	// --- Payment routes: customers capture, back-office manages ---
	e.POST("/payments", paymentHandler.Create, authenticate)
	payments := e.Group("/payments", authenticate, backOffice)
	payments.GET("", paymentHandler.List)
	payments.GET("/:id", paymentHandler.Get)
	payments.PUT("/:id", paymentHandler.UpdateStatus)
	payments.DELETE("/:id", paymentHandler.Delete)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
