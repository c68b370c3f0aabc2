// Package api wires the HTTP surface: routes, middleware, validation and the
// canonical error envelope.
package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mernspace/catalog-service/internal/api/handler"
	"github.com/mernspace/catalog-service/internal/api/middleware"
	"github.com/mernspace/catalog-service/internal/core/domain"
	"github.com/mernspace/catalog-service/internal/core/ports"
	"github.com/mernspace/catalog-service/internal/core/service"
	"github.com/mernspace/catalog-service/internal/infrastructure/auth"
	"github.com/mernspace/catalog-service/internal/infrastructure/config"
	catalogmongo "github.com/mernspace/catalog-service/internal/infrastructure/db/mongo"
)

// RouterParams carries the externally owned dependencies into the router.
// Their lifecycles belong to the process entry point; the router only wires
// them together.
type RouterParams struct {
	Config  *config.Config
	Logger  zerolog.Logger
	DB      *mongo.Database
	Redis   *redis.Client
	Broker  ports.MessageBroker
	Storage ports.FileStorage
	Keys    *auth.JWKSProvider
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(p RouterParams) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     p.Config.CORS.Origins,
		AllowCredentials: p.Config.CORS.Credentials,
	}))
	e.Use(echoprometheus.NewMiddleware("catalog"))

	e.HTTPErrorHandler = NewHTTPErrorHandler(p.Logger)
	e.Validator = handler.NewValidator()

	// --- Dependencies ---
	categoryRepo := catalogmongo.NewCategoryRepository(p.DB)
	productRepo := catalogmongo.NewProductRepository(p.DB)
	toppingRepo := catalogmongo.NewToppingRepository(p.DB)

	categoryService := service.NewCategoryService(categoryRepo, p.Logger)
	productService := service.NewProductService(productRepo, p.Broker, p.Storage, p.Config.Kafka.ProductTopic, p.Logger)
	toppingService := service.NewToppingService(toppingRepo, p.Storage, p.Logger)

	categoryHandler := handler.NewCategoryHandler(categoryService)
	productHandler := handler.NewProductHandler(productService, p.Storage)
	toppingHandler := handler.NewToppingHandler(toppingService, p.Storage)

	authRequired := middleware.Auth(p.Keys)
	catalogRoles := middleware.RBAC(domain.RoleAdmin, domain.RoleManager)

	// --- Category routes ---
	categories := e.Group("/categories")
	categories.GET("", categoryHandler.List)
	categories.GET("/:id", categoryHandler.GetByID)
	categories.POST("", categoryHandler.Create, authRequired, catalogRoles)
	categories.PUT("/:id", categoryHandler.Update, authRequired, catalogRoles)
	categories.DELETE("/:id", categoryHandler.Delete, authRequired, catalogRoles)

	// --- Product routes ---
	products := e.Group("/products")
	products.GET("", productHandler.List)
	products.GET("/:id", productHandler.GetByID)
	products.POST("", productHandler.Create, authRequired, catalogRoles)
	products.PUT("/:id", productHandler.Update, authRequired, catalogRoles)
	products.DELETE("/:id", productHandler.Delete, authRequired, catalogRoles)
	products.POST("/upload-image", productHandler.UploadImage, authRequired, catalogRoles)

	// --- Topping routes ---
	toppings := e.Group("/toppings")
	toppings.GET("", toppingHandler.List)
	toppings.GET("/:id", toppingHandler.GetByID)
	toppings.POST("", toppingHandler.Create, authRequired, catalogRoles)
	toppings.PUT("/:id", toppingHandler.Update, authRequired, catalogRoles)
	toppings.DELETE("/:id", toppingHandler.Delete, authRequired, catalogRoles)
	toppings.POST("/upload-image", toppingHandler.UploadImage, authRequired, catalogRoles)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(p.DB, p.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
