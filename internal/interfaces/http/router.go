package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/osvaldosurbakti/fng-admin/internal/application/auth"
	appstock "github.com/osvaldosurbakti/fng-admin/internal/application/stock"
	"github.com/osvaldosurbakti/fng-admin/internal/application/usecase"
	"github.com/osvaldosurbakti/fng-admin/internal/domain/entity"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProductUC   *usecase.ProductUseCase
	UserUC      *usecase.UserUseCase
	LogUC       *usecase.LogUseCase
	DashboardUC *usecase.DashboardUseCase
	Adjuster    *appstock.AdjustStockUseCase
	Bulk        *appstock.BulkAdjustUseCase
	History     *appstock.HistoryUseCase
	JWTSecret   string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.LogUC)
	authGroup.Post("/login", authHandler.Login)

	// Protected routes (Bearer token required)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	manage := RequireRole(entity.RoleSuperadmin, entity.RoleAdmin)

	// Products and stock (superadmin/admin)
	products := protected.Group("/products", manage)
	productHandler := NewProductHandler(deps.ProductUC, deps.LogUC)
	stockHandler := NewStockHandler(deps.Adjuster, deps.Bulk, deps.History, deps.LogUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	// Registered before /:id so "bulk-stock-update" is not taken as an id.
	products.Put("/bulk-stock-update", stockHandler.BulkStockUpdate)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Put("/:id/stock", stockHandler.AdjustStock)
	products.Get("/:id/stock-history", stockHandler.StockHistory)

	// Recent movements feed (superadmin/admin)
	stockGroup := protected.Group("/stock", manage)
	stockGroup.Get("/movements", stockHandler.RecentMovements)

	// Users (superadmin only)
	users := protected.Group("/users", RequireRole(entity.RoleSuperadmin))
	userHandler := NewUserHandler(deps.UserUC, deps.LogUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Activity trail (any authenticated role)
	logs := protected.Group("/logs")
	logHandler := NewLogHandler(deps.LogUC)
	logs.Post("/", logHandler.Create)
	logs.Get("/", logHandler.List)

	// Dashboard (superadmin/admin)
	dashboard := protected.Group("/dashboard", manage)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/stock-summary", dashboardHandler.StockSummary)
}
