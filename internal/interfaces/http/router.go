package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/analytics"
	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	CategoryUC    *usecase.CategoryUseCase
	SubCategoryUC *usecase.SubCategoryUseCase
	ItemUC        *usecase.ItemUseCase
	ReportUC      *usecase.ReportUseCase
	DashboardUC   *analytics.DashboardUseCase
	Replenishment *inventory.ReplenishmentUseCase
	Policy        auth.Policy
	JWTSecret     string
	Metrics       *Metrics
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	policy := deps.Policy
	if policy == nil {
		policy = auth.DefaultPolicy()
	}
	requireAuth := AuthMiddleware(deps.JWTSecret)
	api := app.Group("/api")

	// Auth (login y registro públicos)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Metrics)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", requireAuth, authHandler.Me)
	authGroup.Get("/verify", requireAuth, authHandler.Verify)

	// HEAD se registra antes que GET: Fiber enruta HEAD también a los GET.
	categories := api.Group("/categories", requireAuth, Authorize(policy, auth.ResourceCategories))
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Head("/:id", categoryHandler.Exists)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	subCategories := api.Group("/subcategories", requireAuth, Authorize(policy, auth.ResourceSubCategories))
	subCategoryHandler := NewSubCategoryHandler(deps.SubCategoryUC)
	subCategories.Get("/", subCategoryHandler.List)
	subCategories.Post("/", subCategoryHandler.Create)
	subCategories.Get("/by-category/:categoryId", subCategoryHandler.ListByCategory)
	subCategories.Head("/:id", subCategoryHandler.Exists)
	subCategories.Get("/:id", subCategoryHandler.GetByID)
	subCategories.Put("/:id", subCategoryHandler.Update)
	subCategories.Delete("/:id", subCategoryHandler.Delete)

	// Rutas estáticas antes de /:id.
	items := api.Group("/items", requireAuth, Authorize(policy, auth.ResourceItems))
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Get("/", itemHandler.List)
	items.Post("/", itemHandler.Create)
	items.Get("/low-stock", itemHandler.GetLowStock)
	items.Get("/needs-reorder", itemHandler.GetNeedingReorder)
	items.Get("/sku/:sku", itemHandler.GetBySKU)
	items.Get("/check-sku/:sku", itemHandler.CheckSKU)
	items.Get("/category/:categoryId", itemHandler.GetByCategory)
	items.Get("/subcategory/:subCategoryId", itemHandler.GetBySubCategory)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)

	reports := api.Group("/reports", requireAuth, Authorize(policy, auth.ResourceReports))
	reportHandler := NewReportHandler(deps.ReportUC, deps.DashboardUC, deps.Replenishment)
	reports.Get("/stock.pdf", reportHandler.StockPDF)
	reports.Get("/summary", reportHandler.Summary)
	reports.Get("/replenishment", reportHandler.Replenishment)
}
