package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoquespy/internal/application/stocksync"
	"github.com/jhoicas/estoquespy/internal/application/usecase"
)

// RouterDeps dependencias de la API local de la vista.
type RouterDeps struct {
	Session       *stocksync.Session
	Notifications NotificationSource
	Reports       ReportGenerator
}

// Router registra las rutas de la vista local (/api/view).
func Router(app *fiber.App, deps RouterDeps) {
	h := NewViewHandler(deps.Session, deps.Notifications, deps.Reports)

	app.Get("/health", health)

	v := app.Group("/api/view")

	// Products
	products := v.Group("/products")
	products.Get("/", h.ListProducts)
	products.Post("/", h.CreateProduct)
	products.Put("/:id", h.UpdateProduct)
	products.Delete("/:id", h.DeleteProduct)
	products.Post("/:id/edit", h.BeginEdit)
	products.Delete("/:id/edit", h.CancelEdit)
	v.Get("/editing", h.Editing)

	// Movements
	movements := v.Group("/movements")
	movements.Get("/", h.ListMovements)
	movements.Get("/summary", h.MovementSummary)
	movements.Get("/report.pdf", h.MovementReport)

	v.Get("/employees", h.ListEmployees)
	v.Get("/dashboard", h.Dashboard)
	v.Get("/notifications", h.Notifications)
	v.Post("/refresh", h.Refresh)
}

// BackendDeps dependencias del backend simulado.
type BackendDeps struct {
	ProductUC  *usecase.ProductUseCase
	MovementUC *usecase.MovementUseCase
	EmployeeUC *usecase.EmployeeUseCase
}

// BackendRouter registra el contrato REST (/api/products, /api/movements, /api/employees).
func BackendRouter(app *fiber.App, deps BackendDeps) {
	h := NewBackendHandler(deps.ProductUC, deps.MovementUC, deps.EmployeeUC)

	app.Get("/health", health)

	api := app.Group("/api")

	products := api.Group("/products")
	products.Get("/", h.ListProducts)
	products.Post("/", h.CreateProduct)
	products.Put("/:id", h.UpdateProduct)
	products.Delete("/:id", h.DeleteProduct)

	movements := api.Group("/movements")
	movements.Get("/", h.ListMovements)
	movements.Post("/", h.RegisterMovement)

	api.Get("/employees", h.ListEmployees)
}

func health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
