package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoquespy/internal/application/dto"
	"github.com/jhoicas/estoquespy/internal/application/stocksync"
	"github.com/jhoicas/estoquespy/internal/application/view"
	"github.com/jhoicas/estoquespy/internal/domain/entity"
	"github.com/jhoicas/estoquespy/internal/domain/inventory"
	"github.com/jhoicas/estoquespy/internal/infrastructure/pdf"
)

// NotificationSource avisos pendientes de mostrar.
type NotificationSource interface {
	Items() []dto.NotificationDTO
}

// ReportGenerator genera el relatório de movimentações.
type ReportGenerator interface {
	GenerateMovementReport(ctx context.Context, report pdf.MovementReport) ([]byte, error)
}

// ViewHandler sirve la vista local: lee siempre de la caché reconciliada y
// envía las mutaciones por el gateway.
type ViewHandler struct {
	session *stocksync.Session
	notes   NotificationSource
	reports ReportGenerator
	now     func() time.Time
}

// NewViewHandler construye el handler.
func NewViewHandler(session *stocksync.Session, notes NotificationSource, reports ReportGenerator) *ViewHandler {
	return &ViewHandler{session: session, notes: notes, reports: reports, now: time.Now}
}

// ── Productos ─────────────────────────────────────────────────────────────────

// ListProducts GET /api/view/products?q=
func (h *ViewHandler) ListProducts(c *fiber.Ctx) error {
	rec := h.session.Reconciler
	list := view.FilterProducts(rec.Products(), c.Query("q"))
	items := make([]dto.ProductPayload, 0, len(list))
	for _, p := range list {
		items = append(items, dto.NewProductPayload(p))
	}
	return c.JSON(dto.ProductListResponse{Items: items, Count: len(items), Loaded: rec.ProductsLoaded()})
}

// CreateProduct POST /api/view/products
// El producto aparece en la lista cuando llega el snapshot posterior, no antes.
func (h *ViewHandler) CreateProduct(c *fiber.Ctx) error {
	var form dto.ProductForm
	if err := c.BodyParser(&form); err != nil {
		return invalidBody(c)
	}
	if err := h.session.Gateway.Create(c.UserContext(), form); err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Produto cadastrado com sucesso!"})
}

// UpdateProduct PUT /api/view/products/:id
func (h *ViewHandler) UpdateProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	var form dto.ProductForm
	if err := c.BodyParser(&form); err != nil {
		return invalidBody(c)
	}
	if err := h.session.Gateway.Update(c.UserContext(), id, form); err != nil {
		return writeError(c, err)
	}
	h.session.Reconciler.EndEdit(id)
	return c.JSON(fiber.Map{"message": "Produto atualizado com sucesso!"})
}

// DeleteProduct DELETE /api/view/products/:id?confirm=true
// Sin confirm=true responde 409 y no envía nada al backend.
func (h *ViewHandler) DeleteProduct(c *fiber.Ctx) error {
	confirmed := c.QueryBool("confirm", false)
	confirm := stocksync.ConfirmFunc(func(context.Context, string) bool { return confirmed })
	if err := h.session.Gateway.Delete(c.UserContext(), c.Params("id"), confirm); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// BeginEdit POST /api/view/products/:id/edit
func (h *ViewHandler) BeginEdit(c *fiber.Ctx) error {
	p, err := h.session.Reconciler.BeginEdit(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewProductPayload(p))
}

// CancelEdit DELETE /api/view/products/:id/edit
func (h *ViewHandler) CancelEdit(c *fiber.Ctx) error {
	h.session.Reconciler.EndEdit(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

// Editing GET /api/view/editing
// 404 si no hay edición o si el producto desapareció del último snapshot.
func (h *ViewHandler) Editing(c *fiber.Ctx) error {
	p, ok := h.session.Reconciler.Editing()
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_EDITING", Message: "ningún producto en edición"})
	}
	return c.JSON(dto.NewProductPayload(p))
}

// ── Movimientos ───────────────────────────────────────────────────────────────

// ListMovements GET /api/view/movements?q=
// Filas del más reciente al más antiguo; el resumen cubre la colección completa.
func (h *ViewHandler) ListMovements(c *fiber.Ctx) error {
	rec := h.session.Reconciler
	rows := view.FilterMovements(rec.Movements(), c.Query("q"))
	items := make([]dto.MovementRowDTO, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.MovementRowDTO{
			MovementPayload: dto.NewMovementPayload(r.ProductMovement),
			Unregistered:    r.Unregistered,
		})
	}
	return c.JSON(dto.MovementListResponse{
		Items:   items,
		Summary: toSummaryDTO(rec.MovementTotals()),
		Loaded:  rec.MovementsLoaded(),
	})
}

// MovementSummary GET /api/view/movements/summary
func (h *ViewHandler) MovementSummary(c *fiber.Ctx) error {
	return c.JSON(toSummaryDTO(h.session.Reconciler.MovementTotals()))
}

// MovementReport GET /api/view/movements/report.pdf?q=
// Los totales del relatório corresponden a las filas filtradas.
func (h *ViewHandler) MovementReport(c *fiber.Ctx) error {
	q := c.Query("q")
	rows := view.FilterMovements(h.session.Reconciler.Movements(), q)
	filtered := make([]entity.ProductMovement, 0, len(rows))
	for _, r := range rows {
		filtered = append(filtered, r.ProductMovement)
	}
	out, err := h.reports.GenerateMovementReport(c.UserContext(), pdf.MovementReport{
		Query:       q,
		GeneratedAt: h.now(),
		Rows:        rows,
		Totals:      inventory.Summarize(filtered),
	})
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="movimentacoes.pdf"`)
	return c.Send(out)
}

// ── Funcionarios, panel y avisos ──────────────────────────────────────────────

// ListEmployees GET /api/view/employees?q=
func (h *ViewHandler) ListEmployees(c *fiber.Ctx) error {
	list := view.FilterEmployees(h.session.Reconciler.Employees(), c.Query("q"))
	items := make([]dto.EmployeePayload, 0, len(list))
	for _, e := range list {
		items = append(items, dto.NewEmployeePayload(e))
	}
	return c.JSON(dto.EmployeeListResponse{Items: items, Count: len(items)})
}

// Dashboard GET /api/view/dashboard
func (h *ViewHandler) Dashboard(c *fiber.Ctx) error {
	rec := h.session.Reconciler
	stats := view.Dashboard(rec.Products(), rec.Employees())
	return c.JSON(dto.DashboardSummaryDTO{
		TotalUnits:      stats.TotalUnits,
		ProductCount:    stats.ProductCount,
		StockValue:      stats.StockValue,
		StockValueLabel: view.FormatBRL(stats.StockValue),
		EmployeeCount:   stats.EmployeeCount,
		Movements:       toSummaryDTO(rec.MovementTotals()),
	})
}

// Notifications GET /api/view/notifications (más reciente primero)
func (h *ViewHandler) Notifications(c *fiber.Ctx) error {
	items := []dto.NotificationDTO{}
	if h.notes != nil {
		items = append(items, h.notes.Items()...)
	}
	return c.JSON(fiber.Map{"items": items})
}

// Refresh POST /api/view/refresh
// Fetch inmediato de todos los recursos; responde cuando los snapshots se aplicaron.
func (h *ViewHandler) Refresh(c *fiber.Ctx) error {
	ctx := c.UserContext()
	if err := h.session.Products.Refresh(ctx); err != nil {
		return writeError(c, err)
	}
	if err := h.session.Movements.Refresh(ctx); err != nil {
		return writeError(c, err)
	}
	if err := h.session.RefreshEmployees(ctx); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func toSummaryDTO(t inventory.MovementTotals) dto.MovementSummaryDTO {
	return dto.MovementSummaryDTO{
		TotalEntradas: t.TotalEntradas,
		TotalSaidas:   t.TotalSaidas,
		Balance:       t.Balance,
		Unregistered:  t.Unregistered,
		Count:         t.Count,
	}
}
