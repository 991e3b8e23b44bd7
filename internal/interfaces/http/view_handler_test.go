package http_test

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoquespy/internal/application/dto"
	"github.com/jhoicas/estoquespy/internal/domain/entity"
	"github.com/jhoicas/estoquespy/internal/infrastructure/memory"
)

func productForm() map[string]interface{} {
	return map[string]interface{}{
		"name":         "Boné Aba Reta",
		"category":     "Acessórios",
		"size":         "U",
		"color":        "Preto",
		"quantity":     "25",
		"price":        "59.90",
		"supplier":     "Urban Caps",
		"registeredBy": "Ana Souza",
		"registeredAt": "2024-03-01",
		"IDRFID":       " ab12 cd34 ",
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Productos
// ─────────────────────────────────────────────────────────────────────────────

func TestView_ListProductsFiltra(t *testing.T) {
	repos, _ := offlineRepos(t)
	fx := newViewApp(t, repos)

	resp := doJSON(t, fx.app, http.MethodGet, "/api/view/products?q=CAMIS", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.ProductListResponse
	decode(t, resp, &out)
	assert.True(t, out.Loaded)
	require.Equal(t, 1, out.Count)
	assert.Equal(t, "Camiseta Básica", out.Items[0].Name)
}

func TestView_ListProductsSinCoincidenciasDevuelveArrayVacio(t *testing.T) {
	repos, _ := offlineRepos(t)
	fx := newViewApp(t, repos)

	resp := doJSON(t, fx.app, http.MethodGet, "/api/view/products?q=zzzz", nil)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"items":[]`)
}

func TestView_CreateProductApareceTrasRefresh(t *testing.T) {
	repos, store := offlineRepos(t)
	fx := newViewApp(t, repos)
	before := len(fx.session.Reconciler.Products())

	resp := doJSON(t, fx.app, http.MethodPost, "/api/view/products", productForm())
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// El refresh posterior a la mutación ya se aplicó al responder.
	products := fx.session.Reconciler.Products()
	require.Len(t, products, before+1)
	assert.Equal(t, "Boné Aba Reta", products[0].Name)
	assert.Equal(t, "AB12CD34", products[0].IDRFID)

	stored, _ := store.ListProducts(context.Background())
	assert.Len(t, stored, before+1)

	notes := fx.feed.Items()
	require.NotEmpty(t, notes)
	assert.Equal(t, "Produto cadastrado com sucesso!", notes[0].Message)
}

func TestView_CreateProductCantidadInvalida(t *testing.T) {
	repos, store := offlineRepos(t)
	fx := newViewApp(t, repos)
	before, _ := store.ListProducts(context.Background())

	form := productForm()
	form["quantity"] = "abc"
	resp := doJSON(t, fx.app, http.MethodPost, "/api/view/products", form)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var out dto.ErrorResponse
	decode(t, resp, &out)
	assert.Equal(t, "VALIDATION", out.Code)
	assert.Contains(t, out.Fields, "quantity")

	after, _ := store.ListProducts(context.Background())
	assert.Len(t, after, len(before), "la validación bloquea el envío")
}

func TestView_CreateProductPrecioNoFinito(t *testing.T) {
	repos, store := offlineRepos(t)
	fx := newViewApp(t, repos)
	before, _ := store.ListProducts(context.Background())

	for _, price := range []string{"1e400", "NaN", "Inf", "9999999999"} {
		form := productForm()
		form["price"] = price
		resp := doJSON(t, fx.app, http.MethodPost, "/api/view/products", form)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode, price)

		var out dto.ErrorResponse
		decode(t, resp, &out)
		assert.Contains(t, out.Fields, "price", price)
	}

	after, _ := store.ListProducts(context.Background())
	assert.Len(t, after, len(before))
	resp := doJSON(t, fx.app, http.MethodGet, "/api/view/products", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestView_CreateProductEtiquetaDuplicada(t *testing.T) {
	repos, store := offlineRepos(t)
	fx := newViewApp(t, repos)
	before, _ := store.ListProducts(context.Background())

	form := productForm()
	form["IDRFID"] = " 417370a2 "
	resp := doJSON(t, fx.app, http.MethodPost, "/api/view/products", form)
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	var out dto.ErrorResponse
	decode(t, resp, &out)
	assert.Equal(t, "DUPLICATE", out.Code)

	after, _ := store.ListProducts(context.Background())
	assert.Len(t, after, len(before))
}

func TestView_UpdateProductTerminaEdicion(t *testing.T) {
	repos, _ := offlineRepos(t)
	fx := newViewApp(t, repos)

	resp := doJSON(t, fx.app, http.MethodPost, "/api/view/products/2/edit", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = doJSON(t, fx.app, http.MethodGet, "/api/view/editing", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	form := productForm()
	form["name"] = "Calça Jeans Reta"
	form["IDRFID"] = "9c1f03b7"
	resp = doJSON(t, fx.app, http.MethodPut, "/api/view/products/2", form)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, fx.app, http.MethodGet, "/api/view/editing", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var found bool
	for _, p := range fx.session.Reconciler.Products() {
		if p.ID == "2" {
			found = true
			assert.Equal(t, "Calça Jeans Reta", p.Name)
		}
	}
	assert.True(t, found)
}

func TestView_BeginEditInexistente(t *testing.T) {
	repos, _ := offlineRepos(t)
	fx := newViewApp(t, repos)

	resp := doJSON(t, fx.app, http.MethodPost, "/api/view/products/nao-existe/edit", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestView_DeleteRequiereConfirmacion(t *testing.T) {
	repos, store := offlineRepos(t)
	fx := newViewApp(t, repos)

	resp := doJSON(t, fx.app, http.MethodDelete, "/api/view/products/1", nil)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	_, err := store.GetProduct(context.Background(), "1")
	require.NoError(t, err, "sin confirmación no se elimina")

	resp = doJSON(t, fx.app, http.MethodDelete, "/api/view/products/1?confirm=true", nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	for _, p := range fx.session.Reconciler.Products() {
		assert.NotEqual(t, "1", p.ID)
	}
}

func TestView_DeleteInexistenteEs404(t *testing.T) {
	repos, _ := offlineRepos(t)
	fx := newViewApp(t, repos)

	resp := doJSON(t, fx.app, http.MethodDelete, "/api/view/products/nao-existe?confirm=true", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	notes := fx.feed.Items()
	require.NotEmpty(t, notes)
	assert.Equal(t, "Erro ao excluir produto", notes[0].Message)
}

// ─────────────────────────────────────────────────────────────────────────────
// Movimientos, funcionarios y panel
// ─────────────────────────────────────────────────────────────────────────────

func TestView_ListMovementsMasRecientePrimero(t *testing.T) {
	repos, _ := offlineRepos(t)
	fx := newViewApp(t, repos)

	resp := doJSON(t, fx.app, http.MethodGet, "/api/view/movements", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.MovementListResponse
	decode(t, resp, &out)
	seed := memory.SeedMovements()
	require.Len(t, out.Items, len(seed))
	assert.Equal(t, seed[len(seed)-1].ProductName, out.Items[0].ProductName)

	assert.Equal(t, 200, out.Summary.TotalEntradas)
	assert.Equal(t, 36, out.Summary.TotalSaidas)
	assert.Equal(t, 164, out.Summary.Balance)
	assert.Equal(t, 1, out.Summary.Unregistered)

	var unregistered int
	for _, it := range out.Items {
		if it.Unregistered {
			unregistered++
			assert.Equal(t, entity.UnknownTagProductName, it.ProductName)
		}
	}
	assert.Equal(t, 1, unregistered)
}

func TestView_ListMovementsFiltraPorFechaYResponsable(t *testing.T) {
	repos, _ := offlineRepos(t)
	fx := newViewApp(t, repos)

	var byDate dto.MovementListResponse
	decode(t, doJSON(t, fx.app, http.MethodGet, "/api/view/movements?q=2024-02", nil), &byDate)
	assert.Len(t, byDate.Items, 3)
	assert.Equal(t, len(memory.SeedMovements()), byDate.Summary.Count, "el resumen cubre toda la colección")

	var byResp dto.MovementListResponse
	decode(t, doJSON(t, fx.app, http.MethodGet, "/api/view/movements?q=leitor%20rfid%2002", nil), &byResp)
	require.Len(t, byResp.Items, 1)
	assert.Equal(t, "Calça Jeans Slim", byResp.Items[0].ProductName)
}

func TestView_MovementReportPDF(t *testing.T) {
	repos, _ := offlineRepos(t)
	fx := newViewApp(t, repos)

	resp := doJSON(t, fx.app, http.MethodGet, "/api/view/movements/report.pdf?q=Camiseta", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(raw[:4]))
}

func TestView_EmployeesYDashboard(t *testing.T) {
	repos, _ := offlineRepos(t)
	fx := newViewApp(t, repos)

	var emps dto.EmployeeListResponse
	decode(t, doJSON(t, fx.app, http.MethodGet, "/api/view/employees?q=estoquista", nil), &emps)
	require.Equal(t, 1, emps.Count)
	assert.Equal(t, "Carlos Lima", emps.Items[0].Name)

	var dash dto.DashboardSummaryDTO
	decode(t, doJSON(t, fx.app, http.MethodGet, "/api/view/dashboard", nil), &dash)
	assert.Equal(t, len(memory.SeedProducts()), dash.ProductCount)
	assert.Equal(t, 213, dash.TotalUnits)
	assert.Equal(t, len(memory.SeedEmployees()), dash.EmployeeCount)
	assert.Contains(t, dash.StockValueLabel, "R$ ")
	assert.Equal(t, 164, dash.Movements.Balance)
}

func TestView_NotificationsVacio(t *testing.T) {
	repos, _ := offlineRepos(t)
	fx := newViewApp(t, repos)

	resp := doJSON(t, fx.app, http.MethodGet, "/api/view/notifications", nil)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[]}`, string(raw))
}

func TestView_RefreshVeCambiosDelBackend(t *testing.T) {
	repos, store := offlineRepos(t)
	fx := newViewApp(t, repos)
	before := len(fx.session.Reconciler.Movements())

	_, err := store.AppendMovement(context.Background(), entity.ProductMovement{
		ProductName: "Vestido Floral", Type: entity.MovementTypeSaida, Quantity: 2, Date: "2024-03-02", Time: "10:00", Responsible: "Leitor RFID 01",
	})
	require.NoError(t, err)

	resp := doJSON(t, fx.app, http.MethodPost, "/api/view/refresh", nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	movs := fx.session.Reconciler.Movements()
	require.Len(t, movs, before+1)
	assert.Equal(t, "Vestido Floral", movs[0].ProductName)
}
