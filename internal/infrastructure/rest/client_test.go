package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoquespy/internal/domain"
	"github.com/jhoicas/estoquespy/internal/domain/entity"
	"github.com/jhoicas/estoquespy/internal/infrastructure/rest"
)

type recorded struct {
	method string
	path   string
	body   map[string]interface{}
}

// stubBackend responde con status/body fijos por "METHOD path" y registra las peticiones.
type stubBackend struct {
	mu        sync.Mutex
	requests  []recorded
	responses map[string]stubResponse
}

type stubResponse struct {
	status int
	body   string
}

func (s *stubBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rec := recorded{method: r.Method, path: r.URL.EscapedPath()}
	if raw, _ := io.ReadAll(r.Body); len(raw) > 0 {
		_ = json.Unmarshal(raw, &rec.body)
	}
	s.mu.Lock()
	s.requests = append(s.requests, rec)
	resp, ok := s.responses[r.Method+" "+r.URL.Path]
	s.mu.Unlock()
	if !ok {
		resp = stubResponse{status: http.StatusOK}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.status)
	_, _ = io.WriteString(w, resp.body)
}

func (s *stubBackend) recorded() []recorded {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]recorded(nil), s.requests...)
}

func newStub(t *testing.T, responses map[string]stubResponse) (*stubBackend, *rest.Client) {
	t.Helper()
	stub := &stubBackend{responses: responses}
	srv := httptest.NewServer(stub)
	t.Cleanup(srv.Close)
	c, err := rest.NewClient(srv.URL+"/", time.Second)
	require.NoError(t, err)
	return stub, c
}

// ─────────────────────────────────────────────────────────────────────────────
// Construcción
// ─────────────────────────────────────────────────────────────────────────────

func TestNewClient_URLInvalida(t *testing.T) {
	_, err := rest.NewClient("localhost:3001", time.Second)
	assert.Error(t, err)

	_, err = rest.NewClient("", time.Second)
	assert.Error(t, err)
}

// ─────────────────────────────────────────────────────────────────────────────
// Productos
// ─────────────────────────────────────────────────────────────────────────────

func TestProductRepository_ListDecodificaIDsYPrecio(t *testing.T) {
	_, c := newStub(t, map[string]stubResponse{
		"GET /api/products": {status: 200, body: `[
			{"id": 7, "name": "Camiseta", "category": "Camisetas", "size": "M", "color": "Branco",
			 "quantity": 10, "price": 29.9, "supplier": "Malharia", "registeredBy": "Ana",
			 "registeredAt": "2024-01-15", "IDRFID": "417370A2"},
			{"id": "abc", "name": "Calça", "quantity": 0, "price": 0}
		]`},
	})

	got, err := rest.NewProductRepository(c).List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "7", got[0].ID)
	assert.Equal(t, "417370A2", got[0].IDRFID)
	assert.True(t, got[0].Price.Equal(decimal.RequireFromString("29.9")))
	assert.Equal(t, "abc", got[1].ID)
}

func TestProductRepository_CreateNoEnviaID(t *testing.T) {
	stub, c := newStub(t, map[string]stubResponse{
		"POST /api/products": {status: 201, body: `{"id": "99"}`},
	})

	err := rest.NewProductRepository(c).Create(context.Background(), entity.Product{
		ID: "local-1", Name: "Vestido", Quantity: 3, Price: decimal.RequireFromString("189.00"),
	})
	require.NoError(t, err)

	reqs := stub.recorded()
	require.Len(t, reqs, 1)
	req := reqs[0]
	assert.Equal(t, http.MethodPost, req.method)
	assert.Equal(t, "/api/products", req.path)
	_, hasID := req.body["id"]
	assert.False(t, hasID, "el backend asigna el id")
	assert.Equal(t, "Vestido", req.body["name"])
	assert.EqualValues(t, 189, req.body["price"])
}

func TestProductRepository_UpdateYDeleteEscapanID(t *testing.T) {
	stub, c := newStub(t, nil)
	repo := rest.NewProductRepository(c)

	require.NoError(t, repo.Update(context.Background(), entity.Product{ID: "a/b", Name: "X"}))
	require.NoError(t, repo.Delete(context.Background(), "42"))

	reqs := stub.recorded()
	require.Len(t, reqs, 2)
	assert.Equal(t, http.MethodPut, reqs[0].method)
	assert.Equal(t, "/api/products/a%2Fb", reqs[0].path)
	assert.Equal(t, "a/b", reqs[0].body["id"])
	assert.Equal(t, http.MethodDelete, reqs[1].method)
	assert.Equal(t, "/api/products/42", reqs[1].path)
}

func TestProductRepository_MapeaStatusAErroresDeDominio(t *testing.T) {
	cases := []struct {
		name   string
		status int
		want   error
	}{
		{"404", http.StatusNotFound, domain.ErrNotFound},
		{"409", http.StatusConflict, domain.ErrConflict},
		{"400", http.StatusBadRequest, domain.ErrInvalidInput},
		{"503", http.StatusServiceUnavailable, domain.ErrBackendUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, c := newStub(t, map[string]stubResponse{
				"DELETE /api/products/1": {status: tc.status, body: `{"message":"x"}`},
			})
			err := rest.NewProductRepository(c).Delete(context.Background(), "1")
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)

			var httpErr *rest.HTTPError
			require.True(t, errors.As(err, &httpErr))
			assert.Equal(t, tc.status, httpErr.Status)
		})
	}
}

func TestClient_BackendCaidoEsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := rest.NewClient(url, 200*time.Millisecond)
	require.NoError(t, err)

	_, err = rest.NewProductRepository(c).List(context.Background())
	require.Error(t, err)
	assert.True(t, rest.IsUnavailable(err))
}

func TestClient_JSONInvalido(t *testing.T) {
	_, c := newStub(t, map[string]stubResponse{
		"GET /api/products": {status: 200, body: `{"not":"an array"`},
	})
	_, err := rest.NewProductRepository(c).List(context.Background())
	assert.Error(t, err)
	assert.False(t, rest.IsUnavailable(err))
}

// ─────────────────────────────────────────────────────────────────────────────
// Movimientos y funcionarios
// ─────────────────────────────────────────────────────────────────────────────

func TestMovementRepository_IDFaltanteUsaPosicion(t *testing.T) {
	_, c := newStub(t, map[string]stubResponse{
		"GET /api/movements": {status: 200, body: `[
			{"productName": "Camiseta", "type": "entrada", "quantity": 10, "date": "2024-01-15", "time": "09:00", "responsible": "Ana"},
			{"id": 12, "productName": "TAG DESCONHECIDA", "type": "saida", "quantity": 1, "date": "2024-01-16", "time": "10:00", "responsible": "Leitor"}
		]`},
	})

	got, err := rest.NewMovementRepository(c).List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "0", got[0].ID)
	assert.Equal(t, "12", got[1].ID)
	assert.True(t, got[1].IsUnregistered())
	assert.True(t, got[1].IsSaida())
}

func TestEmployeeRepository_List(t *testing.T) {
	_, c := newStub(t, map[string]stubResponse{
		"GET /api/employees": {status: 200, body: `[{"id": 1, "name": "Ana Souza", "role": "Gerente", "email": "ana@x.com", "registeredAt": "2023-03-01"}]`},
	})

	got, err := rest.NewEmployeeRepository(c).List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, entity.Employee{ID: "1", Name: "Ana Souza", Role: "Gerente", Email: "ana@x.com", RegisteredAt: "2023-03-01"}, got[0])
}
