package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoquespy/internal/application/stocksync"
	"github.com/jhoicas/estoquespy/internal/domain/inventory"
	"github.com/jhoicas/estoquespy/internal/infrastructure/memory"
	"github.com/jhoicas/estoquespy/internal/infrastructure/notify"
	"github.com/jhoicas/estoquespy/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/estoquespy/internal/interfaces/http"
)

// Intervalos largos: en los tests solo ocurre el fetch inicial y los refresh explícitos.
var testSessionConfig = stocksync.SessionConfig{
	ProductsInterval:  time.Hour,
	MovementsInterval: time.Hour,
}

type viewFixture struct {
	app     *fiber.App
	session *stocksync.Session
	feed    *notify.Feed
}

// newViewApp arma la vista local sobre los repositorios dados y espera el primer snapshot.
func newViewApp(t *testing.T, repos stocksync.Repositories) viewFixture {
	t.Helper()
	feed := notify.NewFeed(20, nil)
	session := stocksync.NewSession(repos, testSessionConfig, feed, nil)
	require.NoError(t, session.Start(context.Background()))
	t.Cleanup(session.Stop)

	require.Eventually(t, func() bool {
		return session.Reconciler.ProductsLoaded() && session.Reconciler.MovementsLoaded()
	}, 2*time.Second, 10*time.Millisecond)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Session:       session,
		Notifications: feed,
		Reports:       pdf.NewMarotoReportGenerator(),
	})
	return viewFixture{app: app, session: session, feed: feed}
}

// offlineRepos repositorios en memoria con los datos de ejemplo.
func offlineRepos(t *testing.T) (stocksync.Repositories, *memory.Store) {
	t.Helper()
	store := memory.NewStore(inventory.NewLocalIDGenerator())
	require.NoError(t, memory.Seed(context.Background(), store))
	return stocksync.Repositories{
		Products:  memory.NewProductRepository(store),
		Movements: memory.NewMovementRepository(store),
		Employees: memory.NewEmployeeRepository(store),
	}, store
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
