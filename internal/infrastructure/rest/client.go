// Package rest implementa los repositorios del cliente sobre el backend REST
// de EstoqueSpy (/api/products, /api/movements, /api/employees).
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jhoicas/estoquespy/internal/domain"
)

const maxBodyBytes = 4 << 20

// HTTPError respuesta no exitosa del backend.
type HTTPError struct {
	Method string
	Path   string
	Status int
	Body   string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("rest: %s %s: HTTP %d: %s", e.Method, e.Path, e.Status, e.Body)
}

// Unwrap traduce el status a errores de dominio.
func (e *HTTPError) Unwrap() error {
	switch {
	case e.Status == http.StatusNotFound:
		return domain.ErrNotFound
	case e.Status == http.StatusConflict:
		return domain.ErrConflict
	case e.Status == http.StatusBadRequest || e.Status == http.StatusUnprocessableEntity:
		return domain.ErrInvalidInput
	case e.Status >= 500:
		return domain.ErrBackendUnavailable
	default:
		return nil
	}
}

// Client cliente HTTP del backend. Usa net/http de la stdlib.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

// NewClient construye el cliente. timeout es el límite de red por request.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("rest: BACKEND_URL inválida: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("rest: BACKEND_URL inválida %q: se espera http(s)://host", baseURL)
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    u,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// do envía la petición; si out no es nil decodifica el cuerpo JSON en out.
func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("rest: serializar request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, body)
	if err != nil {
		return fmt.Errorf("rest: crear HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("rest: %s %s: cancelado: %w", method, path, ctx.Err())
		}
		return fmt.Errorf("rest: %s %s: %w: %v", method, path, domain.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("rest: leer respuesta: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &HTTPError{Method: method, Path: path, Status: resp.StatusCode, Body: strings.TrimSpace(string(rawBody))}
	}

	if out == nil || len(bytes.TrimSpace(rawBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(rawBody, out); err != nil {
		return fmt.Errorf("rest: deserializar %s: %w", path, err)
	}
	return nil
}

// IsUnavailable indica un fallo transitorio (red o 5xx).
func IsUnavailable(err error) bool {
	return errors.Is(err, domain.ErrBackendUnavailable)
}
