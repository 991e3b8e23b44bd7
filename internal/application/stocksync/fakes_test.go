package stocksync_test

import (
	"context"
	"sync"

	"github.com/jhoicas/estoquespy/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de prueba
// ──────────────────────────────────────────────────────────────────────────────

type recordingNotifier struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, msg)
}

func (n *recordingNotifier) Error(msg string, _ error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, msg)
}

func (n *recordingNotifier) counts() (int, int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.successes), len(n.errors)
}

type fakeProductRepo struct {
	mu      sync.Mutex
	created []entity.Product
	updated []entity.Product
	deleted []string
	err     error
}

func (r *fakeProductRepo) List(context.Context) ([]entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]entity.Product(nil), r.created...), r.err
}

func (r *fakeProductRepo) Create(_ context.Context, p entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.created = append(r.created, p)
	return nil
}

func (r *fakeProductRepo) Update(_ context.Context, p entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.updated = append(r.updated, p)
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.deleted = append(r.deleted, id)
	return nil
}

type countingRefresher struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (r *countingRefresher) Refresh(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	return r.err
}

func (r *countingRefresher) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

type fakeMovementRepo struct {
	mu    sync.Mutex
	items []entity.ProductMovement
	err   error
}

func (r *fakeMovementRepo) List(context.Context) ([]entity.ProductMovement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	return append([]entity.ProductMovement(nil), r.items...), nil
}

type fakeEmployeeRepo struct {
	items []entity.Employee
	err   error
}

func (r *fakeEmployeeRepo) List(context.Context) ([]entity.Employee, error) {
	return r.items, r.err
}
