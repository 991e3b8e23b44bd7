// Package memory guarda productos, movimientos y funcionarios en memoria.
// Sirve al backend simulado y al modo offline del cliente (sin BACKEND_URL).
package memory

import (
	"context"
	"slices"
	"strconv"
	"sync"

	"github.com/jhoicas/estoquespy/internal/domain"
	"github.com/jhoicas/estoquespy/internal/domain/entity"
)

// IDGenerator asigna identificadores a los productos creados sin ID.
type IDGenerator interface {
	Next() string
}

// Store almacenamiento en memoria, seguro para uso concurrente.
// Los movimientos son append-only y se listan del más antiguo al más reciente.
type Store struct {
	mu        sync.RWMutex
	ids       IDGenerator
	products  []entity.Product
	movements []entity.ProductMovement
	employees []entity.Employee
	nextMovID int
}

// NewStore construye un store vacío.
func NewStore(ids IDGenerator) *Store {
	return &Store{ids: ids, nextMovID: 1}
}

// ListProducts devuelve una copia de los productos.
func (s *Store) ListProducts(_ context.Context) ([]entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.products), nil
}

// GetProduct busca un producto por ID.
func (s *Store) GetProduct(_ context.Context, id string) (entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(id)
	if i < 0 {
		return entity.Product{}, domain.ErrNotFound
	}
	return s.products[i], nil
}

// FindByTag busca el producto con el código RFID dado (ya normalizado).
func (s *Store) FindByTag(_ context.Context, tag string) (entity.Product, bool, error) {
	if tag == "" {
		return entity.Product{}, false, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.IDRFID == tag {
			return p, true, nil
		}
	}
	return entity.Product{}, false, nil
}

// CreateProduct agrega el producto al inicio (el más reciente primero, como la
// lista original). Asigna ID si viene vacío. IDRFID debe ser único.
func (s *Store) CreateProduct(_ context.Context, p entity.Product) (entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == "" {
		p.ID = s.ids.Next()
	}
	if s.indexOf(p.ID) >= 0 {
		return entity.Product{}, domain.ErrDuplicate
	}
	if s.tagTaken(p.IDRFID, p.ID) {
		return entity.Product{}, domain.ErrDuplicate
	}
	s.products = append([]entity.Product{p}, s.products...)
	return p, nil
}

// UpdateProduct reemplaza el producto completo.
func (s *Store) UpdateProduct(_ context.Context, p entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(p.ID)
	if i < 0 {
		return domain.ErrNotFound
	}
	if s.tagTaken(p.IDRFID, p.ID) {
		return domain.ErrDuplicate
	}
	s.products[i] = p
	return nil
}

// DeleteProduct elimina por ID.
func (s *Store) DeleteProduct(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return domain.ErrNotFound
	}
	s.products = slices.Delete(s.products, i, i+1)
	return nil
}

// AppendMovement agrega un movimiento al final y le asigna ID secuencial si no trae.
func (s *Store) AppendMovement(_ context.Context, m entity.ProductMovement) (entity.ProductMovement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m.ID == "" {
		m.ID = strconv.Itoa(s.nextMovID)
	}
	s.nextMovID++
	s.movements = append(s.movements, m)
	return m, nil
}

// ListMovements devuelve los movimientos en orden de inserción.
func (s *Store) ListMovements(_ context.Context) ([]entity.ProductMovement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.movements), nil
}

// SetEmployees reemplaza la lista de funcionarios.
func (s *Store) SetEmployees(employees []entity.Employee) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.employees = slices.Clone(employees)
}

// ListEmployees devuelve los funcionarios.
func (s *Store) ListEmployees(_ context.Context) ([]entity.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.employees), nil
}

func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.products, func(p entity.Product) bool { return p.ID == id })
}

func (s *Store) tagTaken(tag, ownerID string) bool {
	if tag == "" {
		return false
	}
	return slices.ContainsFunc(s.products, func(p entity.Product) bool {
		return p.IDRFID == tag && p.ID != ownerID
	})
}
