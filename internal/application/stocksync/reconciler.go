package stocksync

import (
	"slices"
	"sync"
	"time"

	"github.com/jhoicas/estoquespy/internal/domain"
	"github.com/jhoicas/estoquespy/internal/domain/entity"
	"github.com/jhoicas/estoquespy/internal/domain/inventory"
)

// Reconcile política de reemplazo total: la colección obtenida pasa a ser la
// verdad tal cual, sin importar el contenido anterior. No hay merge por campo.
func Reconcile[T any](_, fetched []T) []T {
	out := make([]T, len(fetched))
	copy(out, fetched)
	return out
}

// Reconciler es el único escritor de la caché local. La lectura la hacen la
// proyección y los agregados; el gateway de mutaciones nunca escribe aquí.
type Reconciler struct {
	mu sync.RWMutex

	products  []entity.Product
	movements []entity.ProductMovement // orden de presentación: más reciente primero
	employees []entity.Employee
	totals    inventory.MovementTotals

	productsAt  time.Time
	movementsAt time.Time
	employeesAt time.Time

	editingID string
	now       func() time.Time
}

// NewReconciler construye la caché vacía.
func NewReconciler() *Reconciler {
	return &Reconciler{now: time.Now}
}

// ApplyProducts reemplaza la caché de productos. Si el producto en edición ya no
// existe en el snapshot, la edición se descarta.
func (r *Reconciler) ApplyProducts(fetched []entity.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = Reconcile(r.products, fetched)
	r.productsAt = r.now()
	if r.editingID != "" && indexProduct(r.products, r.editingID) < 0 {
		r.editingID = ""
	}
}

// ApplyMovements reemplaza la caché de movimientos, invierte el orden (el backend
// los entrega del más antiguo al más reciente) y recalcula los totales.
func (r *Reconciler) ApplyMovements(fetched []entity.ProductMovement) {
	display := Reconcile(r.movementsSnapshot(), fetched)
	slices.Reverse(display)
	totals := inventory.Summarize(display)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.movements = display
	r.totals = totals
	r.movementsAt = r.now()
}

// ApplyEmployees reemplaza la lista de funcionarios.
func (r *Reconciler) ApplyEmployees(fetched []entity.Employee) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.employees = Reconcile(r.employees, fetched)
	r.employeesAt = r.now()
}

// Products copia de la caché de productos.
func (r *Reconciler) Products() []entity.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.products)
}

// Movements copia de la caché de movimientos en orden de presentación.
func (r *Reconciler) Movements() []entity.ProductMovement {
	return r.movementsSnapshot()
}

// Employees copia de la lista de funcionarios.
func (r *Reconciler) Employees() []entity.Employee {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.employees)
}

// MovementTotals agregados calculados en la última reconciliación.
func (r *Reconciler) MovementTotals() inventory.MovementTotals {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.totals
}

// ProductsLoaded indica si ya llegó al menos un snapshot de productos.
func (r *Reconciler) ProductsLoaded() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return !r.productsAt.IsZero()
}

// MovementsLoaded indica si ya llegó al menos un snapshot de movimientos.
func (r *Reconciler) MovementsLoaded() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return !r.movementsAt.IsZero()
}

// BeginEdit marca un producto como en edición y devuelve su versión en caché.
func (r *Reconciler) BeginEdit(id string) (entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := indexProduct(r.products, id)
	if i < 0 {
		return entity.Product{}, domain.ErrNotFound
	}
	r.editingID = id
	return r.products[i], nil
}

// EndEdit termina la edición en curso si corresponde a id.
func (r *Reconciler) EndEdit(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.editingID == id {
		r.editingID = ""
	}
}

// Editing devuelve el producto en edición con los datos del último snapshot.
func (r *Reconciler) Editing() (entity.Product, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.editingID == "" {
		return entity.Product{}, false
	}
	i := indexProduct(r.products, r.editingID)
	if i < 0 {
		return entity.Product{}, false
	}
	return r.products[i], true
}

func (r *Reconciler) movementsSnapshot() []entity.ProductMovement {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.movements)
}

func indexProduct(products []entity.Product, id string) int {
	return slices.IndexFunc(products, func(p entity.Product) bool { return p.ID == id })
}
