// Package stocksync mantiene la vista local del inventario alineada con el backend:
// polling periódico por recurso, reconciliación por reemplazo total y un gateway
// de mutaciones que fuerza un refresh inmediato tras cada escritura exitosa.
package stocksync

import "context"

// Notifier puerto hacia los avisos visibles (toasts). La presentación es externa.
type Notifier interface {
	Success(msg string)
	Error(msg string, err error)
}

// Refresher dispara un fetch inmediato de un recurso y aplica el resultado.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Confirmer paso de confirmación explícita antes de eliminar.
type Confirmer interface {
	ConfirmDelete(ctx context.Context, id string) bool
}

// ConfirmFunc adapta una función a Confirmer.
type ConfirmFunc func(ctx context.Context, id string) bool

// ConfirmDelete implementa Confirmer.
func (f ConfirmFunc) ConfirmDelete(ctx context.Context, id string) bool { return f(ctx, id) }

// Confirmed confirma siempre (la confirmación ya ocurrió en la capa de presentación).
var Confirmed Confirmer = ConfirmFunc(func(context.Context, string) bool { return true })

type nopNotifier struct{}

func (nopNotifier) Success(string)       {}
func (nopNotifier) Error(string, error) {}
