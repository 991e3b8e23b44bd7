package stocksync

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/estoquespy/internal/application/dto"
	"github.com/jhoicas/estoquespy/internal/domain"
	"github.com/jhoicas/estoquespy/internal/domain/repository"
	"github.com/jhoicas/estoquespy/pkg/logger"
)

// Operaciones del gateway (para MutationError y logs).
const (
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
)

// MutationError fallo de una mutación contra el backend. La caché local no cambia.
type MutationError struct {
	Op  string
	ID  string
	Err error
}

func (e *MutationError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s producto: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s producto %s: %v", e.Op, e.ID, e.Err)
}

func (e *MutationError) Unwrap() error { return e.Err }

// MutationGateway traduce intenciones del usuario (crear, editar, eliminar) en
// requests al backend. No escribe en la caché: ante un éxito dispara exactamente
// un refresh inmediato de productos y deja que el Reconciler aplique el snapshot.
type MutationGateway struct {
	repo     repository.ProductRepository
	products Refresher
	notifier Notifier
	log      *logger.Logger
	now      func() time.Time
}

// NewMutationGateway construye el gateway.
func NewMutationGateway(
	repo repository.ProductRepository,
	products Refresher,
	notifier Notifier,
	log *logger.Logger,
) *MutationGateway {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &MutationGateway{
		repo:     repo,
		products: products,
		notifier: notifier,
		log:      log,
		now:      time.Now,
	}
}

// Create valida el formulario, normaliza el código RFID y crea el producto.
// Un error de validación bloquea el envío y no genera request.
func (g *MutationGateway) Create(ctx context.Context, form dto.ProductForm) error {
	product, err := form.ToProduct(g.now())
	if err != nil {
		return err
	}
	if err := g.repo.Create(ctx, product); err != nil {
		return g.fail(OpCreate, "", "Erro ao cadastrar produto", err)
	}
	g.log.Info().Str("op", OpCreate).Str("name", product.Name).Str("idrfid", product.IDRFID).Msg("producto creado")
	g.notifier.Success("Produto cadastrado com sucesso!")
	g.refresh(ctx, OpCreate)
	return nil
}

// Update reemplaza el producto completo (PUT, sin semántica parcial).
func (g *MutationGateway) Update(ctx context.Context, id string, form dto.ProductForm) error {
	if id == "" {
		return fmt.Errorf("update producto: id vacío: %w", domain.ErrInvalidInput)
	}
	product, err := form.ToProduct(g.now())
	if err != nil {
		return err
	}
	product.ID = id
	if err := g.repo.Update(ctx, product); err != nil {
		return g.fail(OpUpdate, id, "Erro ao atualizar produto", err)
	}
	g.log.Info().Str("op", OpUpdate).Str("id", id).Msg("producto actualizado")
	g.notifier.Success("Produto atualizado com sucesso!")
	g.refresh(ctx, OpUpdate)
	return nil
}

// Delete elimina el producto tras una confirmación explícita. Sin deshacer.
func (g *MutationGateway) Delete(ctx context.Context, id string, confirm Confirmer) error {
	if id == "" {
		return fmt.Errorf("delete producto: id vacío: %w", domain.ErrInvalidInput)
	}
	if confirm == nil || !confirm.ConfirmDelete(ctx, id) {
		return domain.ErrDeleteNotConfirmed
	}
	if err := g.repo.Delete(ctx, id); err != nil {
		return g.fail(OpDelete, id, "Erro ao excluir produto", err)
	}
	g.log.Info().Str("op", OpDelete).Str("id", id).Msg("producto eliminado")
	g.notifier.Success("Produto excluído com sucesso!")
	g.refresh(ctx, OpDelete)
	return nil
}

func (g *MutationGateway) fail(op, id, msg string, err error) error {
	merr := &MutationError{Op: op, ID: id, Err: err}
	g.log.Error().Err(err).Str("op", op).Str("id", id).Msg("mutación rechazada")
	g.notifier.Error(msg, merr)
	return merr
}

// refresh un fallo aquí no invalida la mutación; el próximo tick lo corrige.
func (g *MutationGateway) refresh(ctx context.Context, op string) {
	if g.products == nil {
		return
	}
	if err := g.products.Refresh(ctx); err != nil {
		g.log.Warn().Err(err).Str("op", op).Msg("refresh posterior a la mutación fallido")
	}
}
