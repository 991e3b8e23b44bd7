package stocksync

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/estoquespy/internal/domain/entity"
	"github.com/jhoicas/estoquespy/internal/domain/repository"
	"github.com/jhoicas/estoquespy/pkg/logger"
)

// Repositories fuentes remotas que consume la sesión.
type Repositories struct {
	Products  repository.ProductRepository
	Movements repository.MovementRepository
	Employees repository.EmployeeRepository
}

// SessionConfig intervalos de polling por recurso.
type SessionConfig struct {
	ProductsInterval  time.Duration
	MovementsInterval time.Duration
}

// Session agrupa caché, pollers y gateway de una vista montada. Start adquiere los
// timers y Stop los libera; nada queda corriendo a nivel de proceso.
type Session struct {
	Reconciler *Reconciler
	Products   *Poller[entity.Product]
	Movements  *Poller[entity.ProductMovement]
	Gateway    *MutationGateway

	employees repository.EmployeeRepository
	log       *logger.Logger
}

// NewSession construye la sesión sin arrancar los pollers.
func NewSession(repos Repositories, cfg SessionConfig, notifier Notifier, log *logger.Logger) *Session {
	if log == nil {
		log = logger.Nop()
	}
	rec := NewReconciler()

	products := NewPoller(PollerConfig[entity.Product]{
		Resource:           "products",
		Interval:           cfg.ProductsInterval,
		Fetch:              repos.Products.List,
		Apply:              rec.ApplyProducts,
		NotifyFirstFailure: true,
		FailureMessage:     "Erro ao carregar produtos",
		Notifier:           notifier,
		Logger:             log.Named("poller"),
	})
	movements := NewPoller(PollerConfig[entity.ProductMovement]{
		Resource: "movements",
		Interval: cfg.MovementsInterval,
		Fetch:    repos.Movements.List,
		Apply:    rec.ApplyMovements,
		Notifier: notifier,
		Logger:   log.Named("poller"),
	})

	return &Session{
		Reconciler: rec,
		Products:   products,
		Movements:  movements,
		Gateway:    NewMutationGateway(repos.Products, products, notifier, log.Named("gateway")),
		employees:  repos.Employees,
		log:        log,
	}
}

// Start carga los funcionarios una vez y arranca ambos pollers.
// Un fallo al cargar funcionarios no impide el arranque.
func (s *Session) Start(ctx context.Context) error {
	if err := s.RefreshEmployees(ctx); err != nil {
		s.log.Warn().Err(err).Msg("no se pudo cargar la lista de funcionarios")
	}
	if err := s.Products.Start(ctx); err != nil {
		return fmt.Errorf("iniciar polling de productos: %w", err)
	}
	if err := s.Movements.Start(ctx); err != nil {
		s.Products.Stop()
		return fmt.Errorf("iniciar polling de movimientos: %w", err)
	}
	return nil
}

// Stop detiene ambos pollers.
func (s *Session) Stop() {
	s.Products.Stop()
	s.Movements.Stop()
}

// RefreshEmployees vuelve a leer la lista de funcionarios.
func (s *Session) RefreshEmployees(ctx context.Context) error {
	if s.employees == nil {
		return nil
	}
	list, err := s.employees.List(ctx)
	if err != nil {
		return err
	}
	s.Reconciler.ApplyEmployees(list)
	return nil
}
