package stocksync

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/jhoicas/estoquespy/pkg/logger"
)

// ErrPollerStopped el poller fue detenido; sus resultados ya no se aplican.
var ErrPollerStopped = errors.New("poller detenido")

// FetchFunc obtiene la colección completa de un recurso.
type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// ApplyFunc recibe una colección recién obtenida (el Reconciler).
type ApplyFunc[T any] func(fetched []T)

// PollerConfig configuración de un poller por recurso.
type PollerConfig[T any] struct {
	Resource string
	Interval time.Duration
	Fetch    FetchFunc[T]
	Apply    ApplyFunc[T]

	// NotifyFirstFailure muestra un aviso si falla la carga inicial (solo una vez,
	// y solo mientras el recurso nunca se haya cargado). El resto de fallos son silenciosos.
	NotifyFirstFailure bool
	FailureMessage     string

	Notifier Notifier
	Logger   *logger.Logger
}

// Poller mantiene fresca una colección local mediante fetches periódicos.
//
// Garantías:
//   - un token por recurso: un tick que encuentra otro fetch en vuelo se omite;
//   - un fetch fallido no toca la caché;
//   - tras Stop no se disparan más ticks, y el resultado de un fetch en vuelo
//     se descarta (flag de vida) en lugar de aplicarse.
type Poller[T any] struct {
	cfg   PollerConfig[T]
	token *semaphore.Weighted

	mu              sync.Mutex
	alive           bool
	started         bool
	loaded          bool
	failureNotified bool

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
	inflight sync.WaitGroup

	ticks   atomic.Int64
	skipped atomic.Int64
}

// NewPoller construye el poller. Queda vivo (acepta Refresh) hasta Stop.
func NewPoller[T any](cfg PollerConfig[T]) *Poller[T] {
	if cfg.Notifier == nil {
		cfg.Notifier = nopNotifier{}
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Nop()
	}
	if cfg.FailureMessage == "" {
		cfg.FailureMessage = "Erro ao carregar " + cfg.Resource
	}
	return &Poller[T]{
		cfg:   cfg,
		token: semaphore.NewWeighted(1),
		alive: true,
		stop:  make(chan struct{}),
		done:  make(chan struct{}),
	}
}

// StartPolling crea y arranca un poller: fetch inmediato y luego uno cada Interval.
// El *Poller devuelto es el handle de cancelación (Stop).
func StartPolling[T any](ctx context.Context, cfg PollerConfig[T]) (*Poller[T], error) {
	p := NewPoller(cfg)
	if err := p.Start(ctx); err != nil {
		return nil, err
	}
	return p, nil
}

// Start arranca el ciclo de polling.
func (p *Poller[T]) Start(ctx context.Context) error {
	if p.cfg.Interval <= 0 {
		return fmt.Errorf("poller %s: intervalo inválido %s", p.cfg.Resource, p.cfg.Interval)
	}
	if p.cfg.Fetch == nil || p.cfg.Apply == nil {
		return fmt.Errorf("poller %s: Fetch y Apply son requeridos", p.cfg.Resource)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.alive {
		return ErrPollerStopped
	}
	if p.started {
		return fmt.Errorf("poller %s: ya iniciado", p.cfg.Resource)
	}
	p.started = true
	go p.run(ctx)
	return nil
}

// Stop detiene el polling de forma determinista: al retornar no habrá más ticks.
// No aborta el fetch en vuelo, pero su resultado no se aplicará. Idempotente.
func (p *Poller[T]) Stop() {
	p.stopOnce.Do(func() {
		p.mu.Lock()
		p.alive = false
		started := p.started
		p.mu.Unlock()

		close(p.stop)
		if started {
			<-p.done
		}
		p.cfg.Logger.Debug().Str("resource", p.cfg.Resource).Msg("polling detenido")
	})
}

// Wait espera a que terminen los fetches lanzados por ticks. Solo tras Stop.
func (p *Poller[T]) Wait() { p.inflight.Wait() }

// Refresh hace un fetch inmediato fuera del calendario. A diferencia de un tick,
// espera el token si hay un fetch en vuelo en lugar de omitirse: el llamador
// (gateway de mutaciones) necesita un snapshot emitido después de su escritura.
func (p *Poller[T]) Refresh(ctx context.Context) error {
	if !p.isAlive() {
		return ErrPollerStopped
	}
	if err := p.token.Acquire(ctx, 1); err != nil {
		return err
	}
	defer p.token.Release(1)
	return p.fetchAndApply(ctx)
}

// Loaded indica si al menos un fetch se aplicó.
func (p *Poller[T]) Loaded() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loaded
}

// Ticks cantidad de ticks disparados (incluye omitidos).
func (p *Poller[T]) Ticks() int64 { return p.ticks.Load() }

// Skipped cantidad de ticks omitidos por haber otro fetch en vuelo.
func (p *Poller[T]) Skipped() int64 { return p.skipped.Load() }

func (p *Poller[T]) isAlive() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.alive
}

func (p *Poller[T]) run(ctx context.Context) {
	defer close(p.done)

	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	p.tick(ctx)
	for {
		select {
		case <-p.stop:
			return
		case <-ctx.Done():
			p.mu.Lock()
			p.alive = false
			p.mu.Unlock()
			return
		case <-ticker.C:
			p.tick(ctx)
		}
	}
}

func (p *Poller[T]) tick(ctx context.Context) {
	p.ticks.Add(1)
	if !p.token.TryAcquire(1) {
		p.skipped.Add(1)
		p.cfg.Logger.Debug().Str("resource", p.cfg.Resource).Msg("tick omitido: fetch anterior en vuelo")
		return
	}
	// Un fetch en vuelo no se aborta al detener el poller.
	fetchCtx := context.WithoutCancel(ctx)
	p.inflight.Add(1)
	go func() {
		defer p.inflight.Done()
		defer p.token.Release(1)
		_ = p.fetchAndApply(fetchCtx)
	}()
}

func (p *Poller[T]) fetchAndApply(ctx context.Context) error {
	fetched, err := p.cfg.Fetch(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.alive {
		p.cfg.Logger.Debug().Str("resource", p.cfg.Resource).Msg("resultado descartado: poller detenido")
		return ErrPollerStopped
	}
	if err != nil && ctx.Err() != nil {
		// Cancelado por el llamador: no es un fallo del backend y no consume el aviso.
		p.cfg.Logger.Debug().Err(err).Str("resource", p.cfg.Resource).Msg("fetch cancelado")
		return ctx.Err()
	}
	if err != nil {
		p.handleFailure(err)
		return err
	}
	p.cfg.Apply(fetched)
	p.loaded = true
	return nil
}

// handleFailure se llama con p.mu tomado.
func (p *Poller[T]) handleFailure(err error) {
	p.cfg.Logger.Warn().Err(err).
		Str("resource", p.cfg.Resource).
		Bool("loaded", p.loaded).
		Msg("fetch fallido, se conserva la caché")
	if p.cfg.NotifyFirstFailure && !p.loaded && !p.failureNotified {
		p.failureNotified = true
		p.cfg.Notifier.Error(p.cfg.FailureMessage, err)
	}
}
