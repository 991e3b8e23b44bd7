// Package notify implementa los avisos transitorios (toasts) del cliente.
package notify

import (
	"sync"
	"time"

	"github.com/jhoicas/estoquespy/internal/application/dto"
	"github.com/jhoicas/estoquespy/internal/application/stocksync"
	"github.com/jhoicas/estoquespy/pkg/logger"
)

const (
	LevelSuccess = "success"
	LevelError   = "error"

	// DefaultCapacity avisos retenidos por defecto.
	DefaultCapacity = 50
)

var _ stocksync.Notifier = (*Feed)(nil)

// Feed buffer acotado de avisos; al llenarse descarta el más antiguo.
type Feed struct {
	mu    sync.Mutex
	items []dto.NotificationDTO
	max   int
	log   *logger.Logger
	now   func() time.Time
}

// NewFeed construye el feed. capacity <= 0 usa DefaultCapacity.
func NewFeed(capacity int, log *logger.Logger) *Feed {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Feed{max: capacity, log: log, now: time.Now}
}

// Success registra un aviso de éxito.
func (f *Feed) Success(msg string) {
	f.log.Info().Str("level", LevelSuccess).Msg(msg)
	f.push(LevelSuccess, msg)
}

// Error registra un aviso de error; err solo va al log.
func (f *Feed) Error(msg string, err error) {
	f.log.Error().Err(err).Str("level", LevelError).Msg(msg)
	f.push(LevelError, msg)
}

func (f *Feed) push(level, msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.items) == f.max {
		f.items = f.items[1:]
	}
	f.items = append(f.items, dto.NotificationDTO{
		Level:   level,
		Message: msg,
		At:      f.now().Format(time.RFC3339),
	})
}

// Items devuelve los avisos del más reciente al más antiguo.
func (f *Feed) Items() []dto.NotificationDTO {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]dto.NotificationDTO, len(f.items))
	for i, n := range f.items {
		out[len(f.items)-1-i] = n
	}
	return out
}
