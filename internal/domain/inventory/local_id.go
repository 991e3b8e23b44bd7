package inventory

import (
	"strconv"
	"sync"
	"time"
)

// LocalIDGenerator asigna identificadores del lado del cliente cuando no hay backend.
// Los valores derivan del reloj (milisegundos Unix) y son estrictamente crecientes
// aunque dos llamadas caigan en el mismo milisegundo o el reloj retroceda.
type LocalIDGenerator struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

// NewLocalIDGenerator construye el generador sobre el reloj del sistema.
func NewLocalIDGenerator() *LocalIDGenerator {
	return &LocalIDGenerator{now: time.Now}
}

// NewLocalIDGeneratorWithClock permite inyectar el reloj (tests).
func NewLocalIDGeneratorWithClock(now func() time.Time) *LocalIDGenerator {
	return &LocalIDGenerator{now: now}
}

// Next devuelve el siguiente identificador.
func (g *LocalIDGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return strconv.FormatInt(ms, 10)
}
