package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/jhoicas/estoquespy/internal/domain"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// FlexString acepta en JSON tanto un string como un número (o null) y lo guarda como texto.
// El backend a veces omite o numera los IDs, y los formularios envían cantidades sin comillas.
type FlexString string

// UnmarshalJSON implementa json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("se esperaba string o número: %w", err)
	}
	*f = FlexString(n.String())
	return nil
}

// String devuelve el valor como string.
func (f FlexString) String() string { return string(f) }

// ValidationError errores de validación por campo (nombre JSON → mensaje).
// Envuelve domain.ErrInvalidInput y, si aplica, ErrInvalidQuantity / ErrInvalidPrice.
type ValidationError struct {
	Fields map[string]string
	causes []error
}

func newValidationError() *ValidationError {
	return &ValidationError{Fields: map[string]string{}}
}

func (e *ValidationError) add(field, msg string, cause error) {
	if _, ok := e.Fields[field]; ok {
		return
	}
	e.Fields[field] = msg
	if cause != nil {
		e.causes = append(e.causes, cause)
	}
}

func (e *ValidationError) empty() bool { return len(e.Fields) == 0 }

// Error implementa error con los campos en orden estable.
func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validación: " + strings.Join(parts, "; ")
}

// Unwrap permite errors.Is con los errores de dominio.
func (e *ValidationError) Unwrap() []error {
	return append([]error{domain.ErrInvalidInput}, e.causes...)
}
