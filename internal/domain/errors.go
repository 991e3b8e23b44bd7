package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidQuantity    = errors.New("cantidad inválida: se espera un entero no negativo")
	ErrInvalidPrice       = errors.New("precio inválido: se espera un decimal no negativo")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrDeleteNotConfirmed = errors.New("eliminación no confirmada por el usuario")
	ErrBackendUnavailable = errors.New("backend no disponible")
)
