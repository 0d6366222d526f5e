package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInsufficientStock = errors.New("stock insuficiente")
)
