package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrConflict     = errors.New("conflicto con el estado actual")
)

// Errores por recurso; todos cumplen errors.Is(err, ErrNotFound).
var (
	ErrRestaurantNotFound = fmt.Errorf("restaurante: %w", ErrNotFound)
	ErrProductNotFound    = fmt.Errorf("producto: %w", ErrNotFound)
	ErrCategoryNotFound   = fmt.Errorf("categoría: %w", ErrNotFound)
)
