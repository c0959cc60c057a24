package usecase

import (
	"context"

	"github.com/jhoicas/restaurantes-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		restaurants repository.RestaurantRepository,
		categories repository.CategoryRepository,
		products repository.ProductRepository,
	) error) error
}
