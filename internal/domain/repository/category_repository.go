package repository

import (
	"context"

	"github.com/jhoicas/restaurantes-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id int64) (*entity.Category, error)
	ListByRestaurant(ctx context.Context, restauranteID int64) ([]*entity.Category, error)
	DeleteByRestaurant(ctx context.Context, restauranteID int64) error
}
