package repository

import (
	"context"

	"github.com/jhoicas/restaurantes-api/internal/domain/entity"
)

// RestaurantRepository define el puerto de persistencia para Restaurant (DIP).
// GetByID devuelve (nil, nil) si no existe.
type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *entity.Restaurant) error
	GetByID(ctx context.Context, id int64) (*entity.Restaurant, error)
	Update(ctx context.Context, restaurant *entity.Restaurant) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*entity.Restaurant, error)
	ListByUsuarioAdmin(ctx context.Context, usuarioAdminID int64) ([]*entity.Restaurant, error)
}
