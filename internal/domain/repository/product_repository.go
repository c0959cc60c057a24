package repository

import (
	"context"

	"github.com/jhoicas/restaurantes-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*entity.Product, error)
	ListByRestaurant(ctx context.Context, restauranteID int64) ([]*entity.Product, error)
	ListByCategory(ctx context.Context, categoriaID int64) ([]*entity.Product, error)
	// DeleteByRestaurant borra los productos del restaurante y devuelve las rutas
	// de imagen que tenían, para limpiarlas del almacenamiento después del commit.
	DeleteByRestaurant(ctx context.Context, restauranteID int64) ([]string, error)
}
