package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/restaurantes-api/internal/application/dto"
	"github.com/jhoicas/restaurantes-api/internal/application/validation"
	"github.com/jhoicas/restaurantes-api/internal/domain"
	"github.com/jhoicas/restaurantes-api/internal/domain/entity"
	"github.com/jhoicas/restaurantes-api/internal/domain/repository"
)

// CategoryUseCase alta y consulta de categorías del menú.
type CategoryUseCase struct {
	categories  repository.CategoryRepository
	restaurants repository.RestaurantRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(categories repository.CategoryRepository, restaurants repository.RestaurantRepository) *CategoryUseCase {
	return &CategoryUseCase{categories: categories, restaurants: restaurants}
}

// Create crea una categoría para un restaurante existente.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.FormValues) (*dto.CategoryResponse, error) {
	f, err := validation.Category(ctx, in, references{restaurants: uc.restaurants, categories: uc.categories})
	if err != nil {
		return nil, err
	}
	now := time.Now()
	category := &entity.Category{
		RestauranteID: *f.RestauranteID,
		Nombre:        *f.Nombre,
		Descripcion:   f.Descripcion,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// GetByID obtiene una categoría.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id int64) (*dto.CategoryResponse, error) {
	category, err := uc.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrCategoryNotFound
	}
	return toCategoryResponse(category), nil
}

// ListByRestaurant lista las categorías de un restaurante.
func (uc *CategoryUseCase) ListByRestaurant(ctx context.Context, restauranteID int64) ([]dto.CategoryResponse, error) {
	list, err := uc.categories.ListByRestaurant(ctx, restauranteID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return items, nil
}
