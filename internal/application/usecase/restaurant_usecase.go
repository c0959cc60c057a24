package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/restaurantes-api/internal/application/dto"
	"github.com/jhoicas/restaurantes-api/internal/application/ports"
	"github.com/jhoicas/restaurantes-api/internal/application/validation"
	"github.com/jhoicas/restaurantes-api/internal/domain"
	"github.com/jhoicas/restaurantes-api/internal/domain/entity"
	"github.com/jhoicas/restaurantes-api/internal/domain/repository"
)

// RestaurantUseCase casos de uso CRUD para restaurantes.
type RestaurantUseCase struct {
	restaurants repository.RestaurantRepository
	categories  repository.CategoryRepository
	products    repository.ProductRepository
	txRunner    TxRunner
	blobs       ports.BlobStorage
}

// NewRestaurantUseCase construye el caso de uso.
func NewRestaurantUseCase(
	restaurants repository.RestaurantRepository,
	categories repository.CategoryRepository,
	products repository.ProductRepository,
	txRunner TxRunner,
	blobs ports.BlobStorage,
) *RestaurantUseCase {
	return &RestaurantUseCase{
		restaurants: restaurants,
		categories:  categories,
		products:    products,
		txRunner:    txRunner,
		blobs:       blobs,
	}
}

// Create crea un restaurante.
func (uc *RestaurantUseCase) Create(ctx context.Context, in dto.FormValues) (*dto.RestaurantResponse, error) {
	f, err := validation.Restaurant(ctx, validation.Create, in)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	restaurant := &entity.Restaurant{
		UsuarioAdminID: *f.UsuarioAdminID,
		Nombre:         *f.Nombre,
		Direccion:      *f.Direccion,
		Telefono:       *f.Telefono,
		Estado:         *f.Estado,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.restaurants.Create(ctx, restaurant); err != nil {
		return nil, err
	}
	return toRestaurantResponse(restaurant), nil
}

// GetByID obtiene un restaurante con sus categorías y productos.
func (uc *RestaurantUseCase) GetByID(ctx context.Context, id int64) (*dto.RestaurantDetailResponse, error) {
	restaurant, err := uc.restaurants.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, domain.ErrRestaurantNotFound
	}
	return uc.detail(ctx, restaurant)
}

// Update aplica solo los campos enviados; el resto conserva su valor.
func (uc *RestaurantUseCase) Update(ctx context.Context, id int64, in dto.FormValues) (*dto.RestaurantResponse, error) {
	restaurant, err := uc.restaurants.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, domain.ErrRestaurantNotFound
	}
	f, err := validation.Restaurant(ctx, validation.Update, in)
	if err != nil {
		return nil, err
	}
	if f.UsuarioAdminID != nil {
		restaurant.UsuarioAdminID = *f.UsuarioAdminID
	}
	if f.Nombre != nil {
		restaurant.Nombre = *f.Nombre
	}
	if f.Direccion != nil {
		restaurant.Direccion = *f.Direccion
	}
	if f.Telefono != nil {
		restaurant.Telefono = *f.Telefono
	}
	if f.Estado != nil {
		restaurant.Estado = *f.Estado
	}
	restaurant.UpdatedAt = time.Now()
	if err := uc.restaurants.Update(ctx, restaurant); err != nil {
		return nil, err
	}
	return toRestaurantResponse(restaurant), nil
}

// Delete elimina el restaurante junto con sus productos y categorías en una sola
// transacción. Las imágenes de los productos se borran después del commit.
func (uc *RestaurantUseCase) Delete(ctx context.Context, id int64) error {
	restaurant, err := uc.restaurants.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if restaurant == nil {
		return domain.ErrRestaurantNotFound
	}
	var images []string
	err = uc.txRunner.Run(ctx, func(
		restaurants repository.RestaurantRepository,
		categories repository.CategoryRepository,
		products repository.ProductRepository,
	) error {
		var err error
		images, err = products.DeleteByRestaurant(ctx, id)
		if err != nil {
			return err
		}
		if err := categories.DeleteByRestaurant(ctx, id); err != nil {
			return err
		}
		return restaurants.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	for _, path := range images {
		deleteBlob(ctx, uc.blobs, path)
	}
	return nil
}

// List lista todos los restaurantes con categorías y productos.
func (uc *RestaurantUseCase) List(ctx context.Context) ([]dto.RestaurantDetailResponse, error) {
	list, err := uc.restaurants.List(ctx)
	if err != nil {
		return nil, err
	}
	return uc.details(ctx, list)
}

// ListByUsuarioAdmin lista los restaurantes de un administrador.
func (uc *RestaurantUseCase) ListByUsuarioAdmin(ctx context.Context, usuarioAdminID int64) ([]dto.RestaurantDetailResponse, error) {
	list, err := uc.restaurants.ListByUsuarioAdmin(ctx, usuarioAdminID)
	if err != nil {
		return nil, err
	}
	return uc.details(ctx, list)
}

func (uc *RestaurantUseCase) details(ctx context.Context, list []*entity.Restaurant) ([]dto.RestaurantDetailResponse, error) {
	items := make([]dto.RestaurantDetailResponse, 0, len(list))
	for _, r := range list {
		out, err := uc.detail(ctx, r)
		if err != nil {
			return nil, err
		}
		items = append(items, *out)
	}
	return items, nil
}

func (uc *RestaurantUseCase) detail(ctx context.Context, r *entity.Restaurant) (*dto.RestaurantDetailResponse, error) {
	categories, err := uc.categories.ListByRestaurant(ctx, r.ID)
	if err != nil {
		return nil, err
	}
	products, err := uc.products.ListByRestaurant(ctx, r.ID)
	if err != nil {
		return nil, err
	}
	out := &dto.RestaurantDetailResponse{
		RestaurantResponse: *toRestaurantResponse(r),
		Categorias:         make([]dto.CategoryResponse, 0, len(categories)),
		Productos:          make([]dto.ProductResponse, 0, len(products)),
	}
	for _, c := range categories {
		out.Categorias = append(out.Categorias, *toCategoryResponse(c))
	}
	for _, p := range products {
		out.Productos = append(out.Productos, *toProductResponse(p, uc.blobs))
	}
	return out, nil
}
