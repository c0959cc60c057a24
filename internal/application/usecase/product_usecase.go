package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/restaurantes-api/internal/application/dto"
	"github.com/jhoicas/restaurantes-api/internal/application/ports"
	"github.com/jhoicas/restaurantes-api/internal/application/validation"
	"github.com/jhoicas/restaurantes-api/internal/domain"
	"github.com/jhoicas/restaurantes-api/internal/domain/entity"
	"github.com/jhoicas/restaurantes-api/internal/domain/repository"
)

// ProductImageNamespace carpeta del almacenamiento público para imágenes de productos.
const ProductImageNamespace = "productos"

// ProductUseCase casos de uso CRUD para productos, incluida la gestión de su imagen.
type ProductUseCase struct {
	products    repository.ProductRepository
	restaurants repository.RestaurantRepository
	categories  repository.CategoryRepository
	blobs       ports.BlobStorage
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	products repository.ProductRepository,
	restaurants repository.RestaurantRepository,
	categories repository.CategoryRepository,
	blobs ports.BlobStorage,
) *ProductUseCase {
	return &ProductUseCase{products: products, restaurants: restaurants, categories: categories, blobs: blobs}
}

func (uc *ProductUseCase) refs() references {
	return references{restaurants: uc.restaurants, categories: uc.categories}
}

func (uc *ProductUseCase) relations() *relations {
	return newRelations(uc.restaurants, uc.categories)
}

// Create valida, guarda la imagen (si llegó), persiste el producto y lo devuelve
// con restaurante, categoría e imagen_url.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.FormValues, img *dto.FileUpload) (*dto.ProductResponse, error) {
	f, err := validation.Product(ctx, validation.Create, in, img, uc.refs())
	if err != nil {
		return nil, err
	}
	now := time.Now()
	product := &entity.Product{
		RestauranteID: *f.RestauranteID,
		CategoriaID:   *f.CategoriaID,
		Nombre:        *f.Nombre,
		Descripcion:   f.Descripcion,
		Precio:        *f.Precio,
		Disponible:    *f.Disponible,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if f.Imagen != nil {
		path, err := uc.blobs.Store(ctx, ProductImageNamespace, f.Imagen.Content, f.Imagen.Extension())
		if err != nil {
			return nil, fmt.Errorf("guardar imagen: %w", err)
		}
		product.Imagen = &path
	}
	if err := uc.products.Create(ctx, product); err != nil {
		if product.Imagen != nil {
			deleteBlob(ctx, uc.blobs, *product.Imagen)
		}
		return nil, err
	}
	return uc.relations().hydrate(ctx, product, uc.blobs)
}

// GetByID obtiene un producto con sus relaciones.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return uc.relations().hydrate(ctx, product, uc.blobs)
}

// Update aplica solo los campos enviados. Si llega una imagen nueva, la anterior
// se elimina una vez persistido el cambio.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.FormValues, img *dto.FileUpload) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	f, err := validation.Product(ctx, validation.Update, in, img, uc.refs())
	if err != nil {
		return nil, err
	}
	var previous string
	if f.Imagen != nil {
		path, err := uc.blobs.Store(ctx, ProductImageNamespace, f.Imagen.Content, f.Imagen.Extension())
		if err != nil {
			return nil, fmt.Errorf("guardar imagen: %w", err)
		}
		if product.HasImage() {
			previous = *product.Imagen
		}
		product.Imagen = &path
	}
	if f.RestauranteID != nil {
		product.RestauranteID = *f.RestauranteID
	}
	if f.CategoriaID != nil {
		product.CategoriaID = *f.CategoriaID
	}
	if f.Nombre != nil {
		product.Nombre = *f.Nombre
	}
	if f.DescripcionSet {
		product.Descripcion = f.Descripcion
	}
	if f.Precio != nil {
		product.Precio = *f.Precio
	}
	if f.Disponible != nil {
		product.Disponible = *f.Disponible
	}
	product.UpdatedAt = time.Now()
	if err := uc.products.Update(ctx, product); err != nil {
		if f.Imagen != nil {
			deleteBlob(ctx, uc.blobs, *product.Imagen)
		}
		return nil, err
	}
	deleteBlob(ctx, uc.blobs, previous)
	return uc.relations().hydrate(ctx, product, uc.blobs)
}

// Delete elimina el producto y, best-effort, su imagen.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	product, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrProductNotFound
	}
	if product.HasImage() {
		deleteBlob(ctx, uc.blobs, *product.Imagen)
	}
	return uc.products.Delete(ctx, id)
}

// List lista todos los productos.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}
	return uc.hydrateAll(ctx, list)
}

// ListByRestaurant lista los productos de un restaurante.
func (uc *ProductUseCase) ListByRestaurant(ctx context.Context, restauranteID int64) ([]dto.ProductResponse, error) {
	list, err := uc.products.ListByRestaurant(ctx, restauranteID)
	if err != nil {
		return nil, err
	}
	return uc.hydrateAll(ctx, list)
}

// ListByCategory lista los productos de una categoría.
func (uc *ProductUseCase) ListByCategory(ctx context.Context, categoriaID int64) ([]dto.ProductResponse, error) {
	list, err := uc.products.ListByCategory(ctx, categoriaID)
	if err != nil {
		return nil, err
	}
	return uc.hydrateAll(ctx, list)
}

func (uc *ProductUseCase) hydrateAll(ctx context.Context, list []*entity.Product) ([]dto.ProductResponse, error) {
	rel := uc.relations()
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out, err := rel.hydrate(ctx, p, uc.blobs)
		if err != nil {
			return nil, err
		}
		items = append(items, *out)
	}
	return items, nil
}
