package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/jhoicas/restaurantes-api/internal/application/dto"
	"github.com/jhoicas/restaurantes-api/internal/application/ports"
	"github.com/jhoicas/restaurantes-api/internal/domain/entity"
	"github.com/jhoicas/restaurantes-api/internal/domain/repository"
)

// references implementa validation.References sobre los repositorios.
type references struct {
	restaurants repository.RestaurantRepository
	categories  repository.CategoryRepository
}

func (r references) RestaurantExists(ctx context.Context, id int64) (bool, error) {
	x, err := r.restaurants.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	return x != nil, nil
}

func (r references) CategoryExists(ctx context.Context, id int64) (bool, error) {
	x, err := r.categories.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	return x != nil, nil
}

// relations carga restaurante y categoría por clave foránea, memorizando
// dentro de una misma operación para no repetir consultas en listados.
type relations struct {
	restaurants repository.RestaurantRepository
	categories  repository.CategoryRepository
	rcache      map[int64]*entity.Restaurant
	ccache      map[int64]*entity.Category
}

func newRelations(restaurants repository.RestaurantRepository, categories repository.CategoryRepository) *relations {
	return &relations{
		restaurants: restaurants,
		categories:  categories,
		rcache:      make(map[int64]*entity.Restaurant),
		ccache:      make(map[int64]*entity.Category),
	}
}

func (r *relations) restaurant(ctx context.Context, id int64) (*entity.Restaurant, error) {
	if x, ok := r.rcache[id]; ok {
		return x, nil
	}
	x, err := r.restaurants.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("cargar restaurante %d: %w", id, err)
	}
	r.rcache[id] = x
	return x, nil
}

func (r *relations) category(ctx context.Context, id int64) (*entity.Category, error) {
	if x, ok := r.ccache[id]; ok {
		return x, nil
	}
	x, err := r.categories.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("cargar categoría %d: %w", id, err)
	}
	r.ccache[id] = x
	return x, nil
}

// hydrate arma la respuesta del producto con sus relaciones.
func (r *relations) hydrate(ctx context.Context, p *entity.Product, blobs ports.BlobStorage) (*dto.ProductResponse, error) {
	out := toProductResponse(p, blobs)
	rest, err := r.restaurant(ctx, p.RestauranteID)
	if err != nil {
		return nil, err
	}
	out.Restaurante = toRestaurantResponse(rest)
	cat, err := r.category(ctx, p.CategoriaID)
	if err != nil {
		return nil, err
	}
	out.Categoria = toCategoryResponse(cat)
	return out, nil
}

// deleteBlob borra un archivo sin propagar el error: la limpieza es best-effort.
func deleteBlob(ctx context.Context, blobs ports.BlobStorage, path string) {
	if path == "" {
		return
	}
	if err := blobs.Delete(ctx, path); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("no se pudo eliminar la imagen")
	}
}

func toRestaurantResponse(r *entity.Restaurant) *dto.RestaurantResponse {
	if r == nil {
		return nil
	}
	return &dto.RestaurantResponse{
		ID:             r.ID,
		UsuarioAdminID: r.UsuarioAdminID,
		Nombre:         r.Nombre,
		Direccion:      r.Direccion,
		Telefono:       r.Telefono,
		Estado:         r.Estado,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:            c.ID,
		RestauranteID: c.RestauranteID,
		Nombre:        c.Nombre,
		Descripcion:   c.Descripcion,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

// toProductResponse mapea sin relaciones. imagen_url solo existe aquí, al serializar.
func toProductResponse(p *entity.Product, blobs ports.BlobStorage) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	out := &dto.ProductResponse{
		ID:            p.ID,
		RestauranteID: p.RestauranteID,
		CategoriaID:   p.CategoriaID,
		Nombre:        p.Nombre,
		Descripcion:   p.Descripcion,
		Precio:        p.Precio,
		Disponible:    p.Disponible,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
	if p.HasImage() {
		img := *p.Imagen
		out.Imagen = &img
		out.ImagenURL = blobs.URL(img)
	}
	return out
}
