package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/restaurantes-api/internal/domain/entity"
	"github.com/jhoicas/restaurantes-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL (tabla categorias_menu).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste una categoría y asigna el ID generado.
func (r *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	query := `
		INSERT INTO categorias_menu (restaurante_id, nombre, descripcion, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		category.RestauranteID, category.Nombre, category.Descripcion, category.CreatedAt, category.UpdatedAt,
	).Scan(&category.ID)
	if err != nil {
		return wrapWrite("insert categoría", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID; (nil, nil) si no existe.
func (r *CategoryRepo) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	query := `
		SELECT id, restaurante_id, nombre, descripcion, created_at, updated_at
		FROM categorias_menu WHERE id = $1`
	var c entity.Category
	err := r.q.QueryRow(ctx, query, id).Scan(&c.ID, &c.RestauranteID, &c.Nombre, &c.Descripcion, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get categoría: %w", err)
	}
	return &c, nil
}

// ListByRestaurant lista las categorías de un restaurante.
func (r *CategoryRepo) ListByRestaurant(ctx context.Context, restauranteID int64) ([]*entity.Category, error) {
	query := `
		SELECT id, restaurante_id, nombre, descripcion, created_at, updated_at
		FROM categorias_menu WHERE restaurante_id = $1 ORDER BY id`
	rows, err := r.q.Query(ctx, query, restauranteID)
	if err != nil {
		return nil, fmt.Errorf("list categorías: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.RestauranteID, &c.Nombre, &c.Descripcion, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan categoría: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// DeleteByRestaurant elimina todas las categorías de un restaurante.
func (r *CategoryRepo) DeleteByRestaurant(ctx context.Context, restauranteID int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM categorias_menu WHERE restaurante_id = $1`, restauranteID); err != nil {
		return wrapWrite("delete categorías", err)
	}
	return nil
}
