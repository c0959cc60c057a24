package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/restaurantes-api/internal/domain"
	"github.com/jhoicas/restaurantes-api/internal/domain/entity"
	"github.com/jhoicas/restaurantes-api/internal/domain/repository"
)

var _ repository.RestaurantRepository = (*RestaurantRepo)(nil)

const restaurantColumns = `id, usuario_admin_id, nombre, direccion, telefono, estado, created_at, updated_at`

// RestaurantRepo implementación del puerto RestaurantRepository sobre PostgreSQL (usable con pool o tx).
type RestaurantRepo struct {
	q Querier
}

// NewRestaurantRepository construye el adaptador de persistencia para restaurantes.
func NewRestaurantRepository(q Querier) *RestaurantRepo {
	return &RestaurantRepo{q: q}
}

// Create persiste un restaurante y asigna el ID generado.
func (r *RestaurantRepo) Create(ctx context.Context, restaurant *entity.Restaurant) error {
	query := `
		INSERT INTO restaurantes (usuario_admin_id, nombre, direccion, telefono, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		restaurant.UsuarioAdminID, restaurant.Nombre, restaurant.Direccion, restaurant.Telefono,
		restaurant.Estado, restaurant.CreatedAt, restaurant.UpdatedAt,
	).Scan(&restaurant.ID)
	if err != nil {
		return wrapWrite("insert restaurante", err)
	}
	return nil
}

// GetByID obtiene un restaurante por ID; (nil, nil) si no existe.
func (r *RestaurantRepo) GetByID(ctx context.Context, id int64) (*entity.Restaurant, error) {
	query := `SELECT ` + restaurantColumns + ` FROM restaurantes WHERE id = $1`
	x, err := scanRestaurant(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get restaurante: %w", err)
	}
	return x, nil
}

// Update sobrescribe los campos editables.
func (r *RestaurantRepo) Update(ctx context.Context, restaurant *entity.Restaurant) error {
	query := `
		UPDATE restaurantes
		SET usuario_admin_id = $2, nombre = $3, direccion = $4, telefono = $5, estado = $6, updated_at = $7
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		restaurant.ID, restaurant.UsuarioAdminID, restaurant.Nombre, restaurant.Direccion,
		restaurant.Telefono, restaurant.Estado, restaurant.UpdatedAt,
	)
	if err != nil {
		return wrapWrite("update restaurante", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRestaurantNotFound
	}
	return nil
}

// Delete elimina un restaurante por ID.
func (r *RestaurantRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM restaurantes WHERE id = $1`, id); err != nil {
		return wrapWrite("delete restaurante", err)
	}
	return nil
}

// List lista todos los restaurantes.
func (r *RestaurantRepo) List(ctx context.Context) ([]*entity.Restaurant, error) {
	return r.list(ctx, `SELECT `+restaurantColumns+` FROM restaurantes ORDER BY id`)
}

// ListByUsuarioAdmin lista los restaurantes de un administrador.
func (r *RestaurantRepo) ListByUsuarioAdmin(ctx context.Context, usuarioAdminID int64) ([]*entity.Restaurant, error) {
	return r.list(ctx, `SELECT `+restaurantColumns+` FROM restaurantes WHERE usuario_admin_id = $1 ORDER BY id`, usuarioAdminID)
}

func (r *RestaurantRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Restaurant, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list restaurantes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Restaurant
	for rows.Next() {
		x, err := scanRestaurant(rows)
		if err != nil {
			return nil, fmt.Errorf("scan restaurante: %w", err)
		}
		list = append(list, x)
	}
	return list, rows.Err()
}

func scanRestaurant(row pgx.Row) (*entity.Restaurant, error) {
	var x entity.Restaurant
	err := row.Scan(&x.ID, &x.UsuarioAdminID, &x.Nombre, &x.Direccion, &x.Telefono, &x.Estado, &x.CreatedAt, &x.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &x, nil
}
