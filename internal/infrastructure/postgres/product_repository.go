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

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, restaurante_id, categoria_id, nombre, descripcion, precio, disponible, imagen, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto y asigna el ID generado.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO productos (restaurante_id, categoria_id, nombre, descripcion, precio, disponible, imagen, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		product.RestauranteID, product.CategoriaID, product.Nombre, product.Descripcion,
		product.Precio, product.Disponible, product.Imagen, product.CreatedAt, product.UpdatedAt,
	).Scan(&product.ID)
	if err != nil {
		return wrapWrite("insert producto", err)
	}
	return nil
}

// GetByID obtiene un producto por ID; (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM productos WHERE id = $1`
	p, err := scanProduct(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return p, nil
}

// Update sobrescribe los campos editables, incluida la ruta de la imagen.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE productos
		SET restaurante_id = $2, categoria_id = $3, nombre = $4, descripcion = $5, precio = $6,
		    disponible = $7, imagen = $8, updated_at = $9
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		product.ID, product.RestauranteID, product.CategoriaID, product.Nombre, product.Descripcion,
		product.Precio, product.Disponible, product.Imagen, product.UpdatedAt,
	)
	if err != nil {
		return wrapWrite("update producto", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM productos WHERE id = $1`, id); err != nil {
		return wrapWrite("delete producto", err)
	}
	return nil
}

// List lista todos los productos.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	return r.list(ctx, `SELECT `+productColumns+` FROM productos ORDER BY id`)
}

// ListByRestaurant lista los productos de un restaurante.
func (r *ProductRepo) ListByRestaurant(ctx context.Context, restauranteID int64) ([]*entity.Product, error) {
	return r.list(ctx, `SELECT `+productColumns+` FROM productos WHERE restaurante_id = $1 ORDER BY id`, restauranteID)
}

// ListByCategory lista los productos de una categoría.
func (r *ProductRepo) ListByCategory(ctx context.Context, categoriaID int64) ([]*entity.Product, error) {
	return r.list(ctx, `SELECT `+productColumns+` FROM productos WHERE categoria_id = $1 ORDER BY id`, categoriaID)
}

// DeleteByRestaurant elimina los productos del restaurante y devuelve sus rutas de imagen.
func (r *ProductRepo) DeleteByRestaurant(ctx context.Context, restauranteID int64) ([]string, error) {
	rows, err := r.q.Query(ctx,
		`DELETE FROM productos WHERE restaurante_id = $1 AND imagen IS NOT NULL RETURNING imagen`, restauranteID)
	if err != nil {
		return nil, wrapWrite("delete productos con imagen", err)
	}
	images, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scan imágenes: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM productos WHERE restaurante_id = $1`, restauranteID); err != nil {
		return nil, wrapWrite("delete productos", err)
	}
	return images, nil
}

func (r *ProductRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.RestauranteID, &p.CategoriaID, &p.Nombre, &p.Descripcion,
		&p.Precio, &p.Disponible, &p.Imagen, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
