package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/restaurantes-api/internal/domain"
)

// isForeignKeyViolation verifica si un error es una violación de llave foránea (23503):
// la fila referenciada se borró entre la validación y la escritura.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return false
}

// wrapWrite traduce errores de escritura a errores de dominio cuando aplica.
func wrapWrite(op string, err error) error {
	if isForeignKeyViolation(err) {
		return fmt.Errorf("%s: %w", op, domain.ErrConflict)
	}
	return fmt.Errorf("%s: %w", op, err)
}
