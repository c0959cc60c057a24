package entity

import "time"

// Estados válidos de un restaurante.
const (
	EstadoAbierto = "Abierto"
	EstadoCerrado = "Cerrado"
)

// Restaurant es un restaurante administrado por un usuario (usuario_admin_id).
// Es dueño de sus categorías de menú y de sus productos.
type Restaurant struct {
	ID             int64
	UsuarioAdminID int64
	Nombre         string
	Direccion      string
	Telefono       string
	Estado         string // Abierto | Cerrado
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ValidEstado indica si s es uno de los estados aceptados.
func ValidEstado(s string) bool {
	return s == EstadoAbierto || s == EstadoCerrado
}
