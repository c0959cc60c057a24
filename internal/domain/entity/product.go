package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product es un producto del menú. Pertenece a un restaurante y a una categoría.
// Imagen guarda la ruta relativa del archivo en el almacenamiento público; la URL
// se deriva al serializar y nunca se persiste.
type Product struct {
	ID            int64
	RestauranteID int64
	CategoriaID   int64
	Nombre        string
	Descripcion   *string
	Precio        decimal.Decimal
	Disponible    bool
	Imagen        *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// HasImage indica si el producto tiene una imagen almacenada.
func (p *Product) HasImage() bool {
	return p.Imagen != nil && *p.Imagen != ""
}
