package entity

import "time"

// Category es una categoría del menú de un restaurante (tabla categorias_menu).
type Category struct {
	ID            int64
	RestauranteID int64
	Nombre        string
	Descripcion   *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
