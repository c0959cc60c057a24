package dto

import "time"

// CategoryResponse salida de una categoría del menú.
type CategoryResponse struct {
	ID            int64     `json:"id"`
	RestauranteID int64     `json:"restaurante_id"`
	Nombre        string    `json:"nombre"`
	Descripcion   *string   `json:"descripcion"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
