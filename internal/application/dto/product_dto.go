package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductResponse salida de un producto.
// ImagenURL se calcula a partir de Imagen al serializar; Restaurante y Categoria
// solo se incluyen cuando la operación carga las relaciones.
type ProductResponse struct {
	ID            int64               `json:"id"`
	RestauranteID int64               `json:"restaurante_id"`
	CategoriaID   int64               `json:"categoria_id"`
	Nombre        string              `json:"nombre"`
	Descripcion   *string             `json:"descripcion"`
	Precio        decimal.Decimal     `json:"precio"`
	Disponible    bool                `json:"disponible"`
	Imagen        *string             `json:"imagen,omitempty"`
	ImagenURL     string              `json:"imagen_url,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
	Restaurante   *RestaurantResponse `json:"restaurante,omitempty"`
	Categoria     *CategoryResponse   `json:"categoria,omitempty"`
}
