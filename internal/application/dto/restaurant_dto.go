package dto

import "time"

// RestaurantResponse salida de un restaurante.
type RestaurantResponse struct {
	ID             int64     `json:"id"`
	UsuarioAdminID int64     `json:"usuario_admin_id"`
	Nombre         string    `json:"nombre"`
	Direccion      string    `json:"direccion"`
	Telefono       string    `json:"telefono"`
	Estado         string    `json:"estado"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// RestaurantDetailResponse restaurante con sus categorías y productos cargados.
type RestaurantDetailResponse struct {
	RestaurantResponse
	Categorias []CategoryResponse `json:"categorias"`
	Productos  []ProductResponse  `json:"productos"`
}
