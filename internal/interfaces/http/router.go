package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurantes-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	RestaurantUC *usecase.RestaurantUseCase
	CategoryUC   *usecase.CategoryUseCase
	ProductUC    *usecase.ProductUseCase
	Errors       *ErrorFormatter
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Restaurantes
	restaurants := api.Group("/restaurantes")
	restaurantHandler := NewRestaurantHandler(deps.RestaurantUC, deps.Errors)
	restaurants.Get("/", restaurantHandler.List)
	restaurants.Post("/", restaurantHandler.Create)
	restaurants.Get("/usuario/:usuarioAdminId", restaurantHandler.ListByUsuarioAdmin)
	restaurants.Get("/:id", restaurantHandler.GetByID)
	restaurants.Put("/:id", restaurantHandler.Update)
	restaurants.Delete("/:id", restaurantHandler.Delete)

	// Categorías del menú
	categories := api.Group("/categorias")
	categoryHandler := NewCategoryHandler(deps.CategoryUC, deps.Errors)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/restaurante/:restauranteId", categoryHandler.ListByRestaurant)
	categories.Get("/:id", categoryHandler.GetByID)

	// Productos
	products := api.Group("/productos")
	productHandler := NewProductHandler(deps.ProductUC, deps.Errors)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/restaurante/:restauranteId", productHandler.ListByRestaurant)
	products.Get("/categoria/:categoriaId", productHandler.ListByCategory)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
}
