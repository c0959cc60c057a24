package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurantes-api/internal/application/dto"
	"github.com/jhoicas/restaurantes-api/internal/application/usecase"
	"github.com/jhoicas/restaurantes-api/internal/domain"
)

// CategoryHandler maneja las peticiones HTTP para categorías del menú.
type CategoryHandler struct {
	uc   *usecase.CategoryUseCase
	errs *ErrorFormatter
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase, errs *ErrorFormatter) *CategoryHandler {
	return &CategoryHandler{uc: uc, errs: errs}
}

// Create godoc
// @Summary      Crear categoría
// @Tags         categorias
// @Accept       json
// @Produce      json
// @Param        restaurante_id  formData  int     true   "Restaurante"
// @Param        nombre          formData  string  true   "Nombre"
// @Param        descripcion     formData  string  false  "Descripción"
// @Success      201  {object}  dto.Response{data=dto.CategoryResponse}
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/categorias [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	in, _, err := readForm(c)
	if err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return h.errs.Respond(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("Categoría creada exitosamente", out))
}

// GetByID godoc
// @Summary      Obtener categoría por ID
// @Tags         categorias
// @Produce      json
// @Param        id   path  int  true  "ID de la categoría"
// @Success      200  {object}  dto.Response{data=dto.CategoryResponse}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categorias/{id} [get]
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return h.errs.Respond(c, domain.ErrCategoryNotFound)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return h.errs.Respond(c, err)
	}
	return c.JSON(dto.OK("", out))
}

// ListByRestaurant godoc
// @Summary      Categorías de un restaurante
// @Tags         categorias
// @Produce      json
// @Param        restauranteId  path  int  true  "ID del restaurante"
// @Success      200  {object}  dto.Response{data=[]dto.CategoryResponse}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/categorias/restaurante/{restauranteId} [get]
func (h *CategoryHandler) ListByRestaurant(c *fiber.Ctx) error {
	id, ok := paramID(c, "restauranteId")
	if !ok {
		return invalidID(c, "restauranteId")
	}
	out, err := h.uc.ListByRestaurant(c.UserContext(), id)
	if err != nil {
		return h.errs.Respond(c, err)
	}
	return c.JSON(dto.OK("", out))
}
