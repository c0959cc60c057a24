package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurantes-api/internal/application/dto"
	"github.com/jhoicas/restaurantes-api/internal/application/usecase"
	"github.com/jhoicas/restaurantes-api/internal/domain"
)

// RestaurantHandler maneja las peticiones HTTP para restaurantes.
type RestaurantHandler struct {
	uc   *usecase.RestaurantUseCase
	errs *ErrorFormatter
}

// NewRestaurantHandler construye el handler.
func NewRestaurantHandler(uc *usecase.RestaurantUseCase, errs *ErrorFormatter) *RestaurantHandler {
	return &RestaurantHandler{uc: uc, errs: errs}
}

// List godoc
// @Summary      Listar restaurantes con categorías y productos
// @Tags         restaurantes
// @Produce      json
// @Success      200  {object}  dto.Response{data=[]dto.RestaurantDetailResponse}
// @Router       /api/restaurantes [get]
func (h *RestaurantHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return h.errs.Respond(c, err)
	}
	return c.JSON(dto.OK("", out))
}

// Create godoc
// @Summary      Crear restaurante
// @Tags         restaurantes
// @Accept       json
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        usuario_admin_id  formData  int     true   "Usuario administrador"
// @Param        nombre            formData  string  true   "Nombre"
// @Param        direccion         formData  string  true   "Dirección"
// @Param        telefono          formData  string  false  "Teléfono"
// @Param        estado            formData  string  true   "Abierto | Cerrado"
// @Success      201  {object}  dto.Response{data=dto.RestaurantResponse}
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/restaurantes [post]
func (h *RestaurantHandler) Create(c *fiber.Ctx) error {
	in, _, err := readForm(c)
	if err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return h.errs.Respond(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("Restaurante creado exitosamente", out))
}

// GetByID godoc
// @Summary      Obtener restaurante con categorías y productos
// @Tags         restaurantes
// @Produce      json
// @Param        id   path  int  true  "ID del restaurante"
// @Success      200  {object}  dto.Response{data=dto.RestaurantDetailResponse}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/restaurantes/{id} [get]
func (h *RestaurantHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return h.errs.Respond(c, domain.ErrRestaurantNotFound)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return h.errs.Respond(c, err)
	}
	return c.JSON(dto.OK("", out))
}

// Update godoc
// @Summary      Actualizar restaurante
// @Tags         restaurantes
// @Accept       json
// @Produce      json
// @Param        id  path  int  true  "ID del restaurante"
// @Success      200  {object}  dto.Response{data=dto.RestaurantResponse}
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/restaurantes/{id} [put]
func (h *RestaurantHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return h.errs.Respond(c, domain.ErrRestaurantNotFound)
	}
	in, _, err := readForm(c)
	if err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return h.errs.Respond(c, err)
	}
	return c.JSON(dto.OK("Restaurante actualizado exitosamente", out))
}

// Delete godoc
// @Summary      Eliminar restaurante
// @Description  Elimina también sus categorías, productos e imágenes.
// @Tags         restaurantes
// @Param        id  path  int  true  "ID del restaurante"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/restaurantes/{id} [delete]
func (h *RestaurantHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return h.errs.Respond(c, domain.ErrRestaurantNotFound)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return h.errs.Respond(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListByUsuarioAdmin godoc
// @Summary      Restaurantes de un usuario administrador
// @Tags         restaurantes
// @Produce      json
// @Param        usuarioAdminId  path  int  true  "ID del usuario administrador"
// @Success      200  {object}  dto.Response{data=[]dto.RestaurantDetailResponse}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/restaurantes/usuario/{usuarioAdminId} [get]
func (h *RestaurantHandler) ListByUsuarioAdmin(c *fiber.Ctx) error {
	id, ok := paramID(c, "usuarioAdminId")
	if !ok {
		return invalidID(c, "usuarioAdminId")
	}
	out, err := h.uc.ListByUsuarioAdmin(c.UserContext(), id)
	if err != nil {
		return h.errs.Respond(c, err)
	}
	return c.JSON(dto.OK("", out))
}
