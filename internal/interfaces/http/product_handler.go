package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurantes-api/internal/application/dto"
	"github.com/jhoicas/restaurantes-api/internal/application/usecase"
	"github.com/jhoicas/restaurantes-api/internal/domain"
)

// ProductHandler maneja las peticiones HTTP para productos del menú.
type ProductHandler struct {
	uc   *usecase.ProductUseCase
	errs *ErrorFormatter
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, errs *ErrorFormatter) *ProductHandler {
	return &ProductHandler{uc: uc, errs: errs}
}

// List godoc
// @Summary      Listar productos
// @Tags         productos
// @Produce      json
// @Success      200  {object}  dto.Response{data=[]dto.ProductResponse}
// @Router       /api/productos [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return h.errs.Respond(c, err)
	}
	return c.JSON(dto.OK("", out))
}

// Create godoc
// @Summary      Crear producto
// @Description  Acepta multipart/form-data (con imagen opcional), urlencoded o JSON.
// @Tags         productos
// @Accept       multipart/form-data
// @Accept       json
// @Produce      json
// @Param        restaurante_id  formData  int     true   "Restaurante"
// @Param        categoria_id    formData  int     true   "Categoría"
// @Param        nombre          formData  string  true   "Nombre"
// @Param        descripcion     formData  string  false  "Descripción"
// @Param        precio          formData  number  true   "Precio"
// @Param        disponible      formData  bool    true   "Disponible"
// @Param        imagen          formData  file    false  "Imagen (jpeg, png, gif; máx 2MB)"
// @Success      201  {object}  dto.Response{data=dto.ProductResponse}
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/productos [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	in, img, err := readForm(c)
	if err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in, img)
	if err != nil {
		return h.errs.Respond(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("Producto creado exitosamente", out))
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         productos
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.Response{data=dto.ProductResponse}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return h.errs.Respond(c, domain.ErrProductNotFound)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return h.errs.Respond(c, err)
	}
	return c.JSON(dto.OK("", out))
}

// Update godoc
// @Summary      Actualizar producto
// @Description  Solo se validan y aplican los campos presentes. Una imagen nueva reemplaza la anterior.
// @Tags         productos
// @Accept       multipart/form-data
// @Accept       json
// @Produce      json
// @Param        id  path  int  true  "ID del producto"
// @Success      200  {object}  dto.Response{data=dto.ProductResponse}
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return h.errs.Respond(c, domain.ErrProductNotFound)
	}
	in, img, err := readForm(c)
	if err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), id, in, img)
	if err != nil {
		return h.errs.Respond(c, err)
	}
	return c.JSON(dto.OK("Producto actualizado exitosamente", out))
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         productos
// @Param        id  path  int  true  "ID del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return h.errs.Respond(c, domain.ErrProductNotFound)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return h.errs.Respond(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListByRestaurant godoc
// @Summary      Productos de un restaurante
// @Tags         productos
// @Produce      json
// @Param        restauranteId  path  int  true  "ID del restaurante"
// @Success      200  {object}  dto.Response{data=[]dto.ProductResponse}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/productos/restaurante/{restauranteId} [get]
func (h *ProductHandler) ListByRestaurant(c *fiber.Ctx) error {
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

// ListByCategory godoc
// @Summary      Productos de una categoría
// @Tags         productos
// @Produce      json
// @Param        categoriaId  path  int  true  "ID de la categoría"
// @Success      200  {object}  dto.Response{data=[]dto.ProductResponse}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/productos/categoria/{categoriaId} [get]
func (h *ProductHandler) ListByCategory(c *fiber.Ctx) error {
	id, ok := paramID(c, "categoriaId")
	if !ok {
		return invalidID(c, "categoriaId")
	}
	out, err := h.uc.ListByCategory(c.UserContext(), id)
	if err != nil {
		return h.errs.Respond(c, err)
	}
	return c.JSON(dto.OK("", out))
}
