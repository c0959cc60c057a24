package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurantes-api/internal/application/dto"
	"github.com/jhoicas/restaurantes-api/internal/application/validation"
	"github.com/jhoicas/restaurantes-api/internal/domain"
	"github.com/jhoicas/restaurantes-api/pkg/logger"
)

// ErrorFormatter traduce errores de casos de uso a respuestas HTTP.
// debug decide si el detalle de un error interno llega al cliente.
type ErrorFormatter struct {
	debug bool
	log   *logger.Logger
}

// NewErrorFormatter construye el formateador.
func NewErrorFormatter(debug bool, log *logger.Logger) *ErrorFormatter {
	return &ErrorFormatter{debug: debug, log: log}
}

// Respond escribe la respuesta de error: 422 validación, 404 no encontrado,
// 409 conflicto y 500 para todo lo demás (registrado en el log).
func (f *ErrorFormatter) Respond(c *fiber.Ctx, err error) error {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: "Errores de validación",
			Errors:  verr.Fields,
		})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: notFoundMessage(err)})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:    "CONFLICT",
			Message: "El recurso referenciado ya no existe",
		})
	}
	return f.internal(c, err)
}

func (f *ErrorFormatter) internal(c *fiber.Ctx, err error) error {
	f.log.Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("error interno")
	detail := "Contacte al administrador"
	if f.debug {
		detail = err.Error()
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code:    "INTERNAL",
		Message: "Error interno del servidor",
		Error:   detail,
	})
}

// FiberHandler sirve como fiber.Config.ErrorHandler: rutas inexistentes,
// cuerpos demasiado grandes y pánicos recuperados usan el mismo sobre.
func (f *ErrorFormatter) FiberHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: "HTTP_" + httpCodeName(fe.Code), Message: fe.Message})
	}
	return f.internal(c, err)
}

func httpCodeName(code int) string {
	switch code {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusRequestEntityTooLarge:
		return "PAYLOAD_TOO_LARGE"
	default:
		return "BAD_REQUEST"
	}
}

func notFoundMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return "Producto no encontrado"
	case errors.Is(err, domain.ErrRestaurantNotFound):
		return "Restaurante no encontrado"
	case errors.Is(err, domain.ErrCategoryNotFound):
		return "Categoría no encontrada"
	default:
		return "Recurso no encontrado"
	}
}
