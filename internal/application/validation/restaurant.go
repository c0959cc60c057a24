package validation

import (
	"context"

	"github.com/jhoicas/restaurantes-api/internal/application/dto"
	"github.com/jhoicas/restaurantes-api/internal/domain/entity"
)

// RestaurantFields campos normalizados de un restaurante. nil = no enviado.
type RestaurantFields struct {
	UsuarioAdminID *int64
	Nombre         *string
	Direccion      *string
	Telefono       *string
	Estado         *string
}

// Restaurant valida la entrada de un restaurante.
func Restaurant(ctx context.Context, mode Mode, in dto.FormValues) (*RestaurantFields, error) {
	out := &RestaurantFields{}
	verr := &Error{}
	if err := run(ctx, mode, in, restaurantRules, out, verr); err != nil {
		return nil, err
	}
	if err := verr.orNil(); err != nil {
		return nil, err
	}
	return out, nil
}

var restaurantRules = []rule[RestaurantFields]{
	{
		field:    "usuario_admin_id",
		required: "El campo usuario admin id es obligatorio.",
		apply: func(_ context.Context, raw string, out *RestaurantFields) (string, error) {
			id, ok := parseID(raw)
			if !ok {
				return "El campo usuario admin id debe ser un número entero.", nil
			}
			if id < 1 {
				return "El campo usuario admin id debe ser al menos 1.", nil
			}
			out.UsuarioAdminID = &id
			return "", nil
		},
	},
	{
		field:    "nombre",
		required: "El campo nombre es obligatorio.",
		apply: func(_ context.Context, raw string, out *RestaurantFields) (string, error) {
			if msg := maxLength(raw, 255, "nombre"); msg != "" {
				return msg, nil
			}
			out.Nombre = normalized(raw)
			return "", nil
		},
	},
	{
		field:    "direccion",
		required: "El campo dirección es obligatorio.",
		apply: func(_ context.Context, raw string, out *RestaurantFields) (string, error) {
			out.Direccion = normalized(raw)
			return "", nil
		},
	},
	{
		field:    "telefono",
		required: "El campo teléfono es obligatorio.",
		apply: func(_ context.Context, raw string, out *RestaurantFields) (string, error) {
			if msg := maxLength(raw, 20, "teléfono"); msg != "" {
				return msg, nil
			}
			out.Telefono = &raw
			return "", nil
		},
	},
	{
		field:    "estado",
		required: "El campo estado es obligatorio.",
		apply: func(_ context.Context, raw string, out *RestaurantFields) (string, error) {
			if !entity.ValidEstado(raw) {
				return "El estado seleccionado no es válido (Abierto o Cerrado).", nil
			}
			out.Estado = &raw
			return "", nil
		},
	},
}
