package validation

import (
	"context"

	"github.com/jhoicas/restaurantes-api/internal/application/dto"
)

// CategoryFields campos normalizados de una categoría.
type CategoryFields struct {
	RestauranteID *int64
	Nombre        *string
	Descripcion   *string
}

// Category valida la creación de una categoría del menú.
func Category(ctx context.Context, in dto.FormValues, refs References) (*CategoryFields, error) {
	out := &CategoryFields{}
	verr := &Error{}
	rules := []rule[CategoryFields]{
		{
			field:    "restaurante_id",
			required: "El ID del restaurante es obligatorio",
			apply: func(ctx context.Context, raw string, out *CategoryFields) (string, error) {
				id, ok := parseID(raw)
				if !ok {
					return "El campo restaurante id debe ser un número entero.", nil
				}
				exists, err := refs.RestaurantExists(ctx, id)
				if err != nil {
					return "", err
				}
				if !exists {
					return "El restaurante seleccionado no existe", nil
				}
				out.RestauranteID = &id
				return "", nil
			},
		},
		{
			field:    "nombre",
			required: "El nombre de la categoría es obligatorio",
			apply: func(_ context.Context, raw string, out *CategoryFields) (string, error) {
				if msg := maxLength(raw, 255, "nombre"); msg != "" {
					return msg, nil
				}
				out.Nombre = normalized(raw)
				return "", nil
			},
		},
		{
			field:    "descripcion",
			nullable: true,
			apply: func(_ context.Context, raw string, out *CategoryFields) (string, error) {
				out.Descripcion = normalized(raw)
				return "", nil
			},
		},
	}
	if err := run(ctx, Create, in, rules, out, verr); err != nil {
		return nil, err
	}
	if err := verr.orNil(); err != nil {
		return nil, err
	}
	return out, nil
}
