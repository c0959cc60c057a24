package validation

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurantes-api/internal/application/dto"
)

// MaxImageBytes tamaño máximo de la imagen de un producto (2048 KiB).
const MaxImageBytes = 2 * 1024 * 1024

// MaxPrecio mayor precio representable en la columna NUMERIC(12, 2).
var MaxPrecio = decimal.RequireFromString("9999999999.99")

var (
	imageExtensions = map[string]bool{"jpeg": true, "png": true, "jpg": true, "gif": true}
	imageMIMEs      = map[string]bool{"image/jpeg": true, "image/png": true, "image/gif": true}
)

// ProductFields campos normalizados de un producto. nil = no enviado.
type ProductFields struct {
	RestauranteID  *int64
	CategoriaID    *int64
	Nombre         *string
	Descripcion    *string
	DescripcionSet bool // true si se envió descripcion (incluido null)
	Precio         *decimal.Decimal
	Disponible     *bool
	Imagen         *dto.FileUpload
}

// Product valida la entrada de un producto. Devuelve *Error si la entrada es inválida
// y cualquier otro error si falló una consulta de referencias.
func Product(ctx context.Context, mode Mode, in dto.FormValues, img *dto.FileUpload, refs References) (*ProductFields, error) {
	out := &ProductFields{}
	verr := &Error{}
	if err := run(ctx, mode, in, productRules(refs), out, verr); err != nil {
		return nil, err
	}
	if img != nil {
		if msg := imageRule(img); msg != "" {
			verr.Add("imagen", msg)
		} else {
			out.Imagen = img
		}
	}
	if err := verr.orNil(); err != nil {
		return nil, err
	}
	return out, nil
}

func productRules(refs References) []rule[ProductFields] {
	return []rule[ProductFields]{
		{
			field:    "restaurante_id",
			required: "El ID del restaurante es obligatorio",
			apply: func(ctx context.Context, raw string, out *ProductFields) (string, error) {
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
			field:    "categoria_id",
			required: "El ID de la categoría es obligatorio",
			apply: func(ctx context.Context, raw string, out *ProductFields) (string, error) {
				id, ok := parseID(raw)
				if !ok {
					return "El campo categoria id debe ser un número entero.", nil
				}
				exists, err := refs.CategoryExists(ctx, id)
				if err != nil {
					return "", err
				}
				if !exists {
					return "La categoría seleccionada no existe", nil
				}
				out.CategoriaID = &id
				return "", nil
			},
		},
		{
			field:    "nombre",
			required: "El nombre del producto es obligatorio",
			apply: func(_ context.Context, raw string, out *ProductFields) (string, error) {
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
			onNull: func(out *ProductFields) {
				out.Descripcion = nil
				out.DescripcionSet = true
			},
			apply: func(_ context.Context, raw string, out *ProductFields) (string, error) {
				out.Descripcion = normalized(raw)
				out.DescripcionSet = true
				return "", nil
			},
		},
		{
			field:    "precio",
			required: "El precio es obligatorio",
			apply: func(_ context.Context, raw string, out *ProductFields) (string, error) {
				p, err := decimal.NewFromString(raw)
				if err != nil {
					return "El precio debe ser un número válido", nil
				}
				if msg := CheckPrecio(p); msg != "" {
					return msg, nil
				}
				out.Precio = &p
				return "", nil
			},
		},
		{
			field:    "disponible",
			required: "La disponibilidad es obligatoria",
			apply: func(_ context.Context, raw string, out *ProductFields) (string, error) {
				var b bool
				switch raw {
				case "true", "1":
					b = true
				case "false", "0":
					b = false
				default:
					return "La disponibilidad debe ser true o false", nil
				}
				out.Disponible = &b
				return "", nil
			},
		},
	}
}

// CheckPrecio valida signo, escala (2 decimales) y magnitud de un precio ya parseado.
func CheckPrecio(p decimal.Decimal) string {
	switch {
	case p.IsNegative():
		return "El precio debe ser mayor a 0"
	case !p.Equal(p.Truncate(2)):
		return "El precio no debe tener más de 2 decimales"
	case p.GreaterThan(MaxPrecio):
		return "El precio no debe ser mayor a 9999999999.99"
	}
	return ""
}

func imageRule(img *dto.FileUpload) string {
	if img.Size > MaxImageBytes || len(img.Content) > MaxImageBytes {
		return "La imagen no debe pesar más de 2MB"
	}
	if len(img.Content) == 0 || !imageMIMEs[http.DetectContentType(img.Content)] {
		return "El archivo debe ser una imagen válida"
	}
	if !imageExtensions[img.Extension()] {
		return "La imagen debe ser JPEG, PNG, JPG o GIF"
	}
	return ""
}
