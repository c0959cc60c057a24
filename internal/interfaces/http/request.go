package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurantes-api/internal/application/dto"
	"github.com/jhoicas/restaurantes-api/internal/application/validation"
)

// imageField nombre del campo multipart con la imagen del producto.
const imageField = "imagen"

var errUnsupportedBody = errors.New("tipo de contenido no soportado")

// readForm normaliza el cuerpo (multipart, urlencoded o JSON) a dto.FormValues.
// Si el cuerpo trae un archivo en "imagen" se devuelve como upload.
func readForm(c *fiber.Ctx) (dto.FormValues, *dto.FileUpload, error) {
	ct := strings.ToLower(c.Get(fiber.HeaderContentType))
	switch {
	case strings.HasPrefix(ct, fiber.MIMEMultipartForm):
		return readMultipart(c)
	case strings.HasPrefix(ct, fiber.MIMEApplicationForm):
		form := dto.FormValues{}
		c.Request().PostArgs().VisitAll(func(k, v []byte) {
			form.Set(string(k), string(v))
		})
		return form, textImage(form), nil
	case strings.HasPrefix(ct, fiber.MIMEApplicationJSON):
		form, err := readJSON(c.Body())
		if err != nil {
			return nil, nil, err
		}
		return form, textImage(form), nil
	case len(bytes.TrimSpace(c.Body())) == 0:
		return dto.FormValues{}, nil, nil
	default:
		return nil, nil, errUnsupportedBody
	}
}

func readMultipart(c *fiber.Ctx) (dto.FormValues, *dto.FileUpload, error) {
	mf, err := c.MultipartForm()
	if err != nil {
		return nil, nil, fmt.Errorf("multipart: %w", err)
	}
	form := dto.FormValues{}
	for k, vs := range mf.Value {
		if len(vs) > 0 {
			form.Set(k, vs[0])
		}
	}
	files := mf.File[imageField]
	if len(files) == 0 {
		return form, textImage(form), nil
	}
	upload, err := readUpload(files[0])
	if err != nil {
		return nil, nil, err
	}
	return form, upload, nil
}

// textImage convierte un campo "imagen" enviado como texto en un upload vacío,
// que la validación rechaza como imagen inválida. Vacío o null equivale a no enviarlo.
func textImage(form dto.FormValues) *dto.FileUpload {
	v, ok := form.Lookup(imageField)
	if !ok {
		return nil
	}
	delete(form, imageField)
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil
	}
	return &dto.FileUpload{Filename: *v}
}

// readUpload lee como mucho MaxImageBytes+1 bytes: suficiente para que la
// validación detecte el exceso sin cargar archivos enormes en memoria.
func readUpload(fh *multipart.FileHeader) (*dto.FileUpload, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("abrir %s: %w", fh.Filename, err)
	}
	defer f.Close()
	content, err := io.ReadAll(io.LimitReader(f, validation.MaxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("leer %s: %w", fh.Filename, err)
	}
	return &dto.FileUpload{Filename: fh.Filename, Size: fh.Size, Content: content}, nil
}

// readJSON convierte un objeto JSON plano a texto: números y booleanos a su forma
// textual ("12.5", "true") y null a campo presente sin valor.
func readJSON(body []byte) (dto.FormValues, error) {
	form := dto.FormValues{}
	if len(bytes.TrimSpace(body)) == 0 {
		return form, nil
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("json: %w", err)
	}
	for k, v := range raw {
		switch x := v.(type) {
		case nil:
			form.SetNull(k)
		case string:
			form.Set(k, x)
		case json.Number:
			form.Set(k, x.String())
		case bool:
			form.Set(k, strconv.FormatBool(x))
		default:
			return nil, fmt.Errorf("json: el campo %s debe ser un valor simple", k)
		}
	}
	return form, nil
}

// paramID lee un parámetro de ruta numérico.
func paramID(c *fiber.Ctx, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

func invalidID(c *fiber.Ctx, name string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: name + " debe ser numérico"})
}
