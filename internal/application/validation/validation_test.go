package validation_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurantes-api/internal/application/dto"
	"github.com/jhoicas/restaurantes-api/internal/application/validation"
)

// pngHeader cabecera mínima que http.DetectContentType reconoce como image/png.
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

type fakeRefs struct {
	restaurants map[int64]bool
	categories  map[int64]bool
	err         error
}

func (f fakeRefs) RestaurantExists(_ context.Context, id int64) (bool, error) {
	return f.restaurants[id], f.err
}

func (f fakeRefs) CategoryExists(_ context.Context, id int64) (bool, error) {
	return f.categories[id], f.err
}

func refs() fakeRefs {
	return fakeRefs{restaurants: map[int64]bool{1: true}, categories: map[int64]bool{1: true}}
}

func form(kv ...string) dto.FormValues {
	f := dto.FormValues{}
	for i := 0; i+1 < len(kv); i += 2 {
		f.Set(kv[i], kv[i+1])
	}
	return f
}

func validProduct() dto.FormValues {
	return form("restaurante_id", "1", "categoria_id", "1", "nombre", "Burger", "precio", "12.5", "disponible", "true")
}

func fieldsOf(t *testing.T, err error) map[string][]string {
	t.Helper()
	var verr *validation.Error
	require.True(t, errors.As(err, &verr), "se esperaba *validation.Error, se obtuvo %v", err)
	return verr.Fields
}

func TestProduct_CreateValido(t *testing.T) {
	out, err := validation.Product(context.Background(), validation.Create, validProduct(), nil, refs())
	require.NoError(t, err)

	assert.Equal(t, int64(1), *out.RestauranteID)
	assert.Equal(t, int64(1), *out.CategoriaID)
	assert.Equal(t, "Burger", *out.Nombre)
	assert.True(t, decimal.RequireFromString("12.5").Equal(*out.Precio))
	assert.True(t, *out.Disponible)
	assert.Nil(t, out.Imagen)
	assert.False(t, out.DescripcionSet)
}

func TestProduct_DisponibleCodificaciones(t *testing.T) {
	cases := map[string]bool{"true": true, "1": true, "false": false, "0": false}
	for raw, want := range cases {
		in := validProduct()
		in.Set("disponible", raw)
		out, err := validation.Product(context.Background(), validation.Create, in, nil, refs())
		require.NoError(t, err, raw)
		assert.Equal(t, want, *out.Disponible, raw)
	}

	in := validProduct()
	in.Set("disponible", "si")
	_, err := validation.Product(context.Background(), validation.Create, in, nil, refs())
	assert.Equal(t, []string{"La disponibilidad debe ser true o false"}, fieldsOf(t, err)["disponible"])
}

func TestProduct_CreateCamposObligatorios(t *testing.T) {
	_, err := validation.Product(context.Background(), validation.Create, dto.FormValues{}, nil, refs())
	fields := fieldsOf(t, err)

	for _, f := range []string{"restaurante_id", "categoria_id", "nombre", "precio", "disponible"} {
		assert.Contains(t, fields, f)
	}
	assert.NotContains(t, fields, "descripcion")
	assert.NotContains(t, fields, "imagen")
}

func TestProduct_PrecioNegativo(t *testing.T) {
	in := validProduct()
	in.Set("precio", "-1")
	_, err := validation.Product(context.Background(), validation.Create, in, nil, refs())
	assert.Equal(t, []string{"El precio debe ser mayor a 0"}, fieldsOf(t, err)["precio"])

	in.Set("precio", "doce")
	_, err = validation.Product(context.Background(), validation.Create, in, nil, refs())
	assert.Equal(t, []string{"El precio debe ser un número válido"}, fieldsOf(t, err)["precio"])

	in.Set("precio", "0")
	_, err = validation.Product(context.Background(), validation.Create, in, nil, refs())
	assert.NoError(t, err, "precio 0 es válido")
}

func TestProduct_ReferenciasInexistentes(t *testing.T) {
	in := validProduct()
	in.Set("restaurante_id", "99")
	in.Set("categoria_id", "abc")
	_, err := validation.Product(context.Background(), validation.Create, in, nil, refs())
	fields := fieldsOf(t, err)

	assert.Equal(t, []string{"El restaurante seleccionado no existe"}, fields["restaurante_id"])
	assert.Equal(t, []string{"El campo categoria id debe ser un número entero."}, fields["categoria_id"])
}

func TestProduct_ErrorDeReferenciasNoEsValidacion(t *testing.T) {
	boom := errors.New("conexión perdida")
	r := refs()
	r.err = boom

	_, err := validation.Product(context.Background(), validation.Create, validProduct(), nil, r)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	var verr *validation.Error
	assert.False(t, errors.As(err, &verr))
}

func TestProduct_NombreLargo(t *testing.T) {
	in := validProduct()
	in.Set("nombre", strings.Repeat("ñ", 256))
	_, err := validation.Product(context.Background(), validation.Create, in, nil, refs())
	assert.Contains(t, fieldsOf(t, err), "nombre")

	// 255 caracteres con acento descompuesto (e + U+0301) siguen siendo 255 tras NFC.
	in.Set("nombre", strings.Repeat("e\u0301", 255))
	out, err := validation.Product(context.Background(), validation.Create, in, nil, refs())
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("\u00e9", 255), *out.Nombre)
}

func TestProduct_UpdateSoloCamposPresentes(t *testing.T) {
	out, err := validation.Product(context.Background(), validation.Update, form("precio", "20"), nil, refs())
	require.NoError(t, err)

	assert.Nil(t, out.RestauranteID)
	assert.Nil(t, out.Nombre)
	assert.Nil(t, out.Disponible)
	assert.True(t, decimal.NewFromInt(20).Equal(*out.Precio))
}

func TestProduct_UpdateCampoVacioEsError(t *testing.T) {
	_, err := validation.Product(context.Background(), validation.Update, form("nombre", "  "), nil, refs())
	assert.Contains(t, fieldsOf(t, err), "nombre")
}

func TestProduct_DescripcionNull(t *testing.T) {
	in := dto.FormValues{}
	in.SetNull("descripcion")
	out, err := validation.Product(context.Background(), validation.Update, in, nil, refs())
	require.NoError(t, err)
	assert.True(t, out.DescripcionSet)
	assert.Nil(t, out.Descripcion)
}

func TestProduct_Imagen(t *testing.T) {
	ok := &dto.FileUpload{Filename: "foto.PNG", Size: int64(len(pngHeader)), Content: pngHeader}
	out, err := validation.Product(context.Background(), validation.Create, validProduct(), ok, refs())
	require.NoError(t, err)
	assert.Same(t, ok, out.Imagen)

	cases := []struct {
		name string
		img  *dto.FileUpload
		msg  string
	}{
		{"muy grande", &dto.FileUpload{Filename: "a.png", Size: validation.MaxImageBytes + 1, Content: pngHeader}, "La imagen no debe pesar más de 2MB"},
		{"no es imagen", &dto.FileUpload{Filename: "a.png", Size: 5, Content: []byte("hola!")}, "El archivo debe ser una imagen válida"},
		{"extensión", &dto.FileUpload{Filename: "a.bmp", Size: int64(len(pngHeader)), Content: pngHeader}, "La imagen debe ser JPEG, PNG, JPG o GIF"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := validation.Product(context.Background(), validation.Create, validProduct(), tc.img, refs())
			assert.Equal(t, []string{tc.msg}, fieldsOf(t, err)["imagen"])
		})
	}
}

func TestRestaurant_CreateYUpdate(t *testing.T) {
	in := form("usuario_admin_id", "3", "nombre", "La Esquina", "direccion", "Calle 1", "telefono", "555-1234", "estado", "Abierto")
	out, err := validation.Restaurant(context.Background(), validation.Create, in)
	require.NoError(t, err)
	assert.Equal(t, int64(3), *out.UsuarioAdminID)
	assert.Equal(t, "Abierto", *out.Estado)

	_, err = validation.Restaurant(context.Background(), validation.Create, form("nombre", "X"))
	fields := fieldsOf(t, err)
	assert.Len(t, fields, 4)

	out, err = validation.Restaurant(context.Background(), validation.Update, form("estado", "Cerrado"))
	require.NoError(t, err)
	assert.Equal(t, "Cerrado", *out.Estado)
	assert.Nil(t, out.Nombre)
}

func TestRestaurant_Reglas(t *testing.T) {
	cases := []struct {
		field, value string
	}{
		{"usuario_admin_id", "0"},
		{"usuario_admin_id", "uno"},
		{"telefono", strings.Repeat("9", 21)},
		{"estado", "abierto"},
	}
	for _, tc := range cases {
		_, err := validation.Restaurant(context.Background(), validation.Update, form(tc.field, tc.value))
		assert.Contains(t, fieldsOf(t, err), tc.field, "%s=%q", tc.field, tc.value)
	}
}

func TestCategory(t *testing.T) {
	out, err := validation.Category(context.Background(), form("restaurante_id", "1", "nombre", "Bebidas"), refs())
	require.NoError(t, err)
	assert.Equal(t, "Bebidas", *out.Nombre)
	assert.Nil(t, out.Descripcion)

	_, err = validation.Category(context.Background(), form("restaurante_id", "2"), refs())
	fields := fieldsOf(t, err)
	assert.Contains(t, fields, "restaurante_id")
	assert.Contains(t, fields, "nombre")
}

func TestError_MensajeOrdenado(t *testing.T) {
	e := &validation.Error{}
	e.Add("precio", "malo")
	e.Add("nombre", "falta")
	assert.Equal(t, "validación fallida: nombre: falta; precio: malo", e.Error())
	assert.True(t, e.Has("precio"))
}

func TestProduct_PrecioEscalaYMagnitud(t *testing.T) {
	cases := map[string]string{
		"12.345":        "El precio no debe tener más de 2 decimales",
		"0.001":         "El precio no debe tener más de 2 decimales",
		"12345678901.5": "El precio no debe ser mayor a 9999999999.99",
		"1e15":          "El precio no debe ser mayor a 9999999999.99",
	}
	for raw, msg := range cases {
		in := validProduct()
		in.Set("precio", raw)
		_, err := validation.Product(context.Background(), validation.Create, in, nil, refs())
		assert.Equal(t, []string{msg}, fieldsOf(t, err)["precio"], raw)
	}

	for _, raw := range []string{"12.50", "12.500", "9999999999.99"} {
		in := validProduct()
		in.Set("precio", raw)
		out, err := validation.Product(context.Background(), validation.Create, in, nil, refs())
		require.NoError(t, err, raw)
		assert.True(t, decimal.RequireFromString(raw).Equal(*out.Precio), raw)
	}
}
