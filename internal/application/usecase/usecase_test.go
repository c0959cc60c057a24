package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurantes-api/internal/application/dto"
	"github.com/jhoicas/restaurantes-api/internal/application/usecase"
	"github.com/jhoicas/restaurantes-api/internal/application/validation"
	"github.com/jhoicas/restaurantes-api/internal/domain"
	"github.com/jhoicas/restaurantes-api/internal/domain/entity"
	"github.com/jhoicas/restaurantes-api/internal/domain/repository"
	"github.com/jhoicas/restaurantes-api/internal/infrastructure/memory"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

type mockBlobs struct {
	mock.Mock
}

func (m *mockBlobs) Store(ctx context.Context, namespace string, content []byte, ext string) (string, error) {
	args := m.Called(ctx, namespace, content, ext)
	return args.String(0), args.Error(1)
}

func (m *mockBlobs) Delete(ctx context.Context, path string) error {
	return m.Called(ctx, path).Error(0)
}

func (m *mockBlobs) URL(path string) string {
	return "https://cdn.example.com/" + path
}

type fixture struct {
	store       *memory.Store
	blobs       *mockBlobs
	products    *usecase.ProductUseCase
	restaurants *usecase.RestaurantUseCase
	categories  *usecase.CategoryUseCase
}

// newFixture arma los casos de uso con un restaurante (id 1) y una categoría (id 1).
func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	blobs := &mockBlobs{}
	ctx := context.Background()
	require.NoError(t, store.Restaurants().Create(ctx, &entity.Restaurant{
		UsuarioAdminID: 1, Nombre: "La Esquina", Direccion: "Calle 1", Telefono: "555", Estado: entity.EstadoAbierto,
	}))
	require.NoError(t, store.Categories().Create(ctx, &entity.Category{RestauranteID: 1, Nombre: "Platos"}))

	return &fixture{
		store:       store,
		blobs:       blobs,
		products:    usecase.NewProductUseCase(store.Products(), store.Restaurants(), store.Categories(), blobs),
		restaurants: usecase.NewRestaurantUseCase(store.Restaurants(), store.Categories(), store.Products(), memory.NewTxRunner(store), blobs),
		categories:  usecase.NewCategoryUseCase(store.Categories(), store.Restaurants()),
	}
}

func (f *fixture) seedProduct(t *testing.T, imagen string) int64 {
	t.Helper()
	p := &entity.Product{RestauranteID: 1, CategoriaID: 1, Nombre: "Burger", Precio: decimal.NewFromInt(10), Disponible: true}
	if imagen != "" {
		p.Imagen = &imagen
	}
	require.NoError(t, f.store.Products().Create(context.Background(), p))
	return p.ID
}

func productForm(kv ...string) dto.FormValues {
	in := dto.FormValues{}
	in.Set("restaurante_id", "1")
	in.Set("categoria_id", "1")
	in.Set("nombre", "Burger")
	in.Set("precio", "12.50")
	in.Set("disponible", "true")
	for i := 0; i+1 < len(kv); i += 2 {
		in.Set(kv[i], kv[i+1])
	}
	return in
}

func countProducts(t *testing.T, s *memory.Store) int {
	t.Helper()
	list, err := s.Products().List(context.Background())
	require.NoError(t, err)
	return len(list)
}

func TestProductUseCase_CrearConImagen(t *testing.T) {
	f := newFixture(t)
	f.blobs.On("Store", mock.Anything, usecase.ProductImageNamespace, pngHeader, "png").Return("productos/abc.png", nil)

	img := &dto.FileUpload{Filename: "burger.PNG", Size: int64(len(pngHeader)), Content: pngHeader}
	out, err := f.products.Create(context.Background(), productForm(), img)
	require.NoError(t, err)

	require.NotNil(t, out.Imagen)
	assert.Equal(t, "productos/abc.png", *out.Imagen)
	assert.Equal(t, "https://cdn.example.com/productos/abc.png", out.ImagenURL)
	assert.Equal(t, "La Esquina", out.Restaurante.Nombre)
	assert.Equal(t, "Platos", out.Categoria.Nombre)
	f.blobs.AssertExpectations(t)
}

func TestProductUseCase_CrearFallaAlmacenamiento(t *testing.T) {
	f := newFixture(t)
	boom := errors.New("disco lleno")
	f.blobs.On("Store", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", boom)

	img := &dto.FileUpload{Filename: "a.png", Size: int64(len(pngHeader)), Content: pngHeader}
	_, err := f.products.Create(context.Background(), productForm(), img)
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, countProducts(t, f.store))
}

func TestProductUseCase_CrearInvalidoNoGuardaNada(t *testing.T) {
	f := newFixture(t)

	img := &dto.FileUpload{Filename: "a.png", Size: int64(len(pngHeader)), Content: pngHeader}
	_, err := f.products.Create(context.Background(), productForm("precio", "-1"), img)

	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("precio"))
	assert.Zero(t, countProducts(t, f.store))
	f.blobs.AssertNotCalled(t, "Store", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestProductUseCase_ObtenerInexistente(t *testing.T) {
	f := newFixture(t)

	_, err := f.products.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.products.Update(context.Background(), 42, dto.FormValues{}, nil)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.ErrorIs(t, f.products.Delete(context.Background(), 42), domain.ErrProductNotFound)
}

func TestProductUseCase_ReemplazarImagen(t *testing.T) {
	f := newFixture(t)
	id := f.seedProduct(t, "productos/vieja.png")
	f.blobs.On("Store", mock.Anything, usecase.ProductImageNamespace, pngHeader, "png").Return("productos/nueva.png", nil)
	f.blobs.On("Delete", mock.Anything, "productos/vieja.png").Return(errors.New("permiso denegado"))

	img := &dto.FileUpload{Filename: "nueva.png", Size: int64(len(pngHeader)), Content: pngHeader}
	out, err := f.products.Update(context.Background(), id, dto.FormValues{}, img)
	require.NoError(t, err, "un fallo al borrar la imagen anterior no aborta la actualización")

	assert.Equal(t, "productos/nueva.png", *out.Imagen)
	assert.Equal(t, "Burger", out.Nombre)
	f.blobs.AssertExpectations(t)
}

func TestProductUseCase_ActualizarParcial(t *testing.T) {
	f := newFixture(t)
	id := f.seedProduct(t, "")

	in := dto.FormValues{}
	in.Set("precio", "15")
	out, err := f.products.Update(context.Background(), id, in, nil)
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(15).Equal(out.Precio))
	assert.Equal(t, "Burger", out.Nombre)
	assert.True(t, out.Disponible)
	assert.Nil(t, out.Imagen)
	f.blobs.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestProductUseCase_EliminarIgnoraFalloDeImagen(t *testing.T) {
	f := newFixture(t)
	id := f.seedProduct(t, "productos/a.png")
	f.blobs.On("Delete", mock.Anything, "productos/a.png").Return(errors.New("no disponible"))

	require.NoError(t, f.products.Delete(context.Background(), id))
	assert.Zero(t, countProducts(t, f.store))
	f.blobs.AssertExpectations(t)
}

func TestProductUseCase_Listados(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "")
	f.seedProduct(t, "")

	all, err := f.products.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, int64(1), all[0].ID)

	byCat, err := f.products.ListByCategory(context.Background(), 99)
	require.NoError(t, err)
	assert.Empty(t, byCat)
	assert.NotNil(t, byCat, "la lista vacía se serializa como []")
}

func TestRestaurantUseCase_EliminarEnCascada(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "productos/a.png")
	f.seedProduct(t, "")
	f.blobs.On("Delete", mock.Anything, "productos/a.png").Return(nil).Once()

	require.NoError(t, f.restaurants.Delete(context.Background(), 1))

	assert.Zero(t, countProducts(t, f.store))
	cats, err := f.store.Categories().ListByRestaurant(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, cats)
	_, err = f.restaurants.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrRestaurantNotFound)
	f.blobs.AssertExpectations(t)
}

func TestRestaurantUseCase_ActualizarSoloEstado(t *testing.T) {
	f := newFixture(t)

	in := dto.FormValues{}
	in.Set("estado", entity.EstadoCerrado)
	out, err := f.restaurants.Update(context.Background(), 1, in)
	require.NoError(t, err)

	assert.Equal(t, entity.EstadoCerrado, out.Estado)
	assert.Equal(t, "La Esquina", out.Nombre)
	assert.Equal(t, "555", out.Telefono)
}

func TestRestaurantUseCase_DetalleIncluyeMenu(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "productos/a.png")

	out, err := f.restaurants.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, out.Productos, 1)
	assert.Len(t, out.Categorias, 1)
	assert.Equal(t, "https://cdn.example.com/productos/a.png", out.Productos[0].ImagenURL)

	mine, err := f.restaurants.ListByUsuarioAdmin(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, mine, 1)
	others, err := f.restaurants.ListByUsuarioAdmin(context.Background(), 2)
	require.NoError(t, err)
	assert.Empty(t, others)
}

func TestCategoryUseCase_Crear(t *testing.T) {
	f := newFixture(t)

	in := dto.FormValues{}
	in.Set("restaurante_id", "1")
	in.Set("nombre", "Bebidas")
	out, err := f.categories.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, int64(2), out.ID)

	in.Set("restaurante_id", "7")
	_, err = f.categories.Create(context.Background(), in)
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("restaurante_id"))

	_, err = f.categories.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

// vanishingProducts simula un DELETE concurrente: la fila desaparece justo después de leerla.
type vanishingProducts struct {
	repository.ProductRepository
}

func (v vanishingProducts) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	p, err := v.ProductRepository.GetByID(ctx, id)
	if err != nil || p == nil {
		return p, err
	}
	return p, v.ProductRepository.Delete(ctx, id)
}

func TestProductUseCase_ActualizarProductoBorradoEnParalelo(t *testing.T) {
	f := newFixture(t)
	id := f.seedProduct(t, "")
	f.blobs.On("Store", mock.Anything, usecase.ProductImageNamespace, pngHeader, "png").Return("productos/nueva.png", nil)
	f.blobs.On("Delete", mock.Anything, "productos/nueva.png").Return(nil).Once()

	uc := usecase.NewProductUseCase(vanishingProducts{f.store.Products()}, f.store.Restaurants(), f.store.Categories(), f.blobs)
	img := &dto.FileUpload{Filename: "nueva.png", Size: int64(len(pngHeader)), Content: pngHeader}
	_, err := uc.Update(context.Background(), id, dto.FormValues{}, img)

	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.Zero(t, countProducts(t, f.store))
	f.blobs.AssertExpectations(t)
}
