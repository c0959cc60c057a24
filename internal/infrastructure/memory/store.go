// Package memory implementa los puertos de persistencia en memoria (DB_DRIVER=memory).
// Sirve para demos locales sin PostgreSQL y como doble de prueba de los casos de uso.
package memory

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/jhoicas/restaurantes-api/internal/application/usecase"
	"github.com/jhoicas/restaurantes-api/internal/domain/entity"
	"github.com/jhoicas/restaurantes-api/internal/domain/repository"
)

var _ usecase.TxRunner = (*TxRunner)(nil)

// Store estado compartido por los repositorios en memoria.
type Store struct {
	mu          sync.RWMutex
	restaurants map[int64]entity.Restaurant
	categories  map[int64]entity.Category
	products    map[int64]entity.Product
	lastID      struct{ restaurant, category, product int64 }
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		restaurants: make(map[int64]entity.Restaurant),
		categories:  make(map[int64]entity.Category),
		products:    make(map[int64]entity.Product),
	}
}

// Restaurants devuelve el repositorio de restaurantes.
func (s *Store) Restaurants() *RestaurantRepo { return &RestaurantRepo{s: s} }

// Categories devuelve el repositorio de categorías.
func (s *Store) Categories() *CategoryRepo { return &CategoryRepo{s: s} }

// Products devuelve el repositorio de productos.
func (s *Store) Products() *ProductRepo { return &ProductRepo{s: s} }

// TxRunner emula una transacción: si fn falla se restaura la foto previa del almacén.
// No aísla de escrituras concurrentes de otras peticiones.
type TxRunner struct {
	s *Store
}

// NewTxRunner construye el runner sobre el almacén.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

// Run ejecuta fn con los repositorios del almacén y hace rollback si devuelve error.
func (r *TxRunner) Run(_ context.Context, fn func(
	restaurants repository.RestaurantRepository,
	categories repository.CategoryRepository,
	products repository.ProductRepository,
) error) error {
	r.s.mu.RLock()
	rs, cs, ps := maps.Clone(r.s.restaurants), maps.Clone(r.s.categories), maps.Clone(r.s.products)
	r.s.mu.RUnlock()

	if err := fn(r.s.Restaurants(), r.s.Categories(), r.s.Products()); err != nil {
		r.s.mu.Lock()
		r.s.restaurants, r.s.categories, r.s.products = rs, cs, ps
		r.s.mu.Unlock()
		return err
	}
	return nil
}

func sortedKeys[V any](m map[int64]V) []int64 {
	return slices.Sorted(maps.Keys(m))
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
