package memory

import (
	"context"

	"github.com/jhoicas/restaurantes-api/internal/domain/entity"
	"github.com/jhoicas/restaurantes-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo categorías en memoria.
type CategoryRepo struct {
	s *Store
}

func (r *CategoryRepo) Create(_ context.Context, category *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.lastID.category++
	category.ID = r.s.lastID.category
	c := *category
	c.Descripcion = cloneString(category.Descripcion)
	r.s.categories[c.ID] = c
	return nil
}

func (r *CategoryRepo) GetByID(_ context.Context, id int64) (*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.categories[id]
	if !ok {
		return nil, nil
	}
	c.Descripcion = cloneString(c.Descripcion)
	return &c, nil
}

func (r *CategoryRepo) ListByRestaurant(_ context.Context, restauranteID int64) ([]*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.Category
	for _, id := range sortedKeys(r.s.categories) {
		c := r.s.categories[id]
		if c.RestauranteID == restauranteID {
			c.Descripcion = cloneString(c.Descripcion)
			list = append(list, &c)
		}
	}
	return list, nil
}

func (r *CategoryRepo) DeleteByRestaurant(_ context.Context, restauranteID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, c := range r.s.categories {
		if c.RestauranteID == restauranteID {
			delete(r.s.categories, id)
		}
	}
	return nil
}
