package memory

import (
	"context"

	"github.com/jhoicas/restaurantes-api/internal/domain"
	"github.com/jhoicas/restaurantes-api/internal/domain/entity"
	"github.com/jhoicas/restaurantes-api/internal/domain/repository"
)

var _ repository.RestaurantRepository = (*RestaurantRepo)(nil)

// RestaurantRepo restaurantes en memoria.
type RestaurantRepo struct {
	s *Store
}

func (r *RestaurantRepo) Create(_ context.Context, restaurant *entity.Restaurant) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.lastID.restaurant++
	restaurant.ID = r.s.lastID.restaurant
	r.s.restaurants[restaurant.ID] = *restaurant
	return nil
}

func (r *RestaurantRepo) GetByID(_ context.Context, id int64) (*entity.Restaurant, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	x, ok := r.s.restaurants[id]
	if !ok {
		return nil, nil
	}
	return &x, nil
}

func (r *RestaurantRepo) Update(_ context.Context, restaurant *entity.Restaurant) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.restaurants[restaurant.ID]; !ok {
		return domain.ErrRestaurantNotFound
	}
	r.s.restaurants[restaurant.ID] = *restaurant
	return nil
}

func (r *RestaurantRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.restaurants, id)
	return nil
}

func (r *RestaurantRepo) List(ctx context.Context) ([]*entity.Restaurant, error) {
	return r.filter(func(*entity.Restaurant) bool { return true }), nil
}

func (r *RestaurantRepo) ListByUsuarioAdmin(_ context.Context, usuarioAdminID int64) ([]*entity.Restaurant, error) {
	return r.filter(func(x *entity.Restaurant) bool { return x.UsuarioAdminID == usuarioAdminID }), nil
}

func (r *RestaurantRepo) filter(keep func(*entity.Restaurant) bool) []*entity.Restaurant {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.Restaurant
	for _, id := range sortedKeys(r.s.restaurants) {
		x := r.s.restaurants[id]
		if keep(&x) {
			list = append(list, &x)
		}
	}
	return list
}
