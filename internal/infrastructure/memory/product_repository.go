package memory

import (
	"context"

	"github.com/jhoicas/restaurantes-api/internal/domain"
	"github.com/jhoicas/restaurantes-api/internal/domain/entity"
	"github.com/jhoicas/restaurantes-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo productos en memoria.
type ProductRepo struct {
	s *Store
}

func copyProduct(p entity.Product) entity.Product {
	p.Descripcion = cloneString(p.Descripcion)
	p.Imagen = cloneString(p.Imagen)
	return p
}

func (r *ProductRepo) Create(_ context.Context, product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.lastID.product++
	product.ID = r.s.lastID.product
	r.s.products[product.ID] = copyProduct(*product)
	return nil
}

func (r *ProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	p = copyProduct(p)
	return &p, nil
}

func (r *ProductRepo) Update(_ context.Context, product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[product.ID]; !ok {
		return domain.ErrProductNotFound
	}
	r.s.products[product.ID] = copyProduct(*product)
	return nil
}

func (r *ProductRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.products, id)
	return nil
}

func (r *ProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	return r.filter(func(*entity.Product) bool { return true }), nil
}

func (r *ProductRepo) ListByRestaurant(_ context.Context, restauranteID int64) ([]*entity.Product, error) {
	return r.filter(func(p *entity.Product) bool { return p.RestauranteID == restauranteID }), nil
}

func (r *ProductRepo) ListByCategory(_ context.Context, categoriaID int64) ([]*entity.Product, error) {
	return r.filter(func(p *entity.Product) bool { return p.CategoriaID == categoriaID }), nil
}

func (r *ProductRepo) DeleteByRestaurant(_ context.Context, restauranteID int64) ([]string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var images []string
	for _, id := range sortedKeys(r.s.products) {
		p := r.s.products[id]
		if p.RestauranteID != restauranteID {
			continue
		}
		if p.HasImage() {
			images = append(images, *p.Imagen)
		}
		delete(r.s.products, id)
	}
	return images, nil
}

func (r *ProductRepo) filter(keep func(*entity.Product) bool) []*entity.Product {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.Product
	for _, id := range sortedKeys(r.s.products) {
		p := copyProduct(r.s.products[id])
		if keep(&p) {
			list = append(list, &p)
		}
	}
	return list
}
