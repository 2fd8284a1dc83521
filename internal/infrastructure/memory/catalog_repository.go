package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/Suministros-api/internal/domain"
	"github.com/jhoicas/Suministros-api/internal/domain/entity"
	"github.com/jhoicas/Suministros-api/internal/domain/repository"
)

var (
	_ repository.ProductRepository = (*ProductRepo)(nil)
	_ repository.UnitRepository    = (*UnitRepo)(nil)
)

// ProductRepo catálogo de productos en memoria.
type ProductRepo struct {
	s *Store
}

func NewProductRepository(store *Store) *ProductRepo {
	return &ProductRepo{s: store}
}

func (r *ProductRepo) taken(nombre string, exceptID int64) bool {
	for _, p := range r.s.data.products {
		if p.Nombre == nombre && p.ID != exceptID {
			return true
		}
	}
	return false
}

func (r *ProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.taken(p.Nombre, 0) {
		return domain.ErrDuplicate
	}
	p.ID = r.s.data.nextID()
	r.s.data.products[p.ID] = *p
	return nil
}

func (r *ProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.data.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *ProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.data.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	if r.taken(p.Nombre, p.ID) {
		return domain.ErrDuplicate
	}
	r.s.data.products[p.ID] = *p
	return nil
}

func (r *ProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Product, 0, len(r.s.data.products))
	for _, p := range r.s.data.products {
		p := p
		out = append(out, &p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}

func (r *ProductRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.data.products, id)
	return nil
}

// UnitRepo catálogo de unidades de medida en memoria.
type UnitRepo struct {
	s *Store
}

func NewUnitRepository(store *Store) *UnitRepo {
	return &UnitRepo{s: store}
}

func (r *UnitRepo) taken(nombre string, exceptID int64) bool {
	for _, u := range r.s.data.units {
		if u.Nombre == nombre && u.ID != exceptID {
			return true
		}
	}
	return false
}

func (r *UnitRepo) Create(_ context.Context, u *entity.UnitOfMeasure) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.taken(u.Nombre, 0) {
		return domain.ErrDuplicate
	}
	u.ID = r.s.data.nextID()
	r.s.data.units[u.ID] = *u
	return nil
}

func (r *UnitRepo) GetByID(_ context.Context, id int64) (*entity.UnitOfMeasure, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.data.units[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UnitRepo) Update(_ context.Context, u *entity.UnitOfMeasure) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.data.units[u.ID]; !ok {
		return domain.ErrNotFound
	}
	if r.taken(u.Nombre, u.ID) {
		return domain.ErrDuplicate
	}
	r.s.data.units[u.ID] = *u
	return nil
}

func (r *UnitRepo) List(_ context.Context) ([]*entity.UnitOfMeasure, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.UnitOfMeasure, 0, len(r.s.data.units))
	for _, u := range r.s.data.units {
		u := u
		out = append(out, &u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}

func (r *UnitRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.data.units, id)
	return nil
}
