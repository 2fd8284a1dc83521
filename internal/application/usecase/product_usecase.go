package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Suministros-api/internal/application/dto"
	"github.com/jhoicas/Suministros-api/internal/domain"
	"github.com/jhoicas/Suministros-api/internal/domain/access"
	"github.com/jhoicas/Suministros-api/internal/domain/entity"
	"github.com/jhoicas/Suministros-api/internal/domain/lifecycle"
	"github.com/jhoicas/Suministros-api/internal/domain/repository"
)

// ProductUseCase catálogo de productos. Lectura libre, escritura con catalogo:administrar.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	out := toProductResponse(p)
	return &out, nil
}

func (uc *ProductUseCase) Create(ctx context.Context, a lifecycle.Actor, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if err := access.Require(a.Role, access.ManageCatalog); err != nil {
		return nil, err
	}
	p := &entity.Product{Nombre: strings.TrimSpace(in.Nombre), Unidad: strings.TrimSpace(in.Unidad)}
	if p.Nombre == "" || p.Unidad == "" {
		return nil, fmt.Errorf("%w: nombre y unidad son requeridos", domain.ErrInvalidInput)
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	out := toProductResponse(p)
	return &out, nil
}

func (uc *ProductUseCase) Update(ctx context.Context, a lifecycle.Actor, id int64, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if err := access.Require(a.Role, access.ManageCatalog); err != nil {
		return nil, err
	}
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	p.Nombre, p.Unidad = strings.TrimSpace(in.Nombre), strings.TrimSpace(in.Unidad)
	if p.Nombre == "" || p.Unidad == "" {
		return nil, fmt.Errorf("%w: nombre y unidad son requeridos", domain.ErrInvalidInput)
	}
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	out := toProductResponse(p)
	return &out, nil
}

func (uc *ProductUseCase) Delete(ctx context.Context, a lifecycle.Actor, id int64) error {
	if err := access.Require(a.Role, access.ManageCatalog); err != nil {
		return err
	}
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{ID: p.ID, Nombre: p.Nombre, Unidad: p.Unidad}
}
