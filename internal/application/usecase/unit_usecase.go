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

// UnitUseCase catálogo de unidades de medida.
type UnitUseCase struct {
	repo repository.UnitRepository
}

func NewUnitUseCase(repo repository.UnitRepository) *UnitUseCase {
	return &UnitUseCase{repo: repo}
}

func (uc *UnitUseCase) List(ctx context.Context) ([]dto.UnitResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UnitResponse, 0, len(list))
	for _, u := range list {
		out = append(out, dto.UnitResponse{ID: u.ID, Nombre: u.Nombre})
	}
	return out, nil
}

func (uc *UnitUseCase) GetByID(ctx context.Context, id int64) (*dto.UnitResponse, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.UnitResponse{ID: u.ID, Nombre: u.Nombre}, nil
}

func (uc *UnitUseCase) Create(ctx context.Context, a lifecycle.Actor, in dto.UnitRequest) (*dto.UnitResponse, error) {
	if err := access.Require(a.Role, access.ManageCatalog); err != nil {
		return nil, err
	}
	u := &entity.UnitOfMeasure{Nombre: strings.TrimSpace(in.Nombre)}
	if u.Nombre == "" {
		return nil, fmt.Errorf("%w: nombre es requerido", domain.ErrInvalidInput)
	}
	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return &dto.UnitResponse{ID: u.ID, Nombre: u.Nombre}, nil
}

func (uc *UnitUseCase) Update(ctx context.Context, a lifecycle.Actor, id int64, in dto.UnitRequest) (*dto.UnitResponse, error) {
	if err := access.Require(a.Role, access.ManageCatalog); err != nil {
		return nil, err
	}
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	u.Nombre = strings.TrimSpace(in.Nombre)
	if u.Nombre == "" {
		return nil, fmt.Errorf("%w: nombre es requerido", domain.ErrInvalidInput)
	}
	if err := uc.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return &dto.UnitResponse{ID: u.ID, Nombre: u.Nombre}, nil
}

func (uc *UnitUseCase) Delete(ctx context.Context, a lifecycle.Actor, id int64) error {
	if err := access.Require(a.Role, access.ManageCatalog); err != nil {
		return err
	}
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}
