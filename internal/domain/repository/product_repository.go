package repository

import (
	"context"

	"github.com/jhoicas/Suministros-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para el catálogo de productos (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	List(ctx context.Context) ([]*entity.Product, error)
	Delete(ctx context.Context, id int64) error
}

// UnitRepository define el puerto de persistencia para unidades de medida.
type UnitRepository interface {
	Create(ctx context.Context, unit *entity.UnitOfMeasure) error
	GetByID(ctx context.Context, id int64) (*entity.UnitOfMeasure, error)
	Update(ctx context.Context, unit *entity.UnitOfMeasure) error
	List(ctx context.Context) ([]*entity.UnitOfMeasure, error)
	Delete(ctx context.Context, id int64) error
}
