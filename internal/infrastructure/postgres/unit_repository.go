package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Suministros-api/internal/domain"
	"github.com/jhoicas/Suministros-api/internal/domain/entity"
	"github.com/jhoicas/Suministros-api/internal/domain/repository"
)

var _ repository.UnitRepository = (*UnitRepo)(nil)

// UnitRepo catálogo de unidades de medida sobre PostgreSQL.
type UnitRepo struct {
	q Querier
}

func NewUnitRepository(q Querier) *UnitRepo {
	return &UnitRepo{q: q}
}

func (r *UnitRepo) Create(ctx context.Context, u *entity.UnitOfMeasure) error {
	err := r.q.QueryRow(ctx, `INSERT INTO unidades_medida (nombre) VALUES ($1) RETURNING id`, u.Nombre).Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert unidad: %w", err)
	}
	return nil
}

func (r *UnitRepo) GetByID(ctx context.Context, id int64) (*entity.UnitOfMeasure, error) {
	var u entity.UnitOfMeasure
	err := r.q.QueryRow(ctx, `SELECT id, nombre FROM unidades_medida WHERE id = $1`, id).Scan(&u.ID, &u.Nombre)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get unidad: %w", err)
	}
	return &u, nil
}

func (r *UnitRepo) Update(ctx context.Context, u *entity.UnitOfMeasure) error {
	tag, err := r.q.Exec(ctx, `UPDATE unidades_medida SET nombre = $2 WHERE id = $1`, u.ID, u.Nombre)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update unidad: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *UnitRepo) List(ctx context.Context) ([]*entity.UnitOfMeasure, error) {
	rows, err := r.q.Query(ctx, `SELECT id, nombre FROM unidades_medida ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list unidades: %w", err)
	}
	defer rows.Close()
	list := []*entity.UnitOfMeasure{}
	for rows.Next() {
		var u entity.UnitOfMeasure
		if err := rows.Scan(&u.ID, &u.Nombre); err != nil {
			return nil, fmt.Errorf("scan unidad: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

func (r *UnitRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM unidades_medida WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete unidad: %w", err)
	}
	return nil
}
