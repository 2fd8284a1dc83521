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

var _ repository.SolicitudRepository = (*SolicitudRepo)(nil)

// SolicitudRepo implementación del puerto SolicitudRepository sobre PostgreSQL (usable con pool o tx).
type SolicitudRepo struct {
	q Querier
}

// NewSolicitudRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSolicitudRepository(q Querier) *SolicitudRepo {
	return &SolicitudRepo{q: q}
}

const solicitudColumns = `s.id, s.folio, s.area, s.fecha_hora, s.prioridad, s.status,
	s.comentario_user, s.comentario_admin, s.solicitante, s.abierto`

const solicitudWithOwner = `SELECT ` + solicitudColumns + `, u.id, u."user", u.area, u.rol
	FROM solicitudes s LEFT JOIN usuarios u ON u.id = s.solicitante`

// LastFolioWithPrefix usa orden lexicográfico: todos los folios del prefijo tienen el mismo largo.
func (r *SolicitudRepo) LastFolioWithPrefix(ctx context.Context, prefix string) (string, error) {
	var last string
	err := r.q.QueryRow(ctx,
		`SELECT folio FROM solicitudes WHERE folio LIKE $1 || '%' ORDER BY folio DESC LIMIT 1`,
		prefix,
	).Scan(&last)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("último folio: %w", err)
	}
	return last, nil
}

// Create inserta la solicitud y asigna ID.
func (r *SolicitudRepo) Create(ctx context.Context, s *entity.Solicitud) error {
	query := `
		INSERT INTO solicitudes (folio, area, fecha_hora, prioridad, status, comentario_user, comentario_admin, solicitante, abierto)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		s.Folio, s.Area, s.FechaHora, s.Prioridad, s.Status,
		s.ComentarioUser, s.ComentarioAdmin, s.SolicitanteID, s.Abierto,
	).Scan(&s.ID)
	if err != nil {
		if isUniqueViolationOn(err, folioConstraint) {
			return domain.ErrDuplicateFolio
		}
		return fmt.Errorf("insert solicitud: %w", err)
	}
	return nil
}

// GetByID obtiene la solicitud con dueño, suministros y entregas parciales.
func (r *SolicitudRepo) GetByID(ctx context.Context, id int64) (*entity.Solicitud, error) {
	s, err := scanSolicitudWithOwner(r.q.QueryRow(ctx, solicitudWithOwner+` WHERE s.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get solicitud: %w", err)
	}
	items, err := r.suministrosOf(ctx, []int64{s.ID})
	if err != nil {
		return nil, err
	}
	s.Suministros = items[s.ID]
	if s.Suministros == nil {
		s.Suministros = []entity.Suministro{}
	}
	if s.Parciales, err = r.ListParciales(ctx, s.ID); err != nil {
		return nil, err
	}
	return s, nil
}

// GetForUpdate bloquea la fila hasta el fin de la transacción.
func (r *SolicitudRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Solicitud, error) {
	query := `SELECT ` + solicitudColumns + ` FROM solicitudes s WHERE s.id = $1 FOR UPDATE`
	var s entity.Solicitud
	err := r.q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Folio, &s.Area, &s.FechaHora, &s.Prioridad, &s.Status,
		&s.ComentarioUser, &s.ComentarioAdmin, &s.SolicitanteID, &s.Abierto,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get solicitud for update: %w", err)
	}
	return &s, nil
}

// Update persiste los campos mutables. folio, solicitante, área y abierto no se tocan.
func (r *SolicitudRepo) Update(ctx context.Context, s *entity.Solicitud) error {
	query := `
		UPDATE solicitudes SET prioridad = $2, status = $3, comentario_user = $4, comentario_admin = $5
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, s.ID, s.Prioridad, s.Status, s.ComentarioUser, s.ComentarioAdmin)
	if err != nil {
		return fmt.Errorf("update solicitud: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SolicitudRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM solicitudes WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete solicitud: %w", err)
	}
	return nil
}

// List devuelve todas las solicitudes, más recientes primero.
func (r *SolicitudRepo) List(ctx context.Context) ([]*entity.Solicitud, error) {
	return r.list(ctx, solicitudWithOwner+` ORDER BY s.fecha_hora DESC, s.id DESC`)
}

// ListBySolicitante devuelve las solicitudes del usuario, más recientes primero.
func (r *SolicitudRepo) ListBySolicitante(ctx context.Context, userID int64) ([]*entity.Solicitud, error) {
	return r.list(ctx, solicitudWithOwner+` WHERE s.solicitante = $1 ORDER BY s.fecha_hora DESC, s.id DESC`, userID)
}

func (r *SolicitudRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Solicitud, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list solicitudes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Solicitud
	var ids []int64
	for rows.Next() {
		s, err := scanSolicitudWithOwner(rows)
		if err != nil {
			return nil, fmt.Errorf("scan solicitud: %w", err)
		}
		list = append(list, s)
		ids = append(ids, s.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*entity.Solicitud{}, nil
	}
	items, err := r.suministrosOf(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, s := range list {
		s.Suministros = items[s.ID]
		if s.Suministros == nil {
			s.Suministros = []entity.Suministro{}
		}
	}
	return list, nil
}

// suministrosOf carga en una sola consulta las líneas de varias solicitudes, en orden de creación.
func (r *SolicitudRepo) suministrosOf(ctx context.Context, ids []int64) (map[int64][]entity.Suministro, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, cantidad, nombre, unidad, solicitud_id
		FROM suministros WHERE solicitud_id = ANY($1) ORDER BY id`, ids)
	if err != nil {
		return nil, fmt.Errorf("list suministros: %w", err)
	}
	defer rows.Close()
	out := make(map[int64][]entity.Suministro, len(ids))
	for rows.Next() {
		var it entity.Suministro
		if err := rows.Scan(&it.ID, &it.Cantidad, &it.Nombre, &it.Unidad, &it.SolicitudID); err != nil {
			return nil, fmt.Errorf("scan suministro: %w", err)
		}
		out[it.SolicitudID] = append(out[it.SolicitudID], it)
	}
	return out, rows.Err()
}

// CreateSuministros inserta las líneas en orden; el id serial conserva el orden de captura.
func (r *SolicitudRepo) CreateSuministros(ctx context.Context, solicitudID int64, items []entity.Suministro) error {
	for _, it := range items {
		_, err := r.q.Exec(ctx,
			`INSERT INTO suministros (cantidad, nombre, unidad, solicitud_id) VALUES ($1, $2, $3, $4)`,
			it.Cantidad, it.Nombre, it.Unidad, solicitudID,
		)
		if err != nil {
			return fmt.Errorf("insert suministro: %w", err)
		}
	}
	return nil
}

func (r *SolicitudRepo) DeleteSuministros(ctx context.Context, solicitudID int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM suministros WHERE solicitud_id = $1`, solicitudID); err != nil {
		return fmt.Errorf("delete suministros: %w", err)
	}
	return nil
}

func (r *SolicitudRepo) CreateParciales(ctx context.Context, solicitudID int64, items []entity.SuministroParcial) error {
	for _, p := range items {
		_, err := r.q.Exec(ctx, `
			INSERT INTO suministros_parciales (cantidad, nombre, unidad, solicitud_id, fecha_entrega)
			VALUES ($1, $2, $3, $4, $5)`,
			p.Cantidad, p.Nombre, p.Unidad, solicitudID, p.FechaEntrega,
		)
		if err != nil {
			return fmt.Errorf("insert suministro parcial: %w", err)
		}
	}
	return nil
}

func (r *SolicitudRepo) ListParciales(ctx context.Context, solicitudID int64) ([]entity.SuministroParcial, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, cantidad, nombre, unidad, solicitud_id, fecha_entrega
		FROM suministros_parciales WHERE solicitud_id = $1
		ORDER BY fecha_entrega DESC, id DESC`, solicitudID)
	if err != nil {
		return nil, fmt.Errorf("list suministros parciales: %w", err)
	}
	defer rows.Close()
	list := []entity.SuministroParcial{}
	for rows.Next() {
		var p entity.SuministroParcial
		if err := rows.Scan(&p.ID, &p.Cantidad, &p.Nombre, &p.Unidad, &p.SolicitudID, &p.FechaEntrega); err != nil {
			return nil, fmt.Errorf("scan suministro parcial: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *SolicitudRepo) GetParcial(ctx context.Context, id int64) (*entity.SuministroParcial, error) {
	var p entity.SuministroParcial
	err := r.q.QueryRow(ctx, `
		SELECT id, cantidad, nombre, unidad, solicitud_id, fecha_entrega
		FROM suministros_parciales WHERE id = $1`, id,
	).Scan(&p.ID, &p.Cantidad, &p.Nombre, &p.Unidad, &p.SolicitudID, &p.FechaEntrega)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get suministro parcial: %w", err)
	}
	return &p, nil
}

func (r *SolicitudRepo) DeleteParcial(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM suministros_parciales WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete suministro parcial: %w", err)
	}
	return nil
}

func (r *SolicitudRepo) DeleteParciales(ctx context.Context, solicitudID int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM suministros_parciales WHERE solicitud_id = $1`, solicitudID); err != nil {
		return fmt.Errorf("delete suministros parciales: %w", err)
	}
	return nil
}

// scanSolicitudWithOwner lee una fila de solicitudWithOwner. El dueño puede no existir
// (usuario eliminado), en cuyo caso Owner queda en nil.
func scanSolicitudWithOwner(row pgx.Row) (*entity.Solicitud, error) {
	var (
		s         entity.Solicitud
		ownerID   *int64
		ownerName *string
		ownerArea *string
		ownerRol  *string
	)
	err := row.Scan(
		&s.ID, &s.Folio, &s.Area, &s.FechaHora, &s.Prioridad, &s.Status,
		&s.ComentarioUser, &s.ComentarioAdmin, &s.SolicitanteID, &s.Abierto,
		&ownerID, &ownerName, &ownerArea, &ownerRol,
	)
	if err != nil {
		return nil, err
	}
	if ownerID != nil {
		s.Owner = &entity.Owner{ID: *ownerID, Username: deref(ownerName), Area: deref(ownerArea), Role: entity.Role(deref(ownerRol))}
	}
	return &s, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
