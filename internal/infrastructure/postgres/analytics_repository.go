package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Suministros-api/internal/domain/entity"
	"github.com/jhoicas/Suministros-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas read-only del dashboard sobre PostgreSQL.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el repositorio. Usar el pool: no requiere transacción.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

func (r *AnalyticsRepo) CountByStatus(ctx context.Context, userID int64) ([]repository.StatusCount, error) {
	rows, err := r.q.Query(ctx, `
		SELECT status, COUNT(*) FROM solicitudes
		WHERE solicitante = $1 GROUP BY status ORDER BY status`, userID)
	if err != nil {
		return nil, fmt.Errorf("count by status: %w", err)
	}
	defer rows.Close()
	out := []repository.StatusCount{}
	for rows.Next() {
		var c repository.StatusCount
		if err := rows.Scan(&c.Status, &c.Total); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// CountByMonth agrupa con la hora local de loc para que el mes coincida con el del negocio.
func (r *AnalyticsRepo) CountByMonth(ctx context.Context, userID int64, since time.Time, loc *time.Location) ([]repository.MonthCount, error) {
	rows, err := r.q.Query(ctx, `
		SELECT to_char(fecha_hora AT TIME ZONE $3, 'YYYY-MM') AS mes, COUNT(*)
		FROM solicitudes
		WHERE solicitante = $1 AND fecha_hora >= $2
		GROUP BY mes ORDER BY mes ASC`, userID, since, loc.String())
	if err != nil {
		return nil, fmt.Errorf("count by month: %w", err)
	}
	defer rows.Close()
	out := []repository.MonthCount{}
	for rows.Next() {
		var c repository.MonthCount
		if err := rows.Scan(&c.Month, &c.Total); err != nil {
			return nil, fmt.Errorf("scan month count: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *AnalyticsRepo) CountByPriority(ctx context.Context, userID int64) ([]repository.PriorityCount, error) {
	rows, err := r.q.Query(ctx, `
		SELECT prioridad, COUNT(*) FROM solicitudes
		WHERE solicitante = $1 GROUP BY prioridad ORDER BY prioridad`, userID)
	if err != nil {
		return nil, fmt.Errorf("count by priority: %w", err)
	}
	defer rows.Close()
	out := []repository.PriorityCount{}
	for rows.Next() {
		var c repository.PriorityCount
		if err := rows.Scan(&c.Prioridad, &c.Total); err != nil {
			return nil, fmt.Errorf("scan priority count: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// TopSuministros SUM(cantidad) llega como NUMERIC y se decodifica a decimal.Decimal
// con el codec registrado en el pool.
func (r *AnalyticsRepo) TopSuministros(ctx context.Context, userID int64, limit int) ([]repository.TopSuministro, error) {
	rows, err := r.q.Query(ctx, `
		SELECT su.nombre,
		       COALESCE(SUM(su.cantidad), 0)::numeric AS total_solicitado,
		       COUNT(DISTINCT su.solicitud_id)        AS veces_solicitado
		FROM suministros su
		JOIN solicitudes s ON s.id = su.solicitud_id
		WHERE s.solicitante = $1
		GROUP BY su.nombre
		ORDER BY total_solicitado DESC, su.nombre ASC
		LIMIT $2`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("top suministros: %w", err)
	}
	defer rows.Close()
	out := []repository.TopSuministro{}
	for rows.Next() {
		var t repository.TopSuministro
		if err := rows.Scan(&t.Nombre, &t.TotalSolicitado, &t.VecesSolicitado); err != nil {
			return nil, fmt.Errorf("scan top suministro: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *AnalyticsRepo) Count(ctx context.Context, userID int64, f repository.CountFilter) (int, error) {
	var (
		where = []string{"solicitante = $1"}
		args  = []any{userID}
	)
	if len(f.Statuses) > 0 {
		args = append(args, statusStrings(f.Statuses))
		where = append(where, fmt.Sprintf("status = ANY($%d)", len(args)))
	}
	if !f.Since.IsZero() {
		args = append(args, f.Since)
		where = append(where, fmt.Sprintf("fecha_hora >= $%d", len(args)))
	}
	var n int
	query := `SELECT COUNT(*) FROM solicitudes WHERE ` + strings.Join(where, " AND ")
	if err := r.q.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count solicitudes: %w", err)
	}
	return n, nil
}

func statusStrings(list []entity.Status) []string {
	out := make([]string, len(list))
	for i, s := range list {
		out[i] = string(s)
	}
	return out
}
