package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Suministros-api/internal/domain/entity"
)

// StatusCount número de solicitudes por status.
type StatusCount struct {
	Status entity.Status
	Total  int
}

// MonthCount número de solicitudes por mes con etiqueta "YYYY-MM".
type MonthCount struct {
	Month string
	Total int
}

// PriorityCount número de solicitudes por prioridad.
type PriorityCount struct {
	Prioridad entity.Priority
	Total     int
}

// TopSuministro resultado crudo del ranking de suministros más pedidos.
type TopSuministro struct {
	Nombre          string
	TotalSolicitado decimal.Decimal // SUM(cantidad); NUMERIC en la DB
	VecesSolicitado int             // solicitudes distintas que lo incluyen
}

// CountFilter restringe Count. Campos vacíos no filtran.
type CountFilter struct {
	Statuses []entity.Status
	Since    time.Time
}

// AnalyticsRepository consultas read-only del dashboard, siempre acotadas a un solicitante.
type AnalyticsRepository interface {
	CountByStatus(ctx context.Context, userID int64) ([]StatusCount, error)

	// CountByMonth agrupa por mes calendario en loc desde since, en orden ascendente.
	CountByMonth(ctx context.Context, userID int64, since time.Time, loc *time.Location) ([]MonthCount, error)

	CountByPriority(ctx context.Context, userID int64) ([]PriorityCount, error)

	// TopSuministros agrupa por nombre y ordena por SUM(cantidad) descendente.
	TopSuministros(ctx context.Context, userID int64, limit int) ([]TopSuministro, error)

	Count(ctx context.Context, userID int64, f CountFilter) (int, error)
}
