// Package analytics contiene el caso de uso del dashboard por usuario.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Suministros-api/internal/application/dto"
	"github.com/jhoicas/Suministros-api/internal/domain"
	"github.com/jhoicas/Suministros-api/internal/domain/entity"
	"github.com/jhoicas/Suministros-api/internal/domain/repository"
)

const (
	dashboardTopSuministros = 10 // suministros en el ranking
	dashboardMonths         = 6  // meses hacia atrás en la serie mensual
)

// DashboardUseCase genera las métricas del dashboard de un solicitante.
//
// Fuente de datos: AnalyticsRepository (consultas read-only).
// Las lecturas son independientes y corren en paralelo; no comparten transacción.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	loc           *time.Location
	now           func() time.Time
}

// NewDashboardUseCase construye el caso de uso. loc define los límites de mes.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository, loc *time.Location) *DashboardUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &DashboardUseCase{analyticsRepo: analyticsRepo, loc: loc, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *DashboardUseCase) WithClock(now func() time.Time) *DashboardUseCase {
	uc.now = now
	return uc
}

// GetUserDashboard construye el DashboardDTO del usuario.
//
// Ocho lecturas en paralelo:
//  1. CountByStatus
//  2. CountByMonth(últimos 6 meses)
//  3. CountByPriority
//  4. TopSuministros(10)
//  5. Count total, pendientes, del mes y aprobadas
func (uc *DashboardUseCase) GetUserDashboard(ctx context.Context, userID int64) (*dto.DashboardDTO, error) {
	if userID == 0 {
		return nil, domain.ErrUnauthorized
	}
	now := uc.now().In(uc.loc)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, uc.loc)
	sixMonthsAgo := now.AddDate(0, -dashboardMonths, 0)

	var (
		byStatus   []repository.StatusCount
		byMonth    []repository.MonthCount
		byPriority []repository.PriorityCount
		top        []repository.TopSuministro
		total      int
		pending    int
		thisMonth  int
		approved   int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		byStatus, err = uc.analyticsRepo.CountByStatus(gctx, userID)
		return wrap("estado de solicitudes", err)
	})
	g.Go(func() (err error) {
		byMonth, err = uc.analyticsRepo.CountByMonth(gctx, userID, sixMonthsAgo, uc.loc)
		return wrap("solicitudes por mes", err)
	})
	g.Go(func() (err error) {
		byPriority, err = uc.analyticsRepo.CountByPriority(gctx, userID)
		return wrap("solicitudes por prioridad", err)
	})
	g.Go(func() (err error) {
		top, err = uc.analyticsRepo.TopSuministros(gctx, userID, dashboardTopSuministros)
		return wrap("suministros más solicitados", err)
	})
	g.Go(func() (err error) {
		total, err = uc.analyticsRepo.Count(gctx, userID, repository.CountFilter{})
		return wrap("total", err)
	})
	g.Go(func() (err error) {
		pending, err = uc.analyticsRepo.Count(gctx, userID, repository.CountFilter{
			Statuses: []entity.Status{entity.StatusPendienteAutorizacion},
		})
		return wrap("pendientes", err)
	})
	g.Go(func() (err error) {
		thisMonth, err = uc.analyticsRepo.Count(gctx, userID, repository.CountFilter{Since: monthStart})
		return wrap("del mes", err)
	})
	g.Go(func() (err error) {
		approved, err = uc.analyticsRepo.Count(gctx, userID, repository.CountFilter{Statuses: entity.ApprovedStatuses})
		return wrap("aprobadas", err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &dto.DashboardDTO{
		EstadoSolicitudes:       make([]dto.StatusCountDTO, 0, len(byStatus)),
		SolicitudesPorMes:       make([]dto.MonthCountDTO, 0, len(byMonth)),
		SolicitudesPorPrioridad: make([]dto.PriorityCountDTO, 0, len(byPriority)),
		ProductosMasSolicitados: make([]dto.TopProductDTO, 0, len(top)),
		Metricas: dto.MetricasDTO{
			TotalSolicitudes:      total,
			SolicitudesPendientes: pending,
			SolicitudesDelMes:     thisMonth,
			TasaAprobacion:        ApprovalRate(approved, total),
		},
	}
	for _, s := range byStatus {
		out.EstadoSolicitudes = append(out.EstadoSolicitudes, dto.StatusCountDTO{Status: string(s.Status), Cantidad: s.Total})
	}
	for _, m := range byMonth {
		out.SolicitudesPorMes = append(out.SolicitudesPorMes, dto.MonthCountDTO{Mes: m.Month, Cantidad: m.Total})
	}
	for _, p := range byPriority {
		out.SolicitudesPorPrioridad = append(out.SolicitudesPorPrioridad, dto.PriorityCountDTO{Prioridad: string(p.Prioridad), Cantidad: p.Total})
	}
	for _, t := range top {
		out.ProductosMasSolicitados = append(out.ProductosMasSolicitados, dto.TopProductDTO{
			Nombre:          t.Nombre,
			TotalSolicitado: t.TotalSolicitado,
			VecesSolicitado: t.VecesSolicitado,
		})
	}
	return out, nil
}

// ApprovalRate porcentaje entero de aprobadas sobre total, redondeo half-up. 0 si total es 0.
func ApprovalRate(approved, total int) int64 {
	if total <= 0 {
		return 0
	}
	rate := decimal.NewFromInt(int64(approved)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(total))).
		Round(0)
	return rate.IntPart()
}

func wrap(what string, err error) error {
	if err != nil {
		return fmt.Errorf("dashboard: %s: %w", what, err)
	}
	return nil
}
