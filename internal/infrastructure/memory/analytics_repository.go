package memory

import (
	"context"
	"slices"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Suministros-api/internal/domain/entity"
	"github.com/jhoicas/Suministros-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas del dashboard sobre el store en memoria.
type AnalyticsRepo struct {
	s *Store
}

func NewAnalyticsRepository(store *Store) *AnalyticsRepo {
	return &AnalyticsRepo{s: store}
}

func (r *AnalyticsRepo) owned(userID int64) []entity.Solicitud {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []entity.Solicitud
	for _, s := range r.s.data.solicitudes {
		if s.SolicitanteID == userID {
			out = append(out, s)
		}
	}
	return out
}

func (r *AnalyticsRepo) CountByStatus(_ context.Context, userID int64) ([]repository.StatusCount, error) {
	counts := map[entity.Status]int{}
	for _, s := range r.owned(userID) {
		counts[s.Status]++
	}
	out := make([]repository.StatusCount, 0, len(counts))
	for st, n := range counts {
		out = append(out, repository.StatusCount{Status: st, Total: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Status < out[j].Status })
	return out, nil
}

func (r *AnalyticsRepo) CountByMonth(_ context.Context, userID int64, since time.Time, loc *time.Location) ([]repository.MonthCount, error) {
	counts := map[string]int{}
	for _, s := range r.owned(userID) {
		if s.FechaHora.Before(since) {
			continue
		}
		counts[s.FechaHora.In(loc).Format("2006-01")]++
	}
	out := make([]repository.MonthCount, 0, len(counts))
	for m, n := range counts {
		out = append(out, repository.MonthCount{Month: m, Total: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out, nil
}

func (r *AnalyticsRepo) CountByPriority(_ context.Context, userID int64) ([]repository.PriorityCount, error) {
	counts := map[entity.Priority]int{}
	for _, s := range r.owned(userID) {
		counts[s.Prioridad]++
	}
	out := make([]repository.PriorityCount, 0, len(counts))
	for p, n := range counts {
		out = append(out, repository.PriorityCount{Prioridad: p, Total: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Prioridad < out[j].Prioridad })
	return out, nil
}

func (r *AnalyticsRepo) TopSuministros(_ context.Context, userID int64, limit int) ([]repository.TopSuministro, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	type agg struct {
		total int64
		reqs  map[int64]struct{}
	}
	byName := map[string]*agg{}
	for _, it := range r.s.data.suministros {
		sol, ok := r.s.data.solicitudes[it.SolicitudID]
		if !ok || sol.SolicitanteID != userID {
			continue
		}
		a := byName[it.Nombre]
		if a == nil {
			a = &agg{reqs: map[int64]struct{}{}}
			byName[it.Nombre] = a
		}
		a.total += int64(it.Cantidad)
		a.reqs[it.SolicitudID] = struct{}{}
	}
	out := make([]repository.TopSuministro, 0, len(byName))
	for name, a := range byName {
		out = append(out, repository.TopSuministro{
			Nombre:          name,
			TotalSolicitado: decimal.NewFromInt(a.total),
			VecesSolicitado: len(a.reqs),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].TotalSolicitado.Cmp(out[j].TotalSolicitado); c != 0 {
			return c > 0
		}
		return out[i].Nombre < out[j].Nombre
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *AnalyticsRepo) Count(_ context.Context, userID int64, f repository.CountFilter) (int, error) {
	n := 0
	for _, s := range r.owned(userID) {
		if len(f.Statuses) > 0 && !slices.Contains(f.Statuses, s.Status) {
			continue
		}
		if !f.Since.IsZero() && s.FechaHora.Before(f.Since) {
			continue
		}
		n++
	}
	return n, nil
}
