package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/jhoicas/Suministros-api/internal/domain"
	"github.com/jhoicas/Suministros-api/internal/domain/entity"
	"github.com/jhoicas/Suministros-api/internal/domain/repository"
)

var _ repository.SolicitudRepository = (*SolicitudRepo)(nil)

// SolicitudRepo implementación en memoria de SolicitudRepository.
type SolicitudRepo struct {
	s *Store
}

// NewSolicitudRepository construye el repositorio sobre el store.
func NewSolicitudRepository(store *Store) *SolicitudRepo {
	return &SolicitudRepo{s: store}
}

func (r *SolicitudRepo) LastFolioWithPrefix(_ context.Context, prefix string) (string, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	last := ""
	for _, sol := range r.s.data.solicitudes {
		if strings.HasPrefix(sol.Folio, prefix) && sol.Folio > last {
			last = sol.Folio
		}
	}
	return last, nil
}

func (r *SolicitudRepo) Create(_ context.Context, sol *entity.Solicitud) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, cur := range r.s.data.solicitudes {
		if cur.Folio == sol.Folio {
			return domain.ErrDuplicateFolio
		}
	}
	sol.ID = r.s.data.nextID()
	row := *sol
	row.Owner, row.Suministros, row.Parciales = nil, nil, nil
	r.s.data.solicitudes[sol.ID] = row
	return nil
}

func (r *SolicitudRepo) GetByID(_ context.Context, id int64) (*entity.Solicitud, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	sol, ok := r.s.data.solicitudes[id]
	if !ok {
		return nil, nil
	}
	full := r.hydrate(sol)
	full.Parciales = r.parcialesOf(id)
	return &full, nil
}

func (r *SolicitudRepo) GetForUpdate(_ context.Context, id int64) (*entity.Solicitud, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	sol, ok := r.s.data.solicitudes[id]
	if !ok {
		return nil, nil
	}
	return &sol, nil
}

func (r *SolicitudRepo) Update(_ context.Context, sol *entity.Solicitud) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.data.solicitudes[sol.ID]
	if !ok {
		return domain.ErrNotFound
	}
	cur.Prioridad = sol.Prioridad
	cur.Status = sol.Status
	cur.ComentarioUser = sol.ComentarioUser
	cur.ComentarioAdmin = sol.ComentarioAdmin
	r.s.data.solicitudes[sol.ID] = cur
	return nil
}

func (r *SolicitudRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.data.solicitudes, id)
	return nil
}

func (r *SolicitudRepo) List(_ context.Context) ([]*entity.Solicitud, error) {
	return r.list(func(entity.Solicitud) bool { return true }), nil
}

func (r *SolicitudRepo) ListBySolicitante(_ context.Context, userID int64) ([]*entity.Solicitud, error) {
	return r.list(func(s entity.Solicitud) bool { return s.SolicitanteID == userID }), nil
}

func (r *SolicitudRepo) list(keep func(entity.Solicitud) bool) []*entity.Solicitud {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Solicitud, 0)
	for _, sol := range r.s.data.solicitudes {
		if keep(sol) {
			full := r.hydrate(sol)
			out = append(out, &full)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].FechaHora.Equal(out[j].FechaHora) {
			return out[i].ID > out[j].ID
		}
		return out[i].FechaHora.After(out[j].FechaHora)
	})
	return out
}

// hydrate agrega dueño y suministros. Requiere mu tomado.
func (r *SolicitudRepo) hydrate(sol entity.Solicitud) entity.Solicitud {
	if u, ok := r.s.data.users[sol.SolicitanteID]; ok {
		sol.Owner = &entity.Owner{ID: u.ID, Username: u.Username, Area: u.Area, Role: u.Role}
	}
	sol.Suministros = []entity.Suministro{}
	for _, it := range r.s.data.suministros {
		if it.SolicitudID == sol.ID {
			sol.Suministros = append(sol.Suministros, it)
		}
	}
	sort.Slice(sol.Suministros, func(i, j int) bool { return sol.Suministros[i].ID < sol.Suministros[j].ID })
	return sol
}

func (r *SolicitudRepo) parcialesOf(solicitudID int64) []entity.SuministroParcial {
	out := []entity.SuministroParcial{}
	for _, p := range r.s.data.parciales {
		if p.SolicitudID == solicitudID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].FechaEntrega.Equal(out[j].FechaEntrega) {
			return out[i].ID > out[j].ID
		}
		return out[i].FechaEntrega.After(out[j].FechaEntrega)
	})
	return out
}

func (r *SolicitudRepo) CreateSuministros(_ context.Context, solicitudID int64, items []entity.Suministro) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, it := range items {
		it.ID = r.s.data.nextID()
		it.SolicitudID = solicitudID
		r.s.data.suministros[it.ID] = it
	}
	return nil
}

func (r *SolicitudRepo) DeleteSuministros(_ context.Context, solicitudID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, it := range r.s.data.suministros {
		if it.SolicitudID == solicitudID {
			delete(r.s.data.suministros, id)
		}
	}
	return nil
}

func (r *SolicitudRepo) CreateParciales(_ context.Context, solicitudID int64, items []entity.SuministroParcial) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range items {
		p.ID = r.s.data.nextID()
		p.SolicitudID = solicitudID
		r.s.data.parciales[p.ID] = p
	}
	return nil
}

func (r *SolicitudRepo) ListParciales(_ context.Context, solicitudID int64) ([]entity.SuministroParcial, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.parcialesOf(solicitudID), nil
}

func (r *SolicitudRepo) GetParcial(_ context.Context, id int64) (*entity.SuministroParcial, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.data.parciales[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *SolicitudRepo) DeleteParcial(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.data.parciales, id)
	return nil
}

func (r *SolicitudRepo) DeleteParciales(_ context.Context, solicitudID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, p := range r.s.data.parciales {
		if p.SolicitudID == solicitudID {
			delete(r.s.data.parciales, id)
		}
	}
	return nil
}

// Counts devuelve el número de solicitudes, suministros y parciales (tests).
func (s *Store) Counts() (solicitudes, suministros, parciales int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data.solicitudes), len(s.data.suministros), len(s.data.parciales)
}
