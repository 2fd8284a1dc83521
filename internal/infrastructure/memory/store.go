// Package memory implementa los puertos de repositorio sobre mapas en memoria.
// Se usa en tests de casos de uso y de handlers; reproduce las restricciones UNIQUE
// de la base (folio, usuario, nombre de producto y de unidad).
package memory

import (
	"context"
	"maps"
	"sync"

	"github.com/jhoicas/Suministros-api/internal/domain/entity"
	"github.com/jhoicas/Suministros-api/internal/domain/repository"
)

type state struct {
	seq         int64
	users       map[int64]entity.User
	solicitudes map[int64]entity.Solicitud
	suministros map[int64]entity.Suministro
	parciales   map[int64]entity.SuministroParcial
	products    map[int64]entity.Product
	units       map[int64]entity.UnitOfMeasure
}

func (s *state) clone() state {
	return state{
		seq:         s.seq,
		users:       maps.Clone(s.users),
		solicitudes: maps.Clone(s.solicitudes),
		suministros: maps.Clone(s.suministros),
		parciales:   maps.Clone(s.parciales),
		products:    maps.Clone(s.products),
		units:       maps.Clone(s.units),
	}
}

func (s *state) nextID() int64 {
	s.seq++
	return s.seq
}

// Store base de datos en memoria compartida por todos los repositorios del paquete.
type Store struct {
	txMu sync.Mutex   // serializa transacciones
	mu   sync.RWMutex // protege data
	data state
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{data: state{
		users:       map[int64]entity.User{},
		solicitudes: map[int64]entity.Solicitud{},
		suministros: map[int64]entity.Suministro{},
		parciales:   map[int64]entity.SuministroParcial{},
		products:    map[int64]entity.Product{},
		units:       map[int64]entity.UnitOfMeasure{},
	}}
}

// TxRunner ejecuta fn de forma serializada; si fn falla restaura el estado previo.
type TxRunner struct {
	store *Store
	// Wrap permite a los tests interceptar el repositorio transaccional (inyectar fallas).
	Wrap func(repository.SolicitudRepository) repository.SolicitudRepository
}

// NewTxRunner construye el runner sobre el store.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run ejecuta fn con un SolicitudRepository del store.
func (r *TxRunner) Run(ctx context.Context, fn func(repo repository.SolicitudRepository) error) error {
	r.store.txMu.Lock()
	defer r.store.txMu.Unlock()

	r.store.mu.RLock()
	snapshot := r.store.data.clone()
	r.store.mu.RUnlock()

	var repo repository.SolicitudRepository = NewSolicitudRepository(r.store)
	if r.Wrap != nil {
		repo = r.Wrap(repo)
	}
	if err := fn(repo); err != nil {
		r.store.mu.Lock()
		r.store.data = snapshot
		r.store.mu.Unlock()
		return err
	}
	return nil
}
