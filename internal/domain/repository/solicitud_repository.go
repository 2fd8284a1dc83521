package repository

import (
	"context"

	"github.com/jhoicas/Suministros-api/internal/domain/entity"
)

// SolicitudRepository define el puerto de persistencia para solicitudes, sus suministros y
// sus entregas parciales. Las implementaciones aceptan pool o tx; las escrituras de una
// operación se ejecutan siempre dentro de un TxRunner.
type SolicitudRepository interface {
	// LastFolioWithPrefix devuelve el folio más alto con ese prefijo o "" si no existe.
	LastFolioWithPrefix(ctx context.Context, prefix string) (string, error)

	// Create inserta la solicitud y asigna s.ID. Una colisión de folio devuelve domain.ErrDuplicateFolio.
	Create(ctx context.Context, s *entity.Solicitud) error
	// GetByID devuelve la solicitud con dueño, suministros y parciales; nil si no existe.
	GetByID(ctx context.Context, id int64) (*entity.Solicitud, error)
	// GetForUpdate bloquea la fila (SELECT ... FOR UPDATE) y la devuelve sin hijos; nil si no existe.
	GetForUpdate(ctx context.Context, id int64) (*entity.Solicitud, error)
	// Update persiste prioridad, status y comentarios. folio, solicitante y área son inmutables.
	Update(ctx context.Context, s *entity.Solicitud) error
	Delete(ctx context.Context, id int64) error
	// List devuelve todas las solicitudes, más recientes primero, con dueño y suministros.
	List(ctx context.Context) ([]*entity.Solicitud, error)
	ListBySolicitante(ctx context.Context, userID int64) ([]*entity.Solicitud, error)

	CreateSuministros(ctx context.Context, solicitudID int64, items []entity.Suministro) error
	DeleteSuministros(ctx context.Context, solicitudID int64) error

	CreateParciales(ctx context.Context, solicitudID int64, items []entity.SuministroParcial) error
	// ListParciales ordena por fecha_entrega descendente.
	ListParciales(ctx context.Context, solicitudID int64) ([]entity.SuministroParcial, error)
	GetParcial(ctx context.Context, id int64) (*entity.SuministroParcial, error)
	DeleteParcial(ctx context.Context, id int64) error
	DeleteParciales(ctx context.Context, solicitudID int64) error
}
