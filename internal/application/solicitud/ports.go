package solicitud

import (
	"context"

	"github.com/jhoicas/Suministros-api/internal/domain/entity"
	"github.com/jhoicas/Suministros-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando el repositorio de
// solicitudes atado a esa tx. Commit sólo si fn devuelve nil.
type TxRunner interface {
	Run(ctx context.Context, fn func(repo repository.SolicitudRepository) error) error
}

// VoucherGenerator genera el comprobante PDF de una solicitud.
type VoucherGenerator interface {
	GenerateSolicitudVoucher(s *entity.Solicitud) ([]byte, error)
}
