package solicitud

import (
	"context"
	"fmt"

	"github.com/jhoicas/Suministros-api/internal/domain/lifecycle"
	"github.com/jhoicas/Suministros-api/internal/domain/repository"
)

// applyEffects persiste en orden los efectos devueltos por el paquete lifecycle.
// Devuelve el id asignado por InsertSolicitud (0 si no hubo inserción).
func applyEffects(ctx context.Context, repo repository.SolicitudRepository, effects []lifecycle.Effect) (int64, error) {
	var insertedID int64
	for _, e := range effects {
		switch e := e.(type) {
		case lifecycle.InsertSolicitud:
			s := e.Solicitud
			if err := repo.Create(ctx, &s); err != nil {
				return 0, err
			}
			if err := repo.CreateSuministros(ctx, s.ID, s.Suministros); err != nil {
				return 0, err
			}
			insertedID = s.ID
		case lifecycle.UpdateSolicitud:
			s := e.Solicitud
			if err := repo.Update(ctx, &s); err != nil {
				return 0, err
			}
		case lifecycle.ReplaceSuministros:
			if err := repo.DeleteSuministros(ctx, e.SolicitudID); err != nil {
				return 0, err
			}
			if err := repo.CreateSuministros(ctx, e.SolicitudID, e.Suministros); err != nil {
				return 0, err
			}
		case lifecycle.InsertParciales:
			if err := repo.CreateParciales(ctx, e.SolicitudID, e.Parciales); err != nil {
				return 0, err
			}
		case lifecycle.DeleteSolicitud:
			if err := repo.DeleteParciales(ctx, e.SolicitudID); err != nil {
				return 0, err
			}
			if err := repo.DeleteSuministros(ctx, e.SolicitudID); err != nil {
				return 0, err
			}
			if err := repo.Delete(ctx, e.SolicitudID); err != nil {
				return 0, err
			}
		default:
			return 0, fmt.Errorf("efecto no soportado: %T", e)
		}
	}
	return insertedID, nil
}
