package solicitud

import (
	"github.com/jhoicas/Suministros-api/internal/application/dto"
	"github.com/jhoicas/Suministros-api/internal/domain/entity"
	"github.com/jhoicas/Suministros-api/internal/domain/lifecycle"
)

func toItemInputs(items dto.ItemList) []lifecycle.ItemInput {
	if items == nil {
		return nil
	}
	out := make([]lifecycle.ItemInput, 0, len(items))
	for _, it := range items {
		out = append(out, lifecycle.ItemInput{Cantidad: it.Cantidad, Nombre: it.Nombre, Unidad: it.Unidad})
	}
	return out
}

// ToResponse convierte la entidad a su DTO de salida.
func ToResponse(s *entity.Solicitud) *dto.SolicitudResponse {
	if s == nil {
		return nil
	}
	out := &dto.SolicitudResponse{
		ID:              s.ID,
		Folio:           s.Folio,
		Area:            s.Area,
		FechaHora:       s.FechaHora,
		Prioridad:       string(s.Prioridad),
		Status:          string(s.Status),
		ComentarioUser:  s.ComentarioUser,
		ComentarioAdmin: s.ComentarioAdmin,
		Solicitante:     s.SolicitanteID,
		Abierto:         s.Abierto,
		Suministros:     make([]dto.SuministroResponse, 0, len(s.Suministros)),
	}
	if s.Owner != nil {
		out.Usuario = &dto.OwnerResponse{
			ID:   s.Owner.ID,
			User: s.Owner.Username,
			Area: s.Owner.Area,
			Rol:  string(s.Owner.Role),
		}
	}
	for _, it := range s.Suministros {
		out.Suministros = append(out.Suministros, dto.SuministroResponse{
			ID:          it.ID,
			Cantidad:    it.Cantidad,
			Nombre:      it.Nombre,
			Unidad:      it.Unidad,
			SolicitudID: it.SolicitudID,
		})
	}
	if len(s.Parciales) > 0 {
		out.Parciales = ToParcialResponses(s.Parciales)
	}
	return out
}

// ToParcialResponses convierte entregas parciales a DTO.
func ToParcialResponses(list []entity.SuministroParcial) []dto.ParcialResponse {
	out := make([]dto.ParcialResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.ParcialResponse{
			ID:           p.ID,
			Cantidad:     p.Cantidad,
			Nombre:       p.Nombre,
			Unidad:       p.Unidad,
			SolicitudID:  p.SolicitudID,
			FechaEntrega: p.FechaEntrega,
		})
	}
	return out
}

func toResponses(list []*entity.Solicitud) []dto.SolicitudResponse {
	out := make([]dto.SolicitudResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *ToResponse(s))
	}
	return out
}
