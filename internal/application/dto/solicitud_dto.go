package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jhoicas/Suministros-api/internal/domain"
)

// ItemRequest un suministro (o entrega parcial) en el cuerpo de una petición.
type ItemRequest struct {
	Cantidad int    `json:"cantidad" validate:"required,gt=0,lte=2147483647"`
	Nombre   string `json:"nombre" validate:"required,max=200"`
	Unidad   string `json:"unidad" validate:"required,max=50"`
}

// ItemList lista de suministros. Acepta un arreglo JSON o un string con el arreglo
// codificado (los formularios multipart del front lo envían así).
type ItemList []ItemRequest

// UnmarshalJSON decodifica arreglo o string. null deja la lista en nil.
func (l *ItemList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("%w: formato de suministros inválido", domain.ErrInvalidInput)
		}
		data = []byte(raw)
	}
	var items []ItemRequest
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("%w: suministros inválidos", domain.ErrInvalidInput)
	}
	if items == nil {
		items = []ItemRequest{}
	}
	*l = items
	return nil
}

// CreateSolicitudRequest entrada de POST /api/solicitudes.
type CreateSolicitudRequest struct {
	Prioridad      string   `json:"prioridad" validate:"omitempty,oneof='muy alto' alto moderado"`
	ComentarioUser *string  `json:"comentarioUser"`
	Suministros    ItemList `json:"suministros" validate:"required,dive"`
}

// UpdateSolicitudRequest entrada de PUT /api/solicitudes/:id. Campos nil no se modifican;
// suministros presente reemplaza la lista completa.
type UpdateSolicitudRequest struct {
	Prioridad      *string  `json:"prioridad" validate:"omitempty,oneof='muy alto' alto moderado"`
	ComentarioUser *string  `json:"comentarioUser"`
	Suministros    ItemList `json:"suministros" validate:"omitempty,dive"`
}

// ChangeStatusRequest entrada de PUT /api/solicitudes/:id/status.
type ChangeStatusRequest struct {
	Status          string  `json:"status" validate:"required"`
	ComentarioAdmin *string `json:"comentarioAdmin"`
}

// CreateParcialRequest entrada de POST /api/suministros-parciales/:solicitudId.
// La clave del front es suministrosParciales; suministros se acepta como alias.
type CreateParcialRequest struct {
	SuministrosParciales ItemList `json:"suministrosParciales" validate:"omitempty,dive"`
	Suministros          ItemList `json:"suministros" validate:"omitempty,dive"`
}

// Items devuelve la lista entregada, con prioridad para suministrosParciales.
func (r CreateParcialRequest) Items() ItemList {
	if r.SuministrosParciales != nil {
		return r.SuministrosParciales
	}
	return r.Suministros
}

// OwnerResponse resumen del solicitante.
type OwnerResponse struct {
	ID   int64  `json:"id"`
	User string `json:"user"`
	Area string `json:"area"`
	Rol  string `json:"rol"`
}

// SuministroResponse línea de una solicitud.
type SuministroResponse struct {
	ID          int64  `json:"id"`
	Cantidad    int    `json:"cantidad"`
	Nombre      string `json:"nombre"`
	Unidad      string `json:"unidad"`
	SolicitudID int64  `json:"solicitudId"`
}

// ParcialResponse entrega parcial registrada.
type ParcialResponse struct {
	ID           int64     `json:"id"`
	Cantidad     int       `json:"cantidad"`
	Nombre       string    `json:"nombre"`
	Unidad       string    `json:"unidad"`
	SolicitudID  int64     `json:"solicitudId"`
	FechaEntrega time.Time `json:"fechaEntrega"`
}

// SolicitudResponse salida de una solicitud con su dueño y sus hijos.
type SolicitudResponse struct {
	ID              int64                `json:"id"`
	Folio           string               `json:"folio"`
	Area            string               `json:"area"`
	FechaHora       time.Time            `json:"fechaHora"`
	Prioridad       string               `json:"prioridad"`
	Status          string               `json:"status"`
	ComentarioUser  *string              `json:"comentarioUser"`
	ComentarioAdmin *string              `json:"comentarioAdmin"`
	Solicitante     int64                `json:"solicitante"`
	Abierto         bool                 `json:"abierto"`
	Usuario         *OwnerResponse       `json:"usuario,omitempty"`
	Suministros     []SuministroResponse `json:"suministros"`
	Parciales       []ParcialResponse    `json:"suministrosParciales,omitempty"`
}

// SolicitudEnvelope cuerpo de respuesta de las operaciones sobre una solicitud.
type SolicitudEnvelope struct {
	Msg       string             `json:"msg,omitempty"`
	Solicitud *SolicitudResponse `json:"solicitud"`
}

// SolicitudListResponse listado de solicitudes.
type SolicitudListResponse struct {
	Solicitudes []SolicitudResponse `json:"solicitudes"`
}

// ParcialListResponse listado de entregas parciales de una solicitud.
type ParcialListResponse struct {
	SuministrosParciales []ParcialResponse `json:"suministrosParciales"`
}

// MessageResponse respuesta con sólo un mensaje.
type MessageResponse struct {
	Msg string `json:"msg"`
}
