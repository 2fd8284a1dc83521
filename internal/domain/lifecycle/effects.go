package lifecycle

import "github.com/jhoicas/Suministros-api/internal/domain/entity"

// Effect describe una escritura que la capa de aplicación debe aplicar dentro de la
// transacción de la operación. Las funciones de este paquete no tocan la base de datos.
type Effect interface {
	effect()
}

// InsertSolicitud inserta la solicitud y, con el ID resultante, sus suministros.
type InsertSolicitud struct {
	Solicitud entity.Solicitud
}

// UpdateSolicitud persiste los campos mutables (prioridad, comentarios, status).
type UpdateSolicitud struct {
	Solicitud entity.Solicitud
}

// ReplaceSuministros borra todos los suministros de la solicitud e inserta el nuevo conjunto.
type ReplaceSuministros struct {
	SolicitudID int64
	Suministros []entity.Suministro
}

// InsertParciales agrega registros de entrega parcial.
type InsertParciales struct {
	SolicitudID int64
	Parciales   []entity.SuministroParcial
}

// DeleteSolicitud elimina entregas parciales, suministros y la solicitud, en ese orden.
type DeleteSolicitud struct {
	SolicitudID int64
}

func (InsertSolicitud) effect()    {}
func (UpdateSolicitud) effect()    {}
func (ReplaceSuministros) effect() {}
func (InsertParciales) effect()    {}
func (DeleteSolicitud) effect()    {}
