package entity

import "time"

// Status estado del ciclo de vida de una solicitud.
type Status string

// Enumeración canónica de estados. El primer valor es el estado inicial.
const (
	StatusPendienteAutorizacion Status = "pendiente autorizacion"
	StatusAutorizada            Status = "autorizada"
	StatusRechazada             Status = "rechazada"
	StatusEntregaParcial        Status = "entrega parcial"
	StatusSurtido               Status = "surtido"
)

// Statuses lista todos los estados válidos.
var Statuses = []Status{
	StatusPendienteAutorizacion,
	StatusAutorizada,
	StatusRechazada,
	StatusEntregaParcial,
	StatusSurtido,
}

// ApprovedStatuses estados que cuentan como aprobados en el dashboard.
var ApprovedStatuses = []Status{StatusAutorizada, StatusEntregaParcial, StatusSurtido}

// Valid indica si s pertenece a la enumeración.
func (s Status) Valid() bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}

// Priority prioridad de la solicitud.
type Priority string

const (
	PriorityMuyAlto  Priority = "muy alto"
	PriorityAlto     Priority = "alto"
	PriorityModerado Priority = "moderado"
)

// Priorities lista todas las prioridades válidas.
var Priorities = []Priority{PriorityMuyAlto, PriorityAlto, PriorityModerado}

// Valid indica si p pertenece a la enumeración.
func (p Priority) Valid() bool {
	for _, v := range Priorities {
		if v == p {
			return true
		}
	}
	return false
}

// Solicitud es un pedido de suministros. Se trata como valor inmutable: las transiciones
// devuelven una copia nueva (ver paquete lifecycle).
type Solicitud struct {
	ID              int64
	Folio           string // único e inmutable una vez asignado
	SolicitanteID   int64  // dueño, inmutable
	Area            string // copiada del dueño al crear
	FechaHora       time.Time
	Prioridad       Priority
	Status          Status
	ComentarioUser  *string
	ComentarioAdmin *string
	Abierto         bool // reservado: se persiste pero ninguna operación lo modifica

	Owner       *Owner // sólo en lecturas
	Suministros []Suministro
	Parciales   []SuministroParcial
}
