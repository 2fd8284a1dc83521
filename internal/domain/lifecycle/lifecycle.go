// Package lifecycle contiene las reglas del ciclo de vida de una solicitud como funciones puras:
// reciben valores inmutables (actor, estado actual, entrada) y devuelven el nuevo estado más la
// lista de efectos de persistencia. La frontera transaccional la define el caller.
package lifecycle

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/jhoicas/Suministros-api/internal/domain"
	"github.com/jhoicas/Suministros-api/internal/domain/access"
	"github.com/jhoicas/Suministros-api/internal/domain/entity"
	"github.com/jhoicas/Suministros-api/internal/domain/folio"
)

// Actor identidad resuelta del caller (id, rol, área).
type Actor struct {
	UserID int64
	Role   entity.Role
	Area   string
}

// ItemInput cantidad, nombre y unidad de un suministro o de una entrega.
type ItemInput struct {
	Cantidad int
	Nombre   string
	Unidad   string
}

// CreateInput datos de una solicitud nueva. Prioridad vacía equivale a "moderado".
type CreateInput struct {
	Prioridad      entity.Priority
	ComentarioUser *string
	Suministros    []ItemInput
}

// EditInput campos editables por el dueño. ReplaceItems=false deja los suministros intactos.
type EditInput struct {
	Prioridad      *entity.Priority
	ComentarioUser *string
	Suministros    []ItemInput
	ReplaceItems   bool
}

// StatusInput cambio de status por un administrador.
type StatusInput struct {
	Status          entity.Status
	ComentarioAdmin *string
}

// ValidateCreate valida la entrada de creación sin necesitar folio ni estado.
func ValidateCreate(a Actor, in CreateInput) error {
	if a.UserID == 0 {
		return domain.ErrUnauthorized
	}
	if in.Prioridad != "" && !in.Prioridad.Valid() {
		return fmt.Errorf("%w: prioridad %q inválida", domain.ErrInvalidInput, in.Prioridad)
	}
	if in.Suministros == nil {
		return fmt.Errorf("%w: suministros inválidos", domain.ErrInvalidInput)
	}
	return validateItems("suministro", in.Suministros)
}

// Create arma una solicitud nueva en estado pendiente, del caller y con su área.
func Create(a Actor, in CreateInput, f string, now time.Time) (entity.Solicitud, []Effect, error) {
	if err := ValidateCreate(a, in); err != nil {
		return entity.Solicitud{}, nil, err
	}
	if !folio.Valid(f) {
		return entity.Solicitud{}, nil, fmt.Errorf("folio %q con formato inválido", f)
	}
	prioridad := in.Prioridad
	if prioridad == "" {
		prioridad = entity.PriorityModerado
	}
	s := entity.Solicitud{
		Folio:          f,
		SolicitanteID:  a.UserID,
		Area:           a.Area,
		FechaHora:      now,
		Prioridad:      prioridad,
		Status:         entity.StatusPendienteAutorizacion,
		ComentarioUser: in.ComentarioUser,
		Suministros:    toSuministros(0, in.Suministros),
	}
	return s, []Effect{InsertSolicitud{Solicitud: s}}, nil
}

// Edit aplica cambios del dueño. Un actor distinto del dueño recibe ErrNotFound para no
// revelar la existencia de la solicitud.
func Edit(a Actor, cur entity.Solicitud, in EditInput) (entity.Solicitud, []Effect, error) {
	if !IsOwner(a, cur) {
		return cur, nil, domain.ErrNotFound
	}
	if in.Prioridad != nil && !in.Prioridad.Valid() {
		return cur, nil, fmt.Errorf("%w: prioridad %q inválida", domain.ErrInvalidInput, *in.Prioridad)
	}
	if in.ReplaceItems {
		if err := validateItems("suministro", in.Suministros); err != nil {
			return cur, nil, err
		}
	}

	next := cur
	var effects []Effect
	if in.Prioridad != nil || in.ComentarioUser != nil {
		if in.Prioridad != nil {
			next.Prioridad = *in.Prioridad
		}
		if in.ComentarioUser != nil {
			next.ComentarioUser = in.ComentarioUser
		}
		effects = append(effects, UpdateSolicitud{Solicitud: next})
	}
	if in.ReplaceItems {
		next.Suministros = toSuministros(cur.ID, in.Suministros)
		effects = append(effects, ReplaceSuministros{SolicitudID: cur.ID, Suministros: next.Suministros})
	}
	return next, effects, nil
}

// CheckStatusChange valida capacidad y status destino antes de cargar o mutar nada.
func CheckStatusChange(a Actor, in StatusInput) error {
	if err := access.Require(a.Role, access.ChangeStatus); err != nil {
		return err
	}
	if !in.Status.Valid() {
		return fmt.Errorf("%w: status %q inválido", domain.ErrInvalidInput, in.Status)
	}
	return nil
}

// ChangeStatus mueve la solicitud al status indicado. "rechazada" es terminal salvo para
// quien posee la capacidad de reabrir.
func ChangeStatus(a Actor, cur entity.Solicitud, in StatusInput) (entity.Solicitud, []Effect, error) {
	if err := CheckStatusChange(a, in); err != nil {
		return cur, nil, err
	}
	if err := checkNotRejected(a, cur, in.Status); err != nil {
		return cur, nil, err
	}
	next := cur
	next.Status = in.Status
	if in.ComentarioAdmin != nil {
		next.ComentarioAdmin = in.ComentarioAdmin
	}
	return next, []Effect{UpdateSolicitud{Solicitud: next}}, nil
}

// CheckDelivery valida capacidad y entradas de una entrega parcial.
func CheckDelivery(a Actor, items []ItemInput) error {
	if err := access.Require(a.Role, access.RecordDelivery); err != nil {
		return err
	}
	if len(items) == 0 {
		return fmt.Errorf("%w: suministros parciales inválidos", domain.ErrInvalidInput)
	}
	return validateItems("suministro parcial", items)
}

// RecordDelivery registra una entrega parcial y pasa la solicitud a "entrega parcial" sin
// conciliar cantidades entregadas contra solicitadas.
func RecordDelivery(a Actor, cur entity.Solicitud, items []ItemInput, now time.Time) (entity.Solicitud, []Effect, error) {
	if err := CheckDelivery(a, items); err != nil {
		return cur, nil, err
	}
	if err := checkNotRejected(a, cur, entity.StatusEntregaParcial); err != nil {
		return cur, nil, err
	}
	parciales := make([]entity.SuministroParcial, 0, len(items))
	for _, it := range items {
		parciales = append(parciales, entity.SuministroParcial{
			SolicitudID:  cur.ID,
			Cantidad:     it.Cantidad,
			Nombre:       strings.TrimSpace(it.Nombre),
			Unidad:       strings.TrimSpace(it.Unidad),
			FechaEntrega: now,
		})
	}
	next := cur
	next.Status = entity.StatusEntregaParcial
	next.Parciales = append(append([]entity.SuministroParcial(nil), cur.Parciales...), parciales...)
	return next, []Effect{
		InsertParciales{SolicitudID: cur.ID, Parciales: parciales},
		UpdateSolicitud{Solicitud: next},
	}, nil
}

// Delete elimina la solicitud con sus suministros y entregas parciales. Sólo el dueño.
func Delete(a Actor, cur entity.Solicitud) ([]Effect, error) {
	if !IsOwner(a, cur) {
		return nil, domain.ErrNotFound
	}
	return []Effect{DeleteSolicitud{SolicitudID: cur.ID}}, nil
}

// IsOwner compara el id del caller con el dueño; el rol no interviene.
func IsOwner(a Actor, s entity.Solicitud) bool {
	return a.UserID != 0 && a.UserID == s.SolicitanteID
}

// CanView indica si el actor puede leer la solicitud: dueño o quien ve todas.
func CanView(a Actor, s entity.Solicitud) bool {
	return IsOwner(a, s) || access.Can(a.Role, access.ViewAllRequests)
}

func checkNotRejected(a Actor, cur entity.Solicitud, target entity.Status) error {
	if cur.Status != entity.StatusRechazada || target == entity.StatusRechazada {
		return nil
	}
	if access.Can(a.Role, access.ReopenRejected) {
		return nil
	}
	return fmt.Errorf("%w: la solicitud %s fue rechazada", domain.ErrConflict, cur.Folio)
}

// MaxCantidad tope de una cantidad; las columnas cantidad son INTEGER.
const MaxCantidad = math.MaxInt32

func validateItems(kind string, items []ItemInput) error {
	for i, it := range items {
		if it.Cantidad <= 0 {
			return fmt.Errorf("%w: %s %d: la cantidad debe ser positiva", domain.ErrInvalidInput, kind, i+1)
		}
		if it.Cantidad > MaxCantidad {
			return fmt.Errorf("%w: %s %d: la cantidad excede %d", domain.ErrInvalidInput, kind, i+1, MaxCantidad)
		}
		if strings.TrimSpace(it.Nombre) == "" || strings.TrimSpace(it.Unidad) == "" {
			return fmt.Errorf("%w: %s %d: nombre y unidad son requeridos", domain.ErrInvalidInput, kind, i+1)
		}
	}
	return nil
}

func toSuministros(solicitudID int64, items []ItemInput) []entity.Suministro {
	out := make([]entity.Suministro, 0, len(items))
	for _, it := range items {
		out = append(out, entity.Suministro{
			SolicitudID: solicitudID,
			Cantidad:    it.Cantidad,
			Nombre:      strings.TrimSpace(it.Nombre),
			Unidad:      strings.TrimSpace(it.Unidad),
		})
	}
	return out
}
