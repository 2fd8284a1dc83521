// Package access define las capacidades del sistema y qué rol las posee.
// Cada operación privilegiada consulta una capacidad concreta en lugar de comparar roles sueltos.
package access

import (
	"fmt"

	"github.com/jhoicas/Suministros-api/internal/domain"
	"github.com/jhoicas/Suministros-api/internal/domain/entity"
)

// Capability permiso sobre una operación.
type Capability string

const (
	ChangeStatus    Capability = "solicitud:cambiar-status"
	ReopenRejected  Capability = "solicitud:reabrir"
	ViewAllRequests Capability = "solicitud:ver-todas"
	RecordDelivery  Capability = "entrega:registrar"
	DeleteDelivery  Capability = "entrega:eliminar"
	ManageUsers     Capability = "usuario:administrar"
	ManageCatalog   Capability = "catalogo:administrar"
)

var grants = map[entity.Role][]Capability{
	entity.RoleAdmin: {
		ChangeStatus, ViewAllRequests, RecordDelivery, DeleteDelivery,
	},
	entity.RoleSuperAdmin: {
		ChangeStatus, ReopenRejected, ViewAllRequests, RecordDelivery, DeleteDelivery,
		ManageUsers, ManageCatalog,
	},
}

// Can indica si el rol posee la capacidad. RoleUser y roles desconocidos no poseen ninguna.
func Can(role entity.Role, c Capability) bool {
	for _, g := range grants[role] {
		if g == c {
			return true
		}
	}
	return false
}

// Require devuelve ErrForbidden (envuelto con la capacidad) si el rol no la posee.
func Require(role entity.Role, c Capability) error {
	if !Can(role, c) {
		return fmt.Errorf("%w: se requiere %s", domain.ErrForbidden, c)
	}
	return nil
}
