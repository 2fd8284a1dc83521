package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Suministros-api/internal/domain"
	"github.com/jhoicas/Suministros-api/internal/domain/access"
	"github.com/jhoicas/Suministros-api/internal/domain/entity"
)

func TestCan_Matrix(t *testing.T) {
	cases := []struct {
		role entity.Role
		perm access.Capability
		want bool
	}{
		{entity.RoleUser, access.ChangeStatus, false},
		{entity.RoleUser, access.RecordDelivery, false},
		{entity.RoleUser, access.ViewAllRequests, false},
		{entity.RoleAdmin, access.ChangeStatus, true},
		{entity.RoleAdmin, access.RecordDelivery, true},
		{entity.RoleAdmin, access.DeleteDelivery, true},
		{entity.RoleAdmin, access.ReopenRejected, false},
		{entity.RoleAdmin, access.ManageCatalog, false},
		{entity.RoleAdmin, access.ManageUsers, false},
		{entity.RoleSuperAdmin, access.ReopenRejected, true},
		{entity.RoleSuperAdmin, access.ManageCatalog, true},
		{entity.RoleSuperAdmin, access.ManageUsers, true},
		{entity.Role("bodeguero"), access.ChangeStatus, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, access.Can(tc.role, tc.perm), "%s / %s", tc.role, tc.perm)
	}
}

func TestRequire_ErrForbidden(t *testing.T) {
	err := access.Require(entity.RoleUser, access.ChangeStatus)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.NoError(t, access.Require(entity.RoleAdmin, access.ChangeStatus))
}
