package entity

// Role es el rol de un usuario. Enumeración cerrada.
type Role string

// Roles válidos para User.
const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "superadmin"
)

// ParseRole convierte un string a Role. ok=false si no pertenece a la enumeración.
func ParseRole(s string) (Role, bool) {
	switch r := Role(s); r {
	case RoleUser, RoleAdmin, RoleSuperAdmin:
		return r, true
	}
	return "", false
}

// DefaultProfileColor color asignado a usuarios nuevos.
const DefaultProfileColor = "text-gray-400"

// ProfileColors tokens de UI permitidos para el color de perfil.
var ProfileColors = []string{
	"text-gray-400", "text-blue-500", "text-green-500", "text-red-500",
	"text-purple-500", "text-yellow-500", "text-pink-500", "text-indigo-500",
}

// IsProfileColor indica si color es un token permitido.
func IsProfileColor(color string) bool {
	for _, c := range ProfileColors {
		if c == color {
			return true
		}
	}
	return false
}

// User representa un usuario del sistema.
type User struct {
	ID           int64
	Username     string // nombre visible, único
	PasswordHash string // bcrypt hash
	Role         Role
	Area         string // departamento; namespace del folio
	ProfileColor string
	Confirmed    bool
	Token        *string // último token emitido
}

// Owner resumen del solicitante que acompaña a una Solicitud en lecturas.
type Owner struct {
	ID       int64
	Username string
	Area     string
	Role     Role
}
