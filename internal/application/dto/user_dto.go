package dto

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en use case).
type CreateUserRequest struct {
	User     string `json:"user" validate:"required,min=1,max=100"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Rol      string `json:"rol" validate:"omitempty,oneof=user admin superadmin"`
	Area     string `json:"area" validate:"required,max=100"`
}

// UpdateUserRequest entrada para editar un usuario. Password vacío conserva el actual.
type UpdateUserRequest struct {
	User     *string `json:"user" validate:"omitempty,min=1,max=100"`
	Password *string `json:"password" validate:"omitempty,min=6,max=72"`
	Rol      *string `json:"rol" validate:"omitempty,oneof=user admin superadmin"`
	Area     *string `json:"area" validate:"omitempty,min=1,max=100"`
}

// ProfileColorRequest entrada de PUT /api/usuarios/color-perfil.
type ProfileColorRequest struct {
	ColorPerfil string `json:"colorPerfil" validate:"required"`
}

// UserResponse salida de un usuario (sin password ni token).
type UserResponse struct {
	ID          int64  `json:"id"`
	User        string `json:"user"`
	Rol         string `json:"rol"`
	Area        string `json:"area"`
	ColorPerfil string `json:"colorPerfil"`
	Confirmado  bool   `json:"confirmado"`
}

// UserEnvelope respuesta de creación/edición con mensaje.
type UserEnvelope struct {
	Msg     string        `json:"msg"`
	Usuario *UserResponse `json:"usuario"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	User     string `json:"user" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse perfil del usuario autenticado más el token JWT.
type LoginResponse struct {
	ID          int64  `json:"id"`
	User        string `json:"user"`
	Rol         string `json:"rol"`
	Area        string `json:"area"`
	ColorPerfil string `json:"colorPerfil"`
	Token       string `json:"token"`
}

// UserListResponse listado de usuarios.
type UserListResponse struct {
	Usuarios []UserResponse `json:"usuarios"`
}
