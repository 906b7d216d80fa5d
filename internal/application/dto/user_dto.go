package dto

// CreateUserRequest alta de usuario.
type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Level    int    `json:"level"` // 1..3, 1 = administrador
}

// UpdateUserRequest cambio de clave y/o nivel. Campos nil no se tocan.
type UpdateUserRequest struct {
	Password *string `json:"password,omitempty"`
	Level    *int    `json:"level,omitempty"`
}

// UserSummary vista pública de un usuario: jamás incluye hash ni salt.
type UserSummary struct {
	Username string `json:"username"`
	Level    int    `json:"level"`
}

// LoginRequest credenciales de ingreso.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse token de sesión más la vista pública del usuario.
type LoginResponse struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}
