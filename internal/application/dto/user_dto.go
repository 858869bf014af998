package dto

import "time"

// RegisterRequest entrada para registro. El usuario queda inactivo hasta que
// un SUPER_ADMIN lo active.
type RegisterRequest struct {
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"required,min=8"`
	Role      string  `json:"role" validate:"omitempty,oneof=SUPER_ADMIN COUNTRY_ADMIN EDITOR"`
	CountryID *string `json:"country_id" validate:"omitempty,uuid"`
}

// TokenRequest entrada del login OAuth2 password-grant (form-encoded).
type TokenRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// TokenResponse salida del login, forma estándar OAuth2.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"` // siempre "bearer"
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CountryID *string   `json:"country_id"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
