package entity

import "time"

// Roles válidos para User.
const (
	RoleSuperAdmin   = "SUPER_ADMIN"
	RoleCountryAdmin = "COUNTRY_ADMIN"
	RoleEditor       = "EDITOR"
)

// User representa un usuario del sistema. CountryID es nil para usuarios
// globales (SUPER_ADMIN) o pendientes de asignación.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // SUPER_ADMIN, COUNTRY_ADMIN, EDITOR
	CountryID    *string
	IsActive     bool // se registra en false; solo un SUPER_ADMIN activa
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Country devuelve el país asignado o cadena vacía si no tiene.
func (u *User) Country() string {
	if u.CountryID == nil {
		return ""
	}
	return *u.CountryID
}
