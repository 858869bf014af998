package policy

import "github.com/gevp/gevp-api/internal/domain/entity"

// Action acción solicitada sobre un recurso del catálogo.
type Action string

// Acciones sobre recursos del catálogo y acciones administrativas.
const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"

	ActionListUsers    Action = "list_users"
	ActionActivateUser Action = "activate_user"
	ActionReadAuditLog Action = "read_audit_log"
)

// adminOnly acciones reservadas a SUPER_ADMIN.
var adminOnly = map[Action]bool{
	ActionListUsers:    true,
	ActionActivateUser: true,
	ActionReadAuditLog: true,
}

// Allowed decide si un rol puede ejecutar una acción sobre un recurso.
// Es la única fuente de verdad de autorización: los handlers y use cases
// no comparan roles por su cuenta.
//
// Reglas:
//   - SUPER_ADMIN: todo permitido, incondicional.
//   - Acciones administrativas: solo SUPER_ADMIN.
//   - Lecturas: permitidas para cualquier rol conocido.
//   - Escrituras (create/update/delete): COUNTRY_ADMIN y EDITOR solo sobre
//     recursos de su propio país; sin país asignado no pueden escribir.
//   - Rol desconocido: denegado.
//
// Función pura: no registra ni produce errores; el llamador decide cómo
// expresar la denegación.
func Allowed(role string, action Action, ownerCountryID, actorCountryID string) bool {
	if role == entity.RoleSuperAdmin {
		return true
	}
	if adminOnly[action] {
		return false
	}
	switch role {
	case entity.RoleCountryAdmin, entity.RoleEditor:
		if action == ActionRead {
			return true
		}
		return actorCountryID != "" && ownerCountryID == actorCountryID
	default:
		return false
	}
}
