package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gevp/gevp-api/internal/application/dto"
	"github.com/gevp/gevp-api/internal/application/usecase"
	"github.com/gevp/gevp-api/internal/domain"
)

// AdminHandler endpoints reservados a SUPER_ADMIN (el router aplica RequireRole).
type AdminHandler struct {
	uc *usecase.AdminUseCase
}

// NewAdminHandler construye el handler.
func NewAdminHandler(uc *usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// Users godoc
// @Summary      Listar usuarios registrados (paginado)
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máx. por página (default 100, tope 1000)"
// @Param        offset  query  int  false  "desplazamiento (default 0)"
// @Success      200  {array}  dto.UserResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /admin/users [get]
func (h *AdminHandler) Users(c *fiber.Ctx) error {
	out, err := h.uc.ListUsers(actorFromCtx(c), c.QueryInt("limit"), c.QueryInt("offset"))
	if err != nil {
		return adminError(c, err)
	}
	return c.JSON(out)
}

// Activate godoc
// @Summary      Activar cuenta de usuario
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del usuario"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /admin/users/{id}/activate [patch]
func (h *AdminHandler) Activate(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.ActivateUser(actorFromCtx(c), id); err != nil {
		if err == domain.ErrUserNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
		}
		return adminError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "usuario activado"})
}

// AuditLogs godoc
// @Summary      Últimas entradas de auditoría (máx. 100, descendente)
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.AuditLogResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /admin/audit-logs [get]
func (h *AdminHandler) AuditLogs(c *fiber.Ctx) error {
	out, err := h.uc.AuditLogs(actorFromCtx(c))
	if err != nil {
		return adminError(c, err)
	}
	return c.JSON(out)
}

func adminError(c *fiber.Ctx, err error) error {
	if err == domain.ErrForbidden {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "se requiere acceso de super admin"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}
