package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gevp/gevp-api/internal/application/dto"
	"github.com/gevp/gevp-api/internal/application/usecase"
	"github.com/gevp/gevp-api/internal/domain"
)

// ExporterHandler maneja las peticiones HTTP para Exporter.
type ExporterHandler struct {
	uc *usecase.ExporterUseCase
}

// NewExporterHandler construye el handler.
func NewExporterHandler(uc *usecase.ExporterUseCase) *ExporterHandler {
	return &ExporterHandler{uc: uc}
}

// List godoc
// @Summary      Listar exportadores (público)
// @Tags         exporters
// @Produce      json
// @Param        country_id  query  string  false  "filtrar por país"
// @Success      200  {array}  dto.ExporterResponse
// @Router       /exporters [get]
func (h *ExporterHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("country_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudieron obtener los exportadores"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar exportador
// @Tags         exporters
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateExporterRequest  true  "Datos del exportador"
// @Success      201   {object}  dto.ExporterResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /exporters [post]
func (h *ExporterHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateExporterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.LicenseID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y license_id son requeridos"})
	}
	out, err := h.uc.Create(actorFromCtx(c), in)
	if err != nil {
		switch err {
		case domain.ErrDuplicate:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "license_id ya registrado"})
		case domain.ErrForbidden:
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "permisos insuficientes"})
		case domain.ErrNoCountryAssigned:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_COUNTRY", Message: "el usuario debe tener un país asignado"})
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entrada inválida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
