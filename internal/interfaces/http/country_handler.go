package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gevp/gevp-api/internal/application/dto"
	"github.com/gevp/gevp-api/internal/application/usecase"
)

// CountryHandler lecturas públicas del catálogo de países.
type CountryHandler struct {
	countryUC *usecase.CountryUseCase
	productUC *usecase.ProductUseCase
}

// NewCountryHandler construye el handler.
func NewCountryHandler(countryUC *usecase.CountryUseCase, productUC *usecase.ProductUseCase) *CountryHandler {
	return &CountryHandler{countryUC: countryUC, productUC: productUC}
}

// List godoc
// @Summary      Listar países
// @Tags         countries
// @Produce      json
// @Success      200  {array}  dto.CountryResponse
// @Router       /countries [get]
func (h *CountryHandler) List(c *fiber.Ctx) error {
	out, err := h.countryUC.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudieron obtener los países"})
	}
	return c.JSON(out)
}

// Products godoc
// @Summary      Listar productos de un país
// @Tags         countries
// @Produce      json
// @Param        id  path  string  true  "ID del país"
// @Success      200  {array}  dto.ProductResponse
// @Router       /countries/{id}/products [get]
func (h *CountryHandler) Products(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.productUC.ListByCountry(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudieron obtener los productos del país"})
	}
	return c.JSON(out)
}
