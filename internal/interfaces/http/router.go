package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gevp/gevp-api/internal/application/auth"
	"github.com/gevp/gevp-api/internal/application/usecase"
	"github.com/gevp/gevp-api/internal/domain/entity"
	"github.com/gevp/gevp-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	CountryUC  *usecase.CountryUseCase
	ProductUC  *usecase.ProductUseCase
	ExporterUC *usecase.ExporterUseCase
	AdminUC    *usecase.AdminUseCase
	Users      repository.UserRepository // re-resolución de identidad en el middleware
	JWTSecret  string
}

// Router registra las rutas de la API. Las lecturas del catálogo son públicas;
// las mutaciones exigen Bearer Token y las rutas /admin además SUPER_ADMIN.
func Router(app *fiber.App, deps RouterDeps) {
	authMW := AuthMiddleware(deps.JWTSecret, deps.Users)

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	app.Post("/token", authHandler.Token)
	app.Post("/register", authHandler.Register)
	app.Get("/me", authMW, authHandler.Me)

	// Countries (lectura pública)
	countryHandler := NewCountryHandler(deps.CountryUC, deps.ProductUC)
	app.Get("/countries", countryHandler.List)
	app.Get("/countries/:id/products", countryHandler.Products)

	// Products (lectura pública, mutación protegida)
	productHandler := NewProductHandler(deps.ProductUC)
	app.Get("/products", productHandler.List)
	app.Post("/products", authMW, productHandler.Create)
	app.Put("/products/:id", authMW, productHandler.Update)
	app.Delete("/products/:id", authMW, productHandler.Delete)

	// Exporters (lectura pública, alta protegida)
	exporterHandler := NewExporterHandler(deps.ExporterUC)
	app.Get("/exporters", exporterHandler.List)
	app.Post("/exporters", authMW, exporterHandler.Create)

	// Admin (solo SUPER_ADMIN)
	admin := app.Group("/admin", authMW, RequireRole(entity.RoleSuperAdmin))
	adminHandler := NewAdminHandler(deps.AdminUC)
	admin.Get("/users", adminHandler.Users)
	admin.Patch("/users/:id/activate", adminHandler.Activate)
	admin.Get("/audit-logs", adminHandler.AuditLogs)
}
