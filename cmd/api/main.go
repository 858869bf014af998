package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/gevp/gevp-api/internal/application/audit"
	"github.com/gevp/gevp-api/internal/application/auth"
	"github.com/gevp/gevp-api/internal/application/usecase"
	"github.com/gevp/gevp-api/internal/infrastructure/postgres"
	httpRouter "github.com/gevp/gevp-api/internal/interfaces/http"
	"github.com/gevp/gevp-api/pkg/config"
	"github.com/gevp/gevp-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	countryRepo := postgres.NewCountryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	exporterRepo := postgres.NewExporterRepository(pool)
	auditRepo := postgres.NewAuditLogRepository(pool)

	recorder := audit.NewRecorder(auditRepo, log)
	authUC := auth.NewAuthUseCase(userRepo, countryRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		Algorithm:  cfg.JWT.Algorithm,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	countryUC := usecase.NewCountryUseCase(countryRepo)
	productUC := usecase.NewProductUseCase(productRepo, recorder)
	exporterUC := usecase.NewExporterUseCase(exporterRepo, recorder)
	adminUC := usecase.NewAdminUseCase(userRepo, auditRepo, recorder)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	mountSwagger(app, log, "./docs/swagger.json")

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		CountryUC:  countryUC,
		ProductUC:  productUC,
		ExporterUC: exporterUC,
		AdminUC:    adminUC,
		Users:      userRepo,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// mountSwagger monta el Swagger UI (http://localhost:<port>/docs) solo si el
// spec generado existe: swagger.New lee el archivo al montar y entra en pánico
// si falta, y la API debe poder arrancar sin él.
func mountSwagger(app *fiber.App, log *logger.Logger, filePath string) {
	if _, err := os.Stat(filePath); err != nil {
		log.Warn().Str("file", filePath).Msg("swagger.json no encontrado, /docs deshabilitado")
		return
	}
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: filePath,
		Path:     "docs",
		Title:    "GEVP API",
	}))
}
