package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/Suministros-api/docs"
	appanalytics "github.com/jhoicas/Suministros-api/internal/application/analytics"
	"github.com/jhoicas/Suministros-api/internal/application/auth"
	"github.com/jhoicas/Suministros-api/internal/application/solicitud"
	"github.com/jhoicas/Suministros-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Suministros-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Suministros-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Suministros-api/internal/interfaces/http"
	"github.com/jhoicas/Suministros-api/pkg/config"
	"github.com/jhoicas/Suministros-api/pkg/logger"
)

// @title                       Suministros API
// @version                     1.0
// @description                 Solicitudes de suministros por área: folios, autorización, entregas parciales y dashboard.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		AppName: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("timezone", cfg.App.Timezone).
		Msg("iniciando aplicación")

	loc, err := cfg.App.Location()
	if err != nil {
		log.Fatal().Err(err).Msg("zona horaria")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Reintenta indefinidamente hasta que la DB responda o llegue una señal de apagado.
	pool, err := postgres.NewPool(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	userRepo := postgres.NewUserRepository(pool)
	solicitudRepo := postgres.NewSolicitudRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	solicitudUC := solicitud.NewUseCase(solicitudRepo, txRunner, infrapdf.NewMarotoVoucherGenerator(loc), log, solicitud.Config{
		Location:      loc,
		FolioAttempts: cfg.Folio.MaxAttempts,
		FolioBackoff:  cfg.Folio.Backoff,
	})
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogging(log))

	corsCfg := cors.Config{AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID", ExposeHeaders: "X-Request-ID"}
	if cfg.HTTP.FrontendURL != "" {
		corsCfg.AllowOrigins = cfg.HTTP.FrontendURL
	}
	app.Use(cors.New(corsCfg))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Suministros API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		UserUC:      usecase.NewUserUseCase(userRepo),
		SolicitudUC: solicitudUC,
		DashboardUC: appanalytics.NewDashboardUseCase(analyticsRepo, loc),
		ProductUC:   usecase.NewProductUseCase(postgres.NewProductRepository(pool)),
		UnitUC:      usecase.NewUnitUseCase(postgres.NewUnitRepository(pool)),
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
