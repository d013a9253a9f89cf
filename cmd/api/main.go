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

	"github.com/elb0ni/mis-finanzas-server/internal/application/analisis"
	"github.com/elb0ni/mis-finanzas-server/internal/application/auth"
	"github.com/elb0ni/mis-finanzas-server/internal/application/negocios"
	"github.com/elb0ni/mis-finanzas-server/internal/application/reportes"
	"github.com/elb0ni/mis-finanzas-server/internal/application/transacciones"
	"github.com/elb0ni/mis-finanzas-server/internal/infrastructure/postgres"
	httpRouter "github.com/elb0ni/mis-finanzas-server/internal/interfaces/http"
	"github.com/elb0ni/mis-finanzas-server/pkg/config"
	"github.com/elb0ni/mis-finanzas-server/pkg/logger"
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
	negocioRepo := postgres.NewNegocioRepository(pool)
	puntoVentaRepo := postgres.NewPuntoVentaRepository(pool)
	productoRepo := postgres.NewProductoRepository(pool)
	categoriaRepo := postgres.NewCategoriaEgresoRepository(pool)
	transaccionRepo := postgres.NewTransaccionRepository(pool)
	costosRepo := postgres.NewCostosFijosRepository(pool)
	reportesRepo := postgres.NewReportesRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewUseCase(userRepo, cfg.JWT)
	negociosUC := negocios.NewUseCase(negocioRepo, puntoVentaRepo, productoRepo, categoriaRepo)
	transaccionUC := transacciones.NewUseCase(transaccionRepo, puntoVentaRepo, categoriaRepo, txRunner)
	costosUC := analisis.NewCostosUseCase(negocioRepo, costosRepo, txRunner)
	equilibrioUC := analisis.NewEquilibrioUseCase(negocioRepo, costosRepo, reportesRepo)
	periodoUC := reportes.NewPeriodoUseCase(negocioRepo, reportesRepo)
	rentabilidadUC := reportes.NewRentabilidadUseCase(negocioRepo, reportesRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Mis Finanzas API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		NegociosUC:     negociosUC,
		TransaccionUC:  transaccionUC,
		CostosUC:       costosUC,
		EquilibrioUC:   equilibrioUC,
		PeriodoUC:      periodoUC,
		RentabilidadUC: rentabilidadUC,
		JWTSecret:      cfg.JWT.Secret,
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
