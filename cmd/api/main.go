package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/prometheus/client_golang/prometheus"

	_ "github.com/gregdev/enterprises-api/docs"
	"github.com/gregdev/enterprises-api/internal/application/usecase"
	"github.com/gregdev/enterprises-api/internal/domain/repository"
	"github.com/gregdev/enterprises-api/internal/infrastructure/memory"
	"github.com/gregdev/enterprises-api/internal/infrastructure/postgres"
	httpRouter "github.com/gregdev/enterprises-api/internal/interfaces/http"
	"github.com/gregdev/enterprises-api/pkg/config"
	"github.com/gregdev/enterprises-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var (
		enterpriseRepo repository.EnterpriseRepository
		store          httpRouter.Pinger
	)
	switch cfg.DB.Driver {
	case config.DriverMemory:
		mem := memory.NewEnterpriseRepository()
		enterpriseRepo, store = mem, mem
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()

		if cfg.DB.AutoMigrate {
			if err := postgres.Migrate(ctx, pool); err != nil {
				log.Fatal().Err(err).Msg("migraciones")
			}
			log.Info().Msg("esquema actualizado")
		}
		enterpriseRepo, store = postgres.NewEnterpriseRepository(pool), pool
	}

	enterpriseUC := usecase.NewEnterpriseUseCase(enterpriseRepo)

	deps := httpRouter.RouterDeps{
		EnterpriseUC: enterpriseUC,
		Store:        store,
		ServiceName:  cfg.App.Name,
		BasePath:     cfg.HTTP.BasePath,
		Logger:       log,
	}
	if cfg.HTTP.MetricsEnabled {
		deps.Metrics = httpRouter.NewMetrics(prometheus.DefaultRegisterer)
		deps.Gatherer = prometheus.DefaultGatherer
	}
	app := httpRouter.NewApp(deps)

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.HTTP.SwaggerEnabled {
		if _, err := os.Stat(swaggerFile); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: swaggerFile,
				Path:     "docs",
				Title:    "Enterprises API",
			}))
		} else {
			log.Warn().Str("file", swaggerFile).Msg("swagger deshabilitado: no existe el documento")
		}
	}

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
