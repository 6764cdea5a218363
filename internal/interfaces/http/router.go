package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gregdev/enterprises-api/internal/application/usecase"
	"github.com/gregdev/enterprises-api/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggo/swag"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	EnterpriseUC *usecase.EnterpriseUseCase
	Store        Pinger // health check; nil = siempre ok
	ServiceName  string
	BasePath     string // prefijo de la API REST, ej. /api
	Logger       *logger.Logger
	Metrics      *Metrics            // nil deshabilita /metrics y la medición
	Gatherer     prometheus.Gatherer // origen de /metrics; por defecto prometheus.DefaultGatherer
}

// NewApp construye la aplicación Fiber con middlewares, manejador de errores y rutas.
func NewApp(deps RouterDeps) *fiber.App {
	if deps.Logger == nil {
		deps.Logger = logger.Nop()
	}
	app := fiber.New(fiber.Config{
		AppName:      deps.ServiceName,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: ErrorHandler(deps.Logger),
	})
	app.Use(requestid.New())
	if deps.Metrics != nil {
		app.Use(deps.Metrics.Middleware())
	}
	app.Use(RequestLogger(deps.Logger))
	app.Use(recover.New())

	Router(app, deps)
	return app
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", HealthHandler(deps.ServiceName, deps.Store))

	if deps.Metrics != nil {
		gatherer := deps.Gatherer
		if gatherer == nil {
			gatherer = prometheus.DefaultGatherer
		}
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	// Documento OpenAPI registrado por el paquete docs (si fue importado).
	app.Get("/swagger/doc.json", func(c *fiber.Ctx) error {
		doc, err := swag.ReadDoc()
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "documentación no registrada")
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
		return c.SendString(doc)
	})

	api := app.Group(deps.BasePath)
	handler := NewEnterpriseHandler(deps.EnterpriseUC, deps.Logger)
	api.Get("/test", handler.Test)

	enterprises := api.Group("/enterprise")
	enterprises.Get("/", handler.List)
	enterprises.Post("/", handler.Create)
	// /uuid/:uuid antes que /:id para que "uuid" no se interprete como ID
	enterprises.Get("/uuid/:uuid", handler.GetByUUID)
	enterprises.Get("/:id", handler.GetByID)
	enterprises.Delete("/:id", handler.Delete)
}

// ErrorHandler convierte errores no controlados en el sobre estándar.
// Los *fiber.Error (ruta inexistente, método no permitido, ...) conservan su status.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return writeEnvelope(c, fe.Code, fe.Message, fmt.Sprintf("AC%d", fe.Code))
		}
		log.Error().Err(err).Str("path", c.Path()).Msg("error no controlado")
		return respond(c, outcomeWriteFailure)
	}
}
