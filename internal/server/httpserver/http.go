package httpserver

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/goccy/go-json"
	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/favicon"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/helmet/v2"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/trace"

	"tasklog.dev/backend/internal/app/appconfig"
	"tasklog.dev/backend/internal/pkg/bininfo"
	"tasklog.dev/backend/internal/pkg/middlewares"
)

var (
	promOnce sync.Once
	prom     *fiberprometheus.FiberPrometheus
)

// metrics returns the process-wide collector, since its metrics can only be registered
// with the default prometheus registry once.
func metrics() *fiberprometheus.FiberPrometheus {
	promOnce.Do(func() {
		prom = fiberprometheus.New(bininfo.Name)
	})
	return prom
}

func Create(conf *appconfig.Config, tp trace.TracerProvider) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Task Logger",
		ServerHeader: fmt.Sprintf("Tasklog/%s", bininfo.Version),
		ReadTimeout:  time.Second * 20,
		WriteTimeout: time.Second * 20,
		// allow possibility for graceful shutdown, otherwise app#Shutdown() will block forever
		IdleTimeout:  conf.HTTPServerShutdownTimeout,
		ErrorHandler: ErrorHandler,
		Immutable:    true,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
	})

	app.Use(favicon.New())
	if conf.SentryDSN != "" {
		app.Use(fibersentry.New(fibersentry.Config{
			Repanic: true,
			Timeout: time.Second * 5,
		}))
		app.Use(middlewares.EnrichSentry())
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:  strings.Join(conf.CorsAllowOrigins, ", "),
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		AllowHeaders:  "Content-Type, X-Requested-With, sentry-trace",
		ExposeHeaders: "Content-Type, " + middlewares.RequestIDHeader,
	}))
	middlewares.Logger(app)

	app.Use(helmet.New(helmet.Config{
		ReferrerPolicy:   "strict-origin-when-cross-origin",
		PermissionPolicy: "interest-cohort=()",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e any) {
			buf := make([]byte, 4096)
			buf = buf[:runtime.Stack(buf, false)]
			log.Error().Msgf("panic: %v\n%s\n", e, buf)
		},
	}))
	fiberprom := metrics()
	fiberprom.RegisterAt(app, "/metrics")
	app.Use(fiberprom.Middleware)

	if conf.TracingEnabled {
		app.Use(otelfiber.Middleware(
			otelfiber.WithTracerProvider(tp),
			otelfiber.WithNext(func(c *fiber.Ctx) bool {
				return !strings.HasPrefix(c.Path(), "/api")
			}),
		))
	}

	if conf.DevMode {
		log.Info().Msg("Running in DEV mode")
		app.Use(pprof.New())
	}

	return app
}
