package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"tasklog.dev/backend/internal/pkg/apperr"
	"tasklog.dev/backend/internal/pkg/flog"
)

const RequestIDHeader = "X-Tasklog-Request-ID"

// quietPaths are polled by health checks and metrics scrapers and stay out of the access log.
var quietPaths = []string{"/metrics", "/api/_/health"}

func Logger(app *fiber.App) {
	Chained(
		app,
		flog.NewHandlerMiddleware(log.With().Logger()),
		flog.RequestIDHandler("request_id", RequestIDHeader),
		flog.RequestFieldsHandler(),
		SkipPaths(requestLogger(), quietPaths...),
	)
}

func requestLogger() fiber.Handler {
	return flog.AccessHandler(func(ctx *fiber.Ctx, err error, duration time.Duration) {
		// the error handler has not run yet, so derive the status the client will see
		status := ctx.Response().StatusCode()
		if e, ok := apperr.From(err); ok {
			status = e.StatusCode
		} else if err != nil {
			status = fiber.StatusInternalServerError
		}

		flog.FromFiberCtx(ctx).Info().
			Str("component", "httpreq").
			Int("status", status).
			Int("size", len(ctx.Response().Body())).
			Dur("duration", duration).
			Msg("received request")
	})
}
