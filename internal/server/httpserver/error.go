package httpserver

import (
	"errors"
	"strconv"

	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"tasklog.dev/backend/internal/pkg/apperr"
	"tasklog.dev/backend/internal/pkg/flog"
)

func handleCustomError(ctx *fiber.Ctx, e *apperr.Error) error {
	flog.FromFiberCtx(ctx).Debug().
		Err(e).
		Str("method", ctx.Method()).
		Str("path", ctx.Path()).
		Msg(e.Message)

	body := fiber.Map{
		"code":    e.ErrorCode,
		"message": e.Message,
	}

	// Add extra details if needed
	if e.Extras != nil && len(*e.Extras) > 0 {
		for k, v := range *e.Extras {
			body[k] = v
		}
	}

	return ctx.Status(e.StatusCode).JSON(body)
}

func ErrorHandler(ctx *fiber.Ctx, err error) error {
	// Use custom error handler to return JSON error responses
	if e, ok := apperr.From(err); ok {
		return handleCustomError(ctx, e)
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		// fiber's own errors (unknown route, bad method) are client errors, not failures
		if fe.Code < fiber.StatusInternalServerError {
			return handleCustomError(ctx, apperr.New(fe.Code, fiberErrorCode(fe.Code), fe.Message))
		}
	}

	// Default 500 statuscode
	re := apperr.ErrInternalError

	log.Error().
		Stack().
		Err(err).
		Str("method", ctx.Method()).
		Str("path", ctx.Path()).
		Int("status", re.StatusCode).
		Msg("Internal Server Error")

	if hub := fibersentry.GetHubFromContext(ctx); hub != nil {
		hub.Scope().SetTag("status", strconv.Itoa(re.StatusCode))
		hub.CaptureException(err)
	}

	return handleCustomError(ctx, re)
}

func fiberErrorCode(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return apperr.CodeNotFound
	case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity:
		return apperr.CodeInvalidRequest
	default:
		return "UNKNOWN_ERROR"
	}
}
