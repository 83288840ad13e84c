package api

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"tasklog.dev/backend/internal/pkg/apperr"
	"tasklog.dev/backend/internal/pkg/calday"
)

func paramID(ctx *fiber.Ctx, name string) (int, error) {
	id, err := ctx.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, apperr.ErrInvalidReq.Msg("%s must be a positive integer", name)
	}
	return id, nil
}

// queryDate parses an optional YYYY-MM-DD value; empty yields nil.
func queryDate(name, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := calday.ParseDate(value)
	if err != nil {
		return nil, apperr.ErrInvalidReq.Msg("%s must be a date formatted as YYYY-MM-DD", name)
	}
	return &t, nil
}
