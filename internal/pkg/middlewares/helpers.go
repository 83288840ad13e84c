package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Chained mounts handlers on r in the given order.
func Chained(r fiber.Router, handlers ...fiber.Handler) {
	for _, handler := range handlers {
		r.Use(handler)
	}
}

// SkipPaths runs handler for every request except those whose path starts with one of prefixes.
func SkipPaths(handler fiber.Handler, prefixes ...string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		for _, prefix := range prefixes {
			if strings.HasPrefix(ctx.Path(), prefix) {
				return ctx.Next()
			}
		}
		return handler(ctx)
	}
}
