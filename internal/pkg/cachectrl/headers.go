package cachectrl

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

// OptIn lets clients cache the response for maxAge.
func OptIn(ctx *fiber.Ctx, maxAge time.Duration) {
	ctx.Set(fiber.HeaderCacheControl, "public, max-age="+strconv.Itoa(int(maxAge.Seconds())))
}

// OptOut forbids any caching of the response.
func OptOut(ctx *fiber.Ctx) {
	ctx.Set(fiber.HeaderCacheControl, "no-cache, no-store, must-revalidate")
	ctx.Set(fiber.HeaderPragma, "no-cache")
	ctx.Set(fiber.HeaderExpires, "0")
}

// NoStore is a middleware applying OptOut to every response of a route group.
func NoStore() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		OptOut(ctx)
		return ctx.Next()
	}
}
