package middlewares

import (
	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/fiber/v2"

	"tasklog.dev/backend/internal/pkg/flog"
)

// EnrichSentry tags the request's sentry scope with its request id.
func EnrichSentry() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if hub := fibersentry.GetHubFromContext(c); hub != nil {
			if id, ok := flog.IDFromCtx(c.UserContext()); ok {
				hub.Scope().SetTag("request_id", id.String())
			}
		}
		return c.Next()
	}
}
