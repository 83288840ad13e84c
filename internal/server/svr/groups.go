package svr

import (
	"github.com/gofiber/fiber/v2"

	"tasklog.dev/backend/internal/pkg/cachectrl"
)

type API struct {
	fiber.Router
}

type Meta struct {
	fiber.Router
}

func CreateEndpointGroups(app *fiber.App) (*API, *Meta) {
	api := app.Group("/api", cachectrl.NoStore())
	meta := app.Group("/api/_")

	return &API{Router: api}, &Meta{Router: meta}
}
