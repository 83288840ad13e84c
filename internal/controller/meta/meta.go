package meta

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cache"
	"go.uber.org/fx"

	"tasklog.dev/backend/internal/pkg/bininfo"
	"tasklog.dev/backend/internal/server/svr"
	"tasklog.dev/backend/internal/service"
)

type Meta struct {
	fx.In

	HealthService *service.Health
}

func RegisterMeta(meta *svr.Meta, c Meta) {
	meta.Get("/bininfo", c.BinInfo)

	meta.Get("/health", cache.New(cache.Config{
		Expiration: time.Second,
	}), c.Health)
}

// @Summary      Get Build Information
// @Tags         Meta
// @Produce      json
// @Success      200     {object}  object{name=string,version=string,build=string}
// @Router       /_/bininfo [GET]
func (c *Meta) BinInfo(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"name":    bininfo.Name,
		"version": bininfo.Version,
		"build":   bininfo.BuildTime,
	})
}

// @Summary      Health Check
// @Description  Pings the database and reports the running stopwatch, if any.
// @Tags         Meta
// @Produce      json
// @Success      200     {object}  model.HealthReport
// @Failure      500     {object}  apperr.Error "Database is not reachable"
// @Router       /_/health [GET]
func (c *Meta) Health(ctx *fiber.Ctx) error {
	report, err := c.HealthService.Report(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.JSON(report)
}
