package meta

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"tasklog.dev/backend/internal/app/appconfig"
	"tasklog.dev/backend/internal/pkg/apperr"
	"tasklog.dev/backend/internal/pkg/cachectrl"
)

// RegisterFrontend serves the single page app from conf.FrontendDir: built assets under
// /assets and index.html for every other GET outside /api. Without a build only a JSON
// hint is served at /.
func RegisterFrontend(app *fiber.App, conf *appconfig.Config) {
	index := filepath.Join(conf.FrontendDir, "index.html")
	if _, err := os.Stat(index); err != nil {
		log.Warn().
			Str("evt.name", "frontend.missing").
			Str("dir", conf.FrontendDir).
			Msg("frontend is not built, serving the API only")

		app.Get("/", func(ctx *fiber.Ctx) error {
			return ctx.JSON(fiber.Map{
				"message": "Task Logger API. Build the frontend to use the UI.",
				"api":     "/api",
			})
		})
		return
	}

	app.Static("/assets", filepath.Join(conf.FrontendDir, "assets"), fiber.Static{
		Compress: true,
		MaxAge:   int((24 * time.Hour).Seconds()),
	})

	app.Get("/*", func(ctx *fiber.Ctx) error {
		if strings.HasPrefix(ctx.Path(), "/api") {
			return apperr.ErrNotFound.Msg("no route for %s %s", ctx.Method(), ctx.Path())
		}

		// files at the root of the build, e.g. favicon or robots.txt
		if rel := strings.TrimPrefix(ctx.Path(), "/"); rel != "" && !strings.Contains(rel, "..") {
			file := filepath.Join(conf.FrontendDir, filepath.FromSlash(rel))
			if info, err := os.Stat(file); err == nil && !info.IsDir() {
				return ctx.SendFile(file)
			}
		}

		cachectrl.OptOut(ctx)
		return ctx.SendFile(index)
	})
}
