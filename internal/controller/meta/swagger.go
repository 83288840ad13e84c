package meta

import (
	"github.com/gofiber/swagger"

	"tasklog.dev/backend/docs"
	"tasklog.dev/backend/internal/pkg/bininfo"
	"tasklog.dev/backend/internal/server/svr"
)

// RegisterSwagger serves the API documentation at /api/_/swagger/index.html.
func RegisterSwagger(meta *svr.Meta) {
	docs.SwaggerInfo.Version = bininfo.Version
	meta.Get("/swagger/*", swagger.HandlerDefault)
}
