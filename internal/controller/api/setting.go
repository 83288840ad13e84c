package api

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"tasklog.dev/backend/internal/model/types"
	"tasklog.dev/backend/internal/server/svr"
	"tasklog.dev/backend/internal/service"
	"tasklog.dev/backend/internal/util/rekuest"
)

type Setting struct {
	fx.In

	SettingService *service.Setting
}

func RegisterSetting(api *svr.API, c Setting) {
	api.Get("/settings", c.GetSettings)
	api.Put("/settings", c.UpdateSettings)
}

// @Summary      Get Settings
// @Tags         Setting
// @Produce      json
// @Success      200     {object}  model.Settings
// @Failure      500     {object}  apperr.Error "An unexpected error occurred"
// @Router       /settings [GET]
func (c *Setting) GetSettings(ctx *fiber.Ctx) error {
	settings, err := c.SettingService.GetSettings(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.JSON(settings)
}

// @Summary      Update Settings
// @Description  Only the fields present are saved. The hotkey is stored trimmed and lower-cased.
// @Tags         Setting
// @Accept       json
// @Produce      json
// @Param        body    body      types.UpdateSettingsRequest  true  "Settings to change"
// @Success      200     {object}  model.Settings
// @Failure      400     {object}  apperr.Error "Invalid body"
// @Failure      500     {object}  apperr.Error "An unexpected error occurred"
// @Router       /settings [PUT]
func (c *Setting) UpdateSettings(ctx *fiber.Ctx) error {
	var req types.UpdateSettingsRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	settings, err := c.SettingService.UpdateSettings(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(settings)
}
