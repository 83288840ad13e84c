package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"go.uber.org/fx"

	"tasklog.dev/backend/internal/model"
	"tasklog.dev/backend/internal/model/types"
	"tasklog.dev/backend/internal/server/svr"
	"tasklog.dev/backend/internal/service"
	"tasklog.dev/backend/internal/util/rekuest"
)

type Activity struct {
	fx.In

	ActivityService *service.Activity
	StatsService    *service.Stats
}

func RegisterActivity(api *svr.API, c Activity) {
	api.Get("/activities/running", c.GetRunningActivity)
	api.Get("/activities/days", c.GetDaysWithActivity)
	api.Get("/activities/stats", c.GetStatsByTask)
	api.Get("/activities", c.GetActivities)
	api.Post("/activities", c.StartStopwatch)
	api.Post("/activities/manual", c.LogManual)
	api.Patch("/activities/:id", c.StopStopwatch)
}

// @Summary      Get the Running Activity
// @Description  Responds with null when no stopwatch is running.
// @Tags         Activity
// @Produce      json
// @Success      200     {object}  model.RunningActivityView
// @Failure      500     {object}  apperr.Error "An unexpected error occurred"
// @Router       /activities/running [GET]
func (c *Activity) GetRunningActivity(ctx *fiber.Ctx) error {
	activity, err := c.ActivityService.GetRunningActivity(ctx.UserContext())
	if err != nil {
		return err
	}
	if activity == nil {
		return ctx.JSON(nil)
	}

	return ctx.JSON(model.NewRunningActivityView(activity))
}

// @Summary      Get Days with Activity
// @Description  Dates (YYYY-MM-DD, UTC) of the month with at least one activity, ascending.
// @Tags         Activity
// @Produce      json
// @Param        year    query     int  true  "Year"
// @Param        month   query     int  true  "Month, 1 to 12"
// @Success      200     {array}   string
// @Failure      400     {object}  apperr.Error "Invalid year or month"
// @Failure      500     {object}  apperr.Error "An unexpected error occurred"
// @Router       /activities/days [GET]
func (c *Activity) GetDaysWithActivity(ctx *fiber.Ctx) error {
	var query types.DaysQuery
	if err := rekuest.ValidQuery(ctx, &query); err != nil {
		return err
	}

	days, err := c.StatsService.DaysWithActivity(ctx.UserContext(), query.Year, time.Month(query.Month))
	if err != nil {
		return err
	}

	return ctx.JSON(days)
}

// @Summary      List Activities
// @Description  Activities newest first. Filters are whole UTC days and apply together.
// @Tags         Activity
// @Produce      json
// @Param        day        query     string  false  "Single day, YYYY-MM-DD"
// @Param        from_date  query     string  false  "First day, YYYY-MM-DD, inclusive"
// @Param        to_date    query     string  false  "Last day, YYYY-MM-DD, inclusive"
// @Success      200        {array}   model.ActivityView
// @Failure      400        {object}  apperr.Error "Malformed date"
// @Failure      500        {object}  apperr.Error "An unexpected error occurred"
// @Router       /activities [GET]
func (c *Activity) GetActivities(ctx *fiber.Ctx) error {
	var query types.DateRangeQuery
	if err := rekuest.ValidQuery(ctx, &query); err != nil {
		return err
	}

	day, err := queryDate("day", query.Day)
	if err != nil {
		return err
	}
	from, err := queryDate("from_date", query.FromDate)
	if err != nil {
		return err
	}
	to, err := queryDate("to_date", query.ToDate)
	if err != nil {
		return err
	}

	activities, err := c.ActivityService.GetActivities(ctx.UserContext(), day, from, to)
	if err != nil {
		return err
	}

	return ctx.JSON(lo.Map(activities, func(a *model.Activity, _ int) *model.ActivityView {
		return model.NewActivityView(a)
	}))
}

// @Summary      Get Hours by Task
// @Description  Hours per task over whole days. Defaults to the last 30 days up to today.
// @Tags         Activity
// @Produce      json
// @Param        from_date  query     string  false  "First day, YYYY-MM-DD, inclusive"
// @Param        to_date    query     string  false  "Last day, YYYY-MM-DD, inclusive"
// @Success      200        {array}   model.TaskStats
// @Failure      400        {object}  apperr.Error "Malformed date"
// @Failure      500        {object}  apperr.Error "An unexpected error occurred"
// @Router       /activities/stats [GET]
func (c *Activity) GetStatsByTask(ctx *fiber.Ctx) error {
	var query types.DateRangeQuery
	if err := rekuest.ValidQuery(ctx, &query); err != nil {
		return err
	}

	from, err := queryDate("from_date", query.FromDate)
	if err != nil {
		return err
	}
	to, err := queryDate("to_date", query.ToDate)
	if err != nil {
		return err
	}

	stats, err := c.StatsService.StatsByTask(ctx.UserContext(), from, to)
	if err != nil {
		return err
	}

	return ctx.JSON(stats)
}

// @Summary      Start the Stopwatch
// @Tags         Activity
// @Accept       json
// @Produce      json
// @Param        body    body      types.StartActivityRequest  true  "Task to track"
// @Success      200     {object}  model.ActivityView
// @Failure      400     {object}  apperr.Error "Invalid body (INVALID_REQUEST), or a stopwatch is already running (CONFLICT)"
// @Failure      404     {object}  apperr.Error "Task not found"
// @Failure      500     {object}  apperr.Error "An unexpected error occurred"
// @Router       /activities [POST]
func (c *Activity) StartStopwatch(ctx *fiber.Ctx) error {
	var req types.StartActivityRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	activity, err := c.ActivityService.StartStopwatch(ctx.UserContext(), req.TaskID)
	if err != nil {
		return err
	}

	return ctx.JSON(model.NewActivityView(activity))
}

// @Summary      Log a Manual Activity
// @Description  Either start_time and end_time (duration_minutes optionally overrides the elapsed minutes), or duration_minutes only.
// @Tags         Activity
// @Accept       json
// @Produce      json
// @Param        body    body      types.ManualActivityRequest  true  "Manual entry"
// @Success      200     {object}  model.ActivityView
// @Failure      400     {object}  apperr.Error "Neither shape given, or a negative duration"
// @Failure      404     {object}  apperr.Error "Task not found"
// @Failure      500     {object}  apperr.Error "An unexpected error occurred"
// @Router       /activities/manual [POST]
func (c *Activity) LogManual(ctx *fiber.Ctx) error {
	var req types.ManualActivityRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	activity, err := c.ActivityService.LogManual(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(model.NewActivityView(activity))
}

// @Summary      Stop the Stopwatch
// @Tags         Activity
// @Produce      json
// @Param        id      path      int  true  "Activity ID"
// @Success      200     {object}  model.ActivityView
// @Failure      400     {object}  apperr.Error "Invalid id (INVALID_REQUEST), or the activity is not running (CONFLICT)"
// @Failure      404     {object}  apperr.Error "Activity not found"
// @Failure      500     {object}  apperr.Error "An unexpected error occurred"
// @Router       /activities/{id} [PATCH]
func (c *Activity) StopStopwatch(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	activity, err := c.ActivityService.StopStopwatch(ctx.UserContext(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(model.NewActivityView(activity))
}
