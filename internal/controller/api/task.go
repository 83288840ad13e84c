package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"go.uber.org/fx"

	"tasklog.dev/backend/internal/model"
	"tasklog.dev/backend/internal/model/types"
	"tasklog.dev/backend/internal/server/svr"
	"tasklog.dev/backend/internal/service"
	"tasklog.dev/backend/internal/util/rekuest"
)

type Task struct {
	fx.In

	TaskService *service.Task
}

func RegisterTask(api *svr.API, c Task) {
	api.Get("/tasks", c.GetTasks)
	api.Post("/tasks", c.CreateTask)
	api.Get("/tasks/:id", c.GetTask)
	api.Delete("/tasks/:id", c.DeleteTask)
}

// @Summary      List Tasks
// @Description  Tasks ordered by name.
// @Tags         Task
// @Produce      json
// @Success      200     {array}   model.Task
// @Failure      500     {object}  apperr.Error "An unexpected error occurred"
// @Router       /tasks [GET]
func (c *Task) GetTasks(ctx *fiber.Ctx) error {
	tasks, err := c.TaskService.GetTasks(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.JSON(lo.Map(tasks, func(t *model.Task, _ int) *model.Task {
		return t.UTC()
	}))
}

// @Summary      Create a Task
// @Description  The name is trimmed. The task gets the next color of the palette.
// @Tags         Task
// @Accept       json
// @Produce      json
// @Param        body    body      types.CreateTaskRequest  true  "Task"
// @Success      200     {object}  model.Task
// @Failure      400     {object}  apperr.Error "Blank or too long name (INVALID_REQUEST), or a task with this name exists (CONFLICT)"
// @Failure      500     {object}  apperr.Error "An unexpected error occurred"
// @Router       /tasks [POST]
func (c *Task) CreateTask(ctx *fiber.Ctx) error {
	var req types.CreateTaskRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	task, err := c.TaskService.CreateTask(ctx.UserContext(), req.Name)
	if err != nil {
		return err
	}

	return ctx.JSON(task.UTC())
}

// @Summary      Get a Task with ID
// @Tags         Task
// @Produce      json
// @Param        id      path      int  true  "Task ID"
// @Success      200     {object}  model.Task
// @Failure      400     {object}  apperr.Error "Invalid id"
// @Failure      404     {object}  apperr.Error "Task not found"
// @Failure      500     {object}  apperr.Error "An unexpected error occurred"
// @Router       /tasks/{id} [GET]
func (c *Task) GetTask(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	task, err := c.TaskService.GetTaskByID(ctx.UserContext(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(task.UTC())
}

// @Summary      Delete a Task
// @Description  Deletes the task and all of its activities, a running one included.
// @Tags         Task
// @Param        id      path      int  true  "Task ID"
// @Success      204
// @Failure      400     {object}  apperr.Error "Invalid id"
// @Failure      404     {object}  apperr.Error "Task not found"
// @Failure      500     {object}  apperr.Error "An unexpected error occurred"
// @Router       /tasks/{id} [DELETE]
func (c *Task) DeleteTask(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.TaskService.DeleteTask(ctx.UserContext(), id); err != nil {
		return err
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}
