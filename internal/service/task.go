package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"github.com/uptrace/bun"

	"tasklog.dev/backend/internal/model"
	"tasklog.dev/backend/internal/pkg/apperr"
	"tasklog.dev/backend/internal/pkg/huecolor"
	"tasklog.dev/backend/internal/pkg/observability"
	"tasklog.dev/backend/internal/repo"
)

type Task struct {
	DB           *bun.DB
	TaskRepo     *repo.Task
	ActivityRepo *repo.Activity
	Now          Clock
}

func NewTask(db *bun.DB, taskRepo *repo.Task, activityRepo *repo.Activity, now Clock) *Task {
	return &Task{
		DB:           db,
		TaskRepo:     taskRepo,
		ActivityRepo: activityRepo,
		Now:          now,
	}
}

func (s *Task) GetTasks(ctx context.Context) ([]*model.Task, error) {
	return s.TaskRepo.GetTasks(ctx)
}

func (s *Task) GetTaskByID(ctx context.Context, taskID int) (*model.Task, error) {
	task, err := s.TaskRepo.GetTaskByID(ctx, taskID)
	if err != nil {
		return nil, notFound(err, "task %d not found", taskID)
	}
	return task, nil
}

// CreateTask trims name and creates the task with the next color of the palette.
// The color depends on how many tasks exist before the insert.
func (s *Task) CreateTask(ctx context.Context, name string) (*model.Task, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.ErrInvalidReq.Msg("task name must not be blank")
	}
	if utf8.RuneCountInString(name) > model.TaskNameMaxLength {
		return nil, apperr.ErrInvalidReq.Msg("task name must be at most %d characters", model.TaskNameMaxLength)
	}

	task := &model.Task{
		Name:      name,
		CreatedAt: s.Now(),
	}
	err := s.DB.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		tasks := s.TaskRepo.Tx(tx)

		exists, err := tasks.ExistsByName(ctx, name)
		if err != nil {
			return err
		}
		if exists {
			return apperr.ErrConflict.Msg("task with name %q already exists", name)
		}

		count, err := tasks.CountTasks(ctx)
		if err != nil {
			return err
		}
		task.Color = huecolor.Next(count)

		return tasks.CreateTask(ctx, task)
	})
	if err != nil {
		return nil, err
	}

	observability.TasksCreated.Inc()

	log.Info().
		Str("evt.name", "task.created").
		Int("task_id", task.TaskID).
		Str("color", task.Color).
		Msg("task created")

	return task, nil
}

// DeleteTask removes the task together with all of its activities, a running one included.
func (s *Task) DeleteTask(ctx context.Context, taskID int) error {
	var removed int64
	err := s.DB.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		tasks := s.TaskRepo.Tx(tx)
		if _, err := tasks.GetTaskByID(ctx, taskID); err != nil {
			return notFound(err, "task %d not found", taskID)
		}

		n, err := s.ActivityRepo.Tx(tx).DeleteByTask(ctx, taskID)
		if err != nil {
			return err
		}
		removed = n

		return tasks.DeleteTask(ctx, taskID)
	})
	if err != nil {
		return err
	}

	log.Info().
		Str("evt.name", "task.deleted").
		Int("task_id", taskID).
		Int64("activities_removed", removed).
		Msg("task deleted")

	return nil
}

// notFound rewrites the message of an ErrNotFound and passes other errors through.
func notFound(err error, format string, args ...any) error {
	if e, ok := apperr.From(err); ok && e.Is(apperr.ErrNotFound) {
		return apperr.ErrNotFound.Msg(format, args...)
	}
	return err
}
