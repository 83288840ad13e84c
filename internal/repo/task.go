package repo

import (
	"context"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"tasklog.dev/backend/internal/model"
	"tasklog.dev/backend/internal/pkg/apperr"
	"tasklog.dev/backend/internal/repo/selector"
)

type Task struct {
	db  bun.IDB
	sel selector.S[model.Task]
}

func NewTask(db *bun.DB) *Task {
	return newTask(db)
}

func newTask(db bun.IDB) *Task {
	return &Task{db: db, sel: selector.New[model.Task](db)}
}

// Tx returns a Task repo whose queries run on tx.
func (r *Task) Tx(tx bun.IDB) *Task {
	return newTask(tx)
}

func (r *Task) GetTasks(ctx context.Context) ([]*model.Task, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("name ASC", "task_id ASC")
	})
}

func (r *Task) GetTaskByID(ctx context.Context, taskID int) (*model.Task, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("task_id = ?", taskID)
	})
}

func (r *Task) CountTasks(ctx context.Context) (int, error) {
	return r.db.NewSelect().Model((*model.Task)(nil)).Count(ctx)
}

func (r *Task) ExistsByName(ctx context.Context, name string) (bool, error) {
	return r.db.NewSelect().Model((*model.Task)(nil)).Where("name = ?", name).Exists(ctx)
}

func (r *Task) CreateTask(ctx context.Context, task *model.Task) error {
	_, err := r.db.NewInsert().Model(task).Exec(ctx)
	if IsUniqueViolation(err) {
		return apperr.ErrConflict.Msg("task with name %q already exists", task.Name)
	}
	return errors.Wrap(err, "failed to insert task")
}

func (r *Task) DeleteTask(ctx context.Context, taskID int) error {
	res, err := r.db.NewDelete().
		Model((*model.Task)(nil)).
		Where("task_id = ?", taskID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to delete task")
	}

	return expectAffected(res, "task", taskID)
}
