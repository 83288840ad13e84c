package repo

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"tasklog.dev/backend/internal/model"
	"tasklog.dev/backend/internal/pkg/apperr"
	"tasklog.dev/backend/internal/repo/selector"
)

type Activity struct {
	db  bun.IDB
	sel selector.S[model.Activity]
}

func NewActivity(db *bun.DB) *Activity {
	return newActivity(db)
}

func newActivity(db bun.IDB) *Activity {
	return &Activity{db: db, sel: selector.New[model.Activity](db)}
}

// Tx returns an Activity repo whose queries run on tx.
func (r *Activity) Tx(tx bun.IDB) *Activity {
	return newActivity(tx)
}

func (r *Activity) GetActivityByID(ctx context.Context, activityID int) (*model.Activity, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Relation("Task").Where("a.activity_id = ?", activityID)
	})
}

// GetRunningActivity returns the running stopwatch entry, or nil if there is none.
func (r *Activity) GetRunningActivity(ctx context.Context) (*model.Activity, error) {
	activity, err := r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Relation("Task").
			Where("a.end_time IS NULL").
			Where("NOT a.no_time_assigned").
			Order("a.activity_id DESC").
			Limit(1)
	})
	if errors.Is(err, apperr.ErrNotFound) {
		return nil, nil
	}
	return activity, err
}

// GetActivities lists activities with logged_at in [from, to), newest first.
// A nil bound leaves that side of the range open.
func (r *Activity) GetActivities(ctx context.Context, from, to *time.Time) ([]*model.Activity, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		q = q.Relation("Task")
		q = whereLoggedAt(q, from, to)
		return q.Order("a.logged_at DESC", "a.activity_id DESC")
	})
}

func (r *Activity) GetLoggedAtBetween(ctx context.Context, from, to time.Time) ([]time.Time, error) {
	loggedAt := make([]time.Time, 0)
	err := r.db.NewSelect().
		Model((*model.Activity)(nil)).
		ColumnExpr("a.logged_at").
		Where("a.logged_at >= ?", from).
		Where("a.logged_at < ?", to).
		Order("a.logged_at ASC").
		Scan(ctx, &loggedAt)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	return loggedAt, nil
}

// SumMinutesByTask totals duration_minutes per task over activities with logged_at in
// [from, to). Tasks without matching activities are absent from the result.
func (r *Activity) SumMinutesByTask(ctx context.Context, from, to time.Time) ([]*model.TaskMinutes, error) {
	results := make([]*model.TaskMinutes, 0)
	err := r.db.NewSelect().
		TableExpr("activities AS a").
		Join("JOIN tasks AS t ON t.task_id = a.task_id").
		ColumnExpr("t.task_id AS task_id").
		ColumnExpr("t.name AS name").
		ColumnExpr("t.color AS color").
		ColumnExpr("SUM(a.duration_minutes) AS total_minutes").
		Where("a.logged_at >= ?", from).
		Where("a.logged_at < ?", to).
		GroupExpr("t.task_id, t.name, t.color").
		OrderExpr("t.name ASC").
		Scan(ctx, &results)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	return results, nil
}

// CreateActivity inserts activity. Inserting a second running entry violates
// activities_single_running and is reported as ErrConflict.
func (r *Activity) CreateActivity(ctx context.Context, activity *model.Activity) error {
	_, err := r.db.NewInsert().Model(activity).Exec(ctx)
	if IsUniqueViolation(err) {
		return apperr.ErrConflict.Msg("an activity is already running")
	}
	return errors.Wrap(err, "failed to insert activity")
}

// StopActivity persists EndTime and DurationMinutes of a running activity.
func (r *Activity) StopActivity(ctx context.Context, activity *model.Activity) error {
	res, err := r.db.NewUpdate().
		Model(activity).
		Column("end_time", "duration_minutes").
		WherePK().
		Where("end_time IS NULL").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to stop activity")
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return apperr.ErrConflict.Msg("activity %d is already stopped", activity.ActivityID)
	}
	return nil
}

func (r *Activity) DeleteByTask(ctx context.Context, taskID int) (int64, error) {
	res, err := r.db.NewDelete().
		Model((*model.Activity)(nil)).
		Where("task_id = ?", taskID).
		Exec(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete activities of task")
	}
	return res.RowsAffected()
}

func whereLoggedAt(q *bun.SelectQuery, from, to *time.Time) *bun.SelectQuery {
	if from != nil {
		q = q.Where("a.logged_at >= ?", *from)
	}
	if to != nil {
		q = q.Where("a.logged_at < ?", *to)
	}
	return q
}

func expectAffected(res sql.Result, kind string, id int) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return apperr.ErrNotFound.Msg("%s %d not found", kind, id)
	}
	return nil
}
