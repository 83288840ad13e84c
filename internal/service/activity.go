package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/uptrace/bun"

	"tasklog.dev/backend/internal/model"
	"tasklog.dev/backend/internal/model/types"
	"tasklog.dev/backend/internal/pkg/apperr"
	"tasklog.dev/backend/internal/pkg/calday"
	"tasklog.dev/backend/internal/pkg/observability"
	"tasklog.dev/backend/internal/repo"
)

// Activity is the ledger of time entries. At most one entry is running at a time:
// starting checks for a running entry and inserts within one transaction, and the
// activities_single_running index rejects whatever slips past that check.
type Activity struct {
	DB           *bun.DB
	TaskRepo     *repo.Task
	ActivityRepo *repo.Activity
	Now          Clock

	// stopwatch serializes start and stop within this process
	stopwatch sync.Mutex
}

func NewActivity(db *bun.DB, taskRepo *repo.Task, activityRepo *repo.Activity, now Clock) *Activity {
	return &Activity{
		DB:           db,
		TaskRepo:     taskRepo,
		ActivityRepo: activityRepo,
		Now:          now,
	}
}

// GetRunningActivity returns nil, nil when no stopwatch is running.
func (s *Activity) GetRunningActivity(ctx context.Context) (*model.Activity, error) {
	return s.ActivityRepo.GetRunningActivity(ctx)
}

// GetActivities lists activities newest first. day restricts the list to one calendar day;
// from and to restrict it to whole days, to inclusive. All filters given apply together.
func (s *Activity) GetActivities(ctx context.Context, day, from, to *time.Time) ([]*model.Activity, error) {
	var lower, upper *time.Time
	narrow := func(lo, hi *time.Time) {
		if lo != nil && (lower == nil || lo.After(*lower)) {
			lower = lo
		}
		if hi != nil && (upper == nil || hi.Before(*upper)) {
			upper = hi
		}
	}

	if day != nil {
		start := calday.Start(*day)
		end := calday.Next(start)
		narrow(&start, &end)
	}
	if from != nil {
		start := calday.Start(*from)
		narrow(&start, nil)
	}
	if to != nil {
		end := calday.Next(calday.Start(*to))
		narrow(nil, &end)
	}

	return s.ActivityRepo.GetActivities(ctx, lower, upper)
}

// StartStopwatch starts a stopwatch on the task.
func (s *Activity) StartStopwatch(ctx context.Context, taskID int) (*model.Activity, error) {
	s.stopwatch.Lock()
	defer s.stopwatch.Unlock()

	var activity *model.Activity
	err := s.DB.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		task, err := s.TaskRepo.Tx(tx).GetTaskByID(ctx, taskID)
		if err != nil {
			return notFound(err, "task %d not found", taskID)
		}

		activities := s.ActivityRepo.Tx(tx)
		running, err := activities.GetRunningActivity(ctx)
		if err != nil {
			return err
		}
		if running != nil {
			return apperr.ErrConflict.
				Msg("a task is already running, stop it first").
				WithExtras(apperr.Extras{"running_activity_id": running.ActivityID})
		}

		now := s.Now()
		activity = &model.Activity{
			TaskID:          taskID,
			StartTime:       &now,
			DurationMinutes: 0,
			LoggedAt:        now,
			NoTimeAssigned:  false,
		}
		if err := activities.CreateActivity(ctx, activity); err != nil {
			return err
		}
		activity.Task = task
		return nil
	})
	if err != nil {
		return nil, err
	}

	observability.ActivityEvents.WithLabelValues("started").Inc()

	log.Info().
		Str("evt.name", "activity.started").
		Int("activity_id", activity.ActivityID).
		Int("task_id", taskID).
		Msg("stopwatch started")

	return activity, nil
}

// StopStopwatch stops a running activity and records its elapsed whole minutes.
func (s *Activity) StopStopwatch(ctx context.Context, activityID int) (*model.Activity, error) {
	s.stopwatch.Lock()
	defer s.stopwatch.Unlock()

	var activity *model.Activity
	err := s.DB.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		activities := s.ActivityRepo.Tx(tx)

		var err error
		activity, err = activities.GetActivityByID(ctx, activityID)
		if err != nil {
			return notFound(err, "activity %d not found", activityID)
		}
		if activity.EndTime != nil {
			return apperr.ErrConflict.Msg("activity %d is already stopped", activityID)
		}
		if activity.NoTimeAssigned || activity.StartTime == nil {
			return apperr.ErrConflict.Msg("activity %d is not a running stopwatch", activityID)
		}

		now := s.Now()
		activity.EndTime = &now
		activity.DurationMinutes = max(model.ElapsedMinutes(*activity.StartTime, now), 0)

		return activities.StopActivity(ctx, activity)
	})
	if err != nil {
		return nil, err
	}

	observability.ActivityEvents.WithLabelValues("stopped").Inc()
	observability.ActivityMinutes.WithLabelValues("stopwatch").Observe(float64(activity.DurationMinutes))

	log.Info().
		Str("evt.name", "activity.stopped").
		Int("activity_id", activityID).
		Int("duration_minutes", activity.DurationMinutes).
		Msg("stopwatch stopped")

	return activity, nil
}

// LogManual records an entry outside the stopwatch. It takes either a start and end time,
// with an optional duration overriding the elapsed minutes, or a bare duration. A bare
// duration is placed on the timeline at the time of day of logged_at, or at noon when
// logged_at carries no time of day. The task is looked up before the shape is checked.
func (s *Activity) LogManual(ctx context.Context, req *types.ManualActivityRequest) (*model.Activity, error) {
	var activity *model.Activity
	err := s.DB.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		task, err := s.TaskRepo.Tx(tx).GetTaskByID(ctx, req.TaskID)
		if err != nil {
			return notFound(err, "task %d not found", req.TaskID)
		}

		activity, err = manualEntry(req, s.Now())
		if err != nil {
			return err
		}
		if err := s.ActivityRepo.Tx(tx).CreateActivity(ctx, activity); err != nil {
			return err
		}
		activity.Task = task
		return nil
	})
	if err != nil {
		return nil, err
	}

	observability.ActivityEvents.WithLabelValues("logged").Inc()
	observability.ActivityMinutes.WithLabelValues("manual").Observe(float64(activity.DurationMinutes))

	log.Info().
		Str("evt.name", "activity.logged").
		Int("activity_id", activity.ActivityID).
		Int("task_id", req.TaskID).
		Bool("no_time_assigned", activity.NoTimeAssigned).
		Int("duration_minutes", activity.DurationMinutes).
		Msg("manual activity logged")

	return activity, nil
}

func manualEntry(req *types.ManualActivityRequest, now time.Time) (*model.Activity, error) {
	loggedAt := now
	if req.LoggedAt.Valid {
		loggedAt = req.LoggedAt.Time.UTC()
	}

	activity := &model.Activity{
		TaskID:   req.TaskID,
		LoggedAt: loggedAt,
	}

	switch {
	case req.StartTime.Valid && req.EndTime.Valid:
		start, end := req.StartTime.Time.UTC(), req.EndTime.Time.UTC()
		activity.StartTime = &start
		activity.EndTime = &end
		if req.DurationMinutes.Valid {
			activity.DurationMinutes = int(req.DurationMinutes.Int64)
		} else {
			// the elapsed time is only derived from a forward interval
			if end.Before(start) {
				return nil, apperr.ErrInvalidReq.Msg("end_time must not be before start_time")
			}
			activity.DurationMinutes = model.ElapsedMinutes(start, end)
		}
	case !req.StartTime.Valid && !req.EndTime.Valid && req.DurationMinutes.Valid:
		activity.DurationMinutes = int(req.DurationMinutes.Int64)
		activity.NoTimeAssigned = true
		display := loggedAt
		if !calday.HasTimeOfDay(loggedAt) {
			display = calday.Noon(loggedAt)
		}
		activity.DisplayTime = &display
	default:
		return nil, apperr.ErrInvalidReq.Msg("provide either start_time and end_time, or duration_minutes only")
	}

	if activity.DurationMinutes < 0 {
		return nil, apperr.ErrInvalidReq.Msg("duration_minutes must not be negative")
	}
	return activity, nil
}
