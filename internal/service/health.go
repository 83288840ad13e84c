package service

import (
	"context"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"tasklog.dev/backend/internal/model"
	"tasklog.dev/backend/internal/repo"
)

var ErrDatabaseNotReachable = errors.New("database not reachable")

type Health struct {
	DB           *bun.DB
	ActivityRepo *repo.Activity
}

func NewHealth(db *bun.DB, activityRepo *repo.Activity) *Health {
	return &Health{
		DB:           db,
		ActivityRepo: activityRepo,
	}
}

func (s *Health) Ping(ctx context.Context) error {
	if err := s.DB.PingContext(ctx); err != nil {
		return errors.Wrap(ErrDatabaseNotReachable, err.Error())
	}

	return nil
}

// Report pings the database and reads the ledger's stopwatch state.
func (s *Health) Report(ctx context.Context) (*model.HealthReport, error) {
	if err := s.Ping(ctx); err != nil {
		return nil, err
	}

	running, err := s.ActivityRepo.GetRunningActivity(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read stopwatch state")
	}

	report := &model.HealthReport{
		Status:   "ok",
		Database: s.DB.Dialect().Name().String(),
	}
	if running != nil {
		report.RunningActivityID = &running.ActivityID
	}
	return report, nil
}
