package service

import (
	"context"
	"math"
	"time"

	"github.com/samber/lo"

	"tasklog.dev/backend/internal/model"
	"tasklog.dev/backend/internal/pkg/apperr"
	"tasklog.dev/backend/internal/pkg/calday"
	"tasklog.dev/backend/internal/repo"
)

// DefaultStatsWindowDays is how far back StatsByTask reaches when no from date is given.
const DefaultStatsWindowDays = 30

type Stats struct {
	ActivityRepo *repo.Activity
	Now          Clock
}

func NewStats(activityRepo *repo.Activity, now Clock) *Stats {
	return &Stats{
		ActivityRepo: activityRepo,
		Now:          now,
	}
}

// DaysWithActivity returns the distinct dates of the month, ascending, on which at
// least one activity was logged.
func (s *Stats) DaysWithActivity(ctx context.Context, year int, month time.Month) ([]string, error) {
	if month < time.January || month > time.December {
		return nil, apperr.ErrInvalidReq.Msg("month must be between 1 and 12")
	}

	from, to := calday.Month(year, month)
	loggedAt, err := s.ActivityRepo.GetLoggedAtBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return lo.Uniq(lo.Map(loggedAt, func(t time.Time, _ int) string {
		return calday.Format(t)
	})), nil
}

// StatsByTask totals the hours logged per task between from and to, both whole days and
// inclusive. A nil to means today; a nil from means DefaultStatsWindowDays before today.
func (s *Stats) StatsByTask(ctx context.Context, from, to *time.Time) ([]*model.TaskStats, error) {
	today := calday.Start(s.Now())
	start, end := today.AddDate(0, 0, -DefaultStatsWindowDays), today
	if from != nil {
		start = calday.Start(*from)
	}
	if to != nil {
		end = calday.Start(*to)
	}

	totals, err := s.ActivityRepo.SumMinutesByTask(ctx, start, calday.Next(end))
	if err != nil {
		return nil, err
	}

	return lo.Map(totals, func(t *model.TaskMinutes, _ int) *model.TaskStats {
		return &model.TaskStats{
			TaskID:     t.TaskID,
			TaskName:   t.Name,
			TaskColor:  t.Color,
			TotalHours: MinutesToHours(t.TotalMinutes),
		}
	}), nil
}

// MinutesToHours converts minutes to hours rounded to 2 decimal places.
func MinutesToHours(minutes int) float64 {
	return math.Round(float64(minutes)/60*100) / 100
}
