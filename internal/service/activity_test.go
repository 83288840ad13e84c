package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"

	"tasklog.dev/backend/internal/model/types"
	"tasklog.dev/backend/internal/pkg/apperr"
)

func TestStartStopwatch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	task := f.createTask(t, "Writing")

	activity, err := f.Activity.StartStopwatch(ctx, task.TaskID)
	require.NoError(t, err)
	assert.True(t, activity.IsRunning())
	assert.Equal(t, 0, activity.DurationMinutes)
	assert.False(t, activity.NoTimeAssigned)
	require.NotNil(t, activity.StartTime)
	assert.Equal(t, f.now, activity.StartTime.UTC())
	assert.Equal(t, f.now, activity.LoggedAt.UTC())

	running, err := f.Activity.GetRunningActivity(ctx)
	require.NoError(t, err)
	require.NotNil(t, running)
	assert.Equal(t, activity.ActivityID, running.ActivityID)
	require.NotNil(t, running.Task)
	assert.Equal(t, "Writing", running.Task.Name)
	assert.Equal(t, task.Color, running.Task.Color)
}

func TestStartStopwatchWhileRunningConflicts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	first := f.createTask(t, "Writing")
	second := f.createTask(t, "Reading")

	started, err := f.Activity.StartStopwatch(ctx, first.TaskID)
	require.NoError(t, err)

	f.advance(time.Minute)
	_, err = f.Activity.StartStopwatch(ctx, second.TaskID)
	require.ErrorIs(t, err, apperr.ErrConflict)
	_, err = f.Activity.StartStopwatch(ctx, first.TaskID)
	require.ErrorIs(t, err, apperr.ErrConflict)

	activities, err := f.Activity.GetActivities(ctx, nil, nil, nil)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, started.ActivityID, activities[0].ActivityID)
}

func TestStartStopwatchUnknownTask(t *testing.T) {
	f := newFixture(t)

	_, err := f.Activity.StartStopwatch(context.Background(), 42)
	require.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Equal(t, 0, f.countRunning(t))
}

func TestConcurrentStartsLeaveOneRunning(t *testing.T) {
	f := newFixture(t)
	task := f.createTask(t, "Writing")

	const attempts = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.Activity.StartStopwatch(context.Background(), task.TaskID)

			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				succeeded++
			} else if assert.ErrorIs(t, err, apperr.ErrConflict) {
				conflicts++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, conflicts)
	assert.Equal(t, 1, f.countRunning(t))
}

func TestStopStopwatch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	task := f.createTask(t, "Writing")

	started, err := f.Activity.StartStopwatch(ctx, task.TaskID)
	require.NoError(t, err)

	f.advance(29*time.Minute + 40*time.Second)
	stopped, err := f.Activity.StopStopwatch(ctx, started.ActivityID)
	require.NoError(t, err)
	require.NotNil(t, stopped.EndTime)
	assert.Equal(t, f.now, stopped.EndTime.UTC())
	assert.Equal(t, 29, stopped.DurationMinutes)
	assert.False(t, stopped.IsRunning())

	running, err := f.Activity.GetRunningActivity(ctx)
	require.NoError(t, err)
	assert.Nil(t, running)

	_, err = f.Activity.StopStopwatch(ctx, started.ActivityID)
	require.ErrorIs(t, err, apperr.ErrConflict)

	_, err = f.Activity.StopStopwatch(ctx, started.ActivityID+100)
	require.ErrorIs(t, err, apperr.ErrNotFound)

	// a new stopwatch may start once the previous one stopped
	_, err = f.Activity.StartStopwatch(ctx, task.TaskID)
	require.NoError(t, err)
	assert.Equal(t, 1, f.countRunning(t))
}

func TestStopManualEntryConflicts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	task := f.createTask(t, "Writing")

	logged, err := f.Activity.LogManual(ctx, &types.ManualActivityRequest{
		TaskID:          task.TaskID,
		DurationMinutes: null.IntFrom(15),
	})
	require.NoError(t, err)

	_, err = f.Activity.StopStopwatch(ctx, logged.ActivityID)
	require.ErrorIs(t, err, apperr.ErrConflict)
}

func TestLogManualInterval(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	task := f.createTask(t, "Writing")

	start := time.Date(2024, 4, 30, 10, 0, 0, 0, time.UTC)
	end := time.Date(2024, 4, 30, 10, 29, 40, 0, time.UTC)
	activity, err := f.Activity.LogManual(ctx, &types.ManualActivityRequest{
		TaskID:    task.TaskID,
		StartTime: types.NewTimestamp(start),
		EndTime:   types.NewTimestamp(end),
	})
	require.NoError(t, err)
	assert.Equal(t, 29, activity.DurationMinutes)
	assert.False(t, activity.NoTimeAssigned)
	assert.Nil(t, activity.DisplayTime)
	assert.Equal(t, start, activity.StartTime.UTC())
	assert.Equal(t, end, activity.EndTime.UTC())
	// logged_at defaults to now
	assert.Equal(t, f.now, activity.LoggedAt.UTC())
	require.NotNil(t, activity.Task)
	assert.Equal(t, "Writing", activity.Task.Name)

	overridden, err := f.Activity.LogManual(ctx, &types.ManualActivityRequest{
		TaskID:          task.TaskID,
		StartTime:       types.NewTimestamp(start),
		EndTime:         types.NewTimestamp(end),
		DurationMinutes: null.IntFrom(45),
		LoggedAt:        types.NewTimestamp(start),
	})
	require.NoError(t, err)
	assert.Equal(t, 45, overridden.DurationMinutes)
	assert.Equal(t, start, overridden.LoggedAt.UTC())
}

func TestLogManualDurationOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	task := f.createTask(t, "Writing")

	bare, err := f.Activity.LogManual(ctx, &types.ManualActivityRequest{
		TaskID:          task.TaskID,
		DurationMinutes: null.IntFrom(45),
		LoggedAt:        types.NewTimestamp(time.Date(2024, 4, 20, 0, 0, 0, 0, time.UTC)),
	})
	require.NoError(t, err)
	assert.True(t, bare.NoTimeAssigned)
	assert.Nil(t, bare.StartTime)
	assert.Nil(t, bare.EndTime)
	assert.Equal(t, 45, bare.DurationMinutes)
	require.NotNil(t, bare.DisplayTime)
	assert.Equal(t, time.Date(2024, 4, 20, 12, 0, 0, 0, time.UTC), bare.DisplayTime.UTC())

	timed, err := f.Activity.LogManual(ctx, &types.ManualActivityRequest{
		TaskID:          task.TaskID,
		DurationMinutes: null.IntFrom(45),
		LoggedAt:        types.NewTimestamp(time.Date(2024, 4, 20, 14, 30, 0, 0, time.UTC)),
	})
	require.NoError(t, err)
	require.NotNil(t, timed.DisplayTime)
	assert.Equal(t, time.Date(2024, 4, 20, 14, 30, 0, 0, time.UTC), timed.DisplayTime.UTC())

	// manual entries do not count as running, so a stopwatch can still start
	assert.Equal(t, 0, f.countRunning(t))
	_, err = f.Activity.StartStopwatch(ctx, task.TaskID)
	require.NoError(t, err)

	// and manual entries may be logged while it runs
	_, err = f.Activity.LogManual(ctx, &types.ManualActivityRequest{
		TaskID:          task.TaskID,
		DurationMinutes: null.IntFrom(5),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, f.countRunning(t))
}

func TestLogManualRejectsInvalidShapes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	task := f.createTask(t, "Writing")
	start := types.NewTimestamp(time.Date(2024, 4, 30, 10, 0, 0, 0, time.UTC))
	end := types.NewTimestamp(time.Date(2024, 4, 30, 11, 0, 0, 0, time.UTC))

	cases := map[string]*types.ManualActivityRequest{
		"nothing":            {TaskID: task.TaskID},
		"start only":         {TaskID: task.TaskID, StartTime: start},
		"end only":           {TaskID: task.TaskID, EndTime: end},
		"start and duration": {TaskID: task.TaskID, StartTime: start, DurationMinutes: null.IntFrom(10)},
		"end before start":   {TaskID: task.TaskID, StartTime: end, EndTime: start},
		"negative duration":  {TaskID: task.TaskID, DurationMinutes: null.IntFrom(-1)},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := f.Activity.LogManual(ctx, req)
			require.ErrorIs(t, err, apperr.ErrInvalidReq)
		})
	}

	activities, err := f.Activity.GetActivities(ctx, nil, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, activities)

	_, err = f.Activity.LogManual(ctx, &types.ManualActivityRequest{TaskID: 999, DurationMinutes: null.IntFrom(10)})
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestLogManualUnknownTaskComesFirst(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// no shape at all, but the missing task is what gets reported
	_, err := f.Activity.LogManual(ctx, &types.ManualActivityRequest{TaskID: 999})
	require.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = f.Activity.LogManual(ctx, &types.ManualActivityRequest{
		TaskID:    999,
		StartTime: types.NewTimestamp(time.Date(2024, 4, 30, 10, 0, 0, 0, time.UTC)),
	})
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestLogManualReversedIntervalWithDuration(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	task := f.createTask(t, "Writing")

	start := time.Date(2024, 4, 30, 11, 0, 0, 0, time.UTC)
	end := time.Date(2024, 4, 30, 10, 0, 0, 0, time.UTC)
	activity, err := f.Activity.LogManual(ctx, &types.ManualActivityRequest{
		TaskID:          task.TaskID,
		StartTime:       types.NewTimestamp(start),
		EndTime:         types.NewTimestamp(end),
		DurationMinutes: null.IntFrom(20),
	})
	require.NoError(t, err)
	assert.Equal(t, 20, activity.DurationMinutes)
	assert.Equal(t, start, activity.StartTime.UTC())
	assert.Equal(t, end, activity.EndTime.UTC())
	assert.False(t, activity.NoTimeAssigned)
}

func TestGetActivitiesFilters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	task := f.createTask(t, "Writing")

	for _, loggedAt := range []time.Time{
		time.Date(2024, 4, 29, 23, 59, 59, 0, time.UTC),
		time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 4, 30, 18, 0, 0, 0, time.UTC),
		time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
	} {
		_, err := f.Activity.LogManual(ctx, &types.ManualActivityRequest{
			TaskID:          task.TaskID,
			DurationMinutes: null.IntFrom(10),
			LoggedAt:        types.NewTimestamp(loggedAt),
		})
		require.NoError(t, err)
	}

	all, err := f.Activity.GetActivities(ctx, nil, nil, nil)
	require.NoError(t, err)
	require.Len(t, all, 4)
	for i := 1; i < len(all); i++ {
		assert.False(t, all[i].LoggedAt.After(all[i-1].LoggedAt), "activities must be newest first")
	}
	assert.Equal(t, time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC), all[0].LoggedAt.UTC())

	day, err := f.Activity.GetActivities(ctx, date(2024, 4, 30), nil, nil)
	require.NoError(t, err)
	assert.Len(t, day, 2)

	from, err := f.Activity.GetActivities(ctx, nil, date(2024, 4, 30), nil)
	require.NoError(t, err)
	assert.Len(t, from, 3)

	to, err := f.Activity.GetActivities(ctx, nil, nil, date(2024, 4, 30))
	require.NoError(t, err)
	assert.Len(t, to, 3)

	between, err := f.Activity.GetActivities(ctx, nil, date(2024, 4, 29), date(2024, 4, 29))
	require.NoError(t, err)
	require.Len(t, between, 1)
	assert.Equal(t, time.Date(2024, 4, 29, 23, 59, 59, 0, time.UTC), between[0].LoggedAt.UTC())
}
