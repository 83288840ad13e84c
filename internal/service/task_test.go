package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"

	"tasklog.dev/backend/internal/model/types"
	"tasklog.dev/backend/internal/pkg/apperr"
	"tasklog.dev/backend/internal/pkg/huecolor"
)

func TestCreateTask(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	task, err := f.Task.CreateTask(ctx, "  Writing  ")
	require.NoError(t, err)
	assert.Positive(t, task.TaskID)
	assert.Equal(t, "Writing", task.Name)
	assert.Equal(t, "#e54444", task.Color)
	assert.Equal(t, f.now, task.CreatedAt.UTC())

	second, err := f.Task.CreateTask(ctx, "Reading")
	require.NoError(t, err)
	assert.Equal(t, "#c5e544", second.Color)

	got, err := f.Task.GetTaskByID(ctx, task.TaskID)
	require.NoError(t, err)
	assert.Equal(t, "Writing", got.Name)
	assert.Equal(t, task.Color, got.Color)
}

func TestCreateTaskColorsFollowPalette(t *testing.T) {
	f := newFixture(t)

	for i := 0; i < 12; i++ {
		task := f.createTask(t, "task "+strings.Repeat("x", i+1))
		assert.Equal(t, huecolor.Next(i), task.Color, "task #%d", i+1)
	}
}

func TestCreateTaskRejectsDuplicatesAndBlanks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.createTask(t, "Writing")

	_, err := f.Task.CreateTask(ctx, " Writing ")
	require.ErrorIs(t, err, apperr.ErrConflict)

	_, err = f.Task.CreateTask(ctx, "   ")
	require.ErrorIs(t, err, apperr.ErrInvalidReq)

	_, err = f.Task.CreateTask(ctx, strings.Repeat("a", 256))
	require.ErrorIs(t, err, apperr.ErrInvalidReq)

	_, err = f.Task.CreateTask(ctx, strings.Repeat("a", 255))
	require.NoError(t, err)

	tasks, err := f.Task.GetTasks(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 2)
}

func TestGetTasksOrderedByName(t *testing.T) {
	f := newFixture(t)
	for _, name := range []string{"Writing", "Admin", "Reading"} {
		f.createTask(t, name)
	}

	tasks, err := f.Task.GetTasks(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "Admin", tasks[0].Name)
	assert.Equal(t, "Reading", tasks[1].Name)
	assert.Equal(t, "Writing", tasks[2].Name)
}

func TestGetTaskNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.Task.GetTaskByID(context.Background(), 7)
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestDeleteTaskCascades(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	doomed := f.createTask(t, "Doomed")
	kept := f.createTask(t, "Kept")

	f.logMinutes(t, doomed.TaskID, 30, time.Date(2024, 4, 30, 9, 0, 0, 0, time.UTC))
	f.logMinutes(t, kept.TaskID, 30, time.Date(2024, 4, 30, 9, 0, 0, 0, time.UTC))
	_, err := f.Activity.StartStopwatch(ctx, doomed.TaskID)
	require.NoError(t, err)

	require.NoError(t, f.Task.DeleteTask(ctx, doomed.TaskID))

	_, err = f.Task.GetTaskByID(ctx, doomed.TaskID)
	require.ErrorIs(t, err, apperr.ErrNotFound)

	running, err := f.Activity.GetRunningActivity(ctx)
	require.NoError(t, err)
	assert.Nil(t, running)

	activities, err := f.Activity.GetActivities(ctx, nil, nil, nil)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, kept.TaskID, activities[0].TaskID)

	stats, err := f.Stats.StatsByTask(ctx, nil, nil)
	require.NoError(t, err)
	for _, s := range stats {
		assert.NotEqual(t, doomed.TaskID, s.TaskID)
	}

	require.ErrorIs(t, f.Task.DeleteTask(ctx, doomed.TaskID), apperr.ErrNotFound)

	// with the running entry gone, a stopwatch can start again
	_, err = f.Activity.StartStopwatch(ctx, kept.TaskID)
	require.NoError(t, err)

	_, err = f.Activity.LogManual(ctx, &types.ManualActivityRequest{TaskID: doomed.TaskID, DurationMinutes: null.IntFrom(10)})
	require.ErrorIs(t, err, apperr.ErrNotFound)
}
