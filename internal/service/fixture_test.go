package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx"

	"tasklog.dev/backend/internal/model"
	"tasklog.dev/backend/internal/pkg/testentry"
	"tasklog.dev/backend/internal/service"
)

type fixture struct {
	now time.Time

	Task     *service.Task
	Activity *service.Activity
	Stats    *service.Stats
	Setting  *service.Setting
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{now: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)}
	testentry.Populate(t,
		[]fx.Option{fx.Replace(service.Clock(func() time.Time { return f.now }))},
		&f.Task, &f.Activity, &f.Stats, &f.Setting,
	)
	return f
}

func (f *fixture) advance(d time.Duration) {
	f.now = f.now.Add(d)
}

func (f *fixture) createTask(t *testing.T, name string) *model.Task {
	t.Helper()
	task, err := f.Task.CreateTask(context.Background(), name)
	require.NoError(t, err)
	return task
}

func (f *fixture) countRunning(t *testing.T) int {
	t.Helper()
	activities, err := f.Activity.GetActivities(context.Background(), nil, nil, nil)
	require.NoError(t, err)

	n := 0
	for _, a := range activities {
		if a.IsRunning() {
			n++
		}
	}
	return n
}

func date(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}
