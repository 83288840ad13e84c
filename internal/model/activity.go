package model

import (
	"time"

	"github.com/uptrace/bun"
)

// Activity is one ledger entry. An activity with EndTime == nil and NoTimeAssigned == false
// is the running stopwatch; the store holds at most one of those.
type Activity struct {
	bun.BaseModel `bun:"activities,alias:a"`

	ActivityID      int        `bun:",pk,autoincrement"`
	TaskID          int        `bun:",notnull"`
	StartTime       *time.Time `bun:",nullzero"`
	EndTime         *time.Time `bun:",nullzero"`
	DurationMinutes int        `bun:",notnull"`
	// LoggedAt places the activity on the calendar and orders listings.
	LoggedAt       time.Time `bun:",notnull"`
	NoTimeAssigned bool      `bun:",notnull"`
	// DisplayTime is the time of day a NoTimeAssigned entry is drawn at on a timeline.
	DisplayTime *time.Time `bun:",nullzero"`

	Task *Task `bun:"rel:belongs-to,join:task_id=task_id"`
}

func (a *Activity) IsRunning() bool {
	return a.EndTime == nil && !a.NoTimeAssigned
}

// ElapsedMinutes returns the whole minutes between start and end, truncated.
func ElapsedMinutes(start, end time.Time) int {
	return int(end.Sub(start) / time.Minute)
}

type ActivityView struct {
	ID              int        `json:"id"`
	TaskID          int        `json:"task_id"`
	TaskName        string     `json:"task_name"`
	TaskColor       string     `json:"task_color"`
	StartTime       *time.Time `json:"start_time"`
	EndTime         *time.Time `json:"end_time"`
	DurationMinutes int        `json:"duration_minutes"`
	LoggedAt        time.Time  `json:"logged_at"`
	NoTimeAssigned  bool       `json:"no_time_assigned"`
	DisplayTime     *time.Time `json:"display_time"`
}

// RunningActivityView is the running stopwatch together with its task.
type RunningActivityView struct {
	ID        int       `json:"id"`
	TaskID    int       `json:"task_id"`
	TaskName  string    `json:"task_name"`
	TaskColor string    `json:"task_color"`
	StartTime time.Time `json:"start_time"`
}

// NewActivityView flattens a with its task. Timestamps are converted to UTC so they
// serialize with a Z suffix.
func NewActivityView(a *Activity) *ActivityView {
	v := &ActivityView{
		ID:              a.ActivityID,
		TaskID:          a.TaskID,
		StartTime:       utcPtr(a.StartTime),
		EndTime:         utcPtr(a.EndTime),
		DurationMinutes: a.DurationMinutes,
		LoggedAt:        a.LoggedAt.UTC(),
		NoTimeAssigned:  a.NoTimeAssigned,
		DisplayTime:     utcPtr(a.DisplayTime),
	}
	if a.Task != nil {
		v.TaskName = a.Task.Name
		v.TaskColor = a.Task.Color
	}
	return v
}

func NewRunningActivityView(a *Activity) *RunningActivityView {
	v := &RunningActivityView{
		ID:     a.ActivityID,
		TaskID: a.TaskID,
	}
	if a.StartTime != nil {
		v.StartTime = a.StartTime.UTC()
	}
	if a.Task != nil {
		v.TaskName = a.Task.Name
		v.TaskColor = a.Task.Color
	}
	return v
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
