package types

import (
	"gopkg.in/guregu/null.v3"
)

type StartActivityRequest struct {
	TaskID int `json:"task_id" validate:"required,gt=0"`
}

// ManualActivityRequest logs time without the stopwatch. Either StartTime and EndTime
// are both set, or only DurationMinutes is.
type ManualActivityRequest struct {
	TaskID          int       `json:"task_id" validate:"required,gt=0"`
	StartTime       Timestamp `json:"start_time" swaggertype:"string" format:"date-time"`
	EndTime         Timestamp `json:"end_time" swaggertype:"string" format:"date-time"`
	DurationMinutes null.Int  `json:"duration_minutes" validate:"min=0" swaggertype:"integer"`
	LoggedAt        Timestamp `json:"logged_at" swaggertype:"string" format:"date-time"`
}

type DaysQuery struct {
	Year  int `query:"year" validate:"required,min=1,max=9999"`
	Month int `query:"month" validate:"required,min=1,max=12"`
}

// DateRangeQuery holds raw YYYY-MM-DD query parameters; empty means unset.
type DateRangeQuery struct {
	Day      string `query:"day"`
	FromDate string `query:"from_date"`
	ToDate   string `query:"to_date"`
}
