package model

type HealthReport struct {
	Status string `json:"status"`
	// Database is the bun dialect in use, "sqlite" or "pg".
	Database          string `json:"database"`
	RunningActivityID *int   `json:"running_activity_id"`
}
