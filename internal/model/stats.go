package model

type TaskMinutes struct {
	TaskID       int
	Name         string
	Color        string
	TotalMinutes int
}

type TaskStats struct {
	TaskID     int     `json:"task_id"`
	TaskName   string  `json:"task_name"`
	TaskColor  string  `json:"task_color"`
	TotalHours float64 `json:"total_hours"`
}
