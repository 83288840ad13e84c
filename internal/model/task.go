package model

import (
	"time"

	"github.com/uptrace/bun"
)

const TaskNameMaxLength = 255

type Task struct {
	bun.BaseModel `bun:"tasks,alias:t"`

	TaskID int    `bun:",pk,autoincrement" json:"id"`
	Name   string `json:"name"`
	// Color is assigned once when the task is created and never changes.
	Color     string    `json:"color"`
	CreatedAt time.Time `bun:",nullzero,notnull" json:"created_at"`
}

func (t *Task) UTC() *Task {
	c := *t
	c.CreatedAt = c.CreatedAt.UTC()
	return &c
}
