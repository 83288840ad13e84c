package model

import "github.com/uptrace/bun"

const (
	SettingKeyHotkey       = "hotkey"
	SettingKeyRunAtStartup = "run_at_startup"

	DefaultHotkey = "ctrl+alt+shift+l"
)

// Setting is a raw key/value row. A missing row means the default applies.
type Setting struct {
	bun.BaseModel `bun:"settings,alias:s"`

	Key   string  `bun:",pk"`
	Value *string `bun:",nullzero"`
}

type Settings struct {
	Hotkey       string `json:"hotkey"`
	RunAtStartup bool   `json:"run_at_startup"`
}
