package types

import "gopkg.in/guregu/null.v3"

type UpdateSettingsRequest struct {
	Hotkey       null.String `json:"hotkey" validate:"max=512" swaggertype:"string"`
	RunAtStartup null.Bool   `json:"run_at_startup" swaggertype:"boolean"`
}
