package main

import (
	"tasklog.dev/backend/cmd/app"
)

// @title          Task Logger API
// @version        1.0.0
// @description    Records stopwatch and manual time entries against tasks, with per-task colors and hour totals.
// @license.name   MIT License
// @license.url    https://opensource.org/licenses/MIT
// @host           localhost:8765
// @BasePath       /api
func main() {
	app.Run()
}
