package cli

import (
	"context"

	"go.uber.org/fx"

	"tasklog.dev/backend/internal/app"
	"tasklog.dev/backend/internal/app/appcontext"
)

// Start builds the application in CLI mode and starts it, so module can populate the
// dependencies a maintenance command needs.
func Start(module fx.Option) (*fx.App, error) {
	a := app.New(appcontext.Declare(appcontext.EnvCLI), module)
	if err := a.Start(context.Background()); err != nil {
		return nil, err
	}
	return a, nil
}
