package testentry

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"tasklog.dev/backend/internal/app"
	"tasklog.dev/backend/internal/app/appconfig"
	"tasklog.dev/backend/internal/app/appcontext"
)

// Config returns the configuration of a test application: defaults, backed by a fresh
// SQLite database in a temporary directory.
func Config(t testing.TB) *appconfig.Config {
	t.Helper()

	conf, err := appconfig.Parse(appcontext.Declare(appcontext.EnvTest))
	if err != nil {
		t.Fatal(err)
	}
	conf.DatabaseDSN = filepath.Join(t.TempDir(), "tasklog_test.db")
	conf.LogFile = ""
	conf.DevMode = false
	conf.TracingEnabled = false
	conf.SentryDSN = ""
	return conf
}

// Populate starts a test application and fills targets from it. The application is
// stopped when the test ends. opts are appended to the application options, e.g. fx.Replace
// to pin the clock.
func Populate(t testing.TB, opts []fx.Option, targets ...any) {
	t.Helper()

	log.Logger = zerolog.New(zerolog.NewTestWriter(t)).With().Timestamp().Logger()

	options := app.OptionsWithConfig(Config(t), opts...)
	options = append(options, fx.Populate(targets...))

	a := fxtest.New(t, options...)
	a.RequireStart()
	t.Cleanup(a.RequireStop)
}
