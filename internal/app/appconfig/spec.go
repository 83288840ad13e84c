package appconfig

import (
	"time"

	"tasklog.dev/backend/internal/app/appcontext"
)

type ConfigSpec struct {
	// ServiceAddress is the listen address for the API and the bundled frontend.
	ServiceAddress string `required:"true" split_words:"true" default:"127.0.0.1:8765"`

	// BaseURL is the URL the launcher opens in the default browser.
	BaseURL string `split_words:"true" default:"http://localhost:8765"`

	// LogJsonStdout is whether to log JSON logs (instead of pretty-print logs) to stdout for the ease of log collection.
	LogJsonStdout bool `split_words:"true" default:"false"`

	// LogFile is where logs are additionally written to, rotated by size. Leaving this empty disables file logging.
	LogFile string `split_words:"true" default:"logs/app.log"`

	// DevMode to indicate development mode. When true, the log level is lowered to trace
	// and pprof endpoints are mounted under /debug/pprof.
	DevMode bool `split_words:"true"`

	// DatabaseDSN selects the relational store. A postgres:// or postgresql:// URL uses PostgreSQL
	// (see https://bun.uptrace.dev/postgres/#pgdriver); anything else is treated as a SQLite database
	// file path or file: URI.
	DatabaseDSN string `required:"true" split_words:"true" default:"data/task_logger.db"`

	DatabaseMaxOpenConns    int           `split_words:"true" default:"10"`
	DatabaseMaxIdleConns    int           `split_words:"true" default:"2"`
	DatabaseConnMaxLifeTime time.Duration `split_words:"true" default:"5m"`

	// DatabaseConnectAttempts is how many times the initial database ping is tried before giving up.
	DatabaseConnectAttempts uint `split_words:"true" default:"5"`

	BunDebugVerbose bool `split_words:"true"`

	// TracingEnabled to indicate whether to enable OpenTelemetry tracing of HTTP requests and queries.
	// Spans are exported to TracingOutput in the stdout exporter format.
	TracingEnabled bool `split_words:"true"`

	// TracingOutput is the file spans are written to. Empty means stdout.
	TracingOutput string `split_words:"true"`

	// CorsAllowOrigins is the list of origins allowed to call the API from a browser,
	// which covers the frontend dev server.
	CorsAllowOrigins []string `split_words:"true" default:"http://localhost:5173,http://127.0.0.1:5173,http://localhost:8765,http://127.0.0.1:8765"`

	// FrontendDir is the directory of the built frontend. When it does not exist, only the API is served.
	FrontendDir string `split_words:"true" default:"frontend/dist"`

	// SentryDSN is the DSN of the Sentry server. See https://pkg.go.dev/github.com/getsentry/sentry-go#ClientOptions
	SentryDSN string `split_words:"true"`

	// HTTPServerShutdownTimeout is the timeout for the HTTP server to shut down gracefully.
	HTTPServerShutdownTimeout time.Duration `required:"true" split_words:"true" default:"10s"`
}

type Config struct {
	// ConfigSpec is the configuration specification injected to the config.
	ConfigSpec

	// AppContext is the application context
	AppContext appcontext.Ctx
}
