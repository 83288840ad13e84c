package app

import (
	"time"

	"go.uber.org/fx"

	"tasklog.dev/backend/internal/app/appconfig"
	"tasklog.dev/backend/internal/app/appcontext"
	"tasklog.dev/backend/internal/controller"
	"tasklog.dev/backend/internal/infra"
	"tasklog.dev/backend/internal/pkg/logger"
	"tasklog.dev/backend/internal/repo"
	"tasklog.dev/backend/internal/server"
	"tasklog.dev/backend/internal/service"
)

func Options(ctx appcontext.Ctx, additionalOpts ...fx.Option) []fx.Option {
	conf, err := appconfig.Parse(ctx)
	if err != nil {
		panic(err)
	}

	// logger and configuration are the only two things that are not in the fx graph
	// because some other packages need them to be initialized before fx starts
	logger.Configure(conf)

	return OptionsWithConfig(conf, additionalOpts...)
}

// OptionsWithConfig builds the application graph around an already parsed configuration.
// The logger is expected to be configured by the caller.
func OptionsWithConfig(conf *appconfig.Config, additionalOpts ...fx.Option) []fx.Option {
	baseOpts := []fx.Option{
		// fx meta
		fx.WithLogger(logger.Fx),

		// Misc
		fx.Supply(conf),

		// Infrastructures
		infra.Module(),

		// Servers
		server.Module(),

		// Repositories
		repo.Module(),

		// Services
		service.Module(),

		// Global Singleton Inits: Keep those before controllers to ensure they are initialized
		// before controllers are registered as controllers are also fx#Invoke functions which
		// are called in the order of their registration.
		fx.Invoke(infra.SentryInit),
	}

	switch conf.AppContext.Env {
	case appcontext.EnvCLI:
		// maintenance commands drive migrations themselves and serve nothing
	case appcontext.EnvTest:
		baseOpts = append(baseOpts,
			fx.Invoke(infra.AutoMigrate),
			controller.Module(controller.OptIncludeSwagger),
		)
	default:
		baseOpts = append(baseOpts,
			fx.Invoke(infra.AutoMigrate),
			controller.Module(controller.OptIncludeSwagger, controller.OptServeFrontend),
		)
	}

	baseOpts = append(baseOpts,
		// fx Extra Options
		fx.StartTimeout(1*time.Minute),
		// StopTimeout is not typically needed, since we're using fiber's Shutdown(),
		// in which fiber has its own IdleTimeout for controlling the shutdown timeout.
		// It acts as a countermeasure in case the fiber app is not properly shutting down.
		fx.StopTimeout(conf.HTTPServerShutdownTimeout+5*time.Second),
	)

	return append(baseOpts, additionalOpts...)
}

func New(ctx appcontext.Ctx, additionalOpts ...fx.Option) *fx.App {
	return fx.New(Options(ctx, additionalOpts...)...)
}
