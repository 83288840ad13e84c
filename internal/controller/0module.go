package controller

import (
	"go.uber.org/fx"

	controllerapi "tasklog.dev/backend/internal/controller/api"
	controllermeta "tasklog.dev/backend/internal/controller/meta"
)

type opt int

const (
	// OptServeFrontend serves the built frontend next to the API.
	OptServeFrontend opt = iota
	OptIncludeSwagger
)

func Module(o ...opt) fx.Option {
	opts := []fx.Option{
		// Controllers (api)
		controllerapi.Module(),

		// Controllers (meta)
		controllermeta.Module(),
	}
	for _, opt := range o {
		switch opt {
		case OptIncludeSwagger:
			opts = append(opts, fx.Invoke(controllermeta.RegisterSwagger))
		case OptServeFrontend:
			// registered last so its catch-all route never shadows the API
			opts = append(opts, fx.Invoke(controllermeta.RegisterFrontend))
		}
	}

	return fx.Module("controller",
		// options
		opts...,
	)
}
