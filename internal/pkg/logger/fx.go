package logger

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx/fxevent"
)

type fxLogger struct {
	l zerolog.Logger
}

// Fx routes fx lifecycle events into the global logger.
func Fx() fxevent.Logger {
	return &fxLogger{
		l: log.Logger.
			With().
			Str("evt.name", "fx.init").
			Logger(),
	}
}

func (l *fxLogger) LogEvent(event fxevent.Event) {
	switch e := event.(type) {
	case *fxevent.Provided:
		if e.Err != nil {
			l.l.Error().Err(e.Err).Str("module", e.ModuleName).Msg("fx: provide failed")
			return
		}
		l.l.Trace().
			Str("constructor", e.ConstructorName).
			Str("module", e.ModuleName).
			Strs("types", e.OutputTypeNames).
			Msg("fx: provided")
	case *fxevent.Invoked:
		if e.Err != nil {
			l.l.Error().Err(e.Err).Str("function", e.FunctionName).Str("module", e.ModuleName).Msg("fx: invoke failed")
			return
		}
		l.l.Trace().Str("function", e.FunctionName).Str("module", e.ModuleName).Msg("fx: invoked")
	case *fxevent.OnStartExecuted:
		if e.Err != nil {
			l.l.Error().Err(e.Err).Str("callee", e.FunctionName).Str("caller", e.CallerName).Msg("fx: OnStart hook failed")
			return
		}
		l.l.Debug().Str("callee", e.FunctionName).Dur("runtime", e.Runtime).Msg("fx: OnStart hook executed")
	case *fxevent.OnStopExecuted:
		if e.Err != nil {
			l.l.Error().Err(e.Err).Str("callee", e.FunctionName).Str("caller", e.CallerName).Msg("fx: OnStop hook failed")
			return
		}
		l.l.Debug().Str("callee", e.FunctionName).Dur("runtime", e.Runtime).Msg("fx: OnStop hook executed")
	case *fxevent.Started:
		if e.Err != nil {
			l.l.Error().Err(e.Err).Msg("fx: start failed")
			return
		}
		l.l.Debug().Msg("fx: started")
	case *fxevent.Stopped:
		if e.Err != nil {
			l.l.Error().Err(e.Err).Msg("fx: stop failed")
			return
		}
		l.l.Debug().Msg("fx: stopped")
	case *fxevent.RolledBack:
		l.l.Error().Err(e.Err).Msg("fx: start failed, rolled back")
	}
}
