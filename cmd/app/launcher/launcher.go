package launcher

import (
	"context"
	"net"
	"os/exec"
	"runtime"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"

	"tasklog.dev/backend/cmd/app/server"
	"tasklog.dev/backend/internal/app"
	"tasklog.dev/backend/internal/app/appconfig"
	"tasklog.dev/backend/internal/app/appcontext"
	"tasklog.dev/backend/internal/service"
)

type deps struct {
	fx.In

	Config         *appconfig.Config
	SettingService *service.Setting
}

// Run serves the application until the process is signalled. Once the server accepts
// connections it reports the configured hotkey and, when openBrowser is set, opens the UI.
func Run(ctx context.Context, openBrowser bool) error {
	var d deps
	a := app.New(appcontext.Declare(appcontext.EnvLauncher), server.Serve(), fx.Populate(&d))
	if err := a.Start(ctx); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := waitReady(gctx, d.Config.ServiceAddress); err != nil {
			log.Warn().Err(err).Msg("server did not become ready, not opening the browser")
			return nil
		}

		hotkey := d.SettingService.Hotkey(gctx)
		log.Info().
			Str("evt.name", "launcher.ready").
			Str("hotkey", hotkey).
			Str("url", d.Config.BaseURL).
			Msg("task logger is ready")

		if openBrowser {
			if err := OpenBrowser(d.Config.BaseURL); err != nil {
				log.Warn().Err(err).Str("url", d.Config.BaseURL).Msg("failed to open browser")
			}
		}
		return nil
	})
	g.Go(func() error {
		select {
		case sig := <-a.Done():
			log.Info().Str("signal", sig.String()).Msg("shutting down")
		case <-gctx.Done():
		}
		return nil
	})
	groupErr := g.Wait()

	stopCtx, cancel := context.WithTimeout(context.Background(), d.Config.HTTPServerShutdownTimeout+5*time.Second)
	defer cancel()
	if err := a.Stop(stopCtx); err != nil {
		return err
	}
	return groupErr
}

func waitReady(ctx context.Context, address string) error {
	return retry.Do(
		func() error {
			conn, err := net.DialTimeout("tcp", address, time.Second)
			if err != nil {
				return err
			}
			return conn.Close()
		},
		retry.Context(ctx),
		retry.Attempts(20),
		retry.Delay(250*time.Millisecond),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
	)
}

// OpenBrowser opens url with the desktop's default handler.
func OpenBrowser(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		return errors.Wrapf(err, "failed to run %s", cmd.Path)
	}
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}
