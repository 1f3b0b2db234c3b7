package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	apihttp "github.com/DylansGit/ClipSage/internal/http"
	"github.com/DylansGit/ClipSage/internal/infrastructure/config"
	"github.com/DylansGit/ClipSage/internal/logging"
)

var (
	watchListen   string
	watchInterval float64
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Monitor the clipboard and record new content",
	Long: `Poll the clipboard and record every new text or image until interrupted.

Text equal to the last recorded text is skipped. Images are saved under the
configured images directory; their text is extracted with tesseract when OCR
is enabled.

With --listen (or api.enabled in the config) the local HTTP API is served
alongside the monitor.

Examples:
  clipsage watch
  clipsage watch --interval 0.5
  clipsage watch --listen 127.0.0.1:7878`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVar(&watchListen, "listen", "", "serve the HTTP API on host:port")
	watchCmd.Flags().Float64Var(&watchInterval, "interval", 0, "poll interval in seconds (overrides config)")
}

func runWatch(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	var interval time.Duration
	if cmd.Flags().Changed("interval") {
		var err error
		if interval, err = pollIntervalFlag(watchInterval); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	log := logging.FromContext(ctx)

	monitor, err := app.NewMonitor(interval)
	if err != nil {
		return err
	}

	api, err := resolveAPI(app.Config.API, watchListen)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if runErr := monitor.Run(gctx); runErr != nil && !errors.Is(runErr, context.Canceled) {
			return runErr
		}
		return nil
	})

	// An explicit --interval pins the poll rate; otherwise config edits apply live.
	if interval == 0 {
		app.Manager.OnConfigChange(func(cfg *config.Config) {
			monitor.SetPollInterval(cfg.Monitor.PollInterval())
			log.Info().Dur("interval", monitor.PollInterval()).Msg("poll interval updated")
		})
	}
	if watchErr := app.Manager.Watch(gctx); watchErr != nil {
		log.Warn().Err(watchErr).Msg("config live reload unavailable")
	}

	if api.enabled {
		srv, srvErr := apihttp.NewServer(gctx, app.HistoryUC, &apihttp.Config{
			Host:     api.host,
			Port:     api.port,
			Gatherer: app.Registry,
		})
		if srvErr != nil {
			return fmt.Errorf("create http server: %w", srvErr)
		}
		g.Go(func() error { return srv.Run(gctx) })
	}

	log.Info().
		Dur("interval", monitor.PollInterval()).
		Bool("ocr", app.Extractor != nil).
		Bool("api", api.enabled).
		Msg("watching clipboard")

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info().Msg("clipboard watch stopped")
	return nil
}

// pollIntervalFlag converts --interval seconds to a duration, accepting the
// same range as monitor.poll_interval_seconds.
func pollIntervalFlag(seconds float64) (time.Duration, error) {
	if !(seconds > 0) || seconds > config.MaxPollIntervalSeconds {
		return 0, fmt.Errorf("invalid --interval %v: must be greater than 0 and at most %d seconds",
			seconds, config.MaxPollIntervalSeconds)
	}
	d := time.Duration(seconds * float64(time.Second))
	if d <= 0 {
		return 0, fmt.Errorf("invalid --interval %v: shorter than a nanosecond", seconds)
	}
	return d, nil
}

type apiSettings struct {
	enabled bool
	host    string
	port    int
}

// resolveAPI decides whether and where to serve the API. A non-empty listen
// flag enables it and overrides the configured address.
func resolveAPI(cfg config.APIConfig, listen string) (apiSettings, error) {
	if listen == "" {
		return apiSettings{enabled: cfg.Enabled, host: cfg.Host, port: cfg.Port}, nil
	}

	host, portStr, err := net.SplitHostPort(listen)
	if err != nil {
		return apiSettings{}, fmt.Errorf("invalid --listen %q: %w", listen, err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil || port < 1 || port > 65535 {
		return apiSettings{}, fmt.Errorf("invalid --listen port %q", portStr)
	}
	if host == "" {
		host = cfg.Host
	}
	return apiSettings{enabled: true, host: host, port: port}, nil
}
