// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/DylansGit/ClipSage/internal/application/port"
	"github.com/DylansGit/ClipSage/internal/application/usecase"
	"github.com/DylansGit/ClipSage/internal/cli/styles"
	"github.com/DylansGit/ClipSage/internal/domain/build"
	"github.com/DylansGit/ClipSage/internal/domain/repository"
	"github.com/DylansGit/ClipSage/internal/infrastructure/clipboard"
	"github.com/DylansGit/ClipSage/internal/infrastructure/config"
	"github.com/DylansGit/ClipSage/internal/infrastructure/metrics"
	"github.com/DylansGit/ClipSage/internal/infrastructure/ocr"
	"github.com/DylansGit/ClipSage/internal/infrastructure/payload"
	"github.com/DylansGit/ClipSage/internal/infrastructure/persistence/sqlite"
	"github.com/DylansGit/ClipSage/internal/logging"
)

// Options controls how the App is assembled.
type Options struct {
	// LogToStderr mirrors logs on stderr. Interactive TUIs turn it off.
	LogToStderr bool
}

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info
	db        *sql.DB
	Clips     repository.ClipRepository
	Payloads  *payload.Store

	// Collaborators. Clipboard and Extractor are nil when unavailable.
	Clipboard port.Clipboard
	Extractor port.TextExtractor

	// Metrics
	Registry *prometheus.Registry
	Metrics  *metrics.Monitor

	// Use cases
	HistoryUC *usecase.ClipHistoryUseCase
	CopyUC    *usecase.CopyClipUseCase

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp creates a new CLI application with all dependencies.
func NewApp(opts Options) (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err = mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	theme := styles.NewTheme(cfg)

	logger, logCleanup, logErr := logging.NewWithFile(
		logging.Config{
			Level:      logging.ParseLevel(cfg.Logging.Level),
			Format:     cfg.Logging.Format,
			TimeFormat: "15:04:05",
		},
		logging.FileConfig{
			Enabled:       cfg.Logging.EnableFileLog,
			LogDir:        cfg.Logging.LogDir,
			MaxSizeMB:     cfg.Logging.MaxSizeMB,
			MaxBackups:    cfg.Logging.MaxBackups,
			MaxAgeDays:    cfg.Logging.MaxAgeDays,
			Compress:      cfg.Logging.Compress,
			WriteToStderr: opts.LogToStderr,
		},
	)
	ctx := logging.WithContext(context.Background(), logger)
	if logErr != nil {
		logger.Warn().Err(logErr).Str("log_dir", cfg.Logging.LogDir).Msg("file logging disabled")
	}

	db, err := sqlite.NewConnection(ctx, cfg.Database.Path)
	if err != nil {
		logCleanup()
		return nil, fmt.Errorf("open database: %w", err)
	}
	logger.Debug().Str("db_path", cfg.Database.Path).Msg("database connected")

	payloads, err := payload.NewStore(cfg.Storage.ImagesDir)
	if err != nil {
		_ = db.Close()
		logCleanup()
		return nil, fmt.Errorf("open image store: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	monitorMetrics := metrics.NewMonitor(registry)

	clips := sqlite.NewClipRepository(db)

	app := &App{
		Config:     cfg,
		Manager:    mgr,
		Theme:      theme,
		db:         db,
		Clips:      clips,
		Payloads:   payloads,
		Registry:   registry,
		Metrics:    monitorMetrics,
		ctx:        ctx,
		logCleanup: logCleanup,
	}

	app.Clipboard = newClipboard(ctx, cfg.Monitor.ClipboardBackend)
	app.Extractor = newExtractor(ctx, cfg.OCR)

	app.HistoryUC = usecase.NewClipHistoryUseCase(clips, payloads, usecase.WithHistoryMetrics(monitorMetrics))
	app.CopyUC = usecase.NewCopyClipUseCase(app.Clipboard)

	return app, nil
}

// newClipboard returns nil when no backend could be opened. Commands that
// need the clipboard check for it.
func newClipboard(ctx context.Context, backend string) port.Clipboard {
	log := logging.FromContext(ctx)

	cb, err := clipboard.New(backend)
	if err != nil {
		log.Warn().Err(err).Str("backend", backend).Msg("clipboard unavailable")
		return nil
	}
	return cb
}

// newExtractor returns nil when OCR is disabled or tesseract is missing;
// images are then stored without text.
func newExtractor(ctx context.Context, cfg config.OCRConfig) port.TextExtractor {
	log := logging.FromContext(ctx)

	if !cfg.Enabled {
		log.Debug().Msg("ocr disabled")
		return nil
	}

	tess, err := ocr.NewTesseract(ocr.Config{
		Path:      cfg.TesseractPath,
		Languages: cfg.Languages,
		Timeout:   cfg.Timeout(),
	})
	if err != nil {
		if errors.Is(err, ocr.ErrTesseractNotFound) {
			log.Warn().Str("path", cfg.TesseractPath).Msg("tesseract not found, images will be stored without text")
		} else {
			log.Warn().Err(err).Msg("ocr unavailable")
		}
		return nil
	}

	log.Debug().Str("path", tess.Path()).Int("cache_entries", cfg.CacheEntries).Msg("ocr ready")
	return ocr.NewCachedExtractor(tess, cfg.CacheEntries)
}

// NewMonitor builds the clipboard monitor over the app's collaborators.
// A zero interval uses the configured poll interval.
func (a *App) NewMonitor(interval time.Duration) (*usecase.MonitorClipboardUseCase, error) {
	if a.Clipboard == nil {
		return nil, fmt.Errorf("no clipboard backend available: %w", clipboard.ErrNoClipboardTool)
	}
	poll := a.Config.Monitor.PollInterval()
	if interval > 0 {
		poll = interval
	}
	return usecase.NewMonitorClipboardUseCase(a.Clipboard, a.Extractor, a.HistoryUC, a.Metrics, poll), nil
}

// Close releases all resources.
func (a *App) Close() error {
	var err error
	if a.db != nil {
		err = sqlite.Close(a.db)
	}
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return err
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
