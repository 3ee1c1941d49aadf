package app

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/forge/internal/config"
	"github.com/ayoisaiah/forge/internal/logger"
	"github.com/ayoisaiah/forge/internal/notify"
	"github.com/ayoisaiah/forge/internal/pathutil"
	"github.com/ayoisaiah/forge/internal/ui"
	"github.com/ayoisaiah/forge/store"
	"github.com/ayoisaiah/forge/tracker"
)

const envKey = "forge.env"

// appEnv holds what every command needs once flags and config are loaded.
type appEnv struct {
	cfg      *config.Config
	log      *slog.Logger
	notifier *notify.Notifier
	now      func() time.Time
	out      io.Writer
	closers  []io.Closer
	dbPath   string
}

// loadEnv reads the config file, applies global flags and opens the log.
func loadEnv(ctx *cli.Context) (*appEnv, error) {
	err := pathutil.Initialize()
	if err != nil {
		return nil, err
	}

	configPath := pathutil.ConfigFilePath()

	cfg, err := config.New(
		config.WithPromptConfig(configPath),
		config.WithViperConfig(configPath),
		config.WithCLIConfig(ctx),
	)
	if err != nil {
		return nil, err
	}

	l, closer := logger.New(pathutil.LogFilePath(), cfg.Log.Level)

	return &appEnv{
		cfg:      cfg,
		log:      l,
		notifier: notify.New(cfg.Notifications.Enabled, cfg.Settings.SessionCmd),
		now:      time.Now,
		out:      os.Stdout,
		closers:  []io.Closer{closer},
		dbPath:   pathutil.DBFilePath(cfg.Store.Driver),
	}, nil
}

// env returns the runtime environment, loading it on first use so that help
// and usage output never touch the config file.
func env(ctx *cli.Context) (*appEnv, error) {
	if e, ok := ctx.App.Metadata[envKey].(*appEnv); ok {
		return e, nil
	}

	e, err := loadEnv(ctx)
	if err != nil {
		return nil, err
	}

	applyTheme(e.cfg)

	if ctx.App.Metadata == nil {
		ctx.App.Metadata = make(map[string]any)
	}

	ctx.App.Metadata[envKey] = e

	return e, nil
}

// open returns a tracker over a freshly opened store. The caller must close
// the store.
func (e *appEnv) open() (*tracker.Tracker, store.DB, error) {
	db, err := store.Open(e.cfg.Store.Driver, e.dbPath)
	if err != nil {
		return nil, nil, err
	}

	tr := tracker.New(
		db,
		tracker.WithClock(e.now),
		tracker.WithLogger(e.log),
		tracker.WithGoal(e.cfg.Goal.Seconds),
	)

	return tr, db, nil
}

// withTracker runs fn against an open store and closes it afterwards.
func (e *appEnv) withTracker(fn func(tr *tracker.Tracker, db store.DB) error) error {
	tr, db, err := e.open()
	if err != nil {
		return err
	}

	defer db.Close()

	return fn(tr, db)
}

func (e *appEnv) close() {
	for _, c := range e.closers {
		_ = c.Close()
	}
}

func applyTheme(cfg *config.Config) {
	ui.DarkTheme = cfg.Display.DarkTheme
}
