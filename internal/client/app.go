package client

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-register-form/internal/config"
	"github.com/MKhiriev/go-register-form/internal/cookies"
	"github.com/MKhiriev/go-register-form/internal/logger"
	"github.com/MKhiriev/go-register-form/internal/service"
	"github.com/MKhiriev/go-register-form/internal/store"
	"github.com/MKhiriev/go-register-form/internal/tui"
	"github.com/MKhiriev/go-register-form/internal/workers"
	"github.com/MKhiriev/go-register-form/models"
)

var ErrNilConfig = errors.New("client config is nil")

// frontend is the interactive part of the client.
type frontend interface {
	Run(ctx context.Context) error
}

type App struct {
	jar     cookies.Jar
	db      *store.DB
	ui      frontend
	workers *workers.Workers
	logger  *logger.Logger
}

var _ Client = (*App)(nil)

// NewApp picks the cookie jar and builds the terminal form over it.
//
// With a DSN the jar is a database table, migrated on startup and swept
// by a background worker. Without one cookies live in memory for the
// lifetime of the process.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	app := &App{
		workers: workers.NewWorkers(),
		logger:  log,
	}

	if cfg.DSN == "" {
		var opts []cookies.MemoryJarOption
		if cfg.Cookie.Disabled {
			opts = append(opts, cookies.WithMemoryDisabled())
		}
		app.jar = cookies.NewMemoryJar(opts...)
		log.Info().Msg("cookies are kept in memory")
	} else {
		db, err := store.NewConnect(ctx, config.DB{DSN: cfg.DSN}, log)
		if err != nil {
			return nil, fmt.Errorf("error connecting to cookie database: %w", err)
		}
		if err = db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("error migrating cookie database: %w", err)
		}

		app.db = db
		app.jar = store.NewDBCookieJar(db, log, store.WithJarDisabled(cfg.Cookie.Disabled))
		app.workers.Add(workers.NewCookieSweeper(store.NewStorages(db, log).Cookies, cfg.SweepInterval, log))
		log.Info().Str("driver", db.Driver()).Msg("cookies are kept in the database")
	}

	services := &service.Services{
		RegistrationService: service.NewRegistrationService(cfg.Cookie, log),
	}
	ui, err := tui.New(services, app.jar, buildInfo, log)
	if err != nil {
		app.close()
		return nil, fmt.Errorf("error creating terminal form: %w", err)
	}
	app.ui = ui

	return app, nil
}

// Run shows the form and runs the background workers until the form is
// closed or ctx is cancelled. The database is closed on return.
func (a *App) Run(ctx context.Context) error {
	defer a.close()

	g, ctx := errgroup.WithContext(ctx)
	workersCtx, stopWorkers := context.WithCancel(ctx)

	g.Go(func() error {
		return a.workers.Run(workersCtx)
	})
	g.Go(func() error {
		defer stopWorkers()
		return a.ui.Run(ctx)
	})

	if err := g.Wait(); err != nil {
		a.logger.Err(err).Msg("client stopped with error")
		return err
	}
	return nil
}

func (a *App) close() {
	if a.db == nil {
		return
	}
	if err := a.db.Close(); err != nil {
		a.logger.Err(err).Msg("error closing cookie database")
	}
}
