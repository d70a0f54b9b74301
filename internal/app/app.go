package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-boards/internal/config"
	"github.com/vancomm/minesweeper-boards/internal/database"
	"github.com/vancomm/minesweeper-boards/internal/middleware"
)

const shutdownTimeout = 30 * time.Second

type App struct {
	logger     *logrus.Logger
	router     *http.ServeMux
	db         *pgxpool.Pool
	ws         *config.WebSocket
	migrations fs.FS
}

func New(logger *logrus.Logger, migrations fs.FS) *App {
	router := http.NewServeMux()

	app := &App{
		logger:     logger,
		router:     router,
		ws:         config.NewWebSocket(),
		migrations: migrations,
	}

	return app
}

// Handler returns the routed and wrapped handler for a store that is
// already connected.
func (a *App) Handler(cfg *config.App, store BoardStore) http.Handler {
	a.loadRoutes(cfg.BasePath, store)
	return middleware.Wrap(
		a.router,
		middleware.Logging(a.logger),
		middleware.Cors(cfg.CorsOrigins...),
	)
}

// Start connects to the database, applies pending migrations and serves
// until ctx is cancelled or the listener fails.
func (a *App) Start(ctx context.Context, cfg *config.App) error {
	dbConfig, err := config.NewDatabase()
	if err != nil {
		return err
	}

	db, err := database.ConnectAndMigrate(ctx, dbConfig, a.migrations)
	if err != nil {
		return fmt.Errorf("unable to connect to db: %w", err)
	}
	defer db.Close()
	a.db = db

	server := &http.Server{
		Addr:    cfg.Addr(),
		Handler: a.Handler(cfg, newStore(db)),
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	a.logger.WithField("addr", cfg.Addr()).Info("server listening")

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}
	a.logger.Info("server stopped")
	return nil
}
