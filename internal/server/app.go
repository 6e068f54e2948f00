// Package server initializes and runs the netops reference backend.
// It configures storage, wires the users service to the HTTP endpoint and
// handles graceful shutdown on SIGINT/SIGTERM.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/netops/internal/logging"
	"github.com/dmitrijs2005/netops/internal/server/config"
	"github.com/dmitrijs2005/netops/internal/server/rest"
	"github.com/dmitrijs2005/netops/internal/server/storage"
	"github.com/dmitrijs2005/netops/internal/server/users"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	storage     storage.RepositoryManager
	userService *users.Service
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := logging.NewJSON(os.Stdout, level)

	rm, err := storage.New(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	us := users.NewService(rm.Users())

	return &App{config: c, logger: logger, storage: rm, userService: us}, nil
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigs)
		select {
		case <-sigs:
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := rest.NewServer(app.config.Addr, app.logger, app.userService)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled or a termination signal arrives.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "address", app.config.Addr)

	app.initSignalHandler(ctx, cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	stopCtx := context.WithoutCancel(ctx)
	if err := app.storage.Close(); err != nil {
		app.logger.Error(stopCtx, "storage close failed", "error", err)
	}
	app.logger.Info(stopCtx, "App stopped")
}
