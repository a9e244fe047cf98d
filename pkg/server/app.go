// Package server owns the process lifecycle shared by the binaries: start
// the optional HTTP server and runner, wait for a signal or for the runner
// to finish, then shut down in order.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"VolScan/pkg/config"
	xhttp "VolScan/pkg/http"
	"VolScan/pkg/logger"
)

// Runner is a long-lived component the app drives until shutdown. A runner
// that returns nil before any signal ends the process cleanly, which is how
// one-shot batch runs exit.
type Runner interface {
	Run(ctx context.Context) error
}

// Option configures an App.
type Option func(*App)

// WithHTTPServer attaches an HTTP server to the lifecycle.
func WithHTTPServer(s *xhttp.Server) Option {
	return func(a *App) { a.httpServer = s }
}

// WithRunner attaches the main runner.
func WithRunner(r Runner) Option {
	return func(a *App) { a.runner = r }
}

// App couples an HTTP server and a runner with signal handling and ordered
// shutdown.
type App struct {
	cfg        *config.Config
	l          *logger.Logger
	httpServer *xhttp.Server
	runner     Runner
}

// New creates an App.
func New(cfg *config.Config, l *logger.Logger, opts ...Option) *App {
	a := &App{cfg: cfg, l: l.With("app")}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run starts everything and blocks until a signal arrives or the runner
// returns. The runner error, if any, is passed through.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if a.httpServer != nil {
		if err := a.httpServer.Start(); err != nil {
			return fmt.Errorf("start http server: %w", err)
		}
	}

	runnerDone := make(chan error, 1)
	if a.runner != nil {
		go func() { runnerDone <- a.runner.Run(ctx) }()
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	var runErr error
	select {
	case sig := <-sigCh:
		a.l.Info("shutdown signal received", logger.String("signal", sig.String()))
		cancel()
		if a.runner != nil {
			// let the runner observe cancellation and finish in-flight work
			runErr = <-runnerDone
			if runErr != nil {
				a.l.Warn("runner exited with error", logger.Error(runErr))
				runErr = nil
			}
		}
	case runErr = <-runnerDone:
		if runErr != nil {
			a.l.Error("runner failed", logger.Error(runErr))
		} else {
			a.l.Info("runner finished")
		}
	}

	a.stopHTTP()
	a.l.Info("shutdown complete")
	return runErr
}

func (a *App) stopHTTP() {
	if a.httpServer == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := a.httpServer.Stop(ctx); err != nil {
		a.l.Error("http shutdown error", logger.Error(err))
	}
}
