package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-co-op/gocron"

	"VolScan/internal/di"
	"VolScan/internal/usecase"
	"VolScan/pkg/config"
	"VolScan/pkg/logger"
	"VolScan/pkg/server"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "config file path")
	once := flag.Bool("once", false, "run a single analysis pass and exit")
	flag.Parse()

	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	log.Printf("env=%s export_dir=%s", cfg.Environment, cfg.Export.Dir)

	analyzer, err := di.InitializeAnalyzer(cfg)
	if err != nil {
		log.Fatalf("analyzer initialization failed: %v", err)
	}

	if *once || cfg.Analysis.RefreshInterval <= 0 {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := analyzer.Run(ctx); err != nil {
			log.Printf("analysis failed: %v", err)
			os.Exit(1)
		}
		return
	}

	l, err := logger.New(&logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}

	app := server.New(cfg, l,
		server.WithRunner(newScheduledRunner(analyzer, cfg.Analysis.RefreshInterval, l)))
	if err := app.Run(); err != nil {
		log.Printf("app error: %v", err)
		os.Exit(1)
	}
}

// scheduledRunner reruns the analyzer on a fixed interval. The first pass
// starts as soon as the scheduler does.
type scheduledRunner struct {
	analyzer *usecase.Analyzer
	interval time.Duration
	l        *logger.Logger
}

func newScheduledRunner(a *usecase.Analyzer, interval time.Duration, l *logger.Logger) *scheduledRunner {
	return &scheduledRunner{analyzer: a, interval: interval, l: l.With("schedule")}
}

func (r *scheduledRunner) Run(ctx context.Context) error {
	s := gocron.NewScheduler(time.UTC)
	if _, err := s.Every(r.interval).Do(func() {
		if err := r.analyzer.Run(ctx); err != nil {
			r.l.Error("scheduled analysis failed", logger.Error(err))
		}
	}); err != nil {
		return fmt.Errorf("schedule analysis: %w", err)
	}
	s.StartAsync()
	r.l.Info("analysis scheduled", logger.Duration("interval", r.interval))

	<-ctx.Done()
	s.Stop()
	return nil
}
