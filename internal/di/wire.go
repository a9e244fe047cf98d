//go:build wireinject
// +build wireinject

package di

import (
	"VolScan/internal/usecase"
	"VolScan/pkg/config"
	"VolScan/pkg/server"

	"github.com/google/wire"
)

// InitializeAnalyzer wires the batch analyzer. Wire generates the
// implementation.
func InitializeAnalyzer(cfg *config.Config) (*usecase.Analyzer, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Analysis core
		ProvideLocation,
		ProvideEngine,

		// Market data
		ProvideHTTPClient,
		ProvideLimiter,
		ProvideBarSource,
		ProvideUniverseBuilder,

		// Persistence
		ProvideSnapshotStore,
		ProvideStatsCache,
		ProvideExporter,

		ProvideAnalyzer,
	)
	return &usecase.Analyzer{}, nil
}

// InitializeScanner wires the live scanner process.
func InitializeScanner(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Market data
		ProvideHTTPClient,
		ProvideLimiter,
		ProvideBarSource,

		// Alerting
		ProvideNotifier,
		ProvideScanner,

		// Process
		ProvideOpsServer,
		ProvideScannerApp,
	)
	return &server.App{}, nil
}

// InitializeServer wires the read API process.
func InitializeServer(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Snapshot-backed cache
		ProvideSnapshotStore,
		ProvideStatsCache,

		// HTTP
		ProvideLimiter,
		ProvideAPIHandler,
		ProvideAPIServer,
		ProvideServerApp,
	)
	return &server.App{}, nil
}
