//go:build wireinject
// +build wireinject

package di

import (
	"MacroPulse/pkg/config"
	"MacroPulse/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Provider adapters
		ProvideMarketDataSource,
		ProvideLaborStatsSource,
		ProvideNationalAccountsSource,
		ProvideRatesSource,
		ProvideEventFeedSource,

		// Orchestrator and facade
		ProvideAggregator,
		ProvideIndicatorsHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
