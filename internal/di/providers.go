package di

import (
	"MacroPulse/internal/domain/repository"
	"MacroPulse/internal/handler/api"
	"MacroPulse/internal/service/bea"
	"MacroPulse/internal/service/bls"
	"MacroPulse/internal/service/feeds"
	"MacroPulse/internal/service/fred"
	"MacroPulse/internal/service/marketdata"
	"MacroPulse/internal/usecase"
	"MacroPulse/pkg/config"
	xlogger "MacroPulse/pkg/logger"
	"MacroPulse/pkg/metrics"
	"MacroPulse/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*xlogger.Logger, error) {
	return xlogger.New(&xlogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: "stdout",
	})
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideMarketDataSource creates the price/volume adapter.
func ProvideMarketDataSource(cfg *config.Config) repository.MarketDataSource {
	return marketdata.New(
		cfg.MarketData.BaseURL,
		cfg.MarketData.ProxySymbol,
		cfg.MarketData.VolumeSymbols,
		cfg.MarketData.Timeout,
	)
}

// ProvideLaborStatsSource creates the BLS adapter.
func ProvideLaborStatsSource(cfg *config.Config) repository.LaborStatsSource {
	return bls.New(
		cfg.BLS.BaseURL,
		cfg.BLS.APIKey,
		cfg.BLS.CPISeries,
		cfg.BLS.NFPSeries,
		cfg.BLS.Timeout,
	)
}

// ProvideNationalAccountsSource creates the BEA adapter.
func ProvideNationalAccountsSource(cfg *config.Config) repository.NationalAccountsSource {
	return bea.New(cfg.BEA.BaseURL, cfg.BEA.APIKey, cfg.BEA.Timeout)
}

// ProvideRatesSource creates the FRED adapter.
func ProvideRatesSource(cfg *config.Config) repository.RatesSource {
	return fred.New(
		cfg.FRED.BaseURL,
		cfg.FRED.APIKey,
		cfg.FRED.FundsSeries,
		cfg.FRED.VIXSeries,
		cfg.FRED.Timeout,
	)
}

// ProvideEventFeedSource creates the calendar/speech feed adapter.
func ProvideEventFeedSource(cfg *config.Config) repository.EventFeedSource {
	return feeds.New(cfg.Feeds.FOMCURL, cfg.Feeds.SpeechesURL, cfg.Feeds.Timeout)
}

// ProvideAggregator creates the cached-fetch orchestrator with one
// cache per fetch key.
func ProvideAggregator(
	market repository.MarketDataSource,
	labor repository.LaborStatsSource,
	accounts repository.NationalAccountsSource,
	rates repository.RatesSource,
	events repository.EventFeedSource,
	m repository.Metrics,
	cfg *config.Config,
) *usecase.Aggregator {
	return usecase.NewAggregator(
		market, labor, accounts, rates, events, m,
		usecase.CacheWindows{
			Market: cfg.Cache.TTL,
			Macro:  cfg.Cache.MacroTTL,
			PCE:    cfg.Cache.PCETTL,
			Rates:  cfg.Cache.RatesTTL,
			Events: cfg.Cache.EventsTTL,
		},
		cfg.Cache.MaxEntries,
	)
}

// ProvideIndicatorsHandler creates the HTTP facade handler.
func ProvideIndicatorsHandler(logger *xlogger.Logger, agg *usecase.Aggregator) *api.IndicatorsHandler {
	return api.NewIndicatorsHandler(logger, agg)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, logger *xlogger.Logger, handler *api.IndicatorsHandler) *server.App {
	return server.New(cfg, logger, handler)
}
