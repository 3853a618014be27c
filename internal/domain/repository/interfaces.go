package repository

import (
	"context"

	"MacroPulse/internal/domain/models"
)

// MarketDataSource fetches the dollar-proxy price and aggregated US
// equity volume from the market data provider.
type MarketDataSource interface {
	FetchMarketIndices(ctx context.Context) (models.MarketIndices, error)
}

// LaborStatsSource fetches BLS time series (CPI, NFP), one most-recent
// data point per call.
type LaborStatsSource interface {
	FetchCPI(ctx context.Context) (models.MacroStat, error)
	FetchNFP(ctx context.Context) (models.MacroStat, error)
}

// NationalAccountsSource fetches the latest PCE reading from BEA.
type NationalAccountsSource interface {
	FetchPCE(ctx context.Context) (models.PCEStat, error)
}

// RatesSource fetches the most recent observation of the FRED rate and
// volatility series.
type RatesSource interface {
	FetchFedRate(ctx context.Context) (models.RateObservation, error)
	FetchVIX(ctx context.Context) (models.RateObservation, error)
}

// EventFeedSource scans dated event feeds for the next upcoming item.
// A (nil, nil) return means no future-dated item exists in the feed.
type EventFeedSource interface {
	FetchNextFOMC(ctx context.Context) (*models.NextEvent, error)
	FetchNextPowellSpeech(ctx context.Context) (*models.NextEvent, error)
}

type Metrics interface {
	RecordFetch(source, result string)
	RecordCacheHit(source string)
	RecordCacheMiss(source string)
	RecordError(kind string)
	RecordUpstreamLatency(source string, seconds float64)
}
