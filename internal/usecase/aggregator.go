package usecase

import (
	"context"
	"fmt"
	"time"

	"MacroPulse/internal/domain/models"
	"MacroPulse/internal/domain/repository"
	"MacroPulse/internal/service/cache"
)

// Fetch keys, one cache per key.
const (
	keyMarketIndices = "market_indices"
	keyLatestMacro   = "latest_macro"
	keyPCE           = "pce"
	keyFedRate       = "fed_rate"
	keyVIX           = "vix"
	keyFOMCNext      = "fomc_next"
	keyPowellSpeech  = "powell_speech"
)

// CacheWindows carries the per-source time-to-live values.
type CacheWindows struct {
	Market time.Duration
	Macro  time.Duration
	PCE    time.Duration
	Rates  time.Duration
	Events time.Duration
}

// Aggregator pairs each provider adapter with its own cache and
// enforces the shared refresh-or-serve policy: serve fresh entries,
// refresh on miss, clear the cache and propagate on any failure. It is
// constructed once at process start; there is no global cache state.
//
// Two concurrent misses on the same key may both call the adapter and
// the cache keeps whichever write lands last. Acceptable for this
// read-mostly workload; no single-flight guard.
type Aggregator struct {
	market   repository.MarketDataSource
	labor    repository.LaborStatsSource
	accounts repository.NationalAccountsSource
	rates    repository.RatesSource
	feeds    repository.EventFeedSource

	metrics repository.Metrics
	windows CacheWindows
	caches  map[string]*cache.TTLCache
}

func NewAggregator(
	market repository.MarketDataSource,
	labor repository.LaborStatsSource,
	accounts repository.NationalAccountsSource,
	rates repository.RatesSource,
	feeds repository.EventFeedSource,
	metrics repository.Metrics,
	windows CacheWindows,
	maxEntries int,
) *Aggregator {
	caches := make(map[string]*cache.TTLCache)
	for _, key := range []string{
		keyMarketIndices, keyLatestMacro, keyPCE,
		keyFedRate, keyVIX, keyFOMCNext, keyPowellSpeech,
	} {
		caches[key] = cache.NewTTLCache(maxEntries)
	}
	return &Aggregator{
		market:   market,
		labor:    labor,
		accounts: accounts,
		rates:    rates,
		feeds:    feeds,
		metrics:  metrics,
		windows:  windows,
		caches:   caches,
	}
}

// MarketIndices serves the dollar-proxy price and aggregated volume.
func (a *Aggregator) MarketIndices(ctx context.Context) (models.MarketIndices, error) {
	return fetchCached(ctx, a, keyMarketIndices, a.windows.Market, a.market.FetchMarketIndices)
}

// LatestMacro fetches CPI and NFP and serves whichever was published
// for the later period. Equal periods resolve to CPI. Either fetch
// failing fails the whole operation; no partial result.
func (a *Aggregator) LatestMacro(ctx context.Context) (models.LatestMacro, error) {
	return fetchCached(ctx, a, keyLatestMacro, a.windows.Macro, func(ctx context.Context) (models.LatestMacro, error) {
		cpi, err := a.labor.FetchCPI(ctx)
		if err != nil {
			return models.LatestMacro{}, err
		}
		nfp, err := a.labor.FetchNFP(ctx)
		if err != nil {
			return models.LatestMacro{}, err
		}
		latest := nfp
		if cpi.Date >= nfp.Date {
			latest = cpi
		}
		return models.LatestMacro{LatestMacro: latest}, nil
	})
}

// PCE serves the latest monthly PCE reading.
func (a *Aggregator) PCE(ctx context.Context) (models.PCEStat, error) {
	return fetchCached(ctx, a, keyPCE, a.windows.PCE, a.accounts.FetchPCE)
}

// FedRate serves the most recent federal funds rate observation.
func (a *Aggregator) FedRate(ctx context.Context) (models.RateObservation, error) {
	return fetchCached(ctx, a, keyFedRate, a.windows.Rates, a.rates.FetchFedRate)
}

// VIX serves the most recent VIX close.
func (a *Aggregator) VIX(ctx context.Context) (models.RateObservation, error) {
	return fetchCached(ctx, a, keyVIX, a.windows.Rates, a.rates.FetchVIX)
}

// FOMCNext serves the next scheduled FOMC meeting. A nil event is a
// valid "nothing upcoming" result and is cached like any value.
func (a *Aggregator) FOMCNext(ctx context.Context) (*models.NextEvent, error) {
	return fetchCached(ctx, a, keyFOMCNext, a.windows.Events, a.feeds.FetchNextFOMC)
}

// PowellSpeech serves the next upcoming speech from the speech feed.
func (a *Aggregator) PowellSpeech(ctx context.Context) (*models.NextEvent, error) {
	return fetchCached(ctx, a, keyPowellSpeech, a.windows.Events, a.feeds.FetchNextPowellSpeech)
}

// fetchCached implements the per-key state machine: fresh entry is
// served as-is; a miss or expired entry triggers exactly one adapter
// call; success repopulates the cache; failure clears it so the next
// caller retries instead of reading a value that can no longer be
// verified. No stale value is ever served after a failure.
func fetchCached[T any](ctx context.Context, a *Aggregator, key string, ttl time.Duration, fetch func(context.Context) (T, error)) (T, error) {
	c := a.caches[key]
	if v, ok := c.Get(key); ok {
		if cached, ok := v.(T); ok {
			a.metrics.RecordCacheHit(key)
			return cached, nil
		}
	}
	a.metrics.RecordCacheMiss(key)

	start := time.Now()
	v, err := fetch(ctx)
	a.metrics.RecordUpstreamLatency(key, time.Since(start).Seconds())
	if err != nil {
		c.Clear()
		kind := repository.KindOf(err)
		a.metrics.RecordError(string(kind))
		a.metrics.RecordFetch(key, "error")
		var zero T
		return zero, fmt.Errorf("fetch %s: %w", key, err)
	}

	c.Set(key, v, ttl)
	a.metrics.RecordFetch(key, "success")
	return v, nil
}
