package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"MacroPulse/internal/domain/models"
	"MacroPulse/internal/domain/repository"
)

type fakeMetrics struct{}

func (fakeMetrics) RecordFetch(string, string)            {}
func (fakeMetrics) RecordCacheHit(string)                 {}
func (fakeMetrics) RecordCacheMiss(string)                {}
func (fakeMetrics) RecordError(string)                    {}
func (fakeMetrics) RecordUpstreamLatency(string, float64) {}

type fakeMarket struct {
	calls int
	res   models.MarketIndices
	err   error
}

func (f *fakeMarket) FetchMarketIndices(context.Context) (models.MarketIndices, error) {
	f.calls++
	return f.res, f.err
}

type fakeLabor struct {
	cpi      models.MacroStat
	nfp      models.MacroStat
	cpiErr   error
	nfpErr   error
	cpiCalls int
	nfpCalls int
}

func (f *fakeLabor) FetchCPI(context.Context) (models.MacroStat, error) {
	f.cpiCalls++
	return f.cpi, f.cpiErr
}

func (f *fakeLabor) FetchNFP(context.Context) (models.MacroStat, error) {
	f.nfpCalls++
	return f.nfp, f.nfpErr
}

type fakeFeeds struct {
	calls int
	event *models.NextEvent
	err   error
}

func (f *fakeFeeds) FetchNextFOMC(context.Context) (*models.NextEvent, error) {
	f.calls++
	return f.event, f.err
}

func (f *fakeFeeds) FetchNextPowellSpeech(context.Context) (*models.NextEvent, error) {
	f.calls++
	return f.event, f.err
}

func newTestAggregator(market repository.MarketDataSource, labor repository.LaborStatsSource, feeds repository.EventFeedSource, windows CacheWindows) *Aggregator {
	return NewAggregator(market, labor, nil, nil, feeds, fakeMetrics{}, windows, 8)
}

func minuteWindows() CacheWindows {
	return CacheWindows{
		Market: time.Minute,
		Macro:  time.Minute,
		PCE:    time.Minute,
		Rates:  time.Minute,
		Events: time.Minute,
	}
}

func TestMarketIndicesServedFromCache(t *testing.T) {
	market := &fakeMarket{res: models.MarketIndices{
		DXYProxyUUP: models.Indicator{Symbol: "UUP", Value: 28.5},
	}}
	a := newTestAggregator(market, nil, nil, minuteWindows())

	first, err := a.MarketIndices(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := a.MarketIndices(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if market.calls != 1 {
		t.Fatalf("expected one adapter call, got %d", market.calls)
	}
	if first != second {
		t.Fatalf("expected identical cached result")
	}
}

func TestMarketIndicesRefreshAfterExpiry(t *testing.T) {
	market := &fakeMarket{}
	w := minuteWindows()
	w.Market = 10 * time.Millisecond
	a := newTestAggregator(market, nil, nil, w)

	if _, err := a.MarketIndices(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	time.Sleep(20 * time.Millisecond)
	if _, err := a.MarketIndices(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if market.calls != 2 {
		t.Fatalf("expected refresh after ttl, got %d calls", market.calls)
	}
}

func TestFailureClearsCacheAndPropagates(t *testing.T) {
	market := &fakeMarket{}
	w := minuteWindows()
	w.Market = 10 * time.Millisecond
	a := newTestAggregator(market, nil, nil, w)

	if _, err := a.MarketIndices(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	time.Sleep(20 * time.Millisecond)
	market.err = repository.UpstreamError("marketdata", errors.New("boom"))
	_, err := a.MarketIndices(context.Background())
	if err == nil {
		t.Fatalf("expected error to propagate")
	}
	if !strings.Contains(err.Error(), "fetch market_indices") {
		t.Fatalf("expected normalized error, got %v", err)
	}

	// the failed refresh must not leave the previous value reachable
	market.err = nil
	if _, err := a.MarketIndices(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if market.calls != 3 {
		t.Fatalf("expected retry after failure, got %d calls", market.calls)
	}
}

func TestLatestMacroPicksLaterPeriod(t *testing.T) {
	cases := []struct {
		name     string
		cpiDate  string
		nfpDate  string
		expected string
	}{
		{"cpi newer", "2024-06", "2024-05", "CPI"},
		{"nfp newer", "2024-05", "2024-06", "NFP"},
		{"tie resolves to cpi", "2024-06", "2024-06", "CPI"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			labor := &fakeLabor{
				cpi: models.MacroStat{Name: "CPI", Date: tc.cpiDate, Source: "BLS"},
				nfp: models.MacroStat{Name: "NFP", Date: tc.nfpDate, Source: "BLS"},
			}
			a := newTestAggregator(nil, labor, nil, minuteWindows())

			res, err := a.LatestMacro(context.Background())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.LatestMacro.Name != tc.expected {
				t.Fatalf("expected %s, got %s", tc.expected, res.LatestMacro.Name)
			}
		})
	}
}

func TestLatestMacroFailsOnPartialResult(t *testing.T) {
	labor := &fakeLabor{
		cpi:    models.MacroStat{Name: "CPI", Date: "2024-06"},
		nfpErr: repository.UpstreamError("BLS", errors.New("series down")),
	}
	a := newTestAggregator(nil, labor, nil, minuteWindows())

	if _, err := a.LatestMacro(context.Background()); err == nil {
		t.Fatalf("expected failure when one series is unavailable")
	}
}

func TestFOMCNextCachesEmptyResult(t *testing.T) {
	feeds := &fakeFeeds{event: nil}
	a := newTestAggregator(nil, nil, feeds, minuteWindows())

	res, err := a.FOMCNext(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res != nil {
		t.Fatalf("expected nil event")
	}

	if _, err := a.FOMCNext(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if feeds.calls != 1 {
		t.Fatalf("expected the empty result to be cached, got %d calls", feeds.calls)
	}
}

func TestFOMCNextReturnsEvent(t *testing.T) {
	feeds := &fakeFeeds{event: &models.NextEvent{
		Date:  "2099-01-01",
		Time:  "12:00",
		Title: "Meeting",
		URL:   "https://example.org/fomc",
	}}
	a := newTestAggregator(nil, nil, feeds, minuteWindows())

	res, err := a.FOMCNext(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res == nil || res.Title != "Meeting" {
		t.Fatalf("unexpected event %+v", res)
	}
}
