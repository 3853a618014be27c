package marketdata

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"MacroPulse/internal/domain/models"
	drepo "MacroPulse/internal/domain/repository"
	xhttp "MacroPulse/pkg/http"
)

const sourceName = "marketdata"

// Client implements a MarketDataSource backed by the quote provider's
// fast-info endpoint, one flat JSON object of fields per symbol.
type Client struct {
	baseURL       string
	proxySymbol   string
	volumeSymbols []string
	http          *xhttp.Client
}

// New creates a market data client. proxySymbol supplies the price
// reading, volumeSymbols the volume readings that get summed.
func New(baseURL, proxySymbol string, volumeSymbols []string, timeout time.Duration) drepo.MarketDataSource {
	return &Client{
		baseURL:       strings.TrimRight(baseURL, "/"),
		proxySymbol:   proxySymbol,
		volumeSymbols: volumeSymbols,
		http:          xhttp.NewClient(xhttp.WithTimeout(timeout)),
	}
}

// FetchMarketIndices performs one lookup per symbol and fails the
// whole operation if any required value is missing.
func (c *Client) FetchMarketIndices(ctx context.Context) (models.MarketIndices, error) {
	proxyInfo, err := c.fastInfo(ctx, c.proxySymbol)
	if err != nil {
		return models.MarketIndices{}, drepo.UpstreamError(sourceName, err)
	}
	price, ok := lookupValue(proxyInfo, "last_price")
	if !ok {
		return models.MarketIndices{}, drepo.UpstreamError(sourceName, errors.New("missing last_price for "+c.proxySymbol))
	}

	var volume float64
	for _, symbol := range c.volumeSymbols {
		info, err := c.fastInfo(ctx, symbol)
		if err != nil {
			return models.MarketIndices{}, drepo.UpstreamError(sourceName, err)
		}
		v, ok := lookupValue(info, "last_volume")
		if !ok {
			return models.MarketIndices{}, drepo.UpstreamError(sourceName, errors.New("missing last_volume for "+symbol))
		}
		volume += v
	}

	now := time.Now().UTC()
	return models.MarketIndices{
		DXYProxyUUP: models.Indicator{
			Symbol:      c.proxySymbol,
			Value:       price,
			Unit:        "USD",
			LastUpdated: now,
		},
		VolumeAggregated: models.Indicator{
			Symbol:      "US_VOLUME",
			Value:       volume,
			Unit:        "shares",
			LastUpdated: now,
		},
	}, nil
}

func (c *Client) fastInfo(ctx context.Context, symbol string) (map[string]any, error) {
	var info map[string]any
	err := c.http.GetAndParse(ctx, &xhttp.RequestOptions{
		URL: fmt.Sprintf("%s/%s", c.baseURL, symbol),
	}, &info)
	if err != nil {
		return nil, fmt.Errorf("fast info %s: %w", symbol, err)
	}
	return info, nil
}

// lookupValue tries candidate spellings of a field name in order. The
// provider's payloads have been observed using different casing for
// the same field, so exact, capitalized, and compact-capitalized forms
// are all accepted.
func lookupValue(info map[string]any, key string) (float64, bool) {
	for _, k := range candidateKeys(key) {
		if v, ok := info[k]; ok {
			if f, ok := toFloat(v); ok {
				return f, true
			}
		}
	}
	return 0, false
}

func candidateKeys(key string) []string {
	return []string{
		key,
		capitalize(key),
		capitalize(strings.ReplaceAll(key, "_", "")),
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case string:
		f, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
