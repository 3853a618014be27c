package fred

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"MacroPulse/internal/domain/models"
	drepo "MacroPulse/internal/domain/repository"
	xhttp "MacroPulse/pkg/http"
)

const sourceName = "FRED"

// Client implements a RatesSource against the FRED observations API.
// An API key is mandatory; without one no network call is attempted.
type Client struct {
	baseURL     string
	apiKey      string
	fundsSeries string
	vixSeries   string
	http        *xhttp.Client
}

func New(baseURL, apiKey, fundsSeries, vixSeries string, timeout time.Duration) drepo.RatesSource {
	return &Client{
		baseURL:     baseURL,
		apiKey:      apiKey,
		fundsSeries: fundsSeries,
		vixSeries:   vixSeries,
		http:        xhttp.NewClient(xhttp.WithTimeout(timeout)),
	}
}

func (c *Client) FetchFedRate(ctx context.Context) (models.RateObservation, error) {
	return c.fetchLatest(ctx, c.fundsSeries)
}

func (c *Client) FetchVIX(ctx context.Context) (models.RateObservation, error) {
	return c.fetchLatest(ctx, c.vixSeries)
}

type observationsResponse struct {
	Observations []struct {
		Date  string `json:"date"`
		Value string `json:"value"`
	} `json:"observations"`
}

// fetchLatest requests exactly one observation, newest first.
func (c *Client) fetchLatest(ctx context.Context, seriesID string) (models.RateObservation, error) {
	if c.apiKey == "" {
		return models.RateObservation{}, drepo.ConfigurationError(sourceName, "FRED_API_KEY not configured")
	}

	var resp observationsResponse
	err := c.http.GetAndParse(ctx, &xhttp.RequestOptions{
		URL: c.baseURL,
		QueryParams: map[string][]string{
			"series_id":  {seriesID},
			"api_key":    {c.apiKey},
			"file_type":  {"json"},
			"sort_order": {"desc"},
			"limit":      {"1"},
		},
	}, &resp)
	if err != nil {
		return models.RateObservation{}, drepo.UpstreamError(sourceName, fmt.Errorf("series %s: %w", seriesID, err))
	}

	if len(resp.Observations) == 0 {
		return models.RateObservation{}, drepo.ParseError(sourceName, errors.New("series "+seriesID+": no observations"))
	}

	obs := resp.Observations[0]
	value, err := strconv.ParseFloat(obs.Value, 64)
	if err != nil {
		// FRED publishes "." for days without a reading
		return models.RateObservation{}, drepo.ParseError(sourceName, fmt.Errorf("series %s: bad value %q", seriesID, obs.Value))
	}

	return models.RateObservation{
		Value:  value,
		Date:   obs.Date,
		Source: sourceName,
	}, nil
}
