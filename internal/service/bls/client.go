package bls

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

const sourceName = "BLS"

// Client implements a LaborStatsSource against the BLS public
// timeseries API. The registration key is optional; without one the
// API still answers at a lower rate limit.
type Client struct {
	baseURL   string
	apiKey    string
	cpiSeries string
	nfpSeries string
	http      *xhttp.Client
}

func New(baseURL, apiKey, cpiSeries, nfpSeries string, timeout time.Duration) drepo.LaborStatsSource {
	return &Client{
		baseURL:   baseURL,
		apiKey:    apiKey,
		cpiSeries: cpiSeries,
		nfpSeries: nfpSeries,
		http:      xhttp.NewClient(xhttp.WithTimeout(timeout)),
	}
}

func (c *Client) FetchCPI(ctx context.Context) (models.MacroStat, error) {
	return c.fetchSeries(ctx, c.cpiSeries, "CPI", "index")
}

func (c *Client) FetchNFP(ctx context.Context) (models.MacroStat, error) {
	return c.fetchSeries(ctx, c.nfpSeries, "NFP", "k jobs")
}

type seriesResponse struct {
	Results struct {
		Series []struct {
			Data []struct {
				Year   string `json:"year"`
				Period string `json:"period"`
				Value  string `json:"value"`
			} `json:"data"`
		} `json:"series"`
	} `json:"Results"`
}

// fetchSeries requests only the most recent data point of one series.
func (c *Client) fetchSeries(ctx context.Context, seriesID, name, unit string) (models.MacroStat, error) {
	params := map[string][]string{"latest": {"true"}}
	if c.apiKey != "" {
		params["registrationKey"] = []string{c.apiKey}
	}

	var resp seriesResponse
	err := c.http.GetAndParse(ctx, &xhttp.RequestOptions{
		URL:         c.baseURL + seriesID,
		QueryParams: params,
	}, &resp)
	if err != nil {
		return models.MacroStat{}, drepo.UpstreamError(sourceName, fmt.Errorf("series %s: %w", seriesID, err))
	}

	if len(resp.Results.Series) == 0 || len(resp.Results.Series[0].Data) == 0 {
		return models.MacroStat{}, drepo.ParseError(sourceName, errors.New("series "+seriesID+": empty response"))
	}

	item := resp.Results.Series[0].Data[0]
	value, err := strconv.ParseFloat(item.Value, 64)
	if err != nil {
		return models.MacroStat{}, drepo.ParseError(sourceName, fmt.Errorf("series %s: bad value %q", seriesID, item.Value))
	}

	// Periods arrive as "M05"; the date keeps the YYYY-MM form so
	// string comparison orders chronologically.
	month := strings.TrimLeft(item.Period, "M")
	return models.MacroStat{
		Name:   name,
		Value:  value,
		Unit:   unit,
		Date:   item.Year + "-" + month,
		Source: sourceName,
	}, nil
}
