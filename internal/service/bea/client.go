package bea

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

const sourceName = "BEA"

// Client implements a NationalAccountsSource against the BEA data API.
// An API key is mandatory; without one no network call is attempted.
type Client struct {
	baseURL string
	apiKey  string
	http    *xhttp.Client
}

func New(baseURL, apiKey string, timeout time.Duration) drepo.NationalAccountsSource {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    xhttp.NewClient(xhttp.WithTimeout(timeout)),
	}
}

type dataResponse struct {
	BEAAPI struct {
		Results struct {
			Data []struct {
				TimePeriod string `json:"TimePeriod"`
				DataValue  string `json:"DataValue"`
			} `json:"Data"`
		} `json:"Results"`
	} `json:"BEAAPI"`
}

// FetchPCE returns the latest monthly PCE change. The response nests
// every published period; the entry with the greatest TimePeriod wins.
func (c *Client) FetchPCE(ctx context.Context) (models.PCEStat, error) {
	if c.apiKey == "" {
		return models.PCEStat{}, drepo.ConfigurationError(sourceName, "BEA_API_KEY not configured")
	}

	var resp dataResponse
	err := c.http.GetAndParse(ctx, &xhttp.RequestOptions{
		URL: c.baseURL,
		QueryParams: map[string][]string{
			"UserID":       {c.apiKey},
			"method":       {"GetData"},
			"datasetname":  {"NIPA"},
			"TableName":    {"T20805"},
			"Frequency":    {"M"},
			"Year":         {"X"},
			"ResultFormat": {"JSON"},
		},
	}, &resp)
	if err != nil {
		return models.PCEStat{}, drepo.UpstreamError(sourceName, err)
	}

	data := resp.BEAAPI.Results.Data
	if len(data) == 0 {
		return models.PCEStat{}, drepo.ParseError(sourceName, errors.New("empty data array"))
	}

	latest := data[0]
	for _, d := range data[1:] {
		if d.TimePeriod > latest.TimePeriod {
			latest = d
		}
	}

	value, err := strconv.ParseFloat(strings.ReplaceAll(latest.DataValue, ",", ""), 64)
	if err != nil {
		return models.PCEStat{}, drepo.ParseError(sourceName, fmt.Errorf("bad value %q", latest.DataValue))
	}

	period, ok := normalizePeriod(latest.TimePeriod)
	if !ok {
		return models.PCEStat{}, drepo.ParseError(sourceName, fmt.Errorf("bad period %q", latest.TimePeriod))
	}

	return models.PCEStat{
		Name:   "PCE",
		Value:  value,
		Unit:   "%",
		Date:   period,
		Source: sourceName,
	}, nil
}

// normalizePeriod converts either "2024M05" or "2024-05" to "2024-05".
// The delimiter style has varied between table vintages.
func normalizePeriod(p string) (string, bool) {
	switch {
	case strings.Contains(p, "M"):
		parts := strings.SplitN(p, "M", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return "", false
		}
		return parts[0] + "-" + parts[1], true
	case strings.Contains(p, "-"):
		return p, true
	default:
		return "", false
	}
}
