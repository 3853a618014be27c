package models

import "time"

// Indicator is a single market reading taken at fetch time.
type Indicator struct {
	Symbol      string    `json:"symbol"`
	Value       float64   `json:"value"`
	Unit        string    `json:"unit"`
	LastUpdated time.Time `json:"last_updated_utc"`
}

// MarketIndices pairs the dollar-proxy price with aggregated US equity
// volume. Both indicators carry the same fetch timestamp.
type MarketIndices struct {
	DXYProxyUUP      Indicator `json:"dxy_proxy_uup"`
	VolumeAggregated Indicator `json:"volume_aggregated"`
}

// MacroStat is one published macro series value for a YYYY-MM period.
type MacroStat struct {
	Name   string  `json:"name"`
	Value  float64 `json:"value"`
	Unit   string  `json:"unit"`
	Date   string  `json:"date"`
	Source string  `json:"source"`
}

// LatestMacro wraps whichever of CPI/NFP was published most recently.
type LatestMacro struct {
	LatestMacro MacroStat `json:"latest_macro"`
}

// PCEStat mirrors MacroStat but is produced by the BEA adapter, which
// parses a different response shape.
type PCEStat struct {
	Name   string  `json:"name"`
	Value  float64 `json:"value"`
	Unit   string  `json:"unit"`
	Date   string  `json:"date"`
	Source string  `json:"source"`
}

// RateObservation is the most recent observation of a FRED series.
type RateObservation struct {
	Value  float64 `json:"value"`
	Date   string  `json:"date"`
	Source string  `json:"source"`
}

// NextEvent is the first upcoming item of a dated feed. A nil
// *NextEvent means no future-dated item exists, which is a valid
// result rather than an error.
type NextEvent struct {
	Date  string `json:"date"`
	Time  string `json:"time"`
	Title string `json:"title"`
	URL   string `json:"url"`
}
