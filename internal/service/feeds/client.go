package feeds

import (
	"context"
	"encoding/xml"
	"fmt"
	"time"

	"MacroPulse/internal/domain/models"
	drepo "MacroPulse/internal/domain/repository"
	xhttp "MacroPulse/pkg/http"
	"MacroPulse/pkg/util"
)

const (
	fomcSource   = "fomc_feed"
	speechSource = "speech_feed"
)

// Client implements an EventFeedSource over the Federal Reserve
// calendar and speech feeds.
type Client struct {
	fomcURL     string
	speechesURL string
	http        *xhttp.Client
	now         func() time.Time
}

// Option configures Client.
type Option func(*Client)

// WithClock overrides the time source used for the future-item cutoff.
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

func New(fomcURL, speechesURL string, timeout time.Duration, opts ...Option) drepo.EventFeedSource {
	c := &Client{
		fomcURL:     fomcURL,
		speechesURL: speechesURL,
		http:        xhttp.NewClient(xhttp.WithTimeout(timeout)),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type rssFeed struct {
	XMLName xml.Name   `xml:"rss"`
	Items   []feedItem `xml:"channel>item"`
}

type feedItem struct {
	Title   string `xml:"title"`
	Link    string `xml:"link"`
	Start   string `xml:"start"`
	PubDate string `xml:"pubDate"`
}

// FetchNextFOMC returns the first meeting strictly in the future, or
// nil when every listed meeting is past.
func (c *Client) FetchNextFOMC(ctx context.Context) (*models.NextEvent, error) {
	return c.fetchNext(ctx, c.fomcURL, fomcSource, func(it feedItem) string { return it.Start })
}

// FetchNextPowellSpeech returns the first upcoming speech, or nil when
// none is scheduled.
func (c *Client) FetchNextPowellSpeech(ctx context.Context) (*models.NextEvent, error) {
	return c.fetchNext(ctx, c.speechesURL, speechSource, func(it feedItem) string { return it.PubDate })
}

func (c *Client) fetchNext(ctx context.Context, url, source string, timestamp func(feedItem) string) (*models.NextEvent, error) {
	var body []byte
	if err := c.http.GetAndParse(ctx, &xhttp.RequestOptions{URL: url}, &body); err != nil {
		return nil, drepo.UpstreamError(source, err)
	}

	var feed rssFeed
	if err := xml.Unmarshal(body, &feed); err != nil {
		return nil, drepo.ParseError(source, fmt.Errorf("invalid feed: %w", err))
	}

	now := c.now().UTC()
	for _, item := range feed.Items {
		ts := timestamp(item)
		if item.Title == "" || item.Link == "" || ts == "" {
			return nil, drepo.ParseError(source, fmt.Errorf("item missing required element"))
		}
		t, ok := util.ParseEventTime(ts)
		if !ok {
			return nil, drepo.ParseError(source, fmt.Errorf("bad timestamp %q", ts))
		}
		if t.After(now) {
			t = t.UTC()
			return &models.NextEvent{
				Date:  t.Format("2006-01-02"),
				Time:  t.Format("15:04"),
				Title: item.Title,
				URL:   item.Link,
			}, nil
		}
	}

	// legitimately nothing upcoming
	return nil, nil
}
