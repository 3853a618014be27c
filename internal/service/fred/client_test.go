package fred

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	drepo "MacroPulse/internal/domain/repository"
)

func TestFetchFedRateParsesObservation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("series_id") != "DFF" {
			t.Errorf("unexpected series %q", q.Get("series_id"))
		}
		if q.Get("sort_order") != "desc" || q.Get("limit") != "1" {
			t.Errorf("expected newest-first single observation, got %q", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"observations": [{"date": "2024-06-14", "value": "5.33"}]}`)
	}))
	defer srv.Close()

	c := New(srv.URL, "key123", "DFF", "VIXCLS", time.Second)
	obs, err := c.FetchFedRate(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if obs.Value != 5.33 || obs.Date != "2024-06-14" || obs.Source != "FRED" {
		t.Fatalf("unexpected observation %+v", obs)
	}
}

func TestFetchVIXUsesVIXSeries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("series_id"); got != "VIXCLS" {
			t.Errorf("unexpected series %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"observations": [{"date": "2024-06-14", "value": "12.66"}]}`)
	}))
	defer srv.Close()

	c := New(srv.URL, "key123", "DFF", "VIXCLS", time.Second)
	obs, err := c.FetchVIX(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if obs.Value != 12.66 {
		t.Fatalf("unexpected value %v", obs.Value)
	}
}

func TestFetchFedRateWithoutKeySkipsNetwork(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
	}))
	defer srv.Close()

	c := New(srv.URL, "", "DFF", "VIXCLS", time.Second)
	_, err := c.FetchFedRate(context.Background())
	if err == nil {
		t.Fatalf("expected configuration error")
	}

	var se *drepo.SourceError
	if !errors.As(err, &se) || se.Kind != drepo.KindConfiguration {
		t.Fatalf("expected configuration kind, got %v", err)
	}
	if calls != 0 {
		t.Fatalf("expected no upstream call without a key, got %d", calls)
	}
}

func TestFetchFedRateDotValue(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"observations": [{"date": "2024-06-15", "value": "."}]}`)
	}))
	defer srv.Close()

	c := New(srv.URL, "key123", "DFF", "VIXCLS", time.Second)
	_, err := c.FetchFedRate(context.Background())
	if err == nil {
		t.Fatalf("expected error for placeholder value")
	}

	var se *drepo.SourceError
	if !errors.As(err, &se) || se.Kind != drepo.KindParse {
		t.Fatalf("expected parse kind, got %v", err)
	}
}

func TestFetchFedRateNoObservations(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"observations": []}`)
	}))
	defer srv.Close()

	c := New(srv.URL, "key123", "DFF", "VIXCLS", time.Second)
	if _, err := c.FetchFedRate(context.Background()); err == nil {
		t.Fatalf("expected error for empty observations")
	}
}
