package bea

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

func TestFetchPCEPicksLatestPeriod(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("UserID") != "key123" || q.Get("method") != "GetData" {
			t.Errorf("unexpected query %q", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"BEAAPI": {"Results": {"Data": [
				{"TimePeriod": "2024M03", "DataValue": "0.3"},
				{"TimePeriod": "2024M05", "DataValue": "0.2"},
				{"TimePeriod": "2024M04", "DataValue": "0.4"}
			]}}
		}`)
	}))
	defer srv.Close()

	c := New(srv.URL, "key123", time.Second)
	stat, err := c.FetchPCE(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stat.Name != "PCE" || stat.Unit != "%" || stat.Source != "BEA" {
		t.Fatalf("unexpected stat %+v", stat)
	}
	if stat.Date != "2024-05" {
		t.Fatalf("expected latest period 2024-05, got %q", stat.Date)
	}
	if stat.Value != 0.2 {
		t.Fatalf("unexpected value %v", stat.Value)
	}
}

func TestFetchPCEDashDelimitedPeriod(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"BEAAPI": {"Results": {"Data": [
				{"TimePeriod": "2024-05", "DataValue": "1,234.5"}
			]}}
		}`)
	}))
	defer srv.Close()

	c := New(srv.URL, "key123", time.Second)
	stat, err := c.FetchPCE(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stat.Date != "2024-05" {
		t.Fatalf("expected period to pass through, got %q", stat.Date)
	}
	if stat.Value != 1234.5 {
		t.Fatalf("expected thousands separator stripped, got %v", stat.Value)
	}
}

func TestFetchPCEWithoutKeySkipsNetwork(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New(srv.URL, "", time.Second)
	_, err := c.FetchPCE(context.Background())
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

func TestFetchPCEEmptyData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"BEAAPI": {"Results": {"Data": []}}}`)
	}))
	defer srv.Close()

	c := New(srv.URL, "key123", time.Second)
	if _, err := c.FetchPCE(context.Background()); err == nil {
		t.Fatalf("expected error for empty data array")
	}
}

func TestNormalizePeriod(t *testing.T) {
	cases := []struct {
		in  string
		out string
		ok  bool
	}{
		{"2024M05", "2024-05", true},
		{"2024-05", "2024-05", true},
		{"2024", "", false},
		{"M05", "", false},
	}
	for _, tc := range cases {
		got, ok := normalizePeriod(tc.in)
		if ok != tc.ok || got != tc.out {
			t.Fatalf("normalizePeriod(%q) = %q, %v; want %q, %v", tc.in, got, ok, tc.out, tc.ok)
		}
	}
}
