package eodhd

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/divcast/divcast/date"
)

// newTestClient serves canned JSON per path prefix and returns a Client
// pointed at the test server.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &Client{APIKey: "demo", BaseURL: srv.URL, HTTP: srv.Client()}
}

func TestDividendHistory(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/div/AAPL.US" {
			http.NotFound(w, r)
			return
		}
		// deliberately out of order: the client must sort ascending
		fmt.Fprint(w, `[
			{"date":"2024-05-10","value":0.25,"currency":"USD"},
			{"date":"2024-02-09","value":0.24,"currency":"USD"}
		]`)
	})

	events, err := c.DividendHistory("AAPL.US")
	if err != nil {
		t.Fatalf("DividendHistory() error = %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("len(events) = %d, want 2", len(events))
	}
	if events[0].Date != date.New(2024, 2, 9) || events[0].Amount != 0.24 {
		t.Errorf("events[0] = %+v, want 2024-02-09 / 0.24", events[0])
	}
	if events[1].Date != date.New(2024, 5, 10) || events[1].Amount != 0.25 {
		t.Errorf("events[1] = %+v, want 2024-05-10 / 0.25", events[1])
	}
}

func TestPriceLatestClose(t *testing.T) {
	today := date.Today()
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `[
			{"date":"%s","adjusted_close":101.5},
			{"date":"%s","adjusted_close":99.0}
		]`, today.Add(-1), today.Add(-3))
	})

	price, err := c.Price("AAPL.US")
	if err != nil {
		t.Fatalf("Price() error = %v", err)
	}
	if price != 101.5 {
		t.Errorf("Price() = %v, want the most recent close 101.5", price)
	}
}

func TestPriceEmpty(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	})
	if _, err := c.Price("GONE.US"); err == nil {
		t.Errorf("Price() expected an error for an empty quote window")
	}
}

func TestFxRateIdentity(t *testing.T) {
	// no server call must happen for the identity pair
	c := &Client{APIKey: "demo", BaseURL: "http://127.0.0.1:0", HTTP: &http.Client{}}
	rate, err := c.FxRate("USD", "USD")
	if err != nil {
		t.Fatalf("FxRate() error = %v", err)
	}
	if rate != 1.0 {
		t.Errorf("FxRate(USD, USD) = %v, want 1.0", rate)
	}
}

func TestFxRateForex(t *testing.T) {
	today := date.Today()
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/eod/USDEUR.FOREX" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprintf(w, `[{"date":"%s","adjusted_close":0.92}]`, today.Add(-1))
	})

	rate, err := c.FxRate("USD", "EUR")
	if err != nil {
		t.Fatalf("FxRate() error = %v", err)
	}
	if rate != 0.92 {
		t.Errorf("FxRate(USD, EUR) = %v, want 0.92", rate)
	}
}

func TestFxRateIntradayFallback(t *testing.T) {
	// the eod endpoint fails, the ls-tc intraday feed answers
	lstc := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"series":{"intraday":{"data":[[1700000000,0.90],[1700000060,0.91]]}}}`)
	}))
	defer lstc.Close()
	oldURL := lstcEURUSDChart
	lstcEURUSDChart = lstc.URL
	defer func() { lstcEURUSDChart = oldURL }()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	})

	rate, err := c.FxRate("USD", "EUR")
	if err != nil {
		t.Fatalf("FxRate() error = %v", err)
	}
	if rate != 0.91 {
		t.Errorf("FxRate(USD, EUR) = %v, want intraday fallback 0.91", rate)
	}
}
