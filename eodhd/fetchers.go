package eodhd

import (
	"fmt"
	"net/http"
	"net/url"
	"sort"

	"github.com/divcast/divcast"
	"github.com/divcast/divcast/date"
)

// priceLookback is how far back the end-of-day price query reaches to find
// the latest close. A week covers weekends and market holidays.
const priceLookback = 7

// Client fetches market data from EODHD. The zero BaseURL targets the public
// API; tests point it at a local server.
type Client struct {
	APIKey  string
	BaseURL string       // defaults to https://eodhd.com
	HTTP    *http.Client // defaults to the daily-caching client
}

// New returns a Client using the daily-expiring disk cache.
func New(apiKey string) *Client {
	return &Client{APIKey: apiKey}
}

func (c *Client) baseURL() string {
	if c.BaseURL == "" {
		return "https://eodhd.com"
	}
	return c.BaseURL
}

func (c *Client) http() *http.Client {
	if c.HTTP == nil {
		c.HTTP = newDailyCachingClient()
	}
	return c.HTTP
}

// DividendHistory returns the full dividend history for an EODHD ticker,
// ascending by ex-date.
func (c *Client) DividendHistory(ticker string) ([]divcast.DividendEvent, error) {
	// https://eodhd.com/api/div/AAPL.US?api_token=demo&fmt=json
	// [
	//	{
	//		"date": "2024-02-09",
	//		"declarationDate": "2024-02-01",
	//		"paymentDate": "2024-02-15",
	//		"value": 0.24,
	//		"currency": "USD"
	//	},
	addr := fmt.Sprintf("%s/api/div/%s?fmt=json&api_token=%s", c.baseURL(), url.PathEscape(ticker), c.APIKey)

	type info struct {
		Date  date.Date `json:"date"`
		Value float64   `json:"value"`
	}

	content := make([]info, 0)
	if err := jwget(c.http(), addr, &content); err != nil {
		return nil, fmt.Errorf("eodhd dividends for %s: %w", ticker, err)
	}

	events := make([]divcast.DividendEvent, 0, len(content))
	for _, i := range content {
		events = append(events, divcast.DividendEvent{Date: i.Date, Amount: i.Value})
	}
	sort.Slice(events, func(a, b int) bool { return events[a].Date.Before(events[b].Date) })
	return events, nil
}

// Price returns the latest end-of-day close for an EODHD ticker.
func (c *Client) Price(ticker string) (float64, error) {
	_, price, err := c.latestClose(ticker)
	if err != nil {
		return 0, fmt.Errorf("eodhd price for %s: %w", ticker, err)
	}
	return price, nil
}

// FxRate returns the base->quote conversion rate, 1.0 for identical
// currencies. EODHD quotes forex pairs as regular tickers on the FOREX
// exchange. When the EODHD forex quote is unavailable the EUR/USD pair can
// still be resolved from the ls-tc.de intraday feed.
func (c *Client) FxRate(base, quote string) (float64, error) {
	if base == quote {
		return 1.0, nil
	}
	ticker := fmt.Sprintf("%s%s.FOREX", base, quote)
	_, rate, err := c.latestClose(ticker)
	if err == nil {
		return rate, nil
	}

	// intraday fallback, only wired for the USD/EUR pair
	if eurPerUSD, lerr := lstcLatestEURperUSD(c.http()); lerr == nil {
		switch {
		case base == "USD" && quote == "EUR":
			return eurPerUSD, nil
		case base == "EUR" && quote == "USD":
			return 1 / eurPerUSD, nil
		}
	}
	return 0, fmt.Errorf("eodhd fx rate %s/%s: %w", base, quote, err)
}

// latestClose returns the most recent adjusted close within the lookback
// window for any EODHD ticker.
func (c *Client) latestClose(ticker string) (date.Date, float64, error) {
	today := date.Today()
	from := today.Add(-priceLookback)

	// https://eodhd.com/api/eod/AAPL.US?api_token=demo&fmt=json
	// [
	//	{
	//		"date": "2024-02-13",
	//		"open": 675.066,
	//		"close": 668.445,
	//		"adjusted_close": 67.705,
	//		"volume": 0
	//	},
	addr := fmt.Sprintf("%s/api/eod/%s?fmt=json&api_token=%s&from=%s&to=%s", c.baseURL(), url.PathEscape(ticker), c.APIKey, from, today)

	type info struct {
		Date  date.Date `json:"date"`
		Close float64   `json:"adjusted_close"`
	}

	content := make([]info, 0)
	if err := jwget(c.http(), addr, &content); err != nil {
		return date.Date{}, 0, err
	}
	if len(content) == 0 {
		return date.Date{}, 0, fmt.Errorf("no quotes in the last %d days", priceLookback)
	}

	latest := content[0]
	for _, i := range content[1:] {
		if i.Date.After(latest.Date) {
			latest = i
		}
	}
	return latest.Date, latest.Close, nil
}

var _ divcast.MarketData = (*Client)(nil)
