package divcast

import "fmt"

// This file contains helpers shared by tests. They live in a non _test file
// so example-style tests in other files can reach them too.

// fakeMarket is an in-memory MarketData used by tests. Missing tickers
// behave like instruments that never paid a dividend (empty history) unless
// an explicit error is registered.
type fakeMarket struct {
	dividends map[string][]DividendEvent
	prices    map[string]float64
	fx        map[string]float64 // keyed "BASE/QUOTE"
	errs      map[string]error   // keyed by ticker or "BASE/QUOTE"

	calls map[string]int // per memo-style key, for caching assertions
}

func newFakeMarket() *fakeMarket {
	return &fakeMarket{
		dividends: make(map[string][]DividendEvent),
		prices:    make(map[string]float64),
		fx:        make(map[string]float64),
		errs:      make(map[string]error),
		calls:     make(map[string]int),
	}
}

func (m *fakeMarket) DividendHistory(ticker string) ([]DividendEvent, error) {
	m.calls["div:"+ticker]++
	if err := m.errs[ticker]; err != nil {
		return nil, err
	}
	return m.dividends[ticker], nil
}

func (m *fakeMarket) Price(ticker string) (float64, error) {
	m.calls["price:"+ticker]++
	if err := m.errs[ticker]; err != nil {
		return 0, err
	}
	price, ok := m.prices[ticker]
	if !ok {
		return 0, fmt.Errorf("no price for %s", ticker)
	}
	return price, nil
}

func (m *fakeMarket) FxRate(base, quote string) (float64, error) {
	key := base + "/" + quote
	m.calls["fx:"+key]++
	if base == quote {
		return 1.0, nil
	}
	if err := m.errs[key]; err != nil {
		return 0, err
	}
	rate, ok := m.fx[key]
	if !ok {
		return 0, fmt.Errorf("no fx rate for %s", key)
	}
	return rate, nil
}

var _ MarketData = (*fakeMarket)(nil)
