package divcast

import "sync"

// MarketData is the engine's view of an external market-data collaborator.
// The engine trusts whatever the collaborator returns and degrades per
// instrument when a call fails: an error from DividendHistory or Price zeroes
// that instrument's derived fields, an error from FxRate falls back to the
// 1.0 identity. No call here ever aborts the whole report.
type MarketData interface {
	// DividendHistory returns the full dividend event history for a ticker,
	// ascending by date. An empty history is a valid result.
	DividendHistory(ticker string) ([]DividendEvent, error)
	// Price returns the latest known price per share for a ticker.
	Price(ticker string) (float64, error)
	// FxRate returns the conversion rate from base to quote currency.
	// It is 1.0 when both are equal.
	FxRate(base, quote string) (float64, error)
}

// dataKind discriminates the cached call kinds.
type dataKind int

const (
	kindDividends dataKind = iota
	kindPrice
	kindFx
)

type memoKey struct {
	kind   dataKind
	ticker string // or "BASE/QUOTE" for FX
}

type memoEntry struct {
	events []DividendEvent
	value  float64
	err    error
}

// CachedMarketData memoizes a MarketData collaborator, keyed by
// (ticker, data kind). Fetches are idempotent within one report run, so each
// underlying call happens at most once until the caller invalidates.
// Unlike an ambient framework cache, invalidation is explicit and local.
//
// It is safe for concurrent use.
type CachedMarketData struct {
	base MarketData

	mu   sync.Mutex
	memo map[memoKey]memoEntry
}

// NewCachedMarketData wraps base with memoization.
func NewCachedMarketData(base MarketData) *CachedMarketData {
	return &CachedMarketData{base: base, memo: make(map[memoKey]memoEntry)}
}

// Invalidate drops all cached entries for one ticker.
func (c *CachedMarketData) Invalidate(ticker string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.memo {
		if k.ticker == ticker {
			delete(c.memo, k)
		}
	}
}

// InvalidateAll drops the whole cache.
func (c *CachedMarketData) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.memo = make(map[memoKey]memoEntry)
}

func (c *CachedMarketData) DividendHistory(ticker string) ([]DividendEvent, error) {
	key := memoKey{kindDividends, ticker}
	c.mu.Lock()
	if e, ok := c.memo[key]; ok {
		c.mu.Unlock()
		return e.events, e.err
	}
	c.mu.Unlock()

	events, err := c.base.DividendHistory(ticker)

	c.mu.Lock()
	c.memo[key] = memoEntry{events: events, err: err}
	c.mu.Unlock()
	return events, err
}

func (c *CachedMarketData) Price(ticker string) (float64, error) {
	return c.memoFloat(memoKey{kindPrice, ticker}, func() (float64, error) {
		return c.base.Price(ticker)
	})
}

func (c *CachedMarketData) FxRate(base, quote string) (float64, error) {
	return c.memoFloat(memoKey{kindFx, base + "/" + quote}, func() (float64, error) {
		return c.base.FxRate(base, quote)
	})
}

func (c *CachedMarketData) memoFloat(key memoKey, fetch func() (float64, error)) (float64, error) {
	c.mu.Lock()
	if e, ok := c.memo[key]; ok {
		c.mu.Unlock()
		return e.value, e.err
	}
	c.mu.Unlock()

	v, err := fetch()

	c.mu.Lock()
	c.memo[key] = memoEntry{value: v, err: err}
	c.mu.Unlock()
	return v, err
}

var _ MarketData = (*CachedMarketData)(nil)
