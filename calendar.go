package divcast

import (
	"sort"
	"time"
)

// CalendarBucket is the projected cash amount for one instrument in one
// future month.
type CalendarBucket struct {
	Month  string // future month, "YYYY-MM"
	Ticker string
	Amount float64
}

// Calendar accumulates dividend projections. Each trailing-12-month event is
// shifted forward by exactly one year and weighted by the position size.
//
// It maintains two views: per (future month, ticker) buckets for the calendar
// pivot, and a 12-slot cycle keyed by month name only. The month-name cycle
// deliberately drops the year, so a late-December event projected into one
// year lands in the same "Dec" slot as one projected into the next: the
// monthly table is a rolling one-year forecast cycle, not a timeline.
type Calendar struct {
	buckets map[string]map[string]float64 // future "YYYY-MM" -> ticker -> amount
	monthly map[time.Month]float64
}

// NewCalendar returns an empty calendar.
func NewCalendar() *Calendar {
	return &Calendar{
		buckets: make(map[string]map[string]float64),
		monthly: make(map[time.Month]float64),
	}
}

// Project adds one instrument's trailing-12-month events to the calendar.
// events must already be windowed (see TrailingEvents).
func (c *Calendar) Project(ticker string, events []DividendEvent, shares Quantity) {
	qty := shares.Float64()
	for _, e := range events {
		future := e.Date.AddYears(1)
		amount := e.Amount * qty

		month := future.YearMonth()
		if c.buckets[month] == nil {
			c.buckets[month] = make(map[string]float64)
		}
		c.buckets[month][ticker] += amount
		c.monthly[future.Month()] += amount
	}
}

// Buckets returns all (future month, ticker) cells, sorted by month then
// ticker. The "YYYY-MM" keys sort chronologically as plain strings.
func (c *Calendar) Buckets() []CalendarBucket {
	var out []CalendarBucket
	for month, tickers := range c.buckets {
		for ticker, amount := range tickers {
			out = append(out, CalendarBucket{Month: month, Ticker: ticker, Amount: amount})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Month != out[j].Month {
			return out[i].Month < out[j].Month
		}
		return out[i].Ticker < out[j].Ticker
	})
	return out
}

// MonthlyTotals returns the month-name cycle totals in Jan..Dec order.
// Months without projected activity hold zero. Indexing by time.Month keeps
// the twelve buckets a closed set: no free-form month strings.
func (c *Calendar) MonthlyTotals() [12]float64 {
	var totals [12]float64
	for m := time.January; m <= time.December; m++ {
		totals[m-1] = c.monthly[m]
	}
	return totals
}

// CalendarTable is the calendar pivot: one row per future month, one column
// per ticker, missing combinations filled with zero.
type CalendarTable struct {
	Months  []string // "YYYY-MM", ascending
	Tickers []string // ascending
	Cells   [][]float64
}

// Amount returns the cell for (month, ticker), zero when absent.
func (t *CalendarTable) Amount(month, ticker string) float64 {
	mi := sort.SearchStrings(t.Months, month)
	ti := sort.SearchStrings(t.Tickers, ticker)
	if mi >= len(t.Months) || t.Months[mi] != month || ti >= len(t.Tickers) || t.Tickers[ti] != ticker {
		return 0
	}
	return t.Cells[mi][ti]
}

// Pivot builds the calendar table from the accumulated buckets.
func (c *Calendar) Pivot() *CalendarTable {
	t := &CalendarTable{}
	tickerSet := make(map[string]bool)
	for month, tickers := range c.buckets {
		t.Months = append(t.Months, month)
		for ticker := range tickers {
			tickerSet[ticker] = true
		}
	}
	for ticker := range tickerSet {
		t.Tickers = append(t.Tickers, ticker)
	}
	sort.Strings(t.Months)
	sort.Strings(t.Tickers)

	t.Cells = make([][]float64, len(t.Months))
	for i, month := range t.Months {
		row := make([]float64, len(t.Tickers))
		for j, ticker := range t.Tickers {
			row[j] = c.buckets[month][ticker]
		}
		t.Cells[i] = row
	}
	return t
}

// MonthName returns the short English month name ("Jan") used to label the
// monthly cycle table.
func MonthName(m time.Month) string { return m.String()[:3] }
