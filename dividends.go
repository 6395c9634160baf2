package divcast

import (
	"math"
	"sort"

	"github.com/divcast/divcast/date"
)

// DividendEvent is a single historical dividend payment for one instrument.
// Amount is per share, in the instrument's trading currency.
type DividendEvent struct {
	Date   date.Date `json:"date"`
	Amount float64   `json:"amount"`
}

// TrailingAnnualIncome sums the per-share dividend amounts paid in the rolling
// 365-day window ending at asOf. An event dated exactly 365 days before asOf
// is still inside the window. Empty history yields 0.
//
// Note the deliberate asymmetry with CompoundAnnualGrowth: current income uses
// a rolling window, growth uses calendar-year buckets.
func TrailingAnnualIncome(events []DividendEvent, asOf date.Date) float64 {
	cutoff := asOf.Add(-365)
	var sum float64
	for _, e := range events {
		if !e.Date.Before(cutoff) {
			sum += e.Amount
		}
	}
	return sum
}

// TrailingEvents returns the events inside the rolling 365-day window ending
// at asOf, in ascending date order. This is the subset the calendar projects
// one year forward.
func TrailingEvents(events []DividendEvent, asOf date.Date) []DividendEvent {
	cutoff := asOf.Add(-365)
	var out []DividendEvent
	for _, e := range events {
		if !e.Date.Before(cutoff) {
			out = append(out, e)
		}
	}
	return out
}

// DefaultGrowthLookback is the number of calendar years considered when
// estimating dividend growth.
const DefaultGrowthLookback = 5

// CompoundAnnualGrowth estimates the historical dividend growth rate from the
// event history, as a fraction (0.05 means 5% a year).
//
// Events are bucketed by calendar year and zero-sum years are dropped. With
// fewer than two non-zero years the growth is undeterminable and the result
// is exactly 0, a defined value rather than an error. The start
// bucket is at most lookbackYears back from the latest bucket (or the first
// available one), and the rate is annualized over the full bucket count:
//
//	(end/start)^(1/n) - 1, n = number of buckets - 1
//
// A non-positive start or n also yields 0, guarding against negative-base
// exponentiation and division by zero.
func CompoundAnnualGrowth(events []DividendEvent, lookbackYears int) float64 {
	if len(events) == 0 {
		return 0
	}

	byYear := make(map[int]float64)
	for _, e := range events {
		byYear[e.Date.Year()] += e.Amount
	}

	years := make([]int, 0, len(byYear))
	for y, sum := range byYear {
		if sum > 0 {
			years = append(years, y)
		}
	}
	if len(years) < 2 {
		return 0
	}
	sort.Ints(years)

	startIdx := len(years) - lookbackYears
	if startIdx < 0 {
		startIdx = 0
	}
	start := byYear[years[startIdx]]
	end := byYear[years[len(years)-1]]
	n := len(years) - 1
	if start <= 0 || n <= 0 {
		return 0
	}
	return math.Pow(end/start, 1/float64(n)) - 1
}
