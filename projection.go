package divcast

import (
	"errors"
	"fmt"
	"time"

	"github.com/divcast/divcast/date"
	"github.com/google/uuid"
)

// SourceCurrency is the currency dividend amounts and prices are assumed to
// be quoted in by the data collaborators. The single FX scaling of the report
// converts from it to the chosen reporting currency.
const SourceCurrency = "USD"

// ProjectionOptions configures a report run.
type ProjectionOptions struct {
	Currency       string    // reporting currency; "" means USD
	AsOf           date.Date // zero value means today
	DripEnabled    bool
	DripYears      int // simulation horizon, 1..30
	GrowthLookback int // calendar years for CAGR; 0 means DefaultGrowthLookback
}

// MinDripYears and MaxDripYears bound the simulation horizon.
const (
	MinDripYears = 1
	MaxDripYears = 30
)

// Validate normalizes the options and rejects out-of-range values.
func (o *ProjectionOptions) Validate() error {
	if o.Currency == "" {
		o.Currency = SourceCurrency
	}
	switch o.Currency {
	case "USD", "GBP", "EUR":
	default:
		return fmt.Errorf("unsupported base currency %q (want USD, GBP or EUR)", o.Currency)
	}
	if o.AsOf == (date.Date{}) {
		o.AsOf = date.Today()
	}
	if o.GrowthLookback == 0 {
		o.GrowthLookback = DefaultGrowthLookback
	}
	if o.DripEnabled && (o.DripYears < MinDripYears || o.DripYears > MaxDripYears) {
		return fmt.Errorf("drip horizon %d out of range [%d,%d] years", o.DripYears, MinDripYears, MaxDripYears)
	}
	return nil
}

// NewProjectionReport runs the whole projection pipeline: position netting,
// per-position dividend analysis, calendar aggregation, DRIP simulation and
// the final currency normalization.
//
// A market-data failure for one instrument degrades that instrument's row to
// zeros and records a warning; it never aborts the report. Only structural
// problems (invalid options) return an error. An empty live-position set
// yields a report with NoHoldings set and no further analysis.
func NewProjectionReport(txs []Transaction, market MarketData, opts ProjectionOptions) (*ProjectionReport, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	report := &ProjectionReport{
		ID:        uuid.New(),
		Time:      time.Now(),
		AsOf:      opts.AsOf,
		Currency:  opts.Currency,
		FxRate:    1.0,
		DripYears: opts.DripYears,
	}

	positions, err := ResolvePositions(txs)
	if errors.Is(err, ErrNoHoldings) {
		report.NoHoldings = true
		return report, nil
	}
	if err != nil {
		return nil, err
	}

	// The FX rate is resolved once and applied uniformly at assembly time.
	// An unavailable rate degrades to the identity, never to a failed report.
	fx, err := market.FxRate(SourceCurrency, opts.Currency)
	if err != nil || fx <= 0 {
		if err != nil {
			report.Warnings = append(report.Warnings, fmt.Sprintf("fx rate %s/%s unavailable, reporting unconverted amounts", SourceCurrency, opts.Currency))
		}
		fx = 1.0
	}
	report.FxRate = fx

	calendar := NewCalendar()
	var totalIncome float64

	// Each position's analysis is independent of the others: no state is
	// shared across iterations beyond the pure accumulators.
	for _, pos := range positions {
		row := TickerProjection{
			Ticker: pos.Ticker,
			Shares: pos.Shares,
			Weight: pos.Weight,
		}

		events, histErr := market.DividendHistory(pos.Ticker)
		if histErr != nil {
			report.Warnings = append(report.Warnings, fmt.Sprintf("%s: dividend history unavailable: %v", pos.Ticker, histErr))
		}
		if histErr == nil && len(events) > 0 {
			perShare := TrailingAnnualIncome(events, opts.AsOf)
			income := perShare * pos.Shares.Float64()
			totalIncome += income

			row.AnnualDividendPerShare = perShare
			row.AnnualIncome = M(income*fx, opts.Currency)
			row.Growth = Percent(CompoundAnnualGrowth(events, opts.GrowthLookback) * 100)

			calendar.Project(pos.Ticker, TrailingEvents(events, opts.AsOf), pos.Shares)

			if opts.DripEnabled {
				price, priceErr := market.Price(pos.Ticker)
				switch {
				case priceErr != nil:
					report.Warnings = append(report.Warnings, fmt.Sprintf("%s: price unavailable, DRIP simulation skipped: %v", pos.Ticker, priceErr))
				case price <= 0:
					report.Warnings = append(report.Warnings, fmt.Sprintf("%s: non-positive price %.2f, DRIP simulation skipped", pos.Ticker, price))
				default:
					path := SimulateDRIP(pos.Shares.Float64(), perShare, price, opts.DripYears)
					path.Ticker = pos.Ticker

					endShares, endIncome := path.End()
					row.DripAvailable = true
					row.DripShares = Q(endShares)
					row.DripIncome = M(endIncome*fx, opts.Currency)

					// Income is cash, so it gets the post-hoc FX scaling;
					// the share path stays untouched.
					for i := range path.Income {
						path.Income[i] *= fx
					}
					report.DripPaths = append(report.DripPaths, path)
				}
			}
		}

		report.Holdings = append(report.Holdings, row)
	}

	report.TotalAnnualIncome = M(totalIncome*fx, opts.Currency)

	monthly := calendar.MonthlyTotals()
	for i, v := range monthly {
		report.MonthlyIncome[i] = M(v*fx, opts.Currency)
	}

	pivot := calendar.Pivot()
	for i := range pivot.Cells {
		for j := range pivot.Cells[i] {
			pivot.Cells[i][j] *= fx
		}
	}
	report.Calendar = pivot

	report.AggregateDrip = aggregateDrip(report.DripPaths, opts.DripYears)

	return report, nil
}

// aggregateDrip sums the per-instrument DRIP paths element-wise into a single
// portfolio-level path. nil when no simulation was available.
func aggregateDrip(paths []DripPath, years int) *DripPath {
	if len(paths) == 0 {
		return nil
	}
	agg := DripPath{
		Ticker: "portfolio",
		Shares: make([]float64, years+1),
		Income: make([]float64, years),
	}
	for _, p := range paths {
		for i, v := range p.Shares {
			agg.Shares[i] += v
		}
		for i, v := range p.Income {
			agg.Income[i] += v
		}
	}
	return &agg
}
