package divcast

import (
	"time"

	"github.com/divcast/divcast/date"
	"github.com/google/uuid"
)

// ProjectionReport is the portfolio-level dividend projection: one row per
// live position, the monthly income cycle, the dividend calendar pivot and
// the DRIP growth paths. All monetary fields are expressed in Currency.
type ProjectionReport struct {
	ID       uuid.UUID // identity of this generation run
	Time     time.Time // generation time
	AsOf     date.Date // "today" for all windowing
	Currency string    // reporting currency
	FxRate   float64   // USD -> Currency multiplier that was applied

	// NoHoldings is set when position netting left nothing to analyze.
	// All tables are empty in that case.
	NoHoldings bool

	// Warnings lists per-instrument degradations (missing history, missing
	// price). A warning never implies a missing row: the instrument stays in
	// Holdings with zeroed fields.
	Warnings []string

	Holdings          []TickerProjection
	TotalAnnualIncome Money

	// MonthlyIncome is the rolling one-year cycle, Jan..Dec.
	MonthlyIncome [12]Money

	// Calendar is the per-(future month, ticker) pivot.
	Calendar *CalendarTable

	// DRIP results. Paths are present only for instruments where the
	// simulation was available (positive price). AggregateDrip is the
	// explicit element-wise sum over those paths: the portfolio-level curve
	// is computed, not inherited from whichever instrument happened to be
	// processed last.
	DripYears     int
	DripPaths     []DripPath
	AggregateDrip *DripPath
}

// TickerProjection is one row of the per-ticker overview table.
type TickerProjection struct {
	Ticker string
	Shares Quantity
	Weight Percent // share of portfolio, sums to 100% over rows

	// AnnualDividendPerShare is the trailing-12-month per-share income, kept
	// in the source currency: per-share rates are never currency-scaled.
	AnnualDividendPerShare float64
	AnnualIncome           Money   // per-share income x shares, in report currency
	Growth                 Percent // historical dividend CAGR

	// DRIP end state. DripAvailable is false when the simulation was skipped
	// (disabled, no price, or non-positive price).
	DripAvailable bool
	DripShares    Quantity
	DripIncome    Money
}
