package divcast

// DripPath is the result of a dividend reinvestment simulation for one
// instrument: the share count after each period and the cash income earned in
// each period. Shares has one more entry than Income, its first value being
// the starting share count.
type DripPath struct {
	Ticker string    `json:"ticker"`
	Shares []float64 `json:"shares"` // length periods+1, Shares[0] = initial
	Income []float64 `json:"income"` // length periods
}

// End returns the final share count and the income of the last period.
// A zero-period path ends where it started, with no income.
func (p DripPath) End() (shares, income float64) {
	shares = p.Shares[len(p.Shares)-1]
	if len(p.Income) > 0 {
		income = p.Income[len(p.Income)-1]
	}
	return
}

// SimulateDRIP compounds a share count over the given number of periods.
// Each period earns shares*rate in cash, immediately reinvested at the
// constant price. The rate is not re-forecast between periods.
//
// The function is pure: the same inputs always produce the same path, and no
// state leaks between instruments. periods == 0 is a valid degenerate run
// returning only the starting point. Callers must check the price first: a
// non-positive price means the simulation is unavailable for that instrument,
// not that it runs with a zero divisor.
func SimulateDRIP(shares, rate, price float64, periods int) DripPath {
	path := DripPath{
		Shares: make([]float64, 1, periods+1),
		Income: make([]float64, 0, periods),
	}
	path.Shares[0] = shares
	for i := 0; i < periods; i++ {
		income := shares * rate
		path.Income = append(path.Income, income)
		shares += income / price
		path.Shares = append(path.Shares, shares)
	}
	return path
}
