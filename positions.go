package divcast

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNoHoldings is returned when position netting leaves no positive holding.
// The report short-circuits to a "no holdings" state in that case.
var ErrNoHoldings = errors.New("no positive holdings after netting buy/sell transactions")

// SchemaError reports that a transaction source could not be understood at
// all: a required column is missing from its header. This is a configuration
// mismatch, not a market-data failure, and it halts report generation.
type SchemaError struct {
	Missing string   // the column kind that could not be found ("ticker", "quantity")
	Header  []string // the header actually seen
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("transaction source has no recognizable %s column (header: %v)", e.Missing, e.Header)
}

// Position is the net ownership of a single instrument after netting all
// buy/sell transactions.
type Position struct {
	Ticker string
	Shares Quantity
	Weight Percent // share of portfolio, over retained positions, sums to 100%
}

// ResolvePositions nets signed transaction quantities per ticker and retains
// only positions with a strictly positive share count. Closed and short
// positions are not modeled downstream.
//
// Positions are recomputed fresh on every call; nothing is carried over
// between runs. The result is sorted by ticker. ErrNoHoldings is returned
// when nothing remains.
func ResolvePositions(txs []Transaction) ([]Position, error) {
	net := make(map[string]Quantity)
	for _, tx := range txs {
		net[tx.Ticker] = net[tx.Ticker].Add(tx.Signed())
	}

	positions := make([]Position, 0, len(net))
	total := Q(0)
	for ticker, shares := range net {
		if !shares.IsPositive() {
			continue
		}
		positions = append(positions, Position{Ticker: ticker, Shares: shares})
		total = total.Add(shares)
	}
	if len(positions) == 0 {
		return nil, ErrNoHoldings
	}

	// Weights are computed over retained positions only, so they always sum
	// to 100% even when closed positions were filtered out.
	for i := range positions {
		positions[i].Weight = Percent(positions[i].Shares.Div(total).Float64() * 100)
	}

	sort.Slice(positions, func(i, j int) bool { return positions[i].Ticker < positions[j].Ticker })
	return positions, nil
}
