package divcast

import "strings"

// Action is a typed classification of a broker transaction row.
// The classification happens once, at ingestion; the engine never re-parses
// the raw action text.
type Action string

const (
	// ActionBuy adds shares to the position.
	ActionBuy Action = "buy"
	// ActionSell removes shares from the position.
	ActionSell Action = "sell"
	// ActionOther covers everything else (cash movements, interest, fees...).
	// It contributes nothing to the share count.
	ActionOther Action = "other"
)

// ParseAction classifies a raw action cell from a broker export.
// Broker exports use free-ish labels like "Market buy" or "Limit sell", so the
// match is a case-insensitive substring, not an equality.
func ParseAction(raw string) Action {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case strings.Contains(s, "buy"):
		return ActionBuy
	case strings.Contains(s, "sell"):
		return ActionSell
	default:
		return ActionOther
	}
}

// Sign returns the contribution sign of the action on a share count.
func (a Action) Sign() int {
	switch a {
	case ActionBuy:
		return 1
	case ActionSell:
		return -1
	default:
		return 0
	}
}

// Transaction is a single, immutable broker transaction row reduced to what
// position netting needs.
type Transaction struct {
	Ticker   string   `json:"ticker"`
	Action   Action   `json:"action"`
	Quantity Quantity `json:"quantity"` // always non-negative; the sign comes from Action
}

// Signed returns the signed share contribution of the transaction
// (BUY: +quantity, SELL: -quantity, OTHER: zero).
func (t Transaction) Signed() Quantity {
	switch t.Action.Sign() {
	case 1:
		return t.Quantity
	case -1:
		return t.Quantity.Neg()
	default:
		return Q(0)
	}
}
