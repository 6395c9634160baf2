// Package divcast implements a forward-looking dividend income model for a
// portfolio of holdings reconstructed from broker transaction exports.
//
// The engine is organized as a strictly forward data flow:
//
//	transactions -> positions -> per-position dividend analysis
//	             -> calendar buckets + DRIP paths -> currency-normalized report
//
// Position netting, trailing-12-month income, dividend growth (CAGR), the
// projected dividend calendar and the DRIP compounding simulation live in this
// package. Market data (dividend history, prices, FX rates) is consumed
// through the MarketData interface; see the eodhd package for the HTTP
// implementation.
package divcast
