package query

import (
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Outcome keywords used when a row has no signed P&L.
var (
	winKeywords  = []string{"win", "profit", "target"}
	lossKeywords = []string{"loss", "stop"}
)

// Stats summarises a filtered row set.
type Stats struct {
	// NetPnL sums every numeric P&L; empty or non-numeric values count as
	// zero.
	NetPnL decimal.Decimal
	Wins   int
	Losses int
	// Trades is Wins + Losses. Rows with neither signal are not counted.
	Trades int
	// WinRate is Wins / Trades as a percentage, zero when Trades is zero.
	WinRate decimal.Decimal
}

// NetPnLText renders NetPnL with two decimals, e.g. "60.00".
func (s Stats) NetPnLText() string {
	return s.NetPnL.StringFixed(2)
}

// WinRateText renders WinRate with one decimal, e.g. "33.3%".
func (s Stats) WinRateText() string {
	return s.WinRate.StringFixed(1) + "%"
}

// Summarize computes [Stats] over rows.
//
// A row is a win when its P&L is positive and a loss when negative. When
// P&L is absent or zero the outcome text decides: it counts as a win if it
// mentions win, profit or target, else as a loss if it mentions loss or
// stop.
func Summarize(rows []Row) Stats {
	stats := Stats{NetPnL: decimal.Zero, WinRate: decimal.Zero}

	for _, row := range rows {
		pnl, ok := row.Doc.PnLValue()
		if ok {
			stats.NetPnL = stats.NetPnL.Add(pnl)
		}

		switch {
		case ok && pnl.IsPositive():
			stats.Wins++
		case ok && pnl.IsNegative():
			stats.Losses++
		default:
			outcome := strings.ToLower(row.Doc.Outcome)
			if containsAny(outcome, winKeywords) {
				stats.Wins++
			} else if containsAny(outcome, lossKeywords) {
				stats.Losses++
			}
		}
	}

	stats.Trades = stats.Wins + stats.Losses
	if stats.Trades > 0 {
		stats.WinRate = decimal.NewFromInt(int64(stats.Wins)).
			Mul(hundred).
			Div(decimal.NewFromInt(int64(stats.Trades)))
	}

	return stats
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
