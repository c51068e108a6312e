// Package futures holds the static futures-contract reference table and the
// convenience PnL calculator that fills a draft's PnL from entry/exit prices.
package futures

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Contract describes the tick economics of a single futures contract.
type Contract struct {
	Symbol    string
	TickSize  decimal.Decimal
	TickValue decimal.Decimal
	Name      string
	Exchange  string
}

func contract(symbol, tickSize, tickValue, name, exchange string) Contract {
	return Contract{
		Symbol:    symbol,
		TickSize:  decimal.RequireFromString(tickSize),
		TickValue: decimal.RequireFromString(tickValue),
		Name:      name,
		Exchange:  exchange,
	}
}

func index(list ...Contract) map[string]Contract {
	m := make(map[string]Contract, len(list))
	for _, c := range list {
		m[c.Symbol] = c
	}
	return m
}

// Lookup finds a contract by symbol, ignoring case and surrounding spaces.
func Lookup(symbol string) (Contract, bool) {
	c, ok := contracts[strings.ToUpper(strings.TrimSpace(symbol))]
	return c, ok
}

// Symbols returns every known symbol in lexical order.
func Symbols() []string {
	out := make([]string, 0, len(contracts))
	for s := range contracts {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Calculate computes the PnL of a trade on a known contract:
//
//	ticks = (exit - entry) / tickSize   (reversed for short)
//	pnl   = ticks * tickValue * quantity
//
// rounded to cents. ok is false when the symbol is unknown, the direction is
// neither long nor short, or any price/quantity is blank or not a number.
func Calculate(symbol, direction, entry, exit, quantity string) (pnl decimal.Decimal, ok bool) {
	c, found := Lookup(symbol)
	if !found || !c.TickSize.IsPositive() {
		return decimal.Zero, false
	}

	entryPrice, err := parse(entry)
	if err != nil {
		return decimal.Zero, false
	}
	exitPrice, err := parse(exit)
	if err != nil {
		return decimal.Zero, false
	}
	qty, err := parse(quantity)
	if err != nil || !qty.IsPositive() {
		return decimal.Zero, false
	}

	var diff decimal.Decimal
	switch strings.ToLower(strings.TrimSpace(direction)) {
	case "long":
		diff = exitPrice.Sub(entryPrice)
	case "short":
		diff = entryPrice.Sub(exitPrice)
	default:
		return decimal.Zero, false
	}

	ticks := diff.Div(c.TickSize)
	return ticks.Mul(c.TickValue).Mul(qty).Round(2), true
}

func parse(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(s))
}
