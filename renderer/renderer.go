// Package renderer turns the engine's structured results into markdown
// suitable for terminal rendering. It owns all presentation formatting;
// the core package only ever returns structured records.
package renderer

import (
	"github.com/Rhymond/go-money"
)

// Won formats an amount as Korean Won (₩1,234,567). Ledger amounts are
// integral so there is no fractional part to carry.
func Won(amount int64) string {
	return money.New(amount, money.KRW).Display()
}

// SignedWon is Won with an explicit sign, and "-" for zero.
func SignedWon(amount int64) string {
	switch {
	case amount == 0:
		return "-"
	case amount > 0:
		return "+" + Won(amount)
	default:
		return "-" + Won(-amount)
	}
}
