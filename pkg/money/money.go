// Package money converts between the ledger's int64 minor units (cents) and
// the decimal amounts that travel over the API. Balances are kept in minor
// units so that balance == sum of transaction amounts holds exactly, with no
// floating-point drift.
package money

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrTooPrecise = errors.New("amount has more than two decimal places")

// ToCents converts a decimal amount into minor units. Amounts with sub-cent
// precision are rejected rather than rounded.
func ToCents(d decimal.Decimal) (int64, error) {
	scaled := d.Mul(decimal.NewFromInt(100))
	if !scaled.IsInteger() {
		return 0, ErrTooPrecise
	}
	return scaled.IntPart(), nil
}

// FromCents renders minor units as a decimal with two fractional digits.
func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}
