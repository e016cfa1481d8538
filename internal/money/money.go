// Package money implements monetary amounts as integer minor units.
//
// All budget arithmetic happens on Cents values. Decimal amounts only
// exist at the API boundary and are converted exactly, never through
// floating point.
package money

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrPrecision is returned when a decimal amount cannot be represented
// in whole minor units.
var ErrPrecision = errors.New("amounts must not have more than two decimal places")

// Cents is a monetary amount in minor units of the currency.
type Cents int64

var hundred = decimal.NewFromInt(100)

// FromDecimal converts an amount in major units into Cents.
func FromDecimal(d decimal.Decimal) (Cents, error) {
	scaled := d.Mul(hundred)
	if !scaled.IsInteger() {
		return 0, ErrPrecision
	}

	return Cents(scaled.IntPart()), nil
}

// Decimal returns the amount in major units.
func (c Cents) Decimal() decimal.Decimal {
	return decimal.New(int64(c), -2)
}

// Amounts maps category IDs to amounts.
type Amounts map[uuid.UUID]Cents

// Get returns the amount for id. Absent entries read as zero; this
// method is the single place where that convention is implemented.
func (a Amounts) Get(id uuid.UUID) Cents {
	amount, ok := a[id]
	if !ok {
		return 0
	}

	return amount
}

// Clone returns an independent copy of the map.
func (a Amounts) Clone() Amounts {
	clone := make(Amounts, len(a))
	for id, amount := range a {
		clone[id] = amount
	}

	return clone
}
