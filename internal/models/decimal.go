package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Scales used on the wire and in the numeric columns. Every column is
// NUMERIC(DecimalPrecision, scale).
const (
	MoneyScale       int32 = 2
	QuantityScale    int32 = 4
	DecimalPrecision int32 = 18
)

// Money is a fixed-point amount with two fractional digits. It accepts a JSON
// string or number on input and always renders as a string such as "25.50".
type Money struct {
	decimal.Decimal
}

// NewMoney parses s into a Money value.
func NewMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// MustMoney is like NewMoney but panics on malformed input. Intended for
// constants and tests.
func MustMoney(s string) Money {
	m, err := NewMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

// String renders the amount with exactly MoneyScale fractional digits.
func (m Money) String() string {
	return m.StringFixed(MoneyScale)
}

// MarshalJSON implements json.Marshaler.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// Quantity is a fixed-point amount with four fractional digits, rendered as
// a string such as "10.0000".
type Quantity struct {
	decimal.Decimal
}

// NewQuantity parses s into a Quantity value.
func NewQuantity(s string) (Quantity, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{d}, nil
}

// MustQuantity is like NewQuantity but panics on malformed input.
func MustQuantity(s string) Quantity {
	q, err := NewQuantity(s)
	if err != nil {
		panic(err)
	}
	return q
}

// String renders the quantity with exactly QuantityScale fractional digits.
func (q Quantity) String() string {
	return q.StringFixed(QuantityScale)
}

// MarshalJSON implements json.Marshaler.
func (q Quantity) MarshalJSON() ([]byte, error) {
	return json.Marshal(q.String())
}

// DecimalValue returns the underlying value and wire scale of a Money or
// Quantity. ok is false for any other type.
func DecimalValue(v interface{}) (decimal.Decimal, int32, bool) {
	switch d := v.(type) {
	case Money:
		return d.Decimal, MoneyScale, true
	case Quantity:
		return d.Decimal, QuantityScale, true
	}
	return decimal.Decimal{}, 0, false
}
