package sip

import "github.com/shopspring/decimal"

// Quantity represents a number of units of a fund, possibly fractional.
type Quantity struct {
	value decimal.Decimal
}

func Q[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Quantity {
	return Quantity{value: newDecimal(value)}
}

func (t Quantity) Equal(p Quantity) bool    { return t.value.Equal(p.value) }
func (t Quantity) LessThan(p Quantity) bool { return t.value.LessThan(p.value) }
func (t Quantity) Add(p Quantity) Quantity  { return Quantity{value: t.value.Add(p.value)} }
func (t Quantity) Sub(p Quantity) Quantity  { return Quantity{value: t.value.Sub(p.value)} }
func (t Quantity) IsZero() bool             { return t.value.IsZero() }

// AsFloat returns the quantity as a float64.
func (t Quantity) AsFloat() float64 { return t.value.InexactFloat64() }

// String formats the quantity with four decimal places, the usual unit
// precision on fund statements.
func (t Quantity) String() string { return t.value.StringFixed(4) }
