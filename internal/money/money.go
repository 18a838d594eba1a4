// Package money provides fixed-point currency arithmetic for the custody
// engine. Amounts are integer minor units (cents) end to end; binary floating
// point never touches a sum, variance, or denomination total.
package money

import (
	"fmt"
)

// Currency is the ISO 4217 code attached to every external-facing amount.
const Currency = "USD"

// Money is an amount in minor units (cents). Negative values are meaningful
// for variances (shortage) and are otherwise rejected at validation points.
type Money int64

// FromDollars builds a Money from whole dollars. Test and seed helper.
func FromDollars(d int64) Money { return Money(d * 100) }

func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// Abs returns the magnitude of m.
func (m Money) Abs() Money {
	if m < 0 {
		return -m
	}
	return m
}

// Denomination is a closed set of physical currency tags. New tags require a
// code change; open string fields are deliberately not accepted.
type Denomination string

const (
	Hundred Denomination = "hundred"
	Fifty   Denomination = "fifty"
	Twenty  Denomination = "twenty"
	Ten     Denomination = "ten"
	Five    Denomination = "five"
	One     Denomination = "one"
	Quarter Denomination = "quarter"
	Dime    Denomination = "dime"
	Nickel  Denomination = "nickel"
	Penny   Denomination = "penny"
)

// Denominations lists every known tag in descending face value.
var Denominations = []Denomination{
	Hundred, Fifty, Twenty, Ten, Five, One, Quarter, Dime, Nickel, Penny,
}

// FaceValue returns the minor-unit value of one unit of d. The second return
// is false for unknown tags.
func (d Denomination) FaceValue() (Money, bool) {
	switch d {
	case Hundred:
		return 10000, true
	case Fifty:
		return 5000, true
	case Twenty:
		return 2000, true
	case Ten:
		return 1000, true
	case Five:
		return 500, true
	case One:
		return 100, true
	case Quarter:
		return 25, true
	case Dime:
		return 10, true
	case Nickel:
		return 5, true
	case Penny:
		return 1, true
	default:
		return 0, false
	}
}

// Breakdown maps denomination tags to physical counts. It is descriptive
// counting data: its total is never authoritative over a declared amount.
type Breakdown map[Denomination]int

// Validate rejects unknown tags and negative counts.
func (b Breakdown) Validate() error {
	for d, n := range b {
		if _, ok := d.FaceValue(); !ok {
			return fmt.Errorf("unknown denomination %q", d)
		}
		if n < 0 {
			return fmt.Errorf("negative count %d for denomination %q", n, d)
		}
	}
	return nil
}

// Total sums count times face value across the breakdown.
func (b Breakdown) Total() Money {
	var total Money
	for d, n := range b {
		face, ok := d.FaceValue()
		if !ok {
			continue
		}
		total += face * Money(n)
	}
	return total
}
