package domain

import (
	"fmt"
	"math"
)

// Money is a monetary amount in integer cents. All price arithmetic stays in
// integers so that totals never accumulate binary-float drift.
type Money int64

// MoneyFromFloat converts a decimal amount (e.g. a JSON number from the
// backend) to cents, rounding half away from zero.
func MoneyFromFloat(v float64) Money {
	return Money(math.Round(v * 100))
}

// MulNights multiplies a nightly rate by a night count.
func (m Money) MulNights(nights int) Money {
	return m * Money(nights)
}

// ApplyRateBps applies a fee rate given in basis points (1 bps = 0.01%),
// rounding the result to a whole cent, half up. Each fee is rounded
// independently before totals are summed.
func (m Money) ApplyRateBps(bps int64) Money {
	return Money((int64(m)*bps + 5000) / 10000)
}

// Float64 returns the amount in currency units for JSON serialization.
func (m Money) Float64() float64 {
	return float64(m) / 100
}

// String formats the amount with exactly two decimal places.
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", int64(m)/100, int64(m)%100)
}

// BpsFromPercent converts a percentage fee rate from configuration (e.g. 3.0)
// to basis points.
func BpsFromPercent(percent float64) int64 {
	return int64(math.Round(percent * 100))
}
