package pricing

import (
	"fmt"
	"math"
)

// Money is an amount in integer cents. All monetary rounding in the
// engine goes through this type and uses round-half-to-even, so a
// value is never rounded two different ways in two places.
type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

// NewMoneyFromFloat converts a decimal amount (e.g. 154.00) to cents,
// rounding half-to-even.
func NewMoneyFromFloat(amount float64) Money {
	return Money{cents: int64(math.RoundToEven(amount * 100))}
}

func (m Money) Cents() int64 {
	return m.cents
}

// Amount returns the value in currency units for display and JSON.
func (m Money) Amount() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) IsNegative() bool {
	return m.cents < 0
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// MulInt multiplies by a whole count (e.g. nights). The result is an
// exact multiple of cents, so no rounding is involved.
func (m Money) MulInt(n int64) Money {
	return Money{cents: m.cents * n}
}

// MulPercent returns m × pct/100 rounded half-to-even to whole cents.
func (m Money) MulPercent(pct int64) Money {
	return Money{cents: divRoundHalfEven(m.cents*pct, 100)}
}

func (m Money) String() string {
	return fmt.Sprintf("%.2f", m.Amount())
}

// divRoundHalfEven divides n by d (d > 0, n >= 0) rounding the
// quotient half-to-even. Ties go to the even cent, so repeated
// rounding carries no systematic bias.
func divRoundHalfEven(n, d int64) int64 {
	q := n / d
	r := n % d
	switch {
	case 2*r > d:
		return q + 1
	case 2*r < d:
		return q
	case q%2 != 0:
		return q + 1
	default:
		return q
	}
}
