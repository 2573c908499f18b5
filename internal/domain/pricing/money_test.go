//go:build unit

package pricing_test

import (
	"testing"

	"innbook/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
)

func TestNewMoneyFromFloat(t *testing.T) {
	cases := []struct {
		name   string
		amount float64
		cents  int64
	}{
		{name: "whole amount", amount: 100.00, cents: 10000},
		{name: "two decimals", amount: 154.32, cents: 15432},
		{name: "zero", amount: 0, cents: 0},
		{name: "half rounds to even down", amount: 0.125, cents: 12},
		{name: "half rounds to even up", amount: 0.135, cents: 14},
		{name: "negative amount", amount: -10.50, cents: -1050},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.cents, pricing.NewMoneyFromFloat(c.amount).Cents())
		})
	}
}

func TestMoneyMulPercent(t *testing.T) {
	cases := []struct {
		name  string
		cents int64
		pct   int64
		want  int64
	}{
		{name: "surge 40 percent", cents: 10000, pct: 140, want: 14000},
		{name: "tax 10 percent", cents: 14000, pct: 10, want: 1400},
		{name: "no surge", cents: 10000, pct: 100, want: 10000},
		{name: "half cent rounds to even (down)", cents: 25, pct: 10, want: 2},       // 2.5 -> 2
		{name: "half cent rounds to even (up)", cents: 75, pct: 10, want: 8},         // 7.5 -> 8
		{name: "below half rounds down", cents: 251, pct: 10, want: 25},              // 25.1 -> 25
		{name: "tax on odd price", cents: 14477, pct: 10, want: 1448},                // 1447.7 -> 1448
		{name: "zero base", cents: 0, pct: 140, want: 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := pricing.NewMoney(c.cents).MulPercent(c.pct)
			assert.Equal(t, c.want, got.Cents())
		})
	}
}

func TestMoneyArithmetic(t *testing.T) {
	a := pricing.NewMoney(14000)
	b := pricing.NewMoney(1400)

	assert.Equal(t, int64(15400), a.Add(b).Cents())
	assert.Equal(t, int64(42000), a.MulInt(3).Cents())
	assert.Equal(t, 154.00, a.Add(b).Amount())
	assert.Equal(t, "154.00", a.Add(b).String())
}

func TestMoneyPredicates(t *testing.T) {
	assert.True(t, pricing.NewMoney(-1).IsNegative())
	assert.False(t, pricing.NewMoney(0).IsNegative())
	assert.True(t, pricing.NewMoney(0).IsZero())
	assert.False(t, pricing.NewMoney(1).IsZero())
}
