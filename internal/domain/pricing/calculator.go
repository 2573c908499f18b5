package pricing

import "time"

const (
	// TaxRatePercent is applied on top of the seasonally adjusted price.
	TaxRatePercent int64 = 10

	winterSurgePercent int64 = 40 // Dec, Jan
	summerSurgePercent int64 = 30 // Jun-Aug
	springSurgePercent int64 = 20 // Mar-May
)

// Breakdown is the structured result of applying seasonal surge and
// tax to a base nightly rate.
type Breakdown struct {
	BasePrice       Money
	SeasonalPercent int64 // integer surge percentage, display only
	PriceBeforeTax  Money
	TaxAmount       Money
	TotalPrice      Money
}

// Calculator prices a base nightly rate for a given calendar date.
type Calculator interface {
	Breakdown(base Money, asOf time.Time) Breakdown
	// DynamicPrice is the pre-tax seasonally adjusted nightly rate,
	// used wherever a single display price is needed.
	DynamicPrice(base Money, asOf time.Time) Money
}

// SeasonalCalculator derives the surge percentage from the month of
// the pricing date. Pure; callers inject the date.
type SeasonalCalculator struct{}

func NewSeasonalCalculator() *SeasonalCalculator {
	return &SeasonalCalculator{}
}

func SurgePercent(month time.Month) int64 {
	switch month {
	case time.December, time.January:
		return winterSurgePercent
	case time.June, time.July, time.August:
		return summerSurgePercent
	case time.March, time.April, time.May:
		return springSurgePercent
	default:
		return 0
	}
}

func (c *SeasonalCalculator) Breakdown(base Money, asOf time.Time) Breakdown {
	surge := SurgePercent(asOf.Month())

	priceBeforeTax := base.MulPercent(100 + surge)
	taxAmount := priceBeforeTax.MulPercent(TaxRatePercent)
	totalPrice := priceBeforeTax.Add(taxAmount)

	return Breakdown{
		BasePrice:       base,
		SeasonalPercent: surge,
		PriceBeforeTax:  priceBeforeTax,
		TaxAmount:       taxAmount,
		TotalPrice:      totalPrice,
	}
}

func (c *SeasonalCalculator) DynamicPrice(base Money, asOf time.Time) Money {
	return c.Breakdown(base, asOf).PriceBeforeTax
}
