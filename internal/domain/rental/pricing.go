package rental

import (
	"rentloop/internal/domain/item"
)

type PriceCalculator interface {
	RentalAmountCents(pricing item.Pricing, p Period) int64
}

// FirstDayPriceCalculator prices the first day at the item's first-day rate
// and every following day at the per-day rate.
type FirstDayPriceCalculator struct{}

func NewFirstDayPriceCalculator() PriceCalculator {
	return FirstDayPriceCalculator{}
}

func (FirstDayPriceCalculator) RentalAmountCents(pricing item.Pricing, p Period) int64 {
	days := int64(p.Days())
	return pricing.FirstDayCents + pricing.PerDayCents*(days-1)
}

// InsuranceAmountCents floors to whole cents via integer division.
func InsuranceAmountCents(insurance InsuranceType, rentalAmountCents int64) int64 {
	return rentalAmountCents * insurance.RatePercent() / 100
}
