package rental

import (
	"rentloop/internal/domain/item"
	"rentloop/internal/pkg/clock"

	"github.com/google/uuid"
)

type Factory struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
}

func NewFactory(clock clock.Clock, priceCalculator PriceCalculator) *Factory {
	return &Factory{
		Clock:           clock,
		PriceCalculator: priceCalculator,
	}
}

// CreateRental builds a fresh offer for the item. The owning item's lender
// becomes the rental's lender, which is also where the self-rental invariant
// is enforced.
func (f *Factory) CreateRental(
	itemEntity *item.Item,
	renterID uuid.UUID,
	period Period,
	insurance InsuranceType,
) (*Rental, error) {
	if renterID == itemEntity.LenderID() {
		return nil, ErrOwnItem
	}
	if !insurance.IsValid() {
		return nil, ErrInvalidInsurance
	}

	rentalCents := f.PriceCalculator.RentalAmountCents(itemEntity.Pricing(), period)
	rentalAmount, err := NewMoney(rentalCents)
	if err != nil {
		return nil, err
	}
	insuranceAmount, err := NewMoney(InsuranceAmountCents(insurance, rentalCents))
	if err != nil {
		return nil, err
	}

	now := f.Clock.Now().UTC()
	r := &Rental{
		id:        uuid.New(),
		itemID:    itemEntity.ID(),
		renterID:  renterID,
		lenderID:  itemEntity.LenderID(),
		period:    period,
		insurance: insurance,
		payment:   NewPayment(rentalAmount, insuranceAmount),
		state:     StateOffer,
		createdAt: now,
		updatedAt: now,
	}

	// Seed the log so both parties see how the rental started.
	if _, err := r.AppendSystemMessage(renterID, "Rental requested for "+itemEntity.Name(), now); err != nil {
		return nil, err
	}
	return r, nil
}
