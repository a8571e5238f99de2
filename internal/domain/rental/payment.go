package rental

import (
	"errors"
	"time"
)

var (
	ErrAlreadyPaid         = errors.New("rental already paid by renter")
	ErrAlreadyPaidOut      = errors.New("rental already paid out to lender")
	ErrPayoutBeforePayment = errors.New("payout requires renter payment first")
)

// Payment is the single renter-side charge plus the later lender payout,
// owned by its Rental. Both timestamps are set at most once.
type Payment struct {
	rentalAmount    Money
	insuranceAmount Money
	fromRenter      *time.Time
	toLender        *time.Time
}

func NewPayment(rentalAmount, insuranceAmount Money) Payment {
	return Payment{
		rentalAmount:    rentalAmount,
		insuranceAmount: insuranceAmount,
	}
}

func ReconstructPayment(rentalAmount, insuranceAmount Money, fromRenter, toLender *time.Time) Payment {
	return Payment{
		rentalAmount:    rentalAmount,
		insuranceAmount: insuranceAmount,
		fromRenter:      fromRenter,
		toLender:        toLender,
	}
}

func (p Payment) RentalAmount() Money {
	return p.rentalAmount
}

func (p Payment) InsuranceAmount() Money {
	return p.insuranceAmount
}

func (p Payment) TotalAmount() Money {
	return p.rentalAmount.Add(p.insuranceAmount)
}

func (p Payment) FromRenter() *time.Time {
	return p.fromRenter
}

func (p Payment) ToLender() *time.Time {
	return p.toLender
}

func (p Payment) PaidByRenter() bool {
	return p.fromRenter != nil
}

func (p Payment) PaidToLender() bool {
	return p.toLender != nil
}

func (p *Payment) markFromRenter(now time.Time) error {
	if p.fromRenter != nil {
		return ErrAlreadyPaid
	}
	t := now.UTC()
	p.fromRenter = &t
	return nil
}

func (p *Payment) markToLender(now time.Time) error {
	if p.fromRenter == nil {
		return ErrPayoutBeforePayment
	}
	if p.toLender != nil {
		return ErrAlreadyPaidOut
	}
	t := now.UTC()
	p.toLender = &t
	return nil
}
