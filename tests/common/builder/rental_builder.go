//go:build unit || e2e

package builder

import (
	"time"

	domrental "rentloop/internal/domain/rental"
	reqdto "rentloop/internal/handler/dto/request"
	"rentloop/internal/usecase/queries"

	"github.com/google/uuid"
)

type RentalBuilder struct {
	ID             uuid.UUID
	ItemID         uuid.UUID
	RenterID       uuid.UUID
	LenderID       uuid.UUID
	Start          time.Time
	End            time.Time
	Insurance      domrental.InsuranceType
	RentalCents    int64
	InsuranceCents int64
	FromRenter     *time.Time
	ToLender       *time.Time
	Pickup         *domrental.Handover
	Return         *domrental.Handover
	Messages       []domrental.ChatMessage
	ItemRatingID   *uuid.UUID
	RenterRatingID *uuid.UUID
	LenderRatingID *uuid.UUID
	State          domrental.State
	CreatedAt      time.Time
	Version        int64
}

func NewRentalBuilder() *RentalBuilder {
	created := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	return &RentalBuilder{
		ID:             uuid.New(),
		ItemID:         uuid.New(),
		RenterID:       uuid.New(),
		LenderID:       uuid.New(),
		Start:          start,
		End:            start.AddDate(0, 0, 3),
		Insurance:      domrental.InsuranceBasic,
		RentalCents:    4000,
		InsuranceCents: 400,
		State:          domrental.StateOffer,
		CreatedAt:      created,
		Version:        1,
	}
}

func (b *RentalBuilder) With(mutate func(*RentalBuilder)) *RentalBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *RentalBuilder) BuildDomain() *domrental.Rental {
	rentalAmount, _ := domrental.NewMoney(b.RentalCents)
	insuranceAmount, _ := domrental.NewMoney(b.InsuranceCents)
	return domrental.ReconstructRental(
		b.ID, b.ItemID, b.RenterID, b.LenderID,
		domrental.ReconstructPeriod(b.Start, b.End),
		b.Insurance,
		domrental.ReconstructPayment(rentalAmount, insuranceAmount, b.FromRenter, b.ToLender),
		b.Pickup, b.Return,
		b.Messages,
		b.ItemRatingID, b.RenterRatingID, b.LenderRatingID,
		b.State,
		b.CreatedAt, b.CreatedAt,
		b.Version,
	)
}

func (b *RentalBuilder) BuildCreateRequestDTO() reqdto.CreateRentalRequest {
	return reqdto.CreateRentalRequest{
		ItemID:    b.ItemID,
		Start:     b.Start,
		End:       b.End,
		Insurance: b.Insurance.String(),
	}
}

func (b *RentalBuilder) BuildView(role domrental.Role) *queries.RentalView {
	return &queries.RentalView{
		ID:          b.ID,
		ItemID:      b.ItemID,
		RenterID:    b.RenterID,
		LenderID:    b.LenderID,
		Role:        role.String(),
		PeriodStart: b.Start,
		PeriodEnd:   b.End,
		Insurance:   b.Insurance.String(),
		State:       b.State.String(),
		Payment: queries.PaymentView{
			RentalCents:    b.RentalCents,
			InsuranceCents: b.InsuranceCents,
			TotalCents:     b.RentalCents + b.InsuranceCents,
			FromRenter:     b.FromRenter,
			ToLender:       b.ToLender,
		},
		Messages:  []queries.ChatMessageView{},
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.CreatedAt,
	}
}

func (b *RentalBuilder) BuildListItem(role domrental.Role) *queries.RentalListItem {
	return &queries.RentalListItem{
		ID:          b.ID,
		ItemID:      b.ItemID,
		Role:        role.String(),
		PeriodStart: b.Start,
		PeriodEnd:   b.End,
		State:       b.State.String(),
		TotalCents:  b.RentalCents + b.InsuranceCents,
		CreatedAt:   b.CreatedAt,
	}
}

// Fluent builder methods
func (b *RentalBuilder) WithRenterID(id uuid.UUID) *RentalBuilder {
	b.RenterID = id
	return b
}

func (b *RentalBuilder) WithLenderID(id uuid.UUID) *RentalBuilder {
	b.LenderID = id
	return b
}

func (b *RentalBuilder) WithItemID(id uuid.UUID) *RentalBuilder {
	b.ItemID = id
	return b
}

func (b *RentalBuilder) WithPeriod(start, end time.Time) *RentalBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *RentalBuilder) WithInsurance(t domrental.InsuranceType) *RentalBuilder {
	b.Insurance = t
	return b
}

func (b *RentalBuilder) WithState(s domrental.State) *RentalBuilder {
	b.State = s
	return b
}

func (b *RentalBuilder) AsAccepted() *RentalBuilder {
	b.State = domrental.StateAccepted
	return b
}

// AsPaid stamps the renter-side payment and sets the matching state.
func (b *RentalBuilder) AsPaid() *RentalBuilder {
	paid := b.CreatedAt.Add(time.Hour)
	b.FromRenter = &paid
	b.State = domrental.StatePaid
	return b
}

func (b *RentalBuilder) AsPaidOut() *RentalBuilder {
	b.AsPaid()
	out := b.CreatedAt.Add(96 * time.Hour)
	b.ToLender = &out
	b.State = domrental.StateClosed
	return b
}

// WithPickup attaches a pickup handover agreed by the given roles.
func (b *RentalBuilder) WithPickup(agreedBy ...domrental.Role) *RentalBuilder {
	b.Pickup = b.handover(domrental.HandoverPickup, agreedBy)
	return b
}

func (b *RentalBuilder) WithReturn(agreedBy ...domrental.Role) *RentalBuilder {
	b.Return = b.handover(domrental.HandoverReturn, agreedBy)
	return b
}

func (b *RentalBuilder) WithRatingIDs(itemID, renterID, lenderID *uuid.UUID) *RentalBuilder {
	b.ItemRatingID = itemID
	b.RenterRatingID = renterID
	b.LenderRatingID = lenderID
	return b
}

func (b *RentalBuilder) handover(t domrental.HandoverType, agreedBy []domrental.Role) *domrental.Handover {
	var agreedRenter, agreedLender *time.Time
	at := b.CreatedAt.Add(2 * time.Hour)
	for _, role := range agreedBy {
		ts := at
		if role == domrental.RoleRenter {
			agreedRenter = &ts
		} else {
			agreedLender = &ts
		}
	}
	return domrental.ReconstructHandover(t, []string{"photo-1.jpg"}, "looks fine", agreedRenter, agreedLender)
}
