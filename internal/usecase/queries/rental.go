package queries

import (
	"context"

	"rentloop/internal/domain/rental"
	"rentloop/internal/infra"
	"rentloop/internal/pkg/clock"
	"rentloop/internal/pkg/errs"
	"rentloop/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrRentalNotFound = errs.New("rental not found")
	ErrRentalAccess   = errs.New("rental access denied")
)

type RentalQueries interface {
	GetByID(ctx context.Context, rentalID, callerID uuid.UUID) (*RentalView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*RentalListItem, error)
}

type rentalQueriesImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewRentalQueries(uow shared.UnitOfWork, clk clock.Clock) RentalQueries {
	return &rentalQueriesImpl{uow: uow, clock: clk}
}

// GetByID returns the full conversation-bearing view for a participant.
// Opening a rental marks every unread message from the other party as read,
// so this read runs in a write transaction when anything changed.
func (q *rentalQueriesImpl) GetByID(ctx context.Context, rentalID, callerID uuid.UUID) (*RentalView, error) {
	now := q.clock.Now()

	var view *RentalView
	err := q.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.Rentals().FindByID(ctx, rentalID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrRentalNotFound)
			}
			return errs.Wrap(err, "failed to load rental")
		}
		role, err := r.RoleOf(callerID)
		if err != nil {
			return errs.Mark(err, ErrRentalAccess)
		}

		if marked := r.MarkReadFromOthers(callerID); marked > 0 {
			r.RecomputeState(now)
			if err = tx.Rentals().Save(ctx, r); err != nil {
				return errs.Wrap(err, "failed to persist read marks")
			}
		}

		view = buildRentalView(r, role)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *rentalQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*RentalListItem, error) {
	var items []*RentalListItem
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		rentals, err := tx.Rentals().FindByParticipant(ctx, userID)
		if err != nil {
			return errs.Wrap(err, "failed to list rentals")
		}
		items = make([]*RentalListItem, 0, len(rentals))
		for _, r := range rentals {
			role, err := r.RoleOf(userID)
			if err != nil {
				continue
			}
			items = append(items, buildRentalListItem(r, role, userID))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func buildRentalView(r *rental.Rental, role rental.Role) *RentalView {
	p := r.Payment()
	messages := r.Messages()
	msgViews := make([]ChatMessageView, 0, len(messages))
	for _, m := range messages {
		msgViews = append(msgViews, ChatMessageView{
			ID:       m.ID(),
			AuthorID: m.AuthorID(),
			Text:     m.Text(),
			IsSystem: m.IsSystem(),
			IsRead:   m.IsRead(),
			SentAt:   m.SentAt(),
		})
	}

	return &RentalView{
		ID:          r.ID(),
		ItemID:      r.ItemID(),
		RenterID:    r.RenterID(),
		LenderID:    r.LenderID(),
		Role:        role.String(),
		PeriodStart: r.Period().Start(),
		PeriodEnd:   r.Period().End(),
		Insurance:   r.Insurance().String(),
		State:       r.State().String(),
		Payment: PaymentView{
			RentalCents:    p.RentalAmount().Cents(),
			InsuranceCents: p.InsuranceAmount().Cents(),
			TotalCents:     p.TotalAmount().Cents(),
			FromRenter:     p.FromRenter(),
			ToLender:       p.ToLender(),
		},
		Pickup:         buildHandoverView(r.Pickup()),
		Return:         buildHandoverView(r.Return()),
		Messages:       msgViews,
		ItemRatingID:   r.ItemRatingID(),
		RenterRatingID: r.RenterRatingID(),
		LenderRatingID: r.LenderRatingID(),
		CreatedAt:      r.CreatedAt(),
		UpdatedAt:      r.UpdatedAt(),
	}
}

func buildHandoverView(h *rental.Handover) *HandoverView {
	if h == nil {
		return nil
	}
	return &HandoverView{
		Type:         h.Type().String(),
		Pictures:     h.Pictures(),
		Comment:      h.Comment(),
		AgreedRenter: h.AgreedRenter(),
		AgreedLender: h.AgreedLender(),
	}
}

func buildRentalListItem(r *rental.Rental, role rental.Role, viewerID uuid.UUID) *RentalListItem {
	unread := 0
	for _, m := range r.Messages() {
		if !m.IsRead() && m.AuthorID() != viewerID {
			unread++
		}
	}
	return &RentalListItem{
		ID:          r.ID(),
		ItemID:      r.ItemID(),
		Role:        role.String(),
		PeriodStart: r.Period().Start(),
		PeriodEnd:   r.Period().End(),
		State:       r.State().String(),
		TotalCents:  r.Payment().TotalAmount().Cents(),
		UnreadCount: unread,
		CreatedAt:   r.CreatedAt(),
	}
}
