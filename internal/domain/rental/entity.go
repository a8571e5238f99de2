package rental

import (
	"errors"
	"time"

	"rentloop/internal/domain/rating"

	"github.com/google/uuid"
)

var (
	ErrNotParticipant  = errors.New("user is not a participant of this rental")
	ErrOwnItem         = errors.New("cannot rent own item")
	ErrNotOpenOffer    = errors.New("rental is not an open offer")
	ErrRatingSlotTaken = errors.New("rating already submitted for this rental")
)

// Rental is the root aggregate: one renter's booking of one lender's item
// over a date range, carrying the facts (payment, handovers, ratings,
// messages) its lifecycle state is derived from. Rentals are never hard
// deleted; they end in StateClosed.
type Rental struct {
	id             uuid.UUID
	itemID         uuid.UUID
	renterID       uuid.UUID
	lenderID       uuid.UUID
	period         Period
	insurance      InsuranceType
	payment        Payment
	pickup         *Handover
	returnHandover *Handover
	messages       []ChatMessage
	itemRatingID   *uuid.UUID
	renterRatingID *uuid.UUID
	lenderRatingID *uuid.UUID
	state          State
	createdAt      time.Time
	updatedAt      time.Time
	version        int64
}

func ReconstructRental(
	id, itemID, renterID, lenderID uuid.UUID,
	period Period,
	insurance InsuranceType,
	payment Payment,
	pickup, returnHandover *Handover,
	messages []ChatMessage,
	itemRatingID, renterRatingID, lenderRatingID *uuid.UUID,
	state State,
	createdAt, updatedAt time.Time,
	version int64,
) *Rental {
	return &Rental{
		id:             id,
		itemID:         itemID,
		renterID:       renterID,
		lenderID:       lenderID,
		period:         period,
		insurance:      insurance,
		payment:        payment,
		pickup:         pickup,
		returnHandover: returnHandover,
		messages:       messages,
		itemRatingID:   itemRatingID,
		renterRatingID: renterRatingID,
		lenderRatingID: lenderRatingID,
		state:          state,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
		version:        version,
	}
}

func (r *Rental) ID() uuid.UUID              { return r.id }
func (r *Rental) ItemID() uuid.UUID          { return r.itemID }
func (r *Rental) RenterID() uuid.UUID        { return r.renterID }
func (r *Rental) LenderID() uuid.UUID        { return r.lenderID }
func (r *Rental) Period() Period             { return r.period }
func (r *Rental) Insurance() InsuranceType   { return r.insurance }
func (r *Rental) Payment() Payment           { return r.payment }
func (r *Rental) Pickup() *Handover          { return r.pickup }
func (r *Rental) Return() *Handover          { return r.returnHandover }
func (r *Rental) Messages() []ChatMessage    { return append([]ChatMessage(nil), r.messages...) }
func (r *Rental) ItemRatingID() *uuid.UUID   { return r.itemRatingID }
func (r *Rental) RenterRatingID() *uuid.UUID { return r.renterRatingID }
func (r *Rental) LenderRatingID() *uuid.UUID { return r.lenderRatingID }
func (r *Rental) State() State               { return r.state }
func (r *Rental) CreatedAt() time.Time       { return r.createdAt }
func (r *Rental) UpdatedAt() time.Time       { return r.updatedAt }
func (r *Rental) Version() int64             { return r.version }

// RoleOf resolves the caller's role for this rental. Exclusive by the
// creation invariant renterID != lenderID.
func (r *Rental) RoleOf(userID uuid.UUID) (Role, error) {
	switch userID {
	case r.renterID:
		return RoleRenter, nil
	case r.lenderID:
		return RoleLender, nil
	default:
		return "", ErrNotParticipant
	}
}

func (r *Rental) ParticipantID(role Role) uuid.UUID {
	if role == RoleRenter {
		return r.renterID
	}
	return r.lenderID
}

// Accept is the explicit lender action moving OFFER to ACCEPTED. Availability
// must have been committed by the caller before this is invoked.
func (r *Rental) Accept(now time.Time) error {
	if r.state != StateOffer {
		return ErrNotOpenOffer
	}
	r.state = StateAccepted
	r.touch(now)
	return nil
}

// Decline never rolls back availability; nothing has been committed while the
// rental is still an offer.
func (r *Rental) Decline(now time.Time) error {
	if r.state != StateOffer {
		return ErrNotOpenOffer
	}
	r.state = StateDeclined
	r.touch(now)
	return nil
}

func (r *Rental) MarkPaidByRenter(now time.Time) error {
	if err := r.payment.markFromRenter(now); err != nil {
		return err
	}
	r.touch(now)
	return nil
}

func (r *Rental) MarkPaidToLender(now time.Time) error {
	if err := r.payment.markToLender(now); err != nil {
		return err
	}
	r.touch(now)
	return nil
}

// CreateHandover attaches a fresh handover to its slot and sets the coarse
// state for the handover type. The explicit set stands in for derivation
// here: a zero-agreement handover is not derivable from facts alone.
func (r *Rental) CreateHandover(t HandoverType, pictures []string, comment string, policy HandoverPolicy, now time.Time) (*Handover, error) {
	if err := policy.CanCreate(r, t); err != nil {
		return nil, err
	}
	h, err := NewHandover(t, pictures, comment)
	if err != nil {
		return nil, err
	}
	if t == HandoverPickup {
		r.pickup = h
		r.state = StatePickedUp
	} else {
		r.returnHandover = h
		r.state = StateReturned
	}
	r.touch(now)
	return h, nil
}

func (r *Rental) AcceptHandover(t HandoverType, role Role, now time.Time) (*Handover, error) {
	h := r.handoverOfType(t)
	if h == nil {
		return nil, ErrHandoverMissing
	}
	if err := h.agree(role, now); err != nil {
		return nil, err
	}
	r.touch(now)
	return h, nil
}

// DeclineHandover clears the slot back to absent, discarding any partial
// agreement.
func (r *Rental) DeclineHandover(t HandoverType, policy HandoverPolicy, now time.Time) error {
	if err := policy.CanModify(r, t); err != nil {
		return err
	}
	if t == HandoverPickup {
		r.pickup = nil
	} else {
		r.returnHandover = nil
	}
	r.touch(now)
	return nil
}

func (r *Rental) AppendUserMessage(authorID uuid.UUID, text string, now time.Time) (ChatMessage, error) {
	return r.appendMessage(authorID, text, false, now)
}

func (r *Rental) AppendSystemMessage(authorID uuid.UUID, text string, now time.Time) (ChatMessage, error) {
	return r.appendMessage(authorID, text, true, now)
}

// MarkReadFromOthers marks every message not authored by readerID as read and
// reports how many changed. Called whenever a participant fetches the rental.
func (r *Rental) MarkReadFromOthers(readerID uuid.UUID) int {
	marked := 0
	for i := range r.messages {
		if r.messages[i].authorID != readerID && !r.messages[i].isRead {
			r.messages[i].isRead = true
			marked++
		}
	}
	return marked
}

// AttachRating stores the rating reference in its slot; each slot is set at
// most once per rental.
func (r *Rental) AttachRating(kind rating.Kind, ratingID uuid.UUID, now time.Time) error {
	slot := r.ratingSlot(kind)
	if slot == nil {
		return rating.ErrInvalidKind
	}
	if *slot != nil {
		return ErrRatingSlotTaken
	}
	id := ratingID
	*slot = &id
	r.touch(now)
	return nil
}

func (r *Rental) HasRating(kind rating.Kind) bool {
	slot := r.ratingSlot(kind)
	return slot != nil && *slot != nil
}

// RatingTargetID is the entity a rating of the given kind is filed against.
func (r *Rental) RatingTargetID(kind rating.Kind) uuid.UUID {
	switch kind {
	case rating.KindItem:
		return r.itemID
	case rating.KindRenter:
		return r.renterID
	default:
		return r.lenderID
	}
}

// RecomputeState replaces the coarse state with the derived one where the
// facts support a derivation; OFFER/ACCEPTED/DECLINED are explicit-only and
// left untouched otherwise.
func (r *Rental) RecomputeState(now time.Time) {
	if st, ok := DeriveState(r); ok {
		r.state = st
		r.touch(now)
	}
}

func (r *Rental) handoverOfType(t HandoverType) *Handover {
	if t == HandoverPickup {
		return r.pickup
	}
	return r.returnHandover
}

func (r *Rental) ratingSlot(kind rating.Kind) **uuid.UUID {
	switch kind {
	case rating.KindItem:
		return &r.itemRatingID
	case rating.KindRenter:
		return &r.renterRatingID
	case rating.KindLender:
		return &r.lenderRatingID
	default:
		return nil
	}
}

func (r *Rental) appendMessage(authorID uuid.UUID, text string, isSystem bool, now time.Time) (ChatMessage, error) {
	if _, err := r.RoleOf(authorID); err != nil {
		return ChatMessage{}, err
	}
	msg, err := newChatMessage(authorID, text, isSystem, now)
	if err != nil {
		return ChatMessage{}, err
	}
	r.messages = append(r.messages, msg)
	r.touch(now)
	return msg, nil
}

func (r *Rental) touch(now time.Time) {
	r.updatedAt = now.UTC()
}

// RaterRole returns the role allowed to file a rating of the given kind: the
// renter rates the item and the lender, the lender rates the renter.
func RaterRole(kind rating.Kind) Role {
	if kind == rating.KindRenter {
		return RoleLender
	}
	return RoleRenter
}
