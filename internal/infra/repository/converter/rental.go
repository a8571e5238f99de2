package converter

import (
	"time"

	"rentloop/internal/domain/rental"
	"rentloop/internal/pkg/errs"

	"github.com/google/uuid"
)

// RentalDoc is the JSONB shape of a stored rental aggregate.
type RentalDoc struct {
	ID             uuid.UUID        `json:"id"`
	ItemID         uuid.UUID        `json:"itemId"`
	RenterID       uuid.UUID        `json:"renterId"`
	LenderID       uuid.UUID        `json:"lenderId"`
	PeriodStart    time.Time        `json:"periodStart"`
	PeriodEnd      time.Time        `json:"periodEnd"`
	Insurance      string           `json:"insurance"`
	Payment        PaymentDoc       `json:"payment"`
	Pickup         *HandoverDoc     `json:"pickup,omitempty"`
	Return         *HandoverDoc     `json:"return,omitempty"`
	Messages       []ChatMessageDoc `json:"messages"`
	ItemRatingID   *uuid.UUID       `json:"itemRatingId,omitempty"`
	RenterRatingID *uuid.UUID       `json:"renterRatingId,omitempty"`
	LenderRatingID *uuid.UUID       `json:"lenderRatingId,omitempty"`
	State          string           `json:"state"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

type PaymentDoc struct {
	RentalCents    int64      `json:"rentalCents"`
	InsuranceCents int64      `json:"insuranceCents"`
	FromRenter     *time.Time `json:"fromRenter,omitempty"`
	ToLender       *time.Time `json:"toLender,omitempty"`
}

type HandoverDoc struct {
	Type         string     `json:"type"`
	Pictures     []string   `json:"pictures"`
	Comment      string     `json:"comment"`
	AgreedRenter *time.Time `json:"agreedRenter,omitempty"`
	AgreedLender *time.Time `json:"agreedLender,omitempty"`
}

type ChatMessageDoc struct {
	ID       uuid.UUID `json:"id"`
	AuthorID uuid.UUID `json:"authorId"`
	Text     string    `json:"text"`
	IsSystem bool      `json:"isSystem"`
	IsRead   bool      `json:"isRead"`
	SentAt   time.Time `json:"sentAt"`
}

func RentalToDoc(r *rental.Rental) RentalDoc {
	p := r.Payment()
	messages := r.Messages()
	msgDocs := make([]ChatMessageDoc, 0, len(messages))
	for _, m := range messages {
		msgDocs = append(msgDocs, ChatMessageDoc{
			ID:       m.ID(),
			AuthorID: m.AuthorID(),
			Text:     m.Text(),
			IsSystem: m.IsSystem(),
			IsRead:   m.IsRead(),
			SentAt:   m.SentAt(),
		})
	}

	return RentalDoc{
		ID:          r.ID(),
		ItemID:      r.ItemID(),
		RenterID:    r.RenterID(),
		LenderID:    r.LenderID(),
		PeriodStart: r.Period().Start(),
		PeriodEnd:   r.Period().End(),
		Insurance:   r.Insurance().String(),
		Payment: PaymentDoc{
			RentalCents:    p.RentalAmount().Cents(),
			InsuranceCents: p.InsuranceAmount().Cents(),
			FromRenter:     p.FromRenter(),
			ToLender:       p.ToLender(),
		},
		Pickup:         handoverToDoc(r.Pickup()),
		Return:         handoverToDoc(r.Return()),
		Messages:       msgDocs,
		ItemRatingID:   r.ItemRatingID(),
		RenterRatingID: r.RenterRatingID(),
		LenderRatingID: r.LenderRatingID(),
		State:          r.State().String(),
		CreatedAt:      r.CreatedAt(),
		UpdatedAt:      r.UpdatedAt(),
	}
}

func RentalFromDoc(doc RentalDoc, version int64) (*rental.Rental, error) {
	insurance, err := rental.NewInsuranceType(doc.Insurance)
	if err != nil {
		return nil, errs.Wrap(err, "corrupt rental document")
	}
	state, err := rental.NewState(doc.State)
	if err != nil {
		return nil, errs.Wrap(err, "corrupt rental document")
	}

	rentalCents, err := rental.NewMoney(doc.Payment.RentalCents)
	if err != nil {
		return nil, errs.Wrap(err, "corrupt rental document")
	}
	insuranceCents, err := rental.NewMoney(doc.Payment.InsuranceCents)
	if err != nil {
		return nil, errs.Wrap(err, "corrupt rental document")
	}
	payment := rental.ReconstructPayment(rentalCents, insuranceCents, doc.Payment.FromRenter, doc.Payment.ToLender)

	pickup, err := handoverFromDoc(doc.Pickup)
	if err != nil {
		return nil, err
	}
	ret, err := handoverFromDoc(doc.Return)
	if err != nil {
		return nil, err
	}

	messages := make([]rental.ChatMessage, 0, len(doc.Messages))
	for _, m := range doc.Messages {
		messages = append(messages, rental.ReconstructChatMessage(m.ID, m.AuthorID, m.Text, m.IsSystem, m.IsRead, m.SentAt))
	}

	return rental.ReconstructRental(
		doc.ID, doc.ItemID, doc.RenterID, doc.LenderID,
		rental.ReconstructPeriod(doc.PeriodStart, doc.PeriodEnd),
		insurance,
		payment,
		pickup, ret,
		messages,
		doc.ItemRatingID, doc.RenterRatingID, doc.LenderRatingID,
		state,
		doc.CreatedAt, doc.UpdatedAt,
		version,
	), nil
}

func handoverToDoc(h *rental.Handover) *HandoverDoc {
	if h == nil {
		return nil
	}
	return &HandoverDoc{
		Type:         h.Type().String(),
		Pictures:     h.Pictures(),
		Comment:      h.Comment(),
		AgreedRenter: h.AgreedRenter(),
		AgreedLender: h.AgreedLender(),
	}
}

func handoverFromDoc(doc *HandoverDoc) (*rental.Handover, error) {
	if doc == nil {
		return nil, nil
	}
	t, err := rental.NewHandoverType(doc.Type)
	if err != nil {
		return nil, errs.Wrap(err, "corrupt handover document")
	}
	return rental.ReconstructHandover(t, doc.Pictures, doc.Comment, doc.AgreedRenter, doc.AgreedLender), nil
}
