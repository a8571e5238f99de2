package response

import (
	"time"

	"rentloop/internal/usecase/queries"

	"github.com/google/uuid"
)

type RentalResponse struct {
	ID             uuid.UUID             `json:"id"`
	ItemID         uuid.UUID             `json:"itemId"`
	RenterID       uuid.UUID             `json:"renterId"`
	LenderID       uuid.UUID             `json:"lenderId"`
	Role           string                `json:"role"`
	PeriodStart    time.Time             `json:"periodStart"`
	PeriodEnd      time.Time             `json:"periodEnd"`
	Insurance      string                `json:"insurance"`
	State          string                `json:"state"`
	Payment        PaymentResponse       `json:"payment"`
	Pickup         *HandoverResponse     `json:"pickup,omitempty"`
	Return         *HandoverResponse     `json:"return,omitempty"`
	Messages       []ChatMessageResponse `json:"messages"`
	ItemRatingID   *uuid.UUID            `json:"itemRatingId,omitempty"`
	RenterRatingID *uuid.UUID            `json:"renterRatingId,omitempty"`
	LenderRatingID *uuid.UUID            `json:"lenderRatingId,omitempty"`
	CreatedAt      time.Time             `json:"createdAt"`
	UpdatedAt      time.Time             `json:"updatedAt"`
}

type PaymentResponse struct {
	RentalCents    int64      `json:"rentalCents"`
	InsuranceCents int64      `json:"insuranceCents"`
	TotalCents     int64      `json:"totalCents"`
	FromRenter     *time.Time `json:"fromRenter,omitempty"`
	ToLender       *time.Time `json:"toLender,omitempty"`
}

type HandoverResponse struct {
	Type         string     `json:"type"`
	Pictures     []string   `json:"pictures"`
	Comment      string     `json:"comment"`
	AgreedRenter *time.Time `json:"agreedRenter,omitempty"`
	AgreedLender *time.Time `json:"agreedLender,omitempty"`
}

type ChatMessageResponse struct {
	ID       uuid.UUID `json:"id"`
	AuthorID uuid.UUID `json:"authorId"`
	Text     string    `json:"text"`
	IsSystem bool      `json:"isSystem"`
	IsRead   bool      `json:"isRead"`
	SentAt   time.Time `json:"sentAt"`
}

type RentalListResponse struct {
	ID          uuid.UUID `json:"id"`
	ItemID      uuid.UUID `json:"itemId"`
	Role        string    `json:"role"`
	PeriodStart time.Time `json:"periodStart"`
	PeriodEnd   time.Time `json:"periodEnd"`
	State       string    `json:"state"`
	TotalCents  int64     `json:"totalCents"`
	UnreadCount int       `json:"unreadCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

type CreateRentalResponse struct {
	RentalID uuid.UUID `json:"rentalId"`
}

type PostMessageResponse struct {
	MessageID uuid.UUID `json:"messageId"`
}

func FromRentalView(v *queries.RentalView) *RentalResponse {
	messages := make([]ChatMessageResponse, 0, len(v.Messages))
	for _, m := range v.Messages {
		messages = append(messages, ChatMessageResponse{
			ID:       m.ID,
			AuthorID: m.AuthorID,
			Text:     m.Text,
			IsSystem: m.IsSystem,
			IsRead:   m.IsRead,
			SentAt:   m.SentAt,
		})
	}

	return &RentalResponse{
		ID:          v.ID,
		ItemID:      v.ItemID,
		RenterID:    v.RenterID,
		LenderID:    v.LenderID,
		Role:        v.Role,
		PeriodStart: v.PeriodStart,
		PeriodEnd:   v.PeriodEnd,
		Insurance:   v.Insurance,
		State:       v.State,
		Payment: PaymentResponse{
			RentalCents:    v.Payment.RentalCents,
			InsuranceCents: v.Payment.InsuranceCents,
			TotalCents:     v.Payment.TotalCents,
			FromRenter:     v.Payment.FromRenter,
			ToLender:       v.Payment.ToLender,
		},
		Pickup:         fromHandoverView(v.Pickup),
		Return:         fromHandoverView(v.Return),
		Messages:       messages,
		ItemRatingID:   v.ItemRatingID,
		RenterRatingID: v.RenterRatingID,
		LenderRatingID: v.LenderRatingID,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}
}

func FromRentalList(items []*queries.RentalListItem) []*RentalListResponse {
	out := make([]*RentalListResponse, 0, len(items))
	for _, it := range items {
		out = append(out, &RentalListResponse{
			ID:          it.ID,
			ItemID:      it.ItemID,
			Role:        it.Role,
			PeriodStart: it.PeriodStart,
			PeriodEnd:   it.PeriodEnd,
			State:       it.State,
			TotalCents:  it.TotalCents,
			UnreadCount: it.UnreadCount,
			CreatedAt:   it.CreatedAt,
		})
	}
	return out
}

func fromHandoverView(v *queries.HandoverView) *HandoverResponse {
	if v == nil {
		return nil
	}
	return &HandoverResponse{
		Type:         v.Type,
		Pictures:     v.Pictures,
		Comment:      v.Comment,
		AgreedRenter: v.AgreedRenter,
		AgreedLender: v.AgreedLender,
	}
}
