package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type RentalView struct {
	ID             uuid.UUID         `json:"id"`
	ItemID         uuid.UUID         `json:"item_id"`
	RenterID       uuid.UUID         `json:"renter_id"`
	LenderID       uuid.UUID         `json:"lender_id"`
	Role           string            `json:"role"`
	PeriodStart    time.Time         `json:"period_start"`
	PeriodEnd      time.Time         `json:"period_end"`
	Insurance      string            `json:"insurance"`
	State          string            `json:"state"`
	Payment        PaymentView       `json:"payment"`
	Pickup         *HandoverView     `json:"pickup,omitempty"`
	Return         *HandoverView     `json:"return,omitempty"`
	Messages       []ChatMessageView `json:"messages"`
	ItemRatingID   *uuid.UUID        `json:"item_rating_id,omitempty"`
	RenterRatingID *uuid.UUID        `json:"renter_rating_id,omitempty"`
	LenderRatingID *uuid.UUID        `json:"lender_rating_id,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

type PaymentView struct {
	RentalCents    int64      `json:"rental_cents"`
	InsuranceCents int64      `json:"insurance_cents"`
	TotalCents     int64      `json:"total_cents"`
	FromRenter     *time.Time `json:"from_renter,omitempty"`
	ToLender       *time.Time `json:"to_lender,omitempty"`
}

type HandoverView struct {
	Type         string     `json:"type"`
	Pictures     []string   `json:"pictures"`
	Comment      string     `json:"comment"`
	AgreedRenter *time.Time `json:"agreed_renter,omitempty"`
	AgreedLender *time.Time `json:"agreed_lender,omitempty"`
}

type ChatMessageView struct {
	ID       uuid.UUID `json:"id"`
	AuthorID uuid.UUID `json:"author_id"`
	Text     string    `json:"text"`
	IsSystem bool      `json:"is_system"`
	IsRead   bool      `json:"is_read"`
	SentAt   time.Time `json:"sent_at"`
}

type RentalListItem struct {
	ID          uuid.UUID `json:"id"`
	ItemID      uuid.UUID `json:"item_id"`
	Role        string    `json:"role"`
	PeriodStart time.Time `json:"period_start"`
	PeriodEnd   time.Time `json:"period_end"`
	State       string    `json:"state"`
	TotalCents  int64     `json:"total_cents"`
	UnreadCount int       `json:"unread_count"`
	CreatedAt   time.Time `json:"created_at"`
}

type ItemView struct {
	ID            uuid.UUID  `json:"id"`
	LenderID      uuid.UUID  `json:"lender_id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	FirstDayCents int64      `json:"first_day_cents"`
	PerDayCents   int64      `json:"per_day_cents"`
	Weekdays      []int      `json:"weekdays"`
	Whitelist     []SpanView `json:"whitelist"`
	Blacklist     []SpanView `json:"blacklist"`
	AverageRating float64    `json:"average_rating"`
	RatingCount   int        `json:"rating_count"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type SpanView struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

type UserView struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	AverageRating float64   `json:"average_rating"`
	RatingCount   int       `json:"rating_count"`
	Verified      bool      `json:"verified"`
	CreatedAt     time.Time `json:"created_at"`
}
