package response

import (
	"time"

	"rentloop/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ItemResponse struct {
	ID            uuid.UUID      `json:"id"`
	LenderID      uuid.UUID      `json:"lenderId"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	FirstDayCents int64          `json:"firstDayCents"`
	PerDayCents   int64          `json:"perDayCents"`
	Weekdays      []int          `json:"weekdays"`
	Whitelist     []SpanResponse `json:"whitelist"`
	Blacklist     []SpanResponse `json:"blacklist"`
	AverageRating float64        `json:"averageRating"`
	RatingCount   int            `json:"ratingCount"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

type SpanResponse struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

type CreateItemResponse struct {
	ItemID uuid.UUID `json:"itemId"`
}

type RegisterPaymentMethodResponse struct {
	PaymentMethodID uuid.UUID `json:"paymentMethodId"`
}

func FromItemView(v *queries.ItemView) *ItemResponse {
	var resp ItemResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromItemList(views []*queries.ItemView) []*ItemResponse {
	out := make([]*ItemResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromItemView(v))
	}
	return out
}
