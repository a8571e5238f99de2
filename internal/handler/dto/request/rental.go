package request

import (
	"time"

	"rentloop/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateRentalRequest struct {
	ItemID    uuid.UUID `json:"itemId" binding:"required"`
	Start     time.Time `json:"start" binding:"required"`
	End       time.Time `json:"end" binding:"required"`
	Insurance string    `json:"insurance" binding:"required"`
}

func (r CreateRentalRequest) ToCommand() commands.CreateRentalRequest {
	return commands.CreateRentalRequest{
		ItemID:    r.ItemID,
		Start:     r.Start,
		End:       r.End,
		Insurance: r.Insurance,
	}
}

type PayRequest struct {
	PaymentMethodID uuid.UUID `json:"paymentMethodId" binding:"required"`
}

type CreateHandoverRequest struct {
	Type     string   `json:"type" binding:"required"`
	Pictures []string `json:"pictures"`
	Comment  string   `json:"comment"`
}

type RateRequest struct {
	Kind  string `json:"kind" binding:"required"`
	Stars int    `json:"stars" binding:"required,min=1,max=5"`
	Text  string `json:"text"`
}

type PostMessageRequest struct {
	Text string `json:"text" binding:"required"`
}
