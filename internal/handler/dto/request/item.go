package request

import (
	"time"

	"rentloop/internal/usecase/commands"
)

type CreateItemRequest struct {
	Name          string     `json:"name" binding:"required"`
	Description   string     `json:"description"`
	FirstDayCents int64      `json:"firstDayCents" binding:"min=0"`
	PerDayCents   int64      `json:"perDayCents" binding:"min=0"`
	Weekdays      []int      `json:"weekdays"`
	Whitelist     []SpanBody `json:"whitelist"`
	Blacklist     []SpanBody `json:"blacklist"`
}

type SpanBody struct {
	From time.Time `json:"from" binding:"required"`
	To   time.Time `json:"to" binding:"required"`
}

func (r CreateItemRequest) ToCommand() commands.CreateItemRequest {
	weekdays := make([]time.Weekday, 0, len(r.Weekdays))
	for _, d := range r.Weekdays {
		weekdays = append(weekdays, time.Weekday(d))
	}
	return commands.CreateItemRequest{
		Name:          r.Name,
		Description:   r.Description,
		FirstDayCents: r.FirstDayCents,
		PerDayCents:   r.PerDayCents,
		Weekdays:      weekdays,
		Whitelist:     toSpanInputs(r.Whitelist),
		Blacklist:     toSpanInputs(r.Blacklist),
	}
}

func toSpanInputs(spans []SpanBody) []commands.SpanInput {
	inputs := make([]commands.SpanInput, 0, len(spans))
	for _, s := range spans {
		inputs = append(inputs, commands.SpanInput{From: s.From, To: s.To})
	}
	return inputs
}

type RegisterPaymentMethodRequest struct {
	ProviderToken string `json:"providerToken" binding:"required"`
}
