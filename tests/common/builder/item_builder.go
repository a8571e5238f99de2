//go:build unit || e2e

package builder

import (
	"time"

	domitem "rentloop/internal/domain/item"
	"rentloop/internal/domain/rating"
	reqdto "rentloop/internal/handler/dto/request"
	"rentloop/internal/usecase/queries"

	"github.com/google/uuid"
)

type ItemBuilder struct {
	ID            uuid.UUID
	LenderID      uuid.UUID
	Name          string
	Description   string
	FirstDayCents int64
	PerDayCents   int64
	Weekdays      []time.Weekday
	Whitelist     []domitem.Span
	Blacklist     []domitem.Span
	Rating        rating.Aggregate
	CreatedAt     time.Time
	Version       int64
}

func NewItemBuilder() *ItemBuilder {
	return &ItemBuilder{
		ID:            uuid.New(),
		LenderID:      uuid.New(),
		Name:          "Cordless Drill",
		Description:   "18V cordless drill with two batteries",
		FirstDayCents: 2000,
		PerDayCents:   1000,
		Weekdays: []time.Weekday{
			time.Monday, time.Tuesday, time.Wednesday,
			time.Thursday, time.Friday, time.Saturday, time.Sunday,
		},
		CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		Version:   1,
	}
}

func (b *ItemBuilder) With(mutate func(*ItemBuilder)) *ItemBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ItemBuilder) BuildDomain() (*domitem.Item, error) {
	pricing, err := domitem.NewPricing(b.FirstDayCents, b.PerDayCents)
	if err != nil {
		return nil, err
	}
	availability := domitem.NewAvailability(b.Weekdays, b.Whitelist, b.Blacklist)
	return domitem.NewItem(b.LenderID, b.Name, b.Description, pricing, availability, b.CreatedAt)
}

// BuildReconstructed skips validation and keeps the builder's ID and version,
// matching what a repository load would return.
func (b *ItemBuilder) BuildReconstructed() *domitem.Item {
	return domitem.ReconstructItem(
		b.ID, b.LenderID,
		b.Name, b.Description,
		domitem.Pricing{FirstDayCents: b.FirstDayCents, PerDayCents: b.PerDayCents},
		domitem.NewAvailability(b.Weekdays, b.Whitelist, b.Blacklist),
		b.Rating,
		b.CreatedAt, b.CreatedAt,
		b.Version,
	)
}

func (b *ItemBuilder) BuildCreateRequestDTO() reqdto.CreateItemRequest {
	weekdays := make([]int, 0, len(b.Weekdays))
	for _, d := range b.Weekdays {
		weekdays = append(weekdays, int(d))
	}
	return reqdto.CreateItemRequest{
		Name:          b.Name,
		Description:   b.Description,
		FirstDayCents: b.FirstDayCents,
		PerDayCents:   b.PerDayCents,
		Weekdays:      weekdays,
		Whitelist:     toSpanBodies(b.Whitelist),
		Blacklist:     toSpanBodies(b.Blacklist),
	}
}

func (b *ItemBuilder) BuildView() *queries.ItemView {
	weekdays := make([]int, 0, len(b.Weekdays))
	for _, d := range b.Weekdays {
		weekdays = append(weekdays, int(d))
	}
	return &queries.ItemView{
		ID:            b.ID,
		LenderID:      b.LenderID,
		Name:          b.Name,
		Description:   b.Description,
		FirstDayCents: b.FirstDayCents,
		PerDayCents:   b.PerDayCents,
		Weekdays:      weekdays,
		Whitelist:     toSpanViews(b.Whitelist),
		Blacklist:     toSpanViews(b.Blacklist),
		AverageRating: b.Rating.AverageRating,
		RatingCount:   b.Rating.Count,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.CreatedAt,
	}
}

// Fluent builder methods
func (b *ItemBuilder) WithLenderID(lenderID uuid.UUID) *ItemBuilder {
	b.LenderID = lenderID
	return b
}

func (b *ItemBuilder) WithName(name string) *ItemBuilder {
	b.Name = name
	return b
}

func (b *ItemBuilder) WithPricing(firstDayCents, perDayCents int64) *ItemBuilder {
	b.FirstDayCents = firstDayCents
	b.PerDayCents = perDayCents
	return b
}

func (b *ItemBuilder) WithWeekdays(days ...time.Weekday) *ItemBuilder {
	b.Weekdays = days
	return b
}

func (b *ItemBuilder) WithWhitelistSpan(from, to time.Time) *ItemBuilder {
	b.Whitelist = append(b.Whitelist, domitem.Span{From: from.UTC(), To: to.UTC()})
	return b
}

func (b *ItemBuilder) WithBlacklistSpan(from, to time.Time) *ItemBuilder {
	b.Blacklist = append(b.Blacklist, domitem.Span{From: from.UTC(), To: to.UTC()})
	return b
}

func (b *ItemBuilder) WithRating(average float64, count int) *ItemBuilder {
	b.Rating = rating.Aggregate{AverageRating: average, Count: count}
	return b
}

func toSpanBodies(spans []domitem.Span) []reqdto.SpanBody {
	out := make([]reqdto.SpanBody, 0, len(spans))
	for _, s := range spans {
		out = append(out, reqdto.SpanBody{From: s.From, To: s.To})
	}
	return out
}

func toSpanViews(spans []domitem.Span) []queries.SpanView {
	out := make([]queries.SpanView, 0, len(spans))
	for _, s := range spans {
		out = append(out, queries.SpanView{From: s.From, To: s.To})
	}
	return out
}
