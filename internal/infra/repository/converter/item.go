package converter

import (
	"time"

	"rentloop/internal/domain/item"
	"rentloop/internal/domain/rating"

	"github.com/google/uuid"
)

type ItemDoc struct {
	ID          uuid.UUID        `json:"id"`
	LenderID    uuid.UUID        `json:"lenderId"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Pricing     item.Pricing     `json:"pricing"`
	Weekdays    []int            `json:"weekdays"`
	Whitelist   []item.Span      `json:"whitelist"`
	Blacklist   []item.Span      `json:"blacklist"`
	Rating      rating.Aggregate `json:"rating"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

func ItemToDoc(i *item.Item) ItemDoc {
	av := i.Availability()
	weekdays := make([]int, 0, 7)
	for _, d := range av.Weekdays() {
		weekdays = append(weekdays, int(d))
	}
	return ItemDoc{
		ID:          i.ID(),
		LenderID:    i.LenderID(),
		Name:        i.Name(),
		Description: i.Description(),
		Pricing:     i.Pricing(),
		Weekdays:    weekdays,
		Whitelist:   av.Whitelist(),
		Blacklist:   av.Blacklist(),
		Rating:      i.Rating(),
		CreatedAt:   i.CreatedAt(),
		UpdatedAt:   i.UpdatedAt(),
	}
}

func ItemFromDoc(doc ItemDoc, version int64) *item.Item {
	weekdays := make([]time.Weekday, 0, len(doc.Weekdays))
	for _, d := range doc.Weekdays {
		weekdays = append(weekdays, time.Weekday(d))
	}
	availability := item.NewAvailability(weekdays, doc.Whitelist, doc.Blacklist)

	return item.ReconstructItem(
		doc.ID, doc.LenderID,
		doc.Name, doc.Description,
		doc.Pricing,
		availability,
		doc.Rating,
		doc.CreatedAt, doc.UpdatedAt,
		version,
	)
}
