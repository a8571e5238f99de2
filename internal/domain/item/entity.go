package item

import (
	"errors"
	"strings"
	"time"

	"rentloop/internal/domain/rating"

	"github.com/google/uuid"
)

const (
	MaxNameLength        = 200
	MaxDescriptionLength = 4000
)

var (
	ErrEmptyName          = errors.New("item name cannot be empty")
	ErrNameTooLong        = errors.New("item name exceeds maximum length")
	ErrDescriptionTooLong = errors.New("item description exceeds maximum length")
	ErrInvalidPricing     = errors.New("item prices cannot be negative")
	ErrRangeConflict      = errors.New("range conflicts with committed bookings")
)

// Pricing is the per-rental price schedule: the first day costs more than
// each following day.
type Pricing struct {
	FirstDayCents int64 `json:"firstDayCents"`
	PerDayCents   int64 `json:"perDayCents"`
}

func NewPricing(firstDayCents, perDayCents int64) (Pricing, error) {
	if firstDayCents < 0 || perDayCents < 0 {
		return Pricing{}, ErrInvalidPricing
	}
	return Pricing{FirstDayCents: firstDayCents, PerDayCents: perDayCents}, nil
}

type Item struct {
	id           uuid.UUID
	lenderID     uuid.UUID
	name         string
	description  string
	pricing      Pricing
	availability Availability
	rating       rating.Aggregate
	createdAt    time.Time
	updatedAt    time.Time
	version      int64
}

func NewItem(lenderID uuid.UUID, name, description string, pricing Pricing, availability Availability, now time.Time) (*Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return nil, ErrNameTooLong
	}
	description = strings.TrimSpace(description)
	if len(description) > MaxDescriptionLength {
		return nil, ErrDescriptionTooLong
	}

	return &Item{
		id:           uuid.New(),
		lenderID:     lenderID,
		name:         name,
		description:  description,
		pricing:      pricing,
		availability: availability,
		createdAt:    now.UTC(),
		updatedAt:    now.UTC(),
	}, nil
}

func ReconstructItem(
	id, lenderID uuid.UUID,
	name, description string,
	pricing Pricing,
	availability Availability,
	agg rating.Aggregate,
	createdAt, updatedAt time.Time,
	version int64,
) *Item {
	return &Item{
		id:           id,
		lenderID:     lenderID,
		name:         name,
		description:  description,
		pricing:      pricing,
		availability: availability,
		rating:       agg,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
		version:      version,
	}
}

func (i *Item) ID() uuid.UUID            { return i.id }
func (i *Item) LenderID() uuid.UUID      { return i.lenderID }
func (i *Item) Name() string             { return i.name }
func (i *Item) Description() string      { return i.description }
func (i *Item) Pricing() Pricing         { return i.pricing }
func (i *Item) Rating() rating.Aggregate { return i.rating }
func (i *Item) CreatedAt() time.Time     { return i.createdAt }
func (i *Item) UpdatedAt() time.Time     { return i.updatedAt }
func (i *Item) Version() int64           { return i.version }
func (i *Item) Availability() *Availability {
	return &i.availability
}

func (i *Item) SetRating(agg rating.Aggregate, now time.Time) {
	i.rating = agg
	i.updatedAt = now.UTC()
}

// CommitRange books the range into the blacklist after a conflict check.
func (i *Item) CommitRange(start, end time.Time, policy ConflictPolicy, now time.Time) error {
	if i.availability.RangeConflicts(start, end, policy) {
		return ErrRangeConflict
	}
	i.availability.Commit(start, end)
	i.updatedAt = now.UTC()
	return nil
}
