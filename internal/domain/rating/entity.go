package rating

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const MaxTextLength = 1000

var (
	ErrInvalidKind  = errors.New("invalid rating kind")
	ErrInvalidStars = errors.New("stars must be between 1 and 5")
	ErrTextTooLong  = errors.New("rating text exceeds maximum length")
)

// Kind says what a rating is about: the item itself, or a participant in
// their renter/lender role.
type Kind string

const (
	KindItem   Kind = "item"
	KindRenter Kind = "renter"
	KindLender Kind = "lender"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindItem, KindRenter, KindLender:
		return true
	default:
		return false
	}
}

func NewKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.IsValid() {
		return "", ErrInvalidKind
	}
	return k, nil
}

// Rating is a separate entity referenced by id from its rental; the rated
// target's aggregate is recomputed from all ratings pointing at it.
type Rating struct {
	id        uuid.UUID
	kind      Kind
	targetID  uuid.UUID
	rentalID  uuid.UUID
	authorID  uuid.UUID
	stars     int
	text      string
	createdAt time.Time
}

func NewRating(kind Kind, targetID, rentalID, authorID uuid.UUID, stars int, text string, now time.Time) (*Rating, error) {
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}
	if stars < 1 || stars > 5 {
		return nil, ErrInvalidStars
	}
	text = strings.TrimSpace(text)
	if len(text) > MaxTextLength {
		return nil, ErrTextTooLong
	}

	return &Rating{
		id:        uuid.New(),
		kind:      kind,
		targetID:  targetID,
		rentalID:  rentalID,
		authorID:  authorID,
		stars:     stars,
		text:      text,
		createdAt: now.UTC(),
	}, nil
}

func ReconstructRating(id uuid.UUID, kind Kind, targetID, rentalID, authorID uuid.UUID, stars int, text string, createdAt time.Time) *Rating {
	return &Rating{
		id:        id,
		kind:      kind,
		targetID:  targetID,
		rentalID:  rentalID,
		authorID:  authorID,
		stars:     stars,
		text:      text,
		createdAt: createdAt,
	}
}

func (r *Rating) ID() uuid.UUID        { return r.id }
func (r *Rating) Kind() Kind           { return r.kind }
func (r *Rating) TargetID() uuid.UUID  { return r.targetID }
func (r *Rating) RentalID() uuid.UUID  { return r.rentalID }
func (r *Rating) AuthorID() uuid.UUID  { return r.authorID }
func (r *Rating) Stars() int           { return r.stars }
func (r *Rating) Text() string         { return r.text }
func (r *Rating) CreatedAt() time.Time { return r.createdAt }
