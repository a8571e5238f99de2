package converter

import (
	"time"

	"rentloop/internal/domain/rating"
	"rentloop/internal/pkg/errs"

	"github.com/google/uuid"
)

type RatingDoc struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	TargetID  uuid.UUID `json:"targetId"`
	RentalID  uuid.UUID `json:"rentalId"`
	AuthorID  uuid.UUID `json:"authorId"`
	Stars     int       `json:"stars"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

func RatingToDoc(r *rating.Rating) RatingDoc {
	return RatingDoc{
		ID:        r.ID(),
		Kind:      r.Kind().String(),
		TargetID:  r.TargetID(),
		RentalID:  r.RentalID(),
		AuthorID:  r.AuthorID(),
		Stars:     r.Stars(),
		Text:      r.Text(),
		CreatedAt: r.CreatedAt(),
	}
}

func RatingFromDoc(doc RatingDoc) (*rating.Rating, error) {
	kind, err := rating.NewKind(doc.Kind)
	if err != nil {
		return nil, errs.Wrap(err, "corrupt rating document")
	}
	return rating.ReconstructRating(
		doc.ID, kind, doc.TargetID, doc.RentalID, doc.AuthorID,
		doc.Stars, doc.Text, doc.CreatedAt,
	), nil
}
