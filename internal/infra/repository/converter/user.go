package converter

import (
	"time"

	"rentloop/internal/domain/rating"
	"rentloop/internal/domain/user"
	"rentloop/internal/pkg/errs"

	"github.com/google/uuid"
)

type UserDoc struct {
	ID           uuid.UUID        `json:"id"`
	Email        string           `json:"email"`
	Name         string           `json:"name"`
	PasswordHash string           `json:"passwordHash"`
	Rating       rating.Aggregate `json:"rating"`
	Verified     bool             `json:"verified"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

func UserToDoc(u *user.User) UserDoc {
	return UserDoc{
		ID:           u.ID(),
		Email:        u.Email().String(),
		Name:         u.Name(),
		PasswordHash: u.PasswordHash(),
		Rating:       u.Rating(),
		Verified:     u.Verified(),
		CreatedAt:    u.CreatedAt(),
		UpdatedAt:    u.UpdatedAt(),
	}
}

func UserFromDoc(doc UserDoc, version int64) (*user.User, error) {
	email, err := user.NewEmail(doc.Email)
	if err != nil {
		return nil, errs.Wrap(err, "corrupt user document")
	}
	return user.ReconstructUser(
		doc.ID, email, doc.Name, doc.PasswordHash,
		doc.Rating, doc.Verified,
		doc.CreatedAt, doc.UpdatedAt,
		version,
	), nil
}
