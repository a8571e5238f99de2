//go:build unit || e2e

package builder

import (
	"time"

	"rentloop/internal/domain/rating"
	domuser "rentloop/internal/domain/user"
	reqdto "rentloop/internal/handler/dto/request"
	"rentloop/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	Email        string
	Name         string
	Password     string
	PasswordHash string
	Rating       rating.Aggregate
	Verified     bool
	CreatedAt    time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Email:        "renter@example.com",
		Name:         "Test Renter",
		Password:     "password1234",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		CreatedAt:    time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *UserBuilder) BuildDomain() (*domuser.User, error) {
	email, err := domuser.NewEmail(b.Email)
	if err != nil {
		return nil, err
	}
	return domuser.NewUser(email, b.Name, b.PasswordHash, b.CreatedAt)
}

func (b *UserBuilder) BuildSignupRequestDTO() reqdto.SignupRequest {
	return reqdto.SignupRequest{
		Email:    b.Email,
		Name:     b.Name,
		Password: b.Password,
	}
}

func (b *UserBuilder) BuildView() *queries.UserView {
	return &queries.UserView{
		ID:            uuid.New(),
		Email:         b.Email,
		Name:          b.Name,
		AverageRating: b.Rating.AverageRating,
		RatingCount:   b.Rating.Count,
		Verified:      b.Verified,
		CreatedAt:     b.CreatedAt,
	}
}

// Fluent builder methods
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.Email = email
	return b
}

func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.Name = name
	return b
}

func (b *UserBuilder) WithRating(average float64, count int) *UserBuilder {
	b.Rating = rating.Aggregate{AverageRating: average, Count: count}
	return b
}

func (b *UserBuilder) AsVerified() *UserBuilder {
	b.Verified = true
	return b
}
