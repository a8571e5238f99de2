package user

import (
	"errors"
	"strings"
	"time"

	"rentloop/internal/domain/rating"

	"github.com/google/uuid"
)

var (
	ErrInvalidEmail = errors.New("invalid email address")
	ErrEmptyName    = errors.New("display name cannot be empty")
)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	at := strings.Index(s, "@")
	if at < 1 || at == len(s)-1 || !strings.Contains(s[at:], ".") {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) String() string {
	return e.value
}

type User struct {
	id           uuid.UUID
	email        Email
	name         string
	passwordHash string
	rating       rating.Aggregate
	verified     bool
	createdAt    time.Time
	updatedAt    time.Time
	version      int64
}

func NewUser(email Email, name, passwordHash string, now time.Time) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return &User{
		id:           uuid.New(),
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		createdAt:    now.UTC(),
		updatedAt:    now.UTC(),
	}, nil
}

func ReconstructUser(id uuid.UUID, email Email, name, passwordHash string, agg rating.Aggregate, verified bool, createdAt, updatedAt time.Time, version int64) *User {
	return &User{
		id:           id,
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		rating:       agg,
		verified:     verified,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
		version:      version,
	}
}

func (u *User) ID() uuid.UUID            { return u.id }
func (u *User) Email() Email             { return u.email }
func (u *User) Name() string             { return u.name }
func (u *User) PasswordHash() string     { return u.passwordHash }
func (u *User) Rating() rating.Aggregate { return u.rating }
func (u *User) Verified() bool           { return u.verified }
func (u *User) CreatedAt() time.Time     { return u.createdAt }
func (u *User) UpdatedAt() time.Time     { return u.updatedAt }
func (u *User) Version() int64           { return u.version }

func (u *User) SetRating(agg rating.Aggregate, now time.Time) {
	u.rating = agg
	u.updatedAt = now.UTC()
}

func (u *User) MarkVerified(now time.Time) {
	u.verified = true
	u.updatedAt = now.UTC()
}
