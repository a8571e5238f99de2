package shared

import (
	"context"

	"rentloop/internal/domain/item"
	"rentloop/internal/domain/rating"
	"rentloop/internal/domain/rental"
	"rentloop/internal/domain/user"

	"github.com/google/uuid"
)

// UnitOfWork scopes one load-mutate-persist cycle. Every rental operation is
// a short-lived single-rental transaction (plus the related item on accept).
type UnitOfWork interface {
	// Within: full transaction for write operations with retry on
	// serialization failures.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: read-only transaction for consistent multi-entity reads.
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Rentals() RentalRepository
	Items() ItemRepository
	Ratings() RatingRepository
	Users() UserRepository
	PaymentMethods() PaymentMethodRepository
}

// Repositories load and save whole aggregates. Save is compare-and-swap on
// the aggregate's version: a concurrent writer surfaces as a conflict, never
// as a silent last-writer-wins.
type RentalRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*rental.Rental, error)
	Create(ctx context.Context, r *rental.Rental) error
	Save(ctx context.Context, r *rental.Rental) error
	FindByParticipant(ctx context.Context, userID uuid.UUID) ([]*rental.Rental, error)
}

type ItemRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*item.Item, error)
	Create(ctx context.Context, i *item.Item) error
	Save(ctx context.Context, i *item.Item) error
	FindByLender(ctx context.Context, lenderID uuid.UUID) ([]*item.Item, error)
}

type RatingRepository interface {
	Create(ctx context.Context, r *rating.Rating) error
	FindByTarget(ctx context.Context, targetID uuid.UUID) ([]*rating.Rating, error)
}

type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	Create(ctx context.Context, u *user.User) error
	Save(ctx context.Context, u *user.User) error
}

// PaymentMethodSnapshot is the minimal read the payment gate needs to check
// ownership and charge.
type PaymentMethodSnapshot struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	ProviderToken string
}

type PaymentMethodRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PaymentMethodSnapshot, error)
	Create(ctx context.Context, m *PaymentMethodSnapshot) error
}
