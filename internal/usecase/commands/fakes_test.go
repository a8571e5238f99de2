//go:build unit

package commands_test

import (
	"context"

	"rentloop/internal/domain/item"
	"rentloop/internal/domain/rating"
	"rentloop/internal/domain/rental"
	"rentloop/internal/domain/user"
	"rentloop/internal/infra"
	"rentloop/internal/usecase/shared"

	"github.com/google/uuid"
)

// fakeUoW reruns the closure on version conflicts the way the postgres unit
// of work does, so retry-sensitive behavior is observable in tests.
type fakeUoW struct {
	tx *fakeTx
}

func (u *fakeUoW) Within(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
	for {
		err := fn(ctx, u.tx)
		if err == nil {
			return nil
		}
		if infra.IsKind(err, infra.KindVersionConflict) {
			continue
		}
		return err
	}
}

func (u *fakeUoW) WithinReadOnly(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
	return fn(ctx, u.tx)
}

type fakeTx struct {
	rentals        fakeRentalRepo
	items          fakeItemRepo
	ratings        fakeRatingRepo
	users          fakeUserRepo
	paymentMethods fakePaymentMethodRepo
}

func (t *fakeTx) Rentals() shared.RentalRepository               { return &t.rentals }
func (t *fakeTx) Items() shared.ItemRepository                   { return &t.items }
func (t *fakeTx) Ratings() shared.RatingRepository               { return &t.ratings }
func (t *fakeTx) Users() shared.UserRepository                   { return &t.users }
func (t *fakeTx) PaymentMethods() shared.PaymentMethodRepository { return &t.paymentMethods }

func notFound(msg string) error {
	return infra.NewRepoErr(infra.KindNotFound, msg, nil)
}

func versionConflict(msg string) error {
	return infra.NewRepoErr(infra.KindVersionConflict, msg, nil)
}

func duplicateKey(msg string) error {
	return infra.NewRepoErr(infra.KindDuplicateKey, msg, nil)
}

// fakeRentalRepo hands out a fresh aggregate per load, matching what a row
// read after a rolled-back transaction would return.
type fakeRentalRepo struct {
	load          func() *rental.Rental
	saveConflicts int
	saved         *rental.Rental
	created       *rental.Rental
}

func (f *fakeRentalRepo) FindByID(ctx context.Context, id uuid.UUID) (*rental.Rental, error) {
	if f.load == nil {
		return nil, notFound("rental not found")
	}
	return f.load(), nil
}

func (f *fakeRentalRepo) Create(ctx context.Context, r *rental.Rental) error {
	f.created = r
	return nil
}

func (f *fakeRentalRepo) Save(ctx context.Context, r *rental.Rental) error {
	if f.saveConflicts > 0 {
		f.saveConflicts--
		return versionConflict("rental modified concurrently")
	}
	f.saved = r
	return nil
}

func (f *fakeRentalRepo) FindByParticipant(ctx context.Context, userID uuid.UUID) ([]*rental.Rental, error) {
	if f.load == nil {
		return nil, nil
	}
	return []*rental.Rental{f.load()}, nil
}

type fakeItemRepo struct {
	load    func() *item.Item
	saved   *item.Item
	created *item.Item
}

func (f *fakeItemRepo) FindByID(ctx context.Context, id uuid.UUID) (*item.Item, error) {
	if f.load == nil {
		return nil, notFound("item not found")
	}
	return f.load(), nil
}

func (f *fakeItemRepo) Create(ctx context.Context, i *item.Item) error {
	f.created = i
	return nil
}

func (f *fakeItemRepo) Save(ctx context.Context, i *item.Item) error {
	f.saved = i
	return nil
}

func (f *fakeItemRepo) FindByLender(ctx context.Context, lenderID uuid.UUID) ([]*item.Item, error) {
	if f.load == nil {
		return nil, nil
	}
	return []*item.Item{f.load()}, nil
}

type fakeRatingRepo struct {
	created []*rating.Rating
}

func (f *fakeRatingRepo) Create(ctx context.Context, r *rating.Rating) error {
	f.created = append(f.created, r)
	return nil
}

func (f *fakeRatingRepo) FindByTarget(ctx context.Context, targetID uuid.UUID) ([]*rating.Rating, error) {
	out := make([]*rating.Rating, 0, len(f.created))
	for _, r := range f.created {
		if r.TargetID() == targetID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	load      func() *user.User
	saved     *user.User
	created   *user.User
	createErr error
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	if f.load == nil {
		return nil, notFound("user not found")
	}
	return f.load(), nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	if f.load == nil {
		return nil, notFound("user not found")
	}
	return f.load(), nil
}

func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = u
	return nil
}

func (f *fakeUserRepo) Save(ctx context.Context, u *user.User) error {
	f.saved = u
	return nil
}

type fakePaymentMethodRepo struct {
	method  *shared.PaymentMethodSnapshot
	created *shared.PaymentMethodSnapshot
}

func (f *fakePaymentMethodRepo) FindByID(ctx context.Context, id uuid.UUID) (*shared.PaymentMethodSnapshot, error) {
	if f.method == nil || f.method.ID != id {
		return nil, notFound("payment method not found")
	}
	return f.method, nil
}

func (f *fakePaymentMethodRepo) Create(ctx context.Context, m *shared.PaymentMethodSnapshot) error {
	f.created = m
	return nil
}
