package queries

import (
	"context"

	"rentloop/internal/infra"
	"rentloop/internal/pkg/errs"
	"rentloop/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrUserNotFound = errs.New("user not found")

type UserQueries interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*UserView, error)
}

type userQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewUserQueries(uow shared.UnitOfWork) UserQueries {
	return &userQueriesImpl{uow: uow}
}

func (q *userQueriesImpl) GetByID(ctx context.Context, userID uuid.UUID) (*UserView, error) {
	var view *UserView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Users().FindByID(ctx, userID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrUserNotFound)
			}
			return errs.Wrap(err, "failed to load user")
		}
		view = &UserView{
			ID:            u.ID(),
			Email:         u.Email().String(),
			Name:          u.Name(),
			AverageRating: u.Rating().AverageRating,
			RatingCount:   u.Rating().Count,
			Verified:      u.Verified(),
			CreatedAt:     u.CreatedAt(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}
