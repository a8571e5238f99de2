package commands

import (
	"context"
	"time"

	"rentloop/internal/domain/rating"
	"rentloop/internal/domain/rental"
	"rentloop/internal/infra"
	"rentloop/internal/pkg/clock"
	"rentloop/internal/pkg/errs"
	"rentloop/internal/usecase/shared"

	"github.com/google/uuid"
)

type RateRequest struct {
	RentalID uuid.UUID
	Kind     string
	Stars    int
	Text     string
}

type RatingCommands interface {
	Rate(ctx context.Context, req RateRequest, callerID uuid.UUID) error
}

type ratingCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewRatingCommands(uow shared.UnitOfWork, clk clock.Clock) RatingCommands {
	return &ratingCommandsImpl{
		uow:   uow,
		clock: clk,
	}
}

// Rate files one rating against the rental's item, renter, or lender. The
// renter rates the item and the lender; the lender rates the renter. Each
// slot is filled at most once, and the target's aggregate is recomputed from
// every rating on record for it.
func (uc *ratingCommandsImpl) Rate(ctx context.Context, req RateRequest, callerID uuid.UUID) error {
	kind, err := rating.NewKind(req.Kind)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	now := uc.clock.Now()
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, role, err := loadRentalAs(ctx, tx, req.RentalID, callerID)
		if err != nil {
			return err
		}
		if role != rental.RaterRole(kind) {
			return errs.Mark(errs.New("caller role may not file this rating kind"), ErrWrongRaterRole)
		}

		targetID := r.RatingTargetID(kind)
		rt, err := rating.NewRating(kind, targetID, r.ID(), callerID, req.Stars, req.Text, now)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		if err = r.AttachRating(kind, rt.ID(), now); err != nil {
			return errs.Mark(err, ErrRatingSlotTaken)
		}
		if err = tx.Ratings().Create(ctx, rt); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err = uc.recomputeTarget(ctx, tx, kind, targetID, now); err != nil {
			return err
		}

		if _, err = r.AppendSystemMessage(callerID, kind.String()+" rating filed by "+role.String(), now); err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		r.RecomputeState(now)

		if err = tx.Rentals().Save(ctx, r); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

// recomputeTarget rescans every rating pointing at the target and overwrites
// its stored aggregate. Full rescan keeps the average correct no matter how
// the rating set changed.
func (uc *ratingCommandsImpl) recomputeTarget(ctx context.Context, tx shared.Tx, kind rating.Kind, targetID uuid.UUID, now time.Time) error {
	ratings, err := tx.Ratings().FindByTarget(ctx, targetID)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	agg := rating.Recompute(ratings)

	if kind == rating.KindItem {
		it, err := tx.Items().FindByID(ctx, targetID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrItemNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		it.SetRating(agg, now)
		if err = tx.Items().Save(ctx, it); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	}

	u, err := tx.Users().FindByID(ctx, targetID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrUserNotFound)
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	u.SetRating(agg, now)
	if err = tx.Users().Save(ctx, u); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
