package commands

import (
	"context"

	"rentloop/internal/domain/rental"
	"rentloop/internal/pkg/clock"
	"rentloop/internal/pkg/errs"
	"rentloop/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateHandoverRequest struct {
	RentalID uuid.UUID
	Type     string
	Pictures []string
	Comment  string
}

type HandoverCommands interface {
	Create(ctx context.Context, req CreateHandoverRequest, callerID uuid.UUID) error
	Accept(ctx context.Context, rentalID uuid.UUID, handoverType string, callerID uuid.UUID) error
	Decline(ctx context.Context, rentalID uuid.UUID, handoverType string, callerID uuid.UUID) error
}

type handoverCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	policy rental.HandoverPolicy
}

func NewHandoverCommands(uow shared.UnitOfWork, clk clock.Clock, policy rental.HandoverPolicy) HandoverCommands {
	return &handoverCommandsImpl{
		uow:    uow,
		clock:  clk,
		policy: policy,
	}
}

func (uc *handoverCommandsImpl) Create(ctx context.Context, req CreateHandoverRequest, callerID uuid.UUID) error {
	handoverType, err := rental.NewHandoverType(req.Type)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	now := uc.clock.Now()
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, _, err := loadRentalAs(ctx, tx, req.RentalID, callerID)
		if err != nil {
			return err
		}

		if _, err = r.CreateHandover(handoverType, req.Pictures, req.Comment, uc.policy, now); err != nil {
			return markHandoverErr(err)
		}
		if _, err = r.AppendSystemMessage(callerID, handoverType.String()+" handover created", now); err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		if err = tx.Rentals().Save(ctx, r); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (uc *handoverCommandsImpl) Accept(ctx context.Context, rentalID uuid.UUID, handoverType string, callerID uuid.UUID) error {
	t, err := rental.NewHandoverType(handoverType)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	now := uc.clock.Now()
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, role, err := loadRentalAs(ctx, tx, rentalID, callerID)
		if err != nil {
			return err
		}

		if err = uc.policy.CanModify(r, t); err != nil {
			return markHandoverErr(err)
		}
		if _, err = r.AcceptHandover(t, role, now); err != nil {
			// The precondition check above already vouched for the slot;
			// a missing handover here is an invariant violation.
			if errs.Is(err, rental.ErrHandoverMissing) {
				return errs.Mark(err, ErrHandoverMissing)
			}
			return markHandoverErr(err)
		}
		if _, err = r.AppendSystemMessage(callerID, t.String()+" handover agreed by "+role.String(), now); err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		r.RecomputeState(now)

		if err = tx.Rentals().Save(ctx, r); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (uc *handoverCommandsImpl) Decline(ctx context.Context, rentalID uuid.UUID, handoverType string, callerID uuid.UUID) error {
	t, err := rental.NewHandoverType(handoverType)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	now := uc.clock.Now()
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, role, err := loadRentalAs(ctx, tx, rentalID, callerID)
		if err != nil {
			return err
		}

		if err = r.DeclineHandover(t, uc.policy, now); err != nil {
			return markHandoverErr(err)
		}
		if _, err = r.AppendSystemMessage(callerID, t.String()+" handover declined by "+role.String(), now); err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		r.RecomputeState(now)

		if err = tx.Rentals().Save(ctx, r); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func markHandoverErr(err error) error {
	switch {
	case errs.Is(err, rental.ErrHandoverExists):
		return errs.Mark(err, ErrHandoverExists)
	case errs.Is(err, rental.ErrHandoverNotReady):
		return errs.Mark(err, ErrHandoverNotReady)
	case errs.Is(err, rental.ErrHandoverMissing):
		return errs.Mark(err, ErrHandoverNotReady)
	case errs.Is(err, rental.ErrAlreadyAgreed):
		return errs.Mark(err, ErrHandoverAlreadyAgreed)
	default:
		return errs.Mark(err, ErrDomainValidation)
	}
}
