package commands

import (
	"context"
	"time"

	"rentloop/internal/domain/item"
	"rentloop/internal/domain/rental"
	"rentloop/internal/infra"
	"rentloop/internal/pkg/clock"
	"rentloop/internal/pkg/errs"
	"rentloop/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateRentalRequest struct {
	ItemID    uuid.UUID
	Start     time.Time
	End       time.Time
	Insurance string
}

type CreateRentalResult struct {
	RentalID uuid.UUID
}

type RentalCommands interface {
	Create(ctx context.Context, req CreateRentalRequest, renterID uuid.UUID) (*CreateRentalResult, error)
	Accept(ctx context.Context, rentalID, callerID uuid.UUID) error
	Decline(ctx context.Context, rentalID, callerID uuid.UUID) error
}

type rentalCommandsImpl struct {
	uow            shared.UnitOfWork
	factory        *rental.Factory
	clock          clock.Clock
	conflictPolicy item.ConflictPolicy
}

func NewRentalCommands(uow shared.UnitOfWork, factory *rental.Factory, clk clock.Clock) RentalCommands {
	return &rentalCommandsImpl{
		uow:     uow,
		factory: factory,
		clock:   clk,
		// Endpoint-only conflict detection; see item.ConflictPolicy.
		conflictPolicy: item.ConflictPolicy{},
	}
}

func (uc *rentalCommandsImpl) Create(ctx context.Context, req CreateRentalRequest, renterID uuid.UUID) (*CreateRentalResult, error) {
	insurance, err := rental.NewInsuranceType(req.Insurance)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	period, err := rental.NewPeriod(req.Start, req.End)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		itemEntity, derr := tx.Items().FindByID(ctx, req.ItemID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrItemNotFound
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}

		r, derr := uc.factory.CreateRental(itemEntity, renterID, period, insurance)
		if derr != nil {
			if errs.Is(derr, rental.ErrOwnItem) {
				return ErrOwnItem
			}
			return errs.Mark(derr, ErrDomainValidation)
		}

		if derr = tx.Rentals().Create(ctx, r); derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		createdID = r.ID()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateRentalResult{RentalID: createdID}, nil
}

// Accept commits the rental's range to the item's availability blacklist
// before the state flips; a conflicting range leaves the rental an OFFER.
func (uc *rentalCommandsImpl) Accept(ctx context.Context, rentalID, callerID uuid.UUID) error {
	now := uc.clock.Now()
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, role, err := loadRentalAs(ctx, tx, rentalID, callerID)
		if err != nil {
			return err
		}
		if err = requireRole(role, rental.RoleLender); err != nil {
			return err
		}

		itemEntity, err := tx.Items().FindByID(ctx, r.ItemID())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrItemNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err = itemEntity.CommitRange(r.Period().Start(), r.Period().End(), uc.conflictPolicy, now); err != nil {
			return errs.Mark(err, ErrAvailabilityConflict)
		}
		if err = r.Accept(now); err != nil {
			return errs.Mark(err, ErrNotOpenOffer)
		}
		if _, err = r.AppendSystemMessage(callerID, "Rental accepted by lender", now); err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		if err = tx.Items().Save(ctx, itemEntity); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err = tx.Rentals().Save(ctx, r); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (uc *rentalCommandsImpl) Decline(ctx context.Context, rentalID, callerID uuid.UUID) error {
	now := uc.clock.Now()
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, role, err := loadRentalAs(ctx, tx, rentalID, callerID)
		if err != nil {
			return err
		}
		if err = requireRole(role, rental.RoleLender); err != nil {
			return err
		}

		if err = r.Decline(now); err != nil {
			return errs.Mark(err, ErrNotOpenOffer)
		}
		if _, err = r.AppendSystemMessage(callerID, "Rental declined by lender", now); err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		if err = tx.Rentals().Save(ctx, r); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}
