package commands

import (
	"context"
	"log/slog"

	"rentloop/internal/domain/rental"
	"rentloop/internal/infra"
	"rentloop/internal/pkg/clock"
	"rentloop/internal/pkg/errs"
	"rentloop/internal/usecase/shared"

	"github.com/google/uuid"
)

type PaymentCommands interface {
	// Pay records the single renter-side charge for a rental.
	Pay(ctx context.Context, rentalID, callerID, paymentMethodID uuid.UUID) error
	// Payout records the later lender-side settlement; the rental closes.
	Payout(ctx context.Context, rentalID, callerID uuid.UUID) error
}

type paymentCommandsImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	gateway  PaymentGateway
	notifier Notifier
}

func NewPaymentCommands(uow shared.UnitOfWork, clk clock.Clock, gateway PaymentGateway, notifier Notifier) PaymentCommands {
	return &paymentCommandsImpl{
		uow:      uow,
		clock:    clk,
		gateway:  gateway,
		notifier: notifier,
	}
}

func (uc *paymentCommandsImpl) Pay(ctx context.Context, rentalID, callerID, paymentMethodID uuid.UUID) error {
	now := uc.clock.Now()
	var (
		cert    *InsuranceCertificate
		charged bool
	)

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, role, err := loadRentalAs(ctx, tx, rentalID, callerID)
		if err != nil {
			return err
		}
		if err = requireRole(role, rental.RoleRenter); err != nil {
			return err
		}
		if r.Payment().PaidByRenter() {
			return ErrAlreadyPaid
		}

		method, err := tx.PaymentMethods().FindByID(ctx, paymentMethodID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrPaymentMethodNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if method.UserID != callerID {
			return ErrNotMethodOwner
		}

		// Boundary call before any write: a declined charge aborts the whole
		// operation with nothing persisted. The charged flag survives
		// transaction retries so the renter is never billed twice.
		if !charged {
			total := r.Payment().TotalAmount().Cents()
			if err = uc.gateway.Charge(ctx, method.ProviderToken, callerID, total); err != nil {
				return errs.Mark(err, ErrChargeDeclined)
			}
			charged = true
		}

		if err = r.MarkPaidByRenter(now); err != nil {
			return errs.Mark(err, ErrAlreadyPaid)
		}
		if _, err = r.AppendSystemMessage(callerID, "Payment received from renter", now); err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		r.RecomputeState(now)

		if err = tx.Rentals().Save(ctx, r); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if r.Insurance() != rental.InsuranceNone {
			itemEntity, ierr := tx.Items().FindByID(ctx, r.ItemID())
			itemName := ""
			if ierr == nil {
				itemName = itemEntity.Name()
			}
			cert = &InsuranceCertificate{
				RentalID:       r.ID(),
				RenterID:       r.RenterID(),
				ItemName:       itemName,
				Insurance:      r.Insurance().String(),
				InsuranceCents: r.Payment().InsuranceAmount().Cents(),
				RentalCents:    r.Payment().RentalAmount().Cents(),
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if cert != nil {
		if nerr := uc.notifier.SendInsuranceCertificate(ctx, *cert); nerr != nil {
			slog.Warn("failed to send insurance certificate",
				"rental_id", cert.RentalID.String(),
				"error", nerr.Error())
		}
	}
	return nil
}

func (uc *paymentCommandsImpl) Payout(ctx context.Context, rentalID, callerID uuid.UUID) error {
	now := uc.clock.Now()
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, role, err := loadRentalAs(ctx, tx, rentalID, callerID)
		if err != nil {
			return err
		}
		if err = requireRole(role, rental.RoleLender); err != nil {
			return err
		}

		if err = r.MarkPaidToLender(now); err != nil {
			switch {
			case errs.Is(err, rental.ErrPayoutBeforePayment):
				return ErrPayoutBeforePayment
			default:
				return errs.Mark(err, ErrAlreadyPaidOut)
			}
		}
		if _, err = r.AppendSystemMessage(callerID, "Payout settled to lender", now); err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		r.RecomputeState(now)

		if err = tx.Rentals().Save(ctx, r); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}
