package commands

import (
	"context"

	"rentloop/internal/domain/rental"
	"rentloop/internal/infra"
	"rentloop/internal/pkg/errs"
	"rentloop/internal/usecase/shared"

	"github.com/google/uuid"
)

// loadRentalAs is the access check every rental operation runs first: load
// the rental, resolve the caller's role, fail NotFound/Forbidden otherwise.
func loadRentalAs(ctx context.Context, tx shared.Tx, rentalID, userID uuid.UUID) (*rental.Rental, rental.Role, error) {
	r, err := tx.Rentals().FindByID(ctx, rentalID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, "", ErrRentalNotFound
		}
		return nil, "", errs.Mark(err, ErrDatabaseOperationFailed)
	}

	role, err := r.RoleOf(userID)
	if err != nil {
		return nil, "", errs.Mark(err, ErrNotParticipant)
	}
	return r, role, nil
}

// requireRole gates an operation to one side of the rental.
func requireRole(role, required rental.Role) error {
	if role == required {
		return nil
	}
	if required == rental.RoleLender {
		return ErrLenderOnly
	}
	return ErrRenterOnly
}
