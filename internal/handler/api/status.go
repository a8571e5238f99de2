package api

import (
	"errors"
	"net/http"

	"rentloop/internal/usecase/commands"
)

// statusOf maps workflow sentinels to HTTP statuses. Unrecognized errors are
// internal by default so nothing leaks by accident.
func statusOf(err error) int {
	switch {
	case errors.Is(err, commands.ErrRentalNotFound),
		errors.Is(err, commands.ErrItemNotFound),
		errors.Is(err, commands.ErrUserNotFound),
		errors.Is(err, commands.ErrPaymentMethodNotFound):
		return http.StatusNotFound

	case errors.Is(err, commands.ErrNotParticipant),
		errors.Is(err, commands.ErrLenderOnly),
		errors.Is(err, commands.ErrRenterOnly),
		errors.Is(err, commands.ErrNotMethodOwner),
		errors.Is(err, commands.ErrOwnItem),
		errors.Is(err, commands.ErrWrongRaterRole):
		return http.StatusForbidden

	case errors.Is(err, commands.ErrAvailabilityConflict),
		errors.Is(err, commands.ErrAlreadyPaid),
		errors.Is(err, commands.ErrAlreadyPaidOut),
		errors.Is(err, commands.ErrPayoutBeforePayment),
		errors.Is(err, commands.ErrRatingSlotTaken),
		errors.Is(err, commands.ErrHandoverExists),
		errors.Is(err, commands.ErrHandoverNotReady),
		errors.Is(err, commands.ErrHandoverAlreadyAgreed),
		errors.Is(err, commands.ErrNotOpenOffer),
		errors.Is(err, commands.ErrEmailTaken):
		return http.StatusConflict

	case errors.Is(err, commands.ErrInvalidCredentials):
		return http.StatusUnauthorized

	case errors.Is(err, commands.ErrDomainValidation):
		return http.StatusBadRequest

	case errors.Is(err, commands.ErrChargeDeclined):
		return http.StatusPaymentRequired

	default:
		return http.StatusInternalServerError
	}
}
