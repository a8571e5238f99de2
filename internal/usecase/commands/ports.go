package commands

import (
	"context"

	"github.com/google/uuid"
)

// PaymentGateway is the charge boundary. The call is synchronous; a failure
// aborts the paying operation before any state is persisted.
type PaymentGateway interface {
	Charge(ctx context.Context, providerToken string, payerID uuid.UUID, amountCents int64) error
}

// InsuranceCertificate is the snapshot handed to the notifier when a rental
// with insurance is paid.
type InsuranceCertificate struct {
	RentalID       uuid.UUID
	RenterID       uuid.UUID
	ItemName       string
	Insurance      string
	InsuranceCents int64
	RentalCents    int64
}

// Notifier triggers are fire-and-forget: failures are logged by the caller
// and never fail the triggering operation.
type Notifier interface {
	SendInsuranceCertificate(ctx context.Context, cert InsuranceCertificate) error
	SendVerificationEmail(ctx context.Context, userID uuid.UUID, email string) error
}
