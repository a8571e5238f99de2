package gateway

import (
	"context"
	"log/slog"

	"rentloop/internal/usecase/commands"

	"github.com/google/uuid"
)

// LogNotifier writes notifications to the structured log instead of sending
// mail. Swapping in a real sender only touches this file.
type LogNotifier struct{}

func NewLogNotifier() commands.Notifier {
	return &LogNotifier{}
}

func (n *LogNotifier) SendInsuranceCertificate(ctx context.Context, cert commands.InsuranceCertificate) error {
	slog.Info("insurance certificate issued",
		slog.String("rental_id", cert.RentalID.String()),
		slog.String("renter_id", cert.RenterID.String()),
		slog.String("item_name", cert.ItemName),
		slog.String("insurance", cert.Insurance),
		slog.Int64("insurance_cents", cert.InsuranceCents),
		slog.Int64("rental_cents", cert.RentalCents))
	return nil
}

func (n *LogNotifier) SendVerificationEmail(ctx context.Context, userID uuid.UUID, email string) error {
	slog.Info("verification email queued",
		slog.String("user_id", userID.String()),
		slog.String("email", email))
	return nil
}
