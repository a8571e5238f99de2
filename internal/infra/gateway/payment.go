package gateway

import (
	"context"
	"log/slog"

	"rentloop/internal/pkg/config"
	"rentloop/internal/pkg/errs"
	"rentloop/internal/usecase/commands"

	"github.com/google/uuid"
)

var errChargeRejected = errs.New("charge rejected by gateway")

// ChargeGateway is the in-process stand-in for a real payment provider. It
// accepts every charge unless configured to decline, which exercises the
// failure path end to end.
type ChargeGateway struct {
	declineAll bool
}

func NewChargeGateway(cfg config.PaymentConfig) commands.PaymentGateway {
	return &ChargeGateway{declineAll: cfg.DeclineAll}
}

func (g *ChargeGateway) Charge(ctx context.Context, providerToken string, payerID uuid.UUID, amountCents int64) error {
	if g.declineAll {
		slog.Warn("charge declined",
			slog.String("payer_id", payerID.String()),
			slog.Int64("amount_cents", amountCents))
		return errChargeRejected
	}

	slog.Info("charge accepted",
		slog.String("payer_id", payerID.String()),
		slog.Int64("amount_cents", amountCents))
	return nil
}
