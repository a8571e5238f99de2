package repository

import (
	"context"

	"rentloop/internal/infra"
	"rentloop/internal/usecase/shared"

	"github.com/google/uuid"
)

type PaymentMethodRepository struct {
	db DBTX
}

func NewPaymentMethodRepository(db DBTX) shared.PaymentMethodRepository {
	return &PaymentMethodRepository{db: db}
}

func (r *PaymentMethodRepository) FindByID(ctx context.Context, id uuid.UUID) (*shared.PaymentMethodSnapshot, error) {
	var m shared.PaymentMethodSnapshot
	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, provider_token FROM payment_methods WHERE id = $1`,
		id,
	).Scan(&m.ID, &m.UserID, &m.ProviderToken)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find payment method", err)
	}
	return &m, nil
}

func (r *PaymentMethodRepository) Create(ctx context.Context, m *shared.PaymentMethodSnapshot) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO payment_methods (id, user_id, provider_token) VALUES ($1, $2, $3)`,
		m.ID, m.UserID, m.ProviderToken,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create payment method", err)
	}
	return nil
}
