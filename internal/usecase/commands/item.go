package commands

import (
	"context"
	"time"

	"rentloop/internal/domain/item"
	"rentloop/internal/pkg/clock"
	"rentloop/internal/pkg/errs"
	"rentloop/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateItemRequest struct {
	Name          string
	Description   string
	FirstDayCents int64
	PerDayCents   int64
	Weekdays      []time.Weekday
	Whitelist     []SpanInput
	Blacklist     []SpanInput
}

type SpanInput struct {
	From time.Time
	To   time.Time
}

type ItemCommands interface {
	Create(ctx context.Context, req CreateItemRequest, lenderID uuid.UUID) (uuid.UUID, error)
	RegisterPaymentMethod(ctx context.Context, userID uuid.UUID, providerToken string) (uuid.UUID, error)
}

type itemCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewItemCommands(uow shared.UnitOfWork, clk clock.Clock) ItemCommands {
	return &itemCommandsImpl{
		uow:   uow,
		clock: clk,
	}
}

func (uc *itemCommandsImpl) Create(ctx context.Context, req CreateItemRequest, lenderID uuid.UUID) (uuid.UUID, error) {
	pricing, err := item.NewPricing(req.FirstDayCents, req.PerDayCents)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}
	whitelist, err := toSpans(req.Whitelist)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}
	blacklist, err := toSpans(req.Blacklist)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}
	availability := item.NewAvailability(req.Weekdays, whitelist, blacklist)

	now := uc.clock.Now()
	var itemID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		it, err := item.NewItem(lenderID, req.Name, req.Description, pricing, availability, now)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		if err = tx.Items().Create(ctx, it); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		itemID = it.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return itemID, nil
}

func (uc *itemCommandsImpl) RegisterPaymentMethod(ctx context.Context, userID uuid.UUID, providerToken string) (uuid.UUID, error) {
	if providerToken == "" {
		return uuid.Nil, errs.Mark(errs.New("provider token cannot be empty"), ErrDomainValidation)
	}

	method := &shared.PaymentMethodSnapshot{
		ID:            uuid.New(),
		UserID:        userID,
		ProviderToken: providerToken,
	}
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.PaymentMethods().Create(ctx, method); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return method.ID, nil
}

func toSpans(inputs []SpanInput) ([]item.Span, error) {
	spans := make([]item.Span, 0, len(inputs))
	for _, in := range inputs {
		s, err := item.NewSpan(in.From, in.To)
		if err != nil {
			return nil, err
		}
		spans = append(spans, s)
	}
	return spans, nil
}
