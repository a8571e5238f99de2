package commands

import (
	"context"

	"rentloop/internal/pkg/clock"
	"rentloop/internal/pkg/errs"
	"rentloop/internal/usecase/shared"

	"github.com/google/uuid"
)

type ChatCommands interface {
	PostMessage(ctx context.Context, rentalID uuid.UUID, callerID uuid.UUID, text string) (uuid.UUID, error)
}

type chatCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewChatCommands(uow shared.UnitOfWork, clk clock.Clock) ChatCommands {
	return &chatCommandsImpl{
		uow:   uow,
		clock: clk,
	}
}

// PostMessage appends a user message to the rental's conversation. Messages
// never change rental state; the thread stays open even after closure.
func (uc *chatCommandsImpl) PostMessage(ctx context.Context, rentalID uuid.UUID, callerID uuid.UUID, text string) (uuid.UUID, error) {
	now := uc.clock.Now()

	var messageID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, _, err := loadRentalAs(ctx, tx, rentalID, callerID)
		if err != nil {
			return err
		}

		msg, err := r.AppendUserMessage(callerID, text, now)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		messageID = msg.ID()

		if err = tx.Rentals().Save(ctx, r); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return messageID, nil
}
