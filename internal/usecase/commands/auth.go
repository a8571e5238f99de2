package commands

import (
	"context"
	"log/slog"

	"rentloop/internal/domain/user"
	"rentloop/internal/infra"
	"rentloop/internal/pkg/clock"
	"rentloop/internal/pkg/errs"
	"rentloop/internal/pkg/jwt"
	"rentloop/internal/pkg/password"
	"rentloop/internal/usecase/shared"

	"github.com/google/uuid"
)

type SignupRequest struct {
	Email    string
	Name     string
	Password string
}

type AuthCommands interface {
	Signup(ctx context.Context, req SignupRequest) (uuid.UUID, error)
	Login(ctx context.Context, email, plainPassword string) (string, error)
}

type authCommandsImpl struct {
	uow      shared.UnitOfWork
	jwtSvc   *jwt.Service
	notifier Notifier
	clock    clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, jwtSvc *jwt.Service, notifier Notifier, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:      uow,
		jwtSvc:   jwtSvc,
		notifier: notifier,
		clock:    clk,
	}
}

func (uc *authCommandsImpl) Signup(ctx context.Context, req SignupRequest) (uuid.UUID, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}
	hash, err := password.HashPassword(req.Password)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	now := uc.clock.Now()
	var userID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := user.NewUser(email, req.Name, hash, now)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		if err = tx.Users().Create(ctx, u); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrEmailTaken)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		userID = u.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	if err := uc.notifier.SendVerificationEmail(ctx, userID, email.String()); err != nil {
		slog.Warn("failed to send verification email",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()))
	}
	return userID, nil
}

func (uc *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (string, error) {
	normalized, err := user.NewEmail(email)
	if err != nil {
		return "", errs.Mark(err, ErrInvalidCredentials)
	}

	var u *user.User
	err = uc.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, err := tx.Users().FindByEmail(ctx, normalized.String())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrInvalidCredentials)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		u = found
		return nil
	})
	if err != nil {
		return "", err
	}

	if err := password.ComparePassword(u.PasswordHash(), plainPassword); err != nil {
		return "", errs.Mark(err, ErrInvalidCredentials)
	}

	token, err := uc.jwtSvc.GenerateToken(u.ID())
	if err != nil {
		return "", errs.Wrap(err, "failed to generate token")
	}
	return token, nil
}
