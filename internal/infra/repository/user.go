package repository

import (
	"context"
	"encoding/json"

	"rentloop/internal/domain/user"
	"rentloop/internal/infra"
	"rentloop/internal/infra/repository/converter"
	"rentloop/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) shared.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	var (
		raw     []byte
		version int64
	)
	err := r.db.QueryRow(ctx,
		`SELECT doc, version FROM users WHERE id = $1`,
		id,
	).Scan(&raw, &version)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return decodeUser(raw, version)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	var (
		raw     []byte
		version int64
	)
	err := r.db.QueryRow(ctx,
		`SELECT doc, version FROM users WHERE email = $1`,
		email,
	).Scan(&raw, &version)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	return decodeUser(raw, version)
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	raw, err := json.Marshal(converter.UserToDoc(u))
	if err != nil {
		return infra.NewRepoErr(infra.KindDBFailure, "failed to encode user", err)
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO users (id, email, doc, version) VALUES ($1, $2, $3, 1)`,
		u.ID(), u.Email().String(), raw,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) Save(ctx context.Context, u *user.User) error {
	raw, err := json.Marshal(converter.UserToDoc(u))
	if err != nil {
		return infra.NewRepoErr(infra.KindDBFailure, "failed to encode user", err)
	}
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET doc = $1, version = version + 1
		 WHERE id = $2 AND version = $3`,
		raw, u.ID(), u.Version(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindVersionConflict, "user modified concurrently", nil)
	}
	return nil
}

func decodeUser(raw []byte, version int64) (*user.User, error) {
	var doc converter.UserDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, infra.NewRepoErr(infra.KindDBFailure, "failed to decode user", err)
	}
	u, err := converter.UserFromDoc(doc, version)
	if err != nil {
		return nil, infra.NewRepoErr(infra.KindDBFailure, "failed to restore user", err)
	}
	return u, nil
}
