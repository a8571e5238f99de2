package repository

import (
	"context"
	"encoding/json"

	"rentloop/internal/domain/rating"
	"rentloop/internal/infra"
	"rentloop/internal/infra/repository/converter"
	"rentloop/internal/usecase/shared"

	"github.com/google/uuid"
)

// Ratings are append-only; there is no update path and no version column.
type RatingRepository struct {
	db DBTX
}

func NewRatingRepository(db DBTX) shared.RatingRepository {
	return &RatingRepository{db: db}
}

func (r *RatingRepository) Create(ctx context.Context, rt *rating.Rating) error {
	raw, err := json.Marshal(converter.RatingToDoc(rt))
	if err != nil {
		return infra.NewRepoErr(infra.KindDBFailure, "failed to encode rating", err)
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO ratings (id, target_id, rental_id, doc) VALUES ($1, $2, $3, $4)`,
		rt.ID(), rt.TargetID(), rt.RentalID(), raw,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create rating", err)
	}
	return nil
}

func (r *RatingRepository) FindByTarget(ctx context.Context, targetID uuid.UUID) ([]*rating.Rating, error) {
	rows, err := r.db.Query(ctx,
		`SELECT doc FROM ratings WHERE target_id = $1`,
		targetID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list ratings", err)
	}
	defer rows.Close()

	var ratings []*rating.Rating
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, infra.WrapRepoErr("failed to scan rating row", err)
		}
		var doc converter.RatingDoc
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, infra.NewRepoErr(infra.KindDBFailure, "failed to decode rating", err)
		}
		rt, err := converter.RatingFromDoc(doc)
		if err != nil {
			return nil, infra.NewRepoErr(infra.KindDBFailure, "failed to restore rating", err)
		}
		ratings = append(ratings, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate rating rows", err)
	}
	return ratings, nil
}
