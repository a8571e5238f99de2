package repository

import (
	"context"
	"encoding/json"

	"rentloop/internal/domain/rental"
	"rentloop/internal/infra"
	"rentloop/internal/infra/repository/converter"
	"rentloop/internal/usecase/shared"

	"github.com/google/uuid"
)

type RentalRepository struct {
	db DBTX
}

func NewRentalRepository(db DBTX) shared.RentalRepository {
	return &RentalRepository{db: db}
}

func (r *RentalRepository) FindByID(ctx context.Context, id uuid.UUID) (*rental.Rental, error) {
	var (
		raw     []byte
		version int64
	)
	err := r.db.QueryRow(ctx,
		`SELECT doc, version FROM rentals WHERE id = $1`,
		id,
	).Scan(&raw, &version)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find rental", err)
	}
	return decodeRental(raw, version)
}

func (r *RentalRepository) Create(ctx context.Context, rent *rental.Rental) error {
	doc := converter.RentalToDoc(rent)
	raw, err := json.Marshal(doc)
	if err != nil {
		return infra.NewRepoErr(infra.KindDBFailure, "failed to encode rental", err)
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO rentals (id, item_id, renter_id, lender_id, doc, version)
		 VALUES ($1, $2, $3, $4, $5, 1)`,
		rent.ID(), rent.ItemID(), rent.RenterID(), rent.LenderID(), raw,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create rental", err)
	}
	return nil
}

// Save is compare-and-swap on the loaded version. Zero rows affected means a
// concurrent writer got there first.
func (r *RentalRepository) Save(ctx context.Context, rent *rental.Rental) error {
	doc := converter.RentalToDoc(rent)
	raw, err := json.Marshal(doc)
	if err != nil {
		return infra.NewRepoErr(infra.KindDBFailure, "failed to encode rental", err)
	}
	tag, err := r.db.Exec(ctx,
		`UPDATE rentals SET doc = $1, version = version + 1
		 WHERE id = $2 AND version = $3`,
		raw, rent.ID(), rent.Version(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save rental", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindVersionConflict, "rental modified concurrently", nil)
	}
	return nil
}

func (r *RentalRepository) FindByParticipant(ctx context.Context, userID uuid.UUID) ([]*rental.Rental, error) {
	rows, err := r.db.Query(ctx,
		`SELECT doc, version FROM rentals
		 WHERE renter_id = $1 OR lender_id = $1
		 ORDER BY doc->>'createdAt' DESC`,
		userID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rentals", err)
	}
	defer rows.Close()

	var rentals []*rental.Rental
	for rows.Next() {
		var (
			raw     []byte
			version int64
		)
		if err := rows.Scan(&raw, &version); err != nil {
			return nil, infra.WrapRepoErr("failed to scan rental row", err)
		}
		rent, err := decodeRental(raw, version)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, rent)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate rental rows", err)
	}
	return rentals, nil
}

func decodeRental(raw []byte, version int64) (*rental.Rental, error) {
	var doc converter.RentalDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, infra.NewRepoErr(infra.KindDBFailure, "failed to decode rental", err)
	}
	rent, err := converter.RentalFromDoc(doc, version)
	if err != nil {
		return nil, infra.NewRepoErr(infra.KindDBFailure, "failed to restore rental", err)
	}
	return rent, nil
}
