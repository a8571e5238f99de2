package repository

import (
	"context"
	"encoding/json"

	"rentloop/internal/domain/item"
	"rentloop/internal/infra"
	"rentloop/internal/infra/repository/converter"
	"rentloop/internal/usecase/shared"

	"github.com/google/uuid"
)

type ItemRepository struct {
	db DBTX
}

func NewItemRepository(db DBTX) shared.ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*item.Item, error) {
	var (
		raw     []byte
		version int64
	)
	err := r.db.QueryRow(ctx,
		`SELECT doc, version FROM items WHERE id = $1`,
		id,
	).Scan(&raw, &version)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find item", err)
	}
	return decodeItem(raw, version)
}

func (r *ItemRepository) Create(ctx context.Context, it *item.Item) error {
	raw, err := json.Marshal(converter.ItemToDoc(it))
	if err != nil {
		return infra.NewRepoErr(infra.KindDBFailure, "failed to encode item", err)
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO items (id, lender_id, doc, version) VALUES ($1, $2, $3, 1)`,
		it.ID(), it.LenderID(), raw,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create item", err)
	}
	return nil
}

func (r *ItemRepository) Save(ctx context.Context, it *item.Item) error {
	raw, err := json.Marshal(converter.ItemToDoc(it))
	if err != nil {
		return infra.NewRepoErr(infra.KindDBFailure, "failed to encode item", err)
	}
	tag, err := r.db.Exec(ctx,
		`UPDATE items SET doc = $1, version = version + 1
		 WHERE id = $2 AND version = $3`,
		raw, it.ID(), it.Version(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindVersionConflict, "item modified concurrently", nil)
	}
	return nil
}

func (r *ItemRepository) FindByLender(ctx context.Context, lenderID uuid.UUID) ([]*item.Item, error) {
	rows, err := r.db.Query(ctx,
		`SELECT doc, version FROM items WHERE lender_id = $1
		 ORDER BY doc->>'createdAt' DESC`,
		lenderID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items", err)
	}
	defer rows.Close()

	var items []*item.Item
	for rows.Next() {
		var (
			raw     []byte
			version int64
		)
		if err := rows.Scan(&raw, &version); err != nil {
			return nil, infra.WrapRepoErr("failed to scan item row", err)
		}
		it, err := decodeItem(raw, version)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate item rows", err)
	}
	return items, nil
}

func decodeItem(raw []byte, version int64) (*item.Item, error) {
	var doc converter.ItemDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, infra.NewRepoErr(infra.KindDBFailure, "failed to decode item", err)
	}
	return converter.ItemFromDoc(doc, version), nil
}
