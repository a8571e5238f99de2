package queries

import (
	"context"

	"rentloop/internal/domain/item"
	"rentloop/internal/infra"
	"rentloop/internal/pkg/errs"
	"rentloop/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrItemNotFound = errs.New("item not found")

type ItemQueries interface {
	GetByID(ctx context.Context, itemID uuid.UUID) (*ItemView, error)
	ListByLender(ctx context.Context, lenderID uuid.UUID) ([]*ItemView, error)
}

type itemQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewItemQueries(uow shared.UnitOfWork) ItemQueries {
	return &itemQueriesImpl{uow: uow}
}

func (q *itemQueriesImpl) GetByID(ctx context.Context, itemID uuid.UUID) (*ItemView, error) {
	var view *ItemView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		it, err := tx.Items().FindByID(ctx, itemID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrItemNotFound)
			}
			return errs.Wrap(err, "failed to load item")
		}
		view = buildItemView(it)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *itemQueriesImpl) ListByLender(ctx context.Context, lenderID uuid.UUID) ([]*ItemView, error) {
	var views []*ItemView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		items, err := tx.Items().FindByLender(ctx, lenderID)
		if err != nil {
			return errs.Wrap(err, "failed to list items")
		}
		views = make([]*ItemView, 0, len(items))
		for _, it := range items {
			views = append(views, buildItemView(it))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

func buildItemView(it *item.Item) *ItemView {
	av := it.Availability()
	weekdays := make([]int, 0, 7)
	for _, d := range av.Weekdays() {
		weekdays = append(weekdays, int(d))
	}
	return &ItemView{
		ID:            it.ID(),
		LenderID:      it.LenderID(),
		Name:          it.Name(),
		Description:   it.Description(),
		FirstDayCents: it.Pricing().FirstDayCents,
		PerDayCents:   it.Pricing().PerDayCents,
		Weekdays:      weekdays,
		Whitelist:     buildSpanViews(av.Whitelist()),
		Blacklist:     buildSpanViews(av.Blacklist()),
		AverageRating: it.Rating().AverageRating,
		RatingCount:   it.Rating().Count,
		CreatedAt:     it.CreatedAt(),
		UpdatedAt:     it.UpdatedAt(),
	}
}

func buildSpanViews(spans []item.Span) []SpanView {
	views := make([]SpanView, 0, len(spans))
	for _, s := range spans {
		views = append(views, SpanView{From: s.From, To: s.To})
	}
	return views
}
