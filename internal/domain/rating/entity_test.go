//go:build unit

package rating_test

import (
	"strings"
	"testing"
	"time"

	"rentloop/internal/domain/rating"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 20, 18, 0, 0, 0, time.UTC)

func TestNewRating(t *testing.T) {
	targetID, rentalID, authorID := uuid.New(), uuid.New(), uuid.New()

	t.Run("valid rating", func(t *testing.T) {
		r, err := rating.NewRating(rating.KindItem, targetID, rentalID, authorID, 4, "  solid drill  ", now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, r.ID())
		assert.Equal(t, rating.KindItem, r.Kind())
		assert.Equal(t, targetID, r.TargetID())
		assert.Equal(t, 4, r.Stars())
		assert.Equal(t, "solid drill", r.Text())
	})

	t.Run("stars validation", func(t *testing.T) {
		for _, stars := range []int{0, 6, -1} {
			_, err := rating.NewRating(rating.KindItem, targetID, rentalID, authorID, stars, "", now)
			require.ErrorIs(t, err, rating.ErrInvalidStars)
		}
		for stars := 1; stars <= 5; stars++ {
			_, err := rating.NewRating(rating.KindItem, targetID, rentalID, authorID, stars, "", now)
			require.NoError(t, err)
		}
	})

	t.Run("unknown kind rejected", func(t *testing.T) {
		_, err := rating.NewRating(rating.Kind("platform"), targetID, rentalID, authorID, 3, "", now)
		require.ErrorIs(t, err, rating.ErrInvalidKind)
	})

	t.Run("oversized text rejected", func(t *testing.T) {
		_, err := rating.NewRating(rating.KindLender, targetID, rentalID, authorID, 3, strings.Repeat("x", rating.MaxTextLength+1), now)
		require.ErrorIs(t, err, rating.ErrTextTooLong)
	})
}

func TestRecompute(t *testing.T) {
	targetID, rentalID, authorID := uuid.New(), uuid.New(), uuid.New()

	mustRating := func(stars int) *rating.Rating {
		r, err := rating.NewRating(rating.KindItem, targetID, rentalID, authorID, stars, "", now)
		require.NoError(t, err)
		return r
	}

	t.Run("empty set yields the zero aggregate", func(t *testing.T) {
		agg := rating.Recompute(nil)
		assert.Equal(t, rating.Aggregate{}, agg)
	})

	t.Run("aggregate is the mean over the full set", func(t *testing.T) {
		agg := rating.Recompute([]*rating.Rating{mustRating(5), mustRating(4), mustRating(2)})
		assert.InDelta(t, 11.0/3.0, agg.AverageRating, 1e-9)
		assert.Equal(t, 3, agg.Count)
	})

	t.Run("single rating is its own mean", func(t *testing.T) {
		agg := rating.Recompute([]*rating.Rating{mustRating(3)})
		assert.Equal(t, rating.Aggregate{AverageRating: 3, Count: 1}, agg)
	})
}
