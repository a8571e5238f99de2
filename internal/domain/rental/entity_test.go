//go:build unit

package rental_test

import (
	"strings"
	"testing"
	"time"

	"rentloop/internal/domain/rating"
	"rentloop/internal/domain/rental"
	"rentloop/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 5, 15, 0, 0, 0, time.UTC)

func TestRentalRoles(t *testing.T) {
	b := builder.NewRentalBuilder()
	r := b.BuildDomain()

	t.Run("renter and lender resolve to their roles", func(t *testing.T) {
		role, err := r.RoleOf(b.RenterID)
		require.NoError(t, err)
		assert.Equal(t, rental.RoleRenter, role)

		role, err = r.RoleOf(b.LenderID)
		require.NoError(t, err)
		assert.Equal(t, rental.RoleLender, role)
	})

	t.Run("outsider is rejected", func(t *testing.T) {
		_, err := r.RoleOf(uuid.New())
		require.ErrorIs(t, err, rental.ErrNotParticipant)
	})

	t.Run("participant lookup is the inverse of role resolution", func(t *testing.T) {
		assert.Equal(t, b.RenterID, r.ParticipantID(rental.RoleRenter))
		assert.Equal(t, b.LenderID, r.ParticipantID(rental.RoleLender))
	})
}

func TestRentalAcceptDecline(t *testing.T) {
	t.Run("accept moves an open offer to accepted", func(t *testing.T) {
		r := builder.NewRentalBuilder().BuildDomain()
		require.NoError(t, r.Accept(now))
		assert.Equal(t, rental.StateAccepted, r.State())
	})

	t.Run("decline moves an open offer to declined", func(t *testing.T) {
		r := builder.NewRentalBuilder().BuildDomain()
		require.NoError(t, r.Decline(now))
		assert.Equal(t, rental.StateDeclined, r.State())
	})

	t.Run("accept twice fails", func(t *testing.T) {
		r := builder.NewRentalBuilder().AsAccepted().BuildDomain()
		require.ErrorIs(t, r.Accept(now), rental.ErrNotOpenOffer)
	})

	t.Run("decline after accept fails", func(t *testing.T) {
		r := builder.NewRentalBuilder().AsAccepted().BuildDomain()
		require.ErrorIs(t, r.Decline(now), rental.ErrNotOpenOffer)
	})
}

func TestRentalPayment(t *testing.T) {
	t.Run("renter payment is recorded once", func(t *testing.T) {
		r := builder.NewRentalBuilder().AsAccepted().BuildDomain()
		require.NoError(t, r.MarkPaidByRenter(now))
		require.NotNil(t, r.Payment().FromRenter())

		require.ErrorIs(t, r.MarkPaidByRenter(now), rental.ErrAlreadyPaid)
	})

	t.Run("payout requires renter payment first", func(t *testing.T) {
		r := builder.NewRentalBuilder().AsAccepted().BuildDomain()
		require.ErrorIs(t, r.MarkPaidToLender(now), rental.ErrPayoutBeforePayment)
	})

	t.Run("payout is recorded once", func(t *testing.T) {
		r := builder.NewRentalBuilder().AsPaid().BuildDomain()
		require.NoError(t, r.MarkPaidToLender(now))
		require.ErrorIs(t, r.MarkPaidToLender(now), rental.ErrAlreadyPaidOut)
	})

	t.Run("total is rental plus insurance", func(t *testing.T) {
		r := builder.NewRentalBuilder().BuildDomain()
		assert.Equal(t, int64(4400), r.Payment().TotalAmount().Cents())
	})
}

func TestRentalMessages(t *testing.T) {
	t.Run("participants can post", func(t *testing.T) {
		b := builder.NewRentalBuilder()
		r := b.BuildDomain()

		msg, err := r.AppendUserMessage(b.RenterID, "Is the drill available this weekend?", now)
		require.NoError(t, err)
		assert.Equal(t, b.RenterID, msg.AuthorID())
		assert.False(t, msg.IsSystem())
		assert.False(t, msg.IsRead())
		require.Len(t, r.Messages(), 1)
	})

	t.Run("outsiders cannot post", func(t *testing.T) {
		r := builder.NewRentalBuilder().BuildDomain()
		_, err := r.AppendUserMessage(uuid.New(), "hello", now)
		require.ErrorIs(t, err, rental.ErrNotParticipant)
	})

	t.Run("empty and oversized texts are rejected", func(t *testing.T) {
		b := builder.NewRentalBuilder()
		r := b.BuildDomain()

		_, err := r.AppendUserMessage(b.RenterID, "   ", now)
		require.ErrorIs(t, err, rental.ErrEmptyMessage)

		_, err = r.AppendUserMessage(b.RenterID, strings.Repeat("x", rental.MaxMessageLength+1), now)
		require.ErrorIs(t, err, rental.ErrMessageTooLong)
	})

	t.Run("reading marks only the other party's messages", func(t *testing.T) {
		b := builder.NewRentalBuilder()
		r := b.BuildDomain()

		_, err := r.AppendUserMessage(b.RenterID, "first", now)
		require.NoError(t, err)
		_, err = r.AppendUserMessage(b.LenderID, "second", now)
		require.NoError(t, err)

		marked := r.MarkReadFromOthers(b.RenterID)
		assert.Equal(t, 1, marked)

		// Marking again is a no-op.
		assert.Equal(t, 0, r.MarkReadFromOthers(b.RenterID))

		msgs := r.Messages()
		assert.False(t, msgs[0].IsRead())
		assert.True(t, msgs[1].IsRead())
	})
}

func TestRentalRatingSlots(t *testing.T) {
	t.Run("each slot is set at most once", func(t *testing.T) {
		r := builder.NewRentalBuilder().BuildDomain()

		require.NoError(t, r.AttachRating(rating.KindItem, uuid.New(), now))
		require.ErrorIs(t, r.AttachRating(rating.KindItem, uuid.New(), now), rental.ErrRatingSlotTaken)

		assert.True(t, r.HasRating(rating.KindItem))
		assert.False(t, r.HasRating(rating.KindRenter))
	})

	t.Run("rating targets follow the kind", func(t *testing.T) {
		b := builder.NewRentalBuilder()
		r := b.BuildDomain()

		assert.Equal(t, b.ItemID, r.RatingTargetID(rating.KindItem))
		assert.Equal(t, b.RenterID, r.RatingTargetID(rating.KindRenter))
		assert.Equal(t, b.LenderID, r.RatingTargetID(rating.KindLender))
	})

	t.Run("rater roles follow the kind", func(t *testing.T) {
		assert.Equal(t, rental.RoleRenter, rental.RaterRole(rating.KindItem))
		assert.Equal(t, rental.RoleRenter, rental.RaterRole(rating.KindLender))
		assert.Equal(t, rental.RoleLender, rental.RaterRole(rating.KindRenter))
	})
}
