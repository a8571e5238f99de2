//go:build unit

package user_test

import (
	"testing"
	"time"

	"rentloop/internal/domain/rating"
	"rentloop/internal/domain/user"
	"rentloop/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func TestNewUser(t *testing.T) {
	t.Run("valid user", func(t *testing.T) {
		u, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, u.ID())
		assert.Equal(t, "renter@example.com", u.Email().String())
		assert.Equal(t, "Test Renter", u.Name())
		assert.False(t, u.Verified())
		assert.Equal(t, rating.Aggregate{}, u.Rating())
	})

	t.Run("email validation", func(t *testing.T) {
		cases := []struct {
			name  string
			email string
			errIs error
		}{
			{name: "plain address accepted", email: "user@example.com"},
			{name: "case and whitespace normalized", email: "  User@Example.COM "},
			{name: "empty rejected", email: "", errIs: user.ErrInvalidEmail},
			{name: "missing at sign rejected", email: "userexample.com", errIs: user.ErrInvalidEmail},
			{name: "missing domain dot rejected", email: "user@examplecom", errIs: user.ErrInvalidEmail},
			{name: "trailing at sign rejected", email: "user@", errIs: user.ErrInvalidEmail},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				email, err := user.NewEmail(c.email)
				if c.errIs != nil {
					require.ErrorIs(t, err, c.errIs)
					return
				}
				require.NoError(t, err)
				assert.Equal(t, "user@example.com", email.String())
			})
		}
	})

	t.Run("blank name rejected", func(t *testing.T) {
		_, err := builder.NewUserBuilder().WithName("   ").BuildDomain()
		require.ErrorIs(t, err, user.ErrEmptyName)
	})
}

func TestUserMutations(t *testing.T) {
	t.Run("verification sticks", func(t *testing.T) {
		u, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)

		u.MarkVerified(now)
		assert.True(t, u.Verified())
	})

	t.Run("rating aggregate is replaced wholesale", func(t *testing.T) {
		u, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)

		u.SetRating(rating.Aggregate{AverageRating: 4.5, Count: 2}, now)
		assert.Equal(t, rating.Aggregate{AverageRating: 4.5, Count: 2}, u.Rating())
	})
}
