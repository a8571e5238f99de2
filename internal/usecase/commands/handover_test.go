//go:build unit

package commands_test

import (
	"context"
	"testing"

	"rentloop/internal/domain/rental"
	"rentloop/internal/pkg/clock"
	"rentloop/internal/usecase/commands"
	"rentloop/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandoverCommands(tx *fakeTx) commands.HandoverCommands {
	return commands.NewHandoverCommands(&fakeUoW{tx: tx}, clock.NewMockClock(testNow), rental.NewDefaultHandoverPolicy())
}

func TestHandoverCreate(t *testing.T) {
	t.Run("success: pickup on a paid rental", func(t *testing.T) {
		rb := builder.NewRentalBuilder().AsPaid()
		tx := &fakeTx{}
		tx.rentals.load = rb.BuildDomain
		cmds := newHandoverCommands(tx)

		err := cmds.Create(context.Background(), commands.CreateHandoverRequest{
			RentalID: rb.ID,
			Type:     "pickup",
			Pictures: []string{"front.jpg"},
			Comment:  "small dent on the handle",
		}, rb.RenterID)
		require.NoError(t, err)

		saved := tx.rentals.saved
		require.NotNil(t, saved)
		require.NotNil(t, saved.Pickup())
		assert.Equal(t, rental.StatePickedUp, saved.State())
	})

	t.Run("pickup before payment is rejected", func(t *testing.T) {
		rb := builder.NewRentalBuilder().AsAccepted()
		tx := &fakeTx{}
		tx.rentals.load = rb.BuildDomain
		cmds := newHandoverCommands(tx)

		err := cmds.Create(context.Background(), commands.CreateHandoverRequest{
			RentalID: rb.ID,
			Type:     "pickup",
		}, rb.RenterID)
		require.ErrorIs(t, err, commands.ErrHandoverNotReady)
	})

	t.Run("duplicate pickup is rejected", func(t *testing.T) {
		rb := builder.NewRentalBuilder().AsPaid().WithPickup()
		tx := &fakeTx{}
		tx.rentals.load = rb.BuildDomain
		cmds := newHandoverCommands(tx)

		err := cmds.Create(context.Background(), commands.CreateHandoverRequest{
			RentalID: rb.ID,
			Type:     "pickup",
		}, rb.RenterID)
		require.ErrorIs(t, err, commands.ErrHandoverExists)
	})

	t.Run("unknown type fails validation", func(t *testing.T) {
		rb := builder.NewRentalBuilder().AsPaid()
		tx := &fakeTx{}
		tx.rentals.load = rb.BuildDomain
		cmds := newHandoverCommands(tx)

		err := cmds.Create(context.Background(), commands.CreateHandoverRequest{
			RentalID: rb.ID,
			Type:     "swap",
		}, rb.RenterID)
		require.ErrorIs(t, err, commands.ErrDomainValidation)
	})
}

func TestHandoverAccept(t *testing.T) {
	t.Run("second agreement confirms the pickup", func(t *testing.T) {
		rb := builder.NewRentalBuilder().AsPaid().WithPickup(rental.RoleRenter)
		tx := &fakeTx{}
		tx.rentals.load = rb.BuildDomain
		cmds := newHandoverCommands(tx)

		require.NoError(t, cmds.Accept(context.Background(), rb.ID, "pickup", rb.LenderID))

		saved := tx.rentals.saved
		require.NotNil(t, saved)
		assert.True(t, saved.Pickup().FullyAgreed())
		assert.Equal(t, rental.StatePickUpConfirmed, saved.State())
	})

	t.Run("agreeing twice is rejected", func(t *testing.T) {
		rb := builder.NewRentalBuilder().AsPaid().WithPickup(rental.RoleRenter)
		tx := &fakeTx{}
		tx.rentals.load = rb.BuildDomain
		cmds := newHandoverCommands(tx)

		err := cmds.Accept(context.Background(), rb.ID, "pickup", rb.RenterID)
		require.ErrorIs(t, err, commands.ErrHandoverAlreadyAgreed)
	})

	t.Run("absent slot is rejected", func(t *testing.T) {
		rb := builder.NewRentalBuilder().AsPaid()
		tx := &fakeTx{}
		tx.rentals.load = rb.BuildDomain
		cmds := newHandoverCommands(tx)

		err := cmds.Accept(context.Background(), rb.ID, "pickup", rb.RenterID)
		require.ErrorIs(t, err, commands.ErrHandoverNotReady)
	})
}

func TestHandoverDecline(t *testing.T) {
	t.Run("decline clears the slot and rederives the state", func(t *testing.T) {
		rb := builder.NewRentalBuilder().AsPaid().WithState(rental.StatePickedUp).WithPickup(rental.RoleRenter)
		tx := &fakeTx{}
		tx.rentals.load = rb.BuildDomain
		cmds := newHandoverCommands(tx)

		require.NoError(t, cmds.Decline(context.Background(), rb.ID, "pickup", rb.LenderID))

		saved := tx.rentals.saved
		require.NotNil(t, saved)
		assert.Nil(t, saved.Pickup())
		assert.Equal(t, rental.StatePaid, saved.State())
	})

	t.Run("declining an absent slot is rejected", func(t *testing.T) {
		rb := builder.NewRentalBuilder().AsPaid()
		tx := &fakeTx{}
		tx.rentals.load = rb.BuildDomain
		cmds := newHandoverCommands(tx)

		err := cmds.Decline(context.Background(), rb.ID, "return", rb.RenterID)
		require.ErrorIs(t, err, commands.ErrHandoverNotReady)
	})
}
