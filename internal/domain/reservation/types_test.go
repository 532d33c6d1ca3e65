//go:build unit

package reservation_test

import (
	"testing"

	"campsite-booking/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Transitions(t *testing.T) {
	allowed := map[reservation.Status][]reservation.Status{
		reservation.StatusPending:    {reservation.StatusConfirmed, reservation.StatusCancelled},
		reservation.StatusConfirmed:  {reservation.StatusCheckedIn, reservation.StatusCancelled},
		reservation.StatusCheckedIn:  {reservation.StatusCheckedOut, reservation.StatusCancelled},
		reservation.StatusCheckedOut: {},
		reservation.StatusCancelled:  {},
	}

	for _, from := range reservation.AllStatuses() {
		for _, to := range reservation.AllStatuses() {
			want := false
			for _, a := range allowed[from] {
				if a == to {
					want = true
				}
			}
			assert.Equalf(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestStatus_Terminal(t *testing.T) {
	assert.True(t, reservation.StatusCheckedOut.IsTerminal())
	assert.True(t, reservation.StatusCancelled.IsTerminal())
	assert.False(t, reservation.StatusPending.IsTerminal())
	assert.False(t, reservation.StatusCancelled.BlocksDates())
	assert.True(t, reservation.StatusCheckedOut.BlocksDates())
}

func TestNewStatus(t *testing.T) {
	s, err := reservation.NewStatus("checked_in")
	require.NoError(t, err)
	assert.Equal(t, reservation.StatusCheckedIn, s)

	_, err = reservation.NewStatus("canceled")
	require.ErrorIs(t, err, reservation.ErrInvalidStatus)
}
