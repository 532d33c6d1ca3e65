//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"campsite-booking/internal/domain/reservation"
	"campsite-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservation_ChangeStatus(t *testing.T) {
	now := time.Date(2025, 5, 21, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name        string
		from        reservation.Status
		to          reservation.Status
		wantChanged bool
		errIs       error
	}{
		{name: "pending -> confirmed", from: reservation.StatusPending, to: reservation.StatusConfirmed, wantChanged: true},
		{name: "confirmed -> checked_in", from: reservation.StatusConfirmed, to: reservation.StatusCheckedIn, wantChanged: true},
		{name: "checked_in -> checked_out", from: reservation.StatusCheckedIn, to: reservation.StatusCheckedOut, wantChanged: true},
		{name: "checked_in -> cancelled", from: reservation.StatusCheckedIn, to: reservation.StatusCancelled, wantChanged: true},
		{name: "same status is a no-op", from: reservation.StatusConfirmed, to: reservation.StatusConfirmed},
		{name: "cancelled is terminal", from: reservation.StatusCancelled, to: reservation.StatusPending, errIs: reservation.ErrInvalidTransition},
		{name: "checked_out is terminal", from: reservation.StatusCheckedOut, to: reservation.StatusCancelled, errIs: reservation.ErrInvalidTransition},
		{name: "skipping confirmation NG", from: reservation.StatusPending, to: reservation.StatusCheckedIn, errIs: reservation.ErrInvalidTransition},
		{name: "unknown status NG", from: reservation.StatusPending, to: reservation.Status("archived"), errIs: reservation.ErrInvalidStatus},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
				b.Status = c.from
			}).BuildDomain()
			before := r.UpdatedAt()

			changed, err := r.ChangeStatus(c.to, now)

			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				assert.Equal(t, c.from, r.Status())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.wantChanged, changed)
			assert.Equal(t, c.to, r.Status())
			if changed {
				assert.Equal(t, now, r.UpdatedAt())
			} else {
				assert.Equal(t, before, r.UpdatedAt())
			}
		})
	}
}
