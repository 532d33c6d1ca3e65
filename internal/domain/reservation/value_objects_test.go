//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"campsite-booking/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = date("2025-05-20")

func date(s string) time.Time {
	t, err := time.Parse(reservation.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func period(t *testing.T, arrival, departure string) reservation.StayPeriod {
	t.Helper()
	p, err := reservation.ParseStayPeriod(arrival, departure, today)
	require.NoError(t, err)
	return p
}

func TestStayPeriod_New(t *testing.T) {
	cases := []struct {
		name      string
		arrival   string
		departure string
		errIs     error
	}{
		{name: "one night", arrival: "2025-06-01", departure: "2025-06-02"},
		{name: "arrival today is allowed", arrival: "2025-05-20", departure: "2025-05-21"},
		{name: "same day NG", arrival: "2025-06-01", departure: "2025-06-01", errIs: reservation.ErrDepartureNotAfterArrival},
		{name: "departure before arrival NG", arrival: "2025-06-05", departure: "2025-06-01", errIs: reservation.ErrDepartureNotAfterArrival},
		{name: "arrival yesterday NG", arrival: "2025-05-19", departure: "2025-05-22", errIs: reservation.ErrArrivalInPast},
		{name: "malformed arrival NG", arrival: "06/01/2025", departure: "2025-06-02", errIs: reservation.ErrInvalidDate},
		{name: "malformed departure NG", arrival: "2025-06-01", departure: "tomorrow", errIs: reservation.ErrInvalidDate},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := reservation.ParseStayPeriod(c.arrival, c.departure, today)
			if c.errIs == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, c.errIs)
		})
	}
}

func TestStayPeriod_TodayIgnoresTimeOfDay(t *testing.T) {
	lateEvening := time.Date(2025, 5, 20, 23, 59, 0, 0, time.UTC)

	_, err := reservation.NewStayPeriod(date("2025-05-20"), date("2025-05-21"), lateEvening)
	require.NoError(t, err)
}

func TestStayPeriod_Nights(t *testing.T) {
	assert.Equal(t, 1, period(t, "2025-06-01", "2025-06-02").Nights())
	assert.Equal(t, 4, period(t, "2025-06-01", "2025-06-05").Nights())
	assert.Equal(t, 31, period(t, "2025-07-01", "2025-08-01").Nights())
}

func TestStayPeriod_Overlaps(t *testing.T) {
	// existing stay: 2025-06-10 .. 2025-06-15
	existing := period(t, "2025-06-10", "2025-06-15")

	cases := []struct {
		name      string
		arrival   string
		departure string
		want      bool
	}{
		{name: "entirely before", arrival: "2025-06-01", departure: "2025-06-09", want: false},
		{name: "entirely after", arrival: "2025-06-16", departure: "2025-06-20", want: false},
		{name: "departure on existing arrival day", arrival: "2025-06-05", departure: "2025-06-10", want: true},
		{name: "arrival on existing departure day", arrival: "2025-06-15", departure: "2025-06-18", want: true},
		{name: "arrival inside", arrival: "2025-06-12", departure: "2025-06-20", want: true},
		{name: "departure inside", arrival: "2025-06-01", departure: "2025-06-12", want: true},
		{name: "strictly inside", arrival: "2025-06-11", departure: "2025-06-13", want: true},
		{name: "encloses existing", arrival: "2025-06-01", departure: "2025-06-30", want: true},
		{name: "identical", arrival: "2025-06-10", departure: "2025-06-15", want: true},
		{name: "day after departure", arrival: "2025-06-16", departure: "2025-06-17", want: false},
		{name: "ends day before arrival", arrival: "2025-06-08", departure: "2025-06-09", want: false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			proposed := period(t, c.arrival, c.departure)
			assert.Equal(t, c.want, proposed.Overlaps(existing))
			assert.Equal(t, c.want, existing.Overlaps(proposed), "overlap must be symmetric")
		})
	}
}

func TestStayPeriod_BoundaryScenario(t *testing.T) {
	booked := period(t, "2025-06-01", "2025-06-05")

	assert.True(t, period(t, "2025-06-05", "2025-06-08").Overlaps(booked), "shared boundary day is rejected")
	assert.False(t, period(t, "2025-06-06", "2025-06-08").Overlaps(booked), "next day is accepted")
}
