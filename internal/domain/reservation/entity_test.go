//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"canteen-reservation/internal/domain/calendar"
	"canteen-reservation/internal/domain/reservation"
	"canteen-reservation/internal/pkg/errs"
	"canteen-reservation/internal/pkg/patch"
)

var (
	monday = calendar.NewDate(2025, time.March, 10)
	now    = time.Date(2025, 3, 7, 9, 0, 0, 0, time.UTC)
)

func newBooked(t *testing.T) *reservation.Reservation {
	t.Helper()
	starter := uuid.New()
	r, err := reservation.NewReservation(uuid.New(), monday, reservation.Choice{
		MainOptionID:    uuid.New(),
		StarterOptionID: &starter,
		ConsumptionMode: reservation.ModeSurPlace,
	}, now)
	require.NoError(t, err)
	return r
}

func TestNewReservation(t *testing.T) {
	t.Parallel()

	r := newBooked(t)
	assert.Equal(t, reservation.StatusBooked, r.Status())
	assert.Equal(t, monday, r.Date())
	assert.NotNil(t, r.StarterOptionID())
	assert.Nil(t, r.DessertOptionID())
	assert.Equal(t, now, r.CreatedAt())

	tests := []struct {
		name   string
		date   calendar.Date
		choice reservation.Choice
		errIs  error
	}{
		{name: "missing date", choice: reservation.Choice{MainOptionID: uuid.New(), ConsumptionMode: reservation.ModeSurPlace}, errIs: reservation.ErrDateRequired},
		{name: "missing main", date: monday, choice: reservation.Choice{ConsumptionMode: reservation.ModeSurPlace}, errIs: reservation.ErrMainOptionRequired},
		{name: "unknown mode", date: monday, choice: reservation.Choice{MainOptionID: uuid.New(), ConsumptionMode: "DRIVE"}, errIs: reservation.ErrInvalidConsumptionMode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := reservation.NewReservation(uuid.New(), tt.date, tt.choice, now)
			require.Nil(t, got)
			assert.True(t, errs.Is(err, tt.errIs))
			assert.True(t, errs.Is(err, errs.ErrValidation))
		})
	}
}

func TestTransitionTo(t *testing.T) {
	t.Parallel()

	later := now.Add(5 * time.Hour)

	tests := []struct {
		name        string
		from        reservation.Status
		to          reservation.Status
		wantChanged bool
		errIs       error
	}{
		{name: "booked to served", from: reservation.StatusBooked, to: reservation.StatusServed, wantChanged: true},
		{name: "booked to no show", from: reservation.StatusBooked, to: reservation.StatusNoShow, wantChanged: true},
		{name: "served again is a no-op", from: reservation.StatusServed, to: reservation.StatusServed},
		{name: "booked again is a no-op", from: reservation.StatusBooked, to: reservation.StatusBooked},
		{name: "served back to booked", from: reservation.StatusServed, to: reservation.StatusBooked, errIs: reservation.ErrInvalidStatusTransition},
		{name: "no show to served", from: reservation.StatusNoShow, to: reservation.StatusServed, errIs: reservation.ErrInvalidStatusTransition},
		{name: "unknown status", from: reservation.StatusBooked, to: "EATEN", errIs: reservation.ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := reservation.Reconstruct(uuid.New(), uuid.New(), monday,
				reservation.Choice{MainOptionID: uuid.New(), ConsumptionMode: reservation.ModeAEmporter},
				tt.from, now, now)

			changed, err := r.TransitionTo(tt.to, later)
			if tt.errIs != nil {
				assert.True(t, errs.Is(err, tt.errIs))
				assert.Equal(t, tt.from, r.Status())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantChanged, changed)
			assert.Equal(t, tt.to, r.Status())
			if changed {
				assert.Equal(t, later, r.UpdatedAt())
			} else {
				assert.Equal(t, now, r.UpdatedAt())
			}
		})
	}
}

func TestApplyChoice(t *testing.T) {
	t.Parallel()

	newMain := uuid.New()
	newDessert := uuid.New()
	takeaway := reservation.ModeAEmporter

	t.Run("partial patch keeps untouched fields", func(t *testing.T) {
		t.Parallel()
		r := newBooked(t)
		before := r.Choice()

		require.NoError(t, r.ApplyChoice(reservation.ChoicePatch{DessertOptionID: patch.Some(newDessert)}, now))
		assert.Equal(t, before.MainOptionID, r.MainOptionID())
		assert.Equal(t, before.StarterOptionID, r.StarterOptionID())
		assert.Equal(t, &newDessert, r.DessertOptionID())
	})

	t.Run("explicit null removes the starter", func(t *testing.T) {
		t.Parallel()
		r := newBooked(t)

		require.NoError(t, r.ApplyChoice(reservation.ChoicePatch{StarterOptionID: patch.Null[uuid.UUID]()}, now))
		assert.Nil(t, r.StarterOptionID())
	})

	t.Run("main and mode", func(t *testing.T) {
		t.Parallel()
		r := newBooked(t)

		require.NoError(t, r.ApplyChoice(reservation.ChoicePatch{MainOptionID: &newMain, ConsumptionMode: &takeaway}, now))
		assert.Equal(t, newMain, r.MainOptionID())
		assert.Equal(t, reservation.ModeAEmporter, r.ConsumptionMode())
	})

	t.Run("empty patch", func(t *testing.T) {
		t.Parallel()
		r := newBooked(t)
		assert.True(t, errs.Is(r.ApplyChoice(reservation.ChoicePatch{}, now), reservation.ErrEmptyChoicePatch))
	})

	t.Run("bad mode", func(t *testing.T) {
		t.Parallel()
		r := newBooked(t)
		bad := reservation.ConsumptionMode("DRIVE")
		assert.True(t, errs.Is(r.ApplyChoice(reservation.ChoicePatch{ConsumptionMode: &bad}, now), reservation.ErrInvalidConsumptionMode))
	})
}
