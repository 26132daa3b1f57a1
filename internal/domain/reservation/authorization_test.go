//go:build unit

package reservation_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"canteen-reservation/internal/domain/reservation"
	"canteen-reservation/internal/domain/user"
)

func TestCanActOn(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	intents := []reservation.Intent{
		reservation.IntentView,
		reservation.IntentChangeChoice,
		reservation.IntentCancel,
		reservation.IntentSetStatus,
	}

	tests := []struct {
		name  string
		actor reservation.Actor
		want  map[reservation.Intent]bool
	}{
		{
			name:  "owner agent",
			actor: reservation.Actor{UserID: owner, Role: user.RoleAgent},
			want: map[reservation.Intent]bool{
				reservation.IntentView:         true,
				reservation.IntentChangeChoice: true,
				reservation.IntentCancel:       true,
				reservation.IntentSetStatus:    false,
			},
		},
		{
			name:  "other agent",
			actor: reservation.Actor{UserID: uuid.New(), Role: user.RoleAgent},
			want:  map[reservation.Intent]bool{},
		},
		{
			name:  "gestionnaire",
			actor: reservation.Actor{UserID: uuid.New(), Role: user.RoleGestionnaire},
			want: map[reservation.Intent]bool{
				reservation.IntentView:         true,
				reservation.IntentChangeChoice: true,
				reservation.IntentCancel:       true,
				reservation.IntentSetStatus:    true,
			},
		},
		{
			name:  "admin owning the reservation",
			actor: reservation.Actor{UserID: owner, Role: user.RoleAdmin},
			want: map[reservation.Intent]bool{
				reservation.IntentView:         true,
				reservation.IntentChangeChoice: true,
				reservation.IntentCancel:       true,
				reservation.IntentSetStatus:    true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			for _, intent := range intents {
				assert.Equal(t, tt.want[intent], reservation.CanActOn(tt.actor, owner, intent), intent.String())
			}
		})
	}
}

func TestDeadlineApplies(t *testing.T) {
	t.Parallel()

	assert.True(t, reservation.DeadlineApplies(reservation.Actor{Role: user.RoleAgent}))
	assert.False(t, reservation.DeadlineApplies(reservation.Actor{Role: user.RoleGestionnaire}))
	assert.False(t, reservation.DeadlineApplies(reservation.Actor{Role: user.RoleAdmin}))
}

func TestCanActFor(t *testing.T) {
	t.Parallel()

	self := uuid.New()
	other := uuid.New()
	assert.True(t, reservation.CanActFor(reservation.Actor{UserID: self, Role: user.RoleAgent}, self))
	assert.False(t, reservation.CanActFor(reservation.Actor{UserID: self, Role: user.RoleAgent}, other))
	assert.True(t, reservation.CanActFor(reservation.Actor{UserID: self, Role: user.RoleGestionnaire}, other))
}
