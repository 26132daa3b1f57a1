package reservation

import (
	"time"

	"github.com/google/uuid"

	"canteen-reservation/internal/domain/calendar"
	"canteen-reservation/internal/pkg/errs"
	"canteen-reservation/internal/pkg/patch"
)

var (
	ErrInvalidStatus           = errs.Mark(errs.New("status must be BOOKED, SERVED or NO_SHOW"), errs.ErrValidation)
	ErrInvalidConsumptionMode  = errs.Mark(errs.New("consumptionMode must be SUR_PLACE or A_EMPORTER"), errs.ErrValidation)
	ErrMainOptionRequired      = errs.Mark(errs.New("mainOptionId is required"), errs.ErrValidation)
	ErrDateRequired            = errs.Mark(errs.New("date is required"), errs.ErrValidation)
	ErrEmptyChoicePatch        = errs.Mark(errs.New("nothing to update"), errs.ErrValidation)
	ErrInvalidStatusTransition = errs.Mark(errs.New("status transition not allowed"), errs.ErrConflict)
)

// Reservation is one user's meal for one date.
type Reservation struct {
	id              uuid.UUID
	userID          uuid.UUID
	date            calendar.Date
	mainOptionID    uuid.UUID
	starterOptionID *uuid.UUID
	dessertOptionID *uuid.UUID
	consumptionMode ConsumptionMode
	status          Status
	createdAt       time.Time
	updatedAt       time.Time
}

// Choice is the set of options and the consumption mode picked by the user.
type Choice struct {
	MainOptionID    uuid.UUID
	StarterOptionID *uuid.UUID
	DessertOptionID *uuid.UUID
	ConsumptionMode ConsumptionMode
}

func (c Choice) Validate() error {
	if c.MainOptionID == uuid.Nil {
		return ErrMainOptionRequired
	}
	if !c.ConsumptionMode.IsValid() {
		return ErrInvalidConsumptionMode
	}
	return nil
}

func NewReservation(userID uuid.UUID, date calendar.Date, choice Choice, now time.Time) (*Reservation, error) {
	if date.IsZero() {
		return nil, ErrDateRequired
	}
	if err := choice.Validate(); err != nil {
		return nil, err
	}
	return &Reservation{
		id:              uuid.New(),
		userID:          userID,
		date:            date,
		mainOptionID:    choice.MainOptionID,
		starterOptionID: choice.StarterOptionID,
		dessertOptionID: choice.DessertOptionID,
		consumptionMode: choice.ConsumptionMode,
		status:          StatusBooked,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func Reconstruct(
	id, userID uuid.UUID,
	date calendar.Date,
	choice Choice,
	status Status,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:              id,
		userID:          userID,
		date:            date,
		mainOptionID:    choice.MainOptionID,
		starterOptionID: choice.StarterOptionID,
		dessertOptionID: choice.DessertOptionID,
		consumptionMode: choice.ConsumptionMode,
		status:          status,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (r *Reservation) ID() uuid.UUID                    { return r.id }
func (r *Reservation) UserID() uuid.UUID                { return r.userID }
func (r *Reservation) Date() calendar.Date              { return r.date }
func (r *Reservation) MainOptionID() uuid.UUID          { return r.mainOptionID }
func (r *Reservation) StarterOptionID() *uuid.UUID      { return r.starterOptionID }
func (r *Reservation) DessertOptionID() *uuid.UUID      { return r.dessertOptionID }
func (r *Reservation) ConsumptionMode() ConsumptionMode { return r.consumptionMode }
func (r *Reservation) Status() Status                   { return r.status }
func (r *Reservation) CreatedAt() time.Time             { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time             { return r.updatedAt }

func (r *Reservation) Choice() Choice {
	return Choice{
		MainOptionID:    r.mainOptionID,
		StarterOptionID: r.starterOptionID,
		DessertOptionID: r.dessertOptionID,
		ConsumptionMode: r.consumptionMode,
	}
}

// TransitionTo moves the reservation along BOOKED -> SERVED | NO_SHOW.
// It reports whether the status actually changed.
func (r *Reservation) TransitionTo(next Status, now time.Time) (bool, error) {
	if !next.IsValid() {
		return false, ErrInvalidStatus
	}
	if !r.status.CanTransitionTo(next) {
		return false, errs.WithDetailf(ErrInvalidStatusTransition, "%s -> %s", r.status, next)
	}
	if r.status == next {
		return false, nil
	}
	r.status = next
	r.updatedAt = now
	return true, nil
}

// ChoicePatch changes part of a choice. Starter and dessert distinguish
// "leave as is" from "remove".
type ChoicePatch struct {
	MainOptionID    *uuid.UUID
	StarterOptionID patch.Nullable[uuid.UUID]
	DessertOptionID patch.Nullable[uuid.UUID]
	ConsumptionMode *ConsumptionMode
}

func (p ChoicePatch) IsEmpty() bool {
	return p.MainOptionID == nil && !p.StarterOptionID.Set && !p.DessertOptionID.Set && p.ConsumptionMode == nil
}

func (p ChoicePatch) Validate() error {
	if p.IsEmpty() {
		return ErrEmptyChoicePatch
	}
	if p.MainOptionID != nil && *p.MainOptionID == uuid.Nil {
		return ErrMainOptionRequired
	}
	if p.ConsumptionMode != nil && !p.ConsumptionMode.IsValid() {
		return ErrInvalidConsumptionMode
	}
	return nil
}

// ApplyChoice merges p into the current choice.
func (r *Reservation) ApplyChoice(p ChoicePatch, now time.Time) error {
	if err := p.Validate(); err != nil {
		return err
	}
	r.mainOptionID = patch.Coalesce(p.MainOptionID, r.mainOptionID)
	r.starterOptionID = p.StarterOptionID.Resolve(r.starterOptionID)
	r.dessertOptionID = p.DessertOptionID.Resolve(r.dessertOptionID)
	r.consumptionMode = patch.Coalesce(p.ConsumptionMode, r.consumptionMode)
	r.updatedAt = now
	return nil
}
