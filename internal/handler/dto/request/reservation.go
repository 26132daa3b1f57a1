package request

import (
	"canteen-reservation/internal/domain/calendar"
	"canteen-reservation/internal/domain/reservation"
	"canteen-reservation/internal/pkg/errs"
	"canteen-reservation/internal/pkg/patch"

	"github.com/google/uuid"
)

// CreateReservationRequest books a meal. UserID lets staff book on behalf of
// someone else; it defaults to the caller.
type CreateReservationRequest struct {
	UserID          *uuid.UUID `json:"user_id,omitempty"`
	Date            string     `json:"date"`
	MainOptionID    uuid.UUID  `json:"main_option_id"`
	StarterOptionID *uuid.UUID `json:"starter_option_id,omitempty"`
	DessertOptionID *uuid.UUID `json:"dessert_option_id,omitempty"`
	ConsumptionMode string     `json:"consumption_mode"`
}

func (r CreateReservationRequest) ToDomain() (calendar.Date, reservation.Choice, error) {
	if r.Date == "" {
		return calendar.Date{}, reservation.Choice{}, reservation.ErrDateRequired
	}
	date, err := calendar.ParseDate(r.Date)
	if err != nil {
		return calendar.Date{}, reservation.Choice{}, errs.WithDetailf(errs.Mark(err, errs.ErrValidation), "date %q", r.Date)
	}
	if r.MainOptionID == uuid.Nil {
		return calendar.Date{}, reservation.Choice{}, reservation.ErrMainOptionRequired
	}
	mode, err := reservation.NewConsumptionMode(r.ConsumptionMode)
	if err != nil {
		return calendar.Date{}, reservation.Choice{}, err
	}
	return date, reservation.Choice{
		MainOptionID:    r.MainOptionID,
		StarterOptionID: r.StarterOptionID,
		DessertOptionID: r.DessertOptionID,
		ConsumptionMode: mode,
	}, nil
}

// UpdateReservationRequest either records a service outcome (Status) or
// changes the meal choice. Starter and dessert accept an explicit null to
// remove the course.
type UpdateReservationRequest struct {
	Status          *string                   `json:"status,omitempty"`
	MainOptionID    *uuid.UUID                `json:"main_option_id,omitempty"`
	StarterOptionID patch.Nullable[uuid.UUID] `json:"starter_option_id"`
	DessertOptionID patch.Nullable[uuid.UUID] `json:"dessert_option_id"`
	ConsumptionMode *string                   `json:"consumption_mode,omitempty"`
}

func (r UpdateReservationRequest) HasStatus() bool {
	return r.Status != nil
}

func (r UpdateReservationRequest) ToStatus() (reservation.Status, error) {
	if r.Status == nil {
		return "", reservation.ErrInvalidStatus
	}
	return reservation.NewStatus(*r.Status)
}

func (r UpdateReservationRequest) ToChoicePatch() (reservation.ChoicePatch, error) {
	p := reservation.ChoicePatch{
		MainOptionID:    r.MainOptionID,
		StarterOptionID: r.StarterOptionID,
		DessertOptionID: r.DessertOptionID,
	}
	if r.ConsumptionMode != nil {
		mode, err := reservation.NewConsumptionMode(*r.ConsumptionMode)
		if err != nil {
			return reservation.ChoicePatch{}, err
		}
		p.ConsumptionMode = &mode
	}
	return p, nil
}
