//go:build unit || e2e

package builder

import (
	"time"

	"canteen-reservation/internal/domain/calendar"
	"canteen-reservation/internal/domain/reservation"
	reqdto "canteen-reservation/internal/handler/dto/request"
	sqlc "canteen-reservation/internal/infra/sqlc/generated"
	"canteen-reservation/internal/pkg/pgconv"
	"canteen-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Date            calendar.Date
	MainOptionID    uuid.UUID
	StarterOptionID *uuid.UUID
	DessertOptionID *uuid.UUID
	ConsumptionMode reservation.ConsumptionMode
	Status          reservation.Status
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	created := time.Date(2025, 1, 6, 8, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		ID:              uuid.New(),
		UserID:          uuid.New(),
		Date:            calendar.NewDate(2025, time.January, 7),
		MainOptionID:    uuid.New(),
		ConsumptionMode: reservation.ModeSurPlace,
		Status:          reservation.StatusBooked,
		CreatedAt:       created,
		UpdatedAt:       created,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) Choice() reservation.Choice {
	return reservation.Choice{
		MainOptionID:    b.MainOptionID,
		StarterOptionID: b.StarterOptionID,
		DessertOptionID: b.DessertOptionID,
		ConsumptionMode: b.ConsumptionMode,
	}
}

func (b *ReservationBuilder) BuildDomain() *reservation.Reservation {
	return reservation.Reconstruct(b.ID, b.UserID, b.Date, b.Choice(), b.Status, b.CreatedAt, b.UpdatedAt)
}

func (b *ReservationBuilder) BuildInfra() sqlc.Reservations {
	return sqlc.Reservations{
		ID:              b.ID,
		UserID:          b.UserID,
		Date:            pgconv.DateToPgtype(b.Date.Time()),
		MainOptionID:    b.MainOptionID,
		StarterOptionID: pgconv.UUIDPtrToPgtype(b.StarterOptionID),
		DessertOptionID: pgconv.UUIDPtrToPgtype(b.DessertOptionID),
		ConsumptionMode: b.ConsumptionMode.String(),
		Status:          b.Status.String(),
		CreatedAt:       pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:       pgconv.TimeToPgtype(b.UpdatedAt),
	}
}

func (b *ReservationBuilder) BuildCreateDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		Date:            b.Date.String(),
		MainOptionID:    b.MainOptionID,
		StarterOptionID: b.StarterOptionID,
		DessertOptionID: b.DessertOptionID,
		ConsumptionMode: b.ConsumptionMode.String(),
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	v := &queries.ReservationView{
		ID:              b.ID,
		UserID:          b.UserID,
		UserEmail:       "agent@example.com",
		UserFirstName:   "Camille",
		UserLastName:    "Martin",
		Date:            b.Date,
		MainOption:      queries.OptionRef{ID: b.MainOptionID, Name: "Poulet rôti"},
		ConsumptionMode: b.ConsumptionMode.String(),
		Status:          b.Status.String(),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
	if b.StarterOptionID != nil {
		v.StarterOption = &queries.OptionRef{ID: *b.StarterOptionID, Name: "Salade de saison"}
	}
	if b.DessertOptionID != nil {
		v.DessertOption = &queries.OptionRef{ID: *b.DessertOptionID, Name: "Tarte aux pommes"}
	}
	return v
}

// Fluent builder methods
func (b *ReservationBuilder) WithUserID(id uuid.UUID) *ReservationBuilder {
	b.UserID = id
	return b
}

func (b *ReservationBuilder) WithDate(d calendar.Date) *ReservationBuilder {
	b.Date = d
	return b
}

func (b *ReservationBuilder) WithMain(id uuid.UUID) *ReservationBuilder {
	b.MainOptionID = id
	return b
}

func (b *ReservationBuilder) WithStarter(id uuid.UUID) *ReservationBuilder {
	b.StarterOptionID = &id
	return b
}

func (b *ReservationBuilder) WithDessert(id uuid.UUID) *ReservationBuilder {
	b.DessertOptionID = &id
	return b
}

func (b *ReservationBuilder) WithMode(m reservation.ConsumptionMode) *ReservationBuilder {
	b.ConsumptionMode = m
	return b
}

func (b *ReservationBuilder) WithStatus(s reservation.Status) *ReservationBuilder {
	b.Status = s
	return b
}

// ForMenu picks the menu's first main option so the choice is valid for it.
func (b *ReservationBuilder) ForMenu(m *MenuBuilder) *ReservationBuilder {
	b.Date = m.Date
	b.MainOptionID = m.MainID
	return b
}
