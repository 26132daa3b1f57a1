package converter

import (
	"time"

	"canteen-reservation/internal/domain/calendar"
	"canteen-reservation/internal/domain/reservation"
	sqlc "canteen-reservation/internal/infra/sqlc/generated"
	"canteen-reservation/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func DateToPgtype(d calendar.Date) pgtype.Date {
	return pgconv.DateToPgtype(d.Time())
}

func DateFromPgtype(pd pgtype.Date) calendar.Date {
	return calendar.DateOf(pgconv.DateFromPgtype(pd), time.UTC)
}

func ReservationToCreateParams(r *reservation.Reservation) sqlc.CreateReservationParams {
	return sqlc.CreateReservationParams{
		ID:              r.ID(),
		UserID:          r.UserID(),
		Date:            DateToPgtype(r.Date()),
		MainOptionID:    r.MainOptionID(),
		StarterOptionID: pgconv.UUIDPtrToPgtype(r.StarterOptionID()),
		DessertOptionID: pgconv.UUIDPtrToPgtype(r.DessertOptionID()),
		ConsumptionMode: r.ConsumptionMode().String(),
		Status:          r.Status().String(),
		CreatedAt:       pgconv.TimeToPgtype(r.CreatedAt()),
	}
}

func ReservationToChoiceParams(r *reservation.Reservation) sqlc.UpdateReservationChoiceParams {
	return sqlc.UpdateReservationChoiceParams{
		ID:              r.ID(),
		MainOptionID:    r.MainOptionID(),
		StarterOptionID: pgconv.UUIDPtrToPgtype(r.StarterOptionID()),
		DessertOptionID: pgconv.UUIDPtrToPgtype(r.DessertOptionID()),
		ConsumptionMode: r.ConsumptionMode().String(),
		UpdatedAt:       pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

// ReservationFromRow trusts the row: values are guarded by CHECK constraints.
func ReservationFromRow(row sqlc.Reservations) *reservation.Reservation {
	return reservation.Reconstruct(
		row.ID,
		row.UserID,
		DateFromPgtype(row.Date),
		reservation.Choice{
			MainOptionID:    row.MainOptionID,
			StarterOptionID: pgconv.UUIDPtrFromPgtype(row.StarterOptionID),
			DessertOptionID: pgconv.UUIDPtrFromPgtype(row.DessertOptionID),
			ConsumptionMode: reservation.ConsumptionMode(row.ConsumptionMode),
		},
		reservation.Status(row.Status),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
