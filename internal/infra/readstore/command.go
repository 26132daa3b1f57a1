package readstore

import (
	"context"

	"canteen-reservation/internal/domain/calendar"
	"canteen-reservation/internal/domain/menu"
	"canteen-reservation/internal/domain/reservation"
	"canteen-reservation/internal/domain/settings"
	"canteen-reservation/internal/infra"
	"canteen-reservation/internal/infra/repository/converter"
	sqlc "canteen-reservation/internal/infra/sqlc/generated"
	"canteen-reservation/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CommandReadQueries interface {
	MenuReadQueries
	GetReservationByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservations, error)
	ReservationExistsForUserDate(ctx context.Context, db sqlc.DBTX, arg sqlc.ReservationExistsForUserDateParams) (bool, error)
	GetMenuByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Menus, error)
	CountReservationsForMenu(ctx context.Context, db sqlc.DBTX, menuID uuid.UUID) (int64, error)
	CountReservationsForOption(ctx context.Context, db sqlc.DBTX, optionID uuid.UUID) (int64, error)
	EnsureSettings(ctx context.Context, db sqlc.DBTX) error
	GetSettingsForUpdate(ctx context.Context, db sqlc.DBTX) (sqlc.Settings, error)
}

// CommandReadStore serves the reads commands make before writing. It returns
// domain aggregates rather than views. Inside a transaction the *ForUpdate
// reads lock their rows until commit.
type CommandReadStore struct {
	queries CommandReadQueries
	db      sqlc.DBTX
}

func NewCommandReadStore(queries CommandReadQueries, db sqlc.DBTX) *CommandReadStore {
	return &CommandReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CommandReadStore) ReservationByIDForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationByIDForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}
	return converter.ReservationFromRow(row), nil
}

func (r *CommandReadStore) ReservationExists(ctx context.Context, userID uuid.UUID, date calendar.Date) (bool, error) {
	exists, err := r.queries.ReservationExistsForUserDate(ctx, r.db, sqlc.ReservationExistsForUserDateParams{
		UserID: userID,
		Date:   converter.DateToPgtype(date),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check existing reservation", err)
	}
	return exists, nil
}

func (r *CommandReadStore) MenuForDate(ctx context.Context, date calendar.Date) (*menu.Menu, error) {
	m, err := loadMenuByDate(ctx, r.queries, r.db, date)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return m, nil
}

func (r *CommandReadStore) MenuByIDForUpdate(ctx context.Context, id uuid.UUID) (*menu.Menu, error) {
	row, err := r.queries.GetMenuByIDForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("menu not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock menu", err)
	}
	options, err := r.queries.ListMenuOptionsByMenuIDs(ctx, r.db, []uuid.UUID{row.ID})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list menu options", err)
	}
	return converter.MenuFromRows(row, options), nil
}

func (r *CommandReadStore) CountReservationsForMenu(ctx context.Context, menuID uuid.UUID) (int64, error) {
	n, err := r.queries.CountReservationsForMenu(ctx, r.db, menuID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count reservations for menu", err)
	}
	return n, nil
}

func (r *CommandReadStore) CountReservationsForOption(ctx context.Context, optionID uuid.UUID) (int64, error) {
	n, err := r.queries.CountReservationsForOption(ctx, r.db, optionID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count reservations for option", err)
	}
	return n, nil
}

func (r *CommandReadStore) SettingsForUpdate(ctx context.Context) (*settings.Settings, error) {
	if err := r.queries.EnsureSettings(ctx, r.db); err != nil {
		return nil, infra.WrapRepoErr("failed to initialize settings", err)
	}
	row, err := r.queries.GetSettingsForUpdate(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock settings", err)
	}
	return converter.SettingsFromRow(row), nil
}

