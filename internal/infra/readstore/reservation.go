package readstore

import (
	"context"

	"canteen-reservation/internal/domain/calendar"
	"canteen-reservation/internal/infra"
	"canteen-reservation/internal/infra/repository/converter"
	sqlc "canteen-reservation/internal/infra/sqlc/generated"
	"canteen-reservation/internal/pkg/pgconv"
	"canteen-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationViewQueries interface {
	GetReservationView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationViewRow, error)
	ListReservationViews(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationViewsParams) ([]sqlc.ListReservationViewsRow, error)
	CountReservationsByStatus(ctx context.Context, db sqlc.DBTX, date pgtype.Date) ([]sqlc.CountReservationsByStatusRow, error)
	CountReservationsByMode(ctx context.Context, db sqlc.DBTX, date pgtype.Date) ([]sqlc.CountReservationsByModeRow, error)
	CountReservationsByMainOption(ctx context.Context, db sqlc.DBTX, date pgtype.Date) ([]sqlc.CountReservationsByMainOptionRow, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	// Both generated row types share one column list.
	return toReservationView(sqlc.ListReservationViewsRow(row)), nil
}

func (r *ReservationReadStore) List(ctx context.Context, filter queries.ReservationFilter, after *queries.ReservationKey, limit int32) ([]*queries.ReservationView, error) {
	params := sqlc.ListReservationViewsParams{
		StartDate: datePtrToPgtype(filter.From),
		EndDate:   datePtrToPgtype(filter.To),
		UserID:    pgconv.UUIDPtrToPgtype(filter.UserID),
		Status:    pgconv.StringPtrToPgtype(filter.Status),
		RowLimit:  limit,
	}
	if after != nil {
		params.AfterDate = converter.DateToPgtype(after.Date)
		params.AfterCreatedAt = pgconv.TimeToPgtype(after.CreatedAt)
		params.AfterID = pgconv.UUIDToPgtype(after.ID)
	}

	rows, err := r.queries.ListReservationViews(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	result := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		result[i] = toReservationView(row)
	}
	return result, nil
}

// DailySummary aggregates one day. Counts are raw: capacity arithmetic is
// left to the caller, which knows the current settings.
func (r *ReservationReadStore) DailySummary(ctx context.Context, date calendar.Date) (*queries.DailySummary, error) {
	d := converter.DateToPgtype(date)

	byStatus, err := r.queries.CountReservationsByStatus(ctx, r.db, d)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count reservations by status", err)
	}
	byMode, err := r.queries.CountReservationsByMode(ctx, r.db, d)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count reservations by consumption mode", err)
	}
	byMain, err := r.queries.CountReservationsByMainOption(ctx, r.db, d)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count reservations by main option", err)
	}

	summary := &queries.DailySummary{
		Date:              date,
		ByStatus:          map[string]int{"BOOKED": 0, "SERVED": 0, "NO_SHOW": 0},
		ByConsumptionMode: map[string]int{"SUR_PLACE": 0, "A_EMPORTER": 0},
		MainOptions:       make([]queries.MainOptionCount, 0, len(byMain)),
	}
	for _, row := range byStatus {
		summary.ByStatus[row.Status] = int(row.Total)
		summary.Total += int(row.Total)
	}
	for _, row := range byMode {
		summary.ByConsumptionMode[row.ConsumptionMode] = int(row.Total)
	}
	for _, row := range byMain {
		summary.MainOptions = append(summary.MainOptions, queries.MainOptionCount{
			OptionID:    row.OptionID,
			Name:        row.OptionName,
			MaxCapacity: pgconv.IntPtrFromPgtype(row.MaxCapacity),
			Count:       int(row.Total),
		})
	}
	return summary, nil
}

func toReservationView(row sqlc.ListReservationViewsRow) *queries.ReservationView {
	return &queries.ReservationView{
		ID:              row.ID,
		UserID:          row.UserID,
		UserEmail:       row.UserEmail,
		UserFirstName:   row.UserFirstName,
		UserLastName:    row.UserLastName,
		Date:            converter.DateFromPgtype(row.Date),
		MainOption:      queries.OptionRef{ID: row.MainOptionID, Name: row.MainOptionName},
		StarterOption:   optionRef(row.StarterOptionID, row.StarterOptionName),
		DessertOption:   optionRef(row.DessertOptionID, row.DessertOptionName),
		ConsumptionMode: row.ConsumptionMode,
		Status:          row.Status,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func optionRef(id pgtype.UUID, name pgtype.Text) *queries.OptionRef {
	if !id.Valid {
		return nil
	}
	return &queries.OptionRef{ID: uuid.UUID(id.Bytes), Name: name.String}
}

func datePtrToPgtype(d *calendar.Date) pgtype.Date {
	if d == nil {
		return pgtype.Date{}
	}
	return converter.DateToPgtype(*d)
}
