package readstore

import (
	"context"

	"canteen-reservation/internal/domain/calendar"
	"canteen-reservation/internal/domain/menu"
	"canteen-reservation/internal/infra"
	"canteen-reservation/internal/infra/repository/converter"
	sqlc "canteen-reservation/internal/infra/sqlc/generated"
	"canteen-reservation/internal/pkg/pgconv"
	"canteen-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type MenuReadQueries interface {
	GetMenuByDate(ctx context.Context, db sqlc.DBTX, date pgtype.Date) (sqlc.Menus, error)
	ListMenusInRange(ctx context.Context, db sqlc.DBTX, arg sqlc.ListMenusInRangeParams) ([]sqlc.Menus, error)
	ListMenuOptionsByMenuIDs(ctx context.Context, db sqlc.DBTX, menuIds []uuid.UUID) ([]sqlc.MenuOptions, error)
}

type MenuReadStore struct {
	queries MenuReadQueries
	db      sqlc.DBTX
}

func NewMenuReadStore(queries MenuReadQueries, db sqlc.DBTX) *MenuReadStore {
	return &MenuReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *MenuReadStore) FindByDate(ctx context.Context, date calendar.Date) (*queries.MenuView, error) {
	m, err := loadMenuByDate(ctx, r.queries, r.db, date)
	if err != nil {
		return nil, err
	}
	return ToMenuView(m), nil
}

func (r *MenuReadStore) ListInRange(ctx context.Context, from, to calendar.Date, publishedOnly bool) ([]*queries.MenuView, error) {
	rows, err := r.queries.ListMenusInRange(ctx, r.db, sqlc.ListMenusInRangeParams{
		StartDate:     converter.DateToPgtype(from),
		EndDate:       converter.DateToPgtype(to),
		PublishedOnly: publishedOnly,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list menus", err)
	}
	if len(rows) == 0 {
		return []*queries.MenuView{}, nil
	}

	ids := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}
	options, err := r.queries.ListMenuOptionsByMenuIDs(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list menu options", err)
	}

	result := make([]*queries.MenuView, len(rows))
	for i, row := range rows {
		result[i] = ToMenuView(converter.MenuFromRows(row, options))
	}
	return result, nil
}

func loadMenuByDate(ctx context.Context, q MenuReadQueries, db sqlc.DBTX, date calendar.Date) (*menu.Menu, error) {
	row, err := q.GetMenuByDate(ctx, db, converter.DateToPgtype(date))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("menu not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find menu by date", err)
	}
	options, err := q.ListMenuOptionsByMenuIDs(ctx, db, []uuid.UUID{row.ID})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list menu options", err)
	}
	return converter.MenuFromRows(row, options), nil
}

// ToMenuView groups the options of m by course.
func ToMenuView(m *menu.Menu) *queries.MenuView {
	return &queries.MenuView{
		ID:          m.ID(),
		Date:        m.Date(),
		IsPublished: m.IsPublished(),
		SideDishes:  m.SideDishes(),
		Notes:       m.Notes(),
		Starters:    toOptionViews(m.OptionsOf(menu.CourseStarter)),
		Mains:       toOptionViews(m.OptionsOf(menu.CourseMain)),
		Desserts:    toOptionViews(m.OptionsOf(menu.CourseDessert)),
		CreatedAt:   m.CreatedAt(),
		UpdatedAt:   m.UpdatedAt(),
	}
}

func toOptionViews(options []menu.Option) []queries.MenuOptionView {
	out := make([]queries.MenuOptionView, len(options))
	for i, o := range options {
		out[i] = queries.MenuOptionView{
			ID:          o.ID(),
			CourseType:  o.CourseType().String(),
			Name:        o.Name(),
			Description: o.Description(),
			MaxCapacity: o.MaxCapacity(),
			SortOrder:   o.SortOrder(),
		}
	}
	return out
}
