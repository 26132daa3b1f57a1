package converter

import (
	"canteen-reservation/internal/domain/menu"
	sqlc "canteen-reservation/internal/infra/sqlc/generated"
	"canteen-reservation/internal/pkg/pgconv"
)

func MenuToCreateParams(m *menu.Menu) sqlc.CreateMenuParams {
	return sqlc.CreateMenuParams{
		ID:          m.ID(),
		Date:        DateToPgtype(m.Date()),
		IsPublished: m.IsPublished(),
		SideDishes:  pgconv.StringPtrToPgtype(m.SideDishes()),
		Notes:       pgconv.StringPtrToPgtype(m.Notes()),
		CreatedAt:   pgconv.TimeToPgtype(m.CreatedAt()),
	}
}

func MenuOptionToCreateParams(m *menu.Menu, o menu.Option) sqlc.CreateMenuOptionParams {
	return sqlc.CreateMenuOptionParams{
		ID:          o.ID(),
		MenuID:      m.ID(),
		CourseType:  o.CourseType().String(),
		Name:        o.Name(),
		Description: pgconv.StringPtrToPgtype(o.Description()),
		MaxCapacity: pgconv.IntPtrToPgtype(o.MaxCapacity()),
		SortOrder:   int32(o.SortOrder()), // #nosec G115 -- sort order is a small list index
	}
}

func MenuToUpdateParams(m *menu.Menu) sqlc.UpdateMenuParams {
	return sqlc.UpdateMenuParams{
		ID:          m.ID(),
		SideDishes:  pgconv.StringPtrToPgtype(m.SideDishes()),
		Notes:       pgconv.StringPtrToPgtype(m.Notes()),
		IsPublished: m.IsPublished(),
		UpdatedAt:   pgconv.TimeToPgtype(m.UpdatedAt()),
	}
}

func MenuOptionToUpsertParams(m *menu.Menu, o menu.Option) sqlc.UpsertMenuOptionParams {
	return sqlc.UpsertMenuOptionParams(MenuOptionToCreateParams(m, o))
}

func MenuOptionFromRow(row sqlc.MenuOptions) menu.Option {
	return menu.ReconstructOption(
		row.ID,
		menu.CourseType(row.CourseType),
		row.Name,
		pgconv.StringPtrFromPgtype(row.Description),
		pgconv.IntPtrFromPgtype(row.MaxCapacity),
		int(row.SortOrder),
	)
}

// MenuFromRows assembles a menu from its row and the option rows that belong to it.
func MenuFromRows(row sqlc.Menus, optionRows []sqlc.MenuOptions) *menu.Menu {
	options := make([]menu.Option, 0, len(optionRows))
	for _, o := range optionRows {
		if o.MenuID != row.ID {
			continue
		}
		options = append(options, MenuOptionFromRow(o))
	}
	return menu.Reconstruct(
		row.ID,
		DateFromPgtype(row.Date),
		row.IsPublished,
		pgconv.StringPtrFromPgtype(row.SideDishes),
		pgconv.StringPtrFromPgtype(row.Notes),
		options,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
