//go:build unit || e2e

package builder

import (
	"time"

	"canteen-reservation/internal/domain/calendar"
	"canteen-reservation/internal/domain/menu"
	sqlc "canteen-reservation/internal/infra/sqlc/generated"
	"canteen-reservation/internal/pkg/pgconv"
	"canteen-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

// MenuBuilder builds a menu with one starter, two mains and one dessert.
// The option IDs are exposed so tests can compose valid and invalid choices.
type MenuBuilder struct {
	ID           uuid.UUID
	Date         calendar.Date
	IsPublished  bool
	SideDishes   *string
	Notes        *string
	StarterID    uuid.UUID
	MainID       uuid.UUID
	SecondMainID uuid.UUID
	DessertID    uuid.UUID
	CreatedAt    time.Time
}

func NewMenuBuilder() *MenuBuilder {
	side := "Haricots verts"
	return &MenuBuilder{
		ID:           uuid.New(),
		Date:         calendar.NewDate(2025, time.January, 7),
		IsPublished:  true,
		SideDishes:   &side,
		StarterID:    uuid.New(),
		MainID:       uuid.New(),
		SecondMainID: uuid.New(),
		DessertID:    uuid.New(),
		CreatedAt:    time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *MenuBuilder) With(mutate func(*MenuBuilder)) *MenuBuilder {
	mutate(b)
	return b
}

func (b *MenuBuilder) WithDate(d calendar.Date) *MenuBuilder {
	b.Date = d
	return b
}

func (b *MenuBuilder) Unpublished() *MenuBuilder {
	b.IsPublished = false
	return b
}

func (b *MenuBuilder) Options() []menu.Option {
	return []menu.Option{
		menu.ReconstructOption(b.StarterID, menu.CourseStarter, "Salade de saison", nil, nil, 0),
		menu.ReconstructOption(b.MainID, menu.CourseMain, "Poulet rôti", nil, nil, 0),
		menu.ReconstructOption(b.SecondMainID, menu.CourseMain, "Lasagnes végétariennes", nil, nil, 1),
		menu.ReconstructOption(b.DessertID, menu.CourseDessert, "Tarte aux pommes", nil, nil, 0),
	}
}

func (b *MenuBuilder) BuildDomain() *menu.Menu {
	return menu.Reconstruct(b.ID, b.Date, b.IsPublished, b.SideDishes, b.Notes, b.Options(), b.CreatedAt, b.CreatedAt)
}

func (b *MenuBuilder) BuildInfra() (sqlc.Menus, []sqlc.MenuOptions) {
	row := sqlc.Menus{
		ID:          b.ID,
		Date:        pgconv.DateToPgtype(b.Date.Time()),
		IsPublished: b.IsPublished,
		SideDishes:  pgconv.StringPtrToPgtype(b.SideDishes),
		Notes:       pgconv.StringPtrToPgtype(b.Notes),
		CreatedAt:   pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:   pgconv.TimeToPgtype(b.CreatedAt),
	}
	opts := b.Options()
	options := make([]sqlc.MenuOptions, len(opts))
	for i, o := range opts {
		options[i] = sqlc.MenuOptions{
			ID:          o.ID(),
			MenuID:      b.ID,
			CourseType:  o.CourseType().String(),
			Name:        o.Name(),
			Description: pgconv.StringPtrToPgtype(o.Description()),
			MaxCapacity: pgconv.IntPtrToPgtype(o.MaxCapacity()),
			SortOrder:   int32(o.SortOrder()), // #nosec G115 -- fixture values
			CreatedAt:   pgconv.TimeToPgtype(b.CreatedAt),
		}
	}
	return row, options
}

func (b *MenuBuilder) BuildView() *queries.MenuView {
	v := &queries.MenuView{
		ID:          b.ID,
		Date:        b.Date,
		IsPublished: b.IsPublished,
		SideDishes:  b.SideDishes,
		Notes:       b.Notes,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.CreatedAt,
	}
	for _, o := range b.Options() {
		ov := queries.MenuOptionView{
			ID:         o.ID(),
			CourseType: o.CourseType().String(),
			Name:       o.Name(),
			SortOrder:  o.SortOrder(),
		}
		switch o.CourseType() {
		case menu.CourseStarter:
			v.Starters = append(v.Starters, ov)
		case menu.CourseMain:
			v.Mains = append(v.Mains, ov)
		case menu.CourseDessert:
			v.Desserts = append(v.Desserts, ov)
		}
	}
	return v
}
