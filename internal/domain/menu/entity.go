package menu

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"canteen-reservation/internal/domain/calendar"
	"canteen-reservation/internal/pkg/errs"
)

var (
	ErrInvalidCourseType = errs.Mark(errs.New("courseType must be STARTER, MAIN or DESSERT"), errs.ErrValidation)
	ErrNoOptions         = errs.Mark(errs.New("a menu needs at least one option"), errs.ErrValidation)
	ErrNoMainOption      = errs.Mark(errs.New("a menu needs at least one MAIN option"), errs.ErrValidation)
	ErrOptionNameEmpty   = errs.Mark(errs.New("option name is required"), errs.ErrValidation)
	ErrInvalidCapacity   = errs.Mark(errs.New("option maxCapacity must be at least 1"), errs.ErrValidation)
	ErrDateRequired      = errs.Mark(errs.New("menu date is required"), errs.ErrValidation)

	ErrOptionNotInMenu = errs.Mark(errs.New("option does not belong to the menu of this date"), errs.ErrInvalidOption)
	ErrWrongCourse     = errs.Mark(errs.New("option is not of the expected course"), errs.ErrInvalidOption)
)

type Option struct {
	id          uuid.UUID
	courseType  CourseType
	name        string
	description *string
	maxCapacity *int
	sortOrder   int
}

// OptionSpec is the input for a new option. A nil SortOrder takes the option's
// position within its course.
type OptionSpec struct {
	CourseType  CourseType
	Name        string
	Description *string
	MaxCapacity *int
	SortOrder   *int
}

func ReconstructOption(id uuid.UUID, courseType CourseType, name string, description *string, maxCapacity *int, sortOrder int) Option {
	return Option{
		id:          id,
		courseType:  courseType,
		name:        name,
		description: description,
		maxCapacity: maxCapacity,
		sortOrder:   sortOrder,
	}
}

func (o Option) ID() uuid.UUID          { return o.id }
func (o Option) CourseType() CourseType { return o.courseType }
func (o Option) Name() string           { return o.name }
func (o Option) Description() *string   { return o.description }
func (o Option) MaxCapacity() *int      { return o.maxCapacity }
func (o Option) SortOrder() int         { return o.sortOrder }

// Menu is the offer for one calendar date.
type Menu struct {
	id          uuid.UUID
	date        calendar.Date
	isPublished bool
	sideDishes  *string
	notes       *string
	options     []Option
	createdAt   time.Time
	updatedAt   time.Time
}

func NewMenu(date calendar.Date, sideDishes, notes *string, isPublished bool, specs []OptionSpec) (*Menu, error) {
	if date.IsZero() {
		return nil, ErrDateRequired
	}
	if len(specs) == 0 {
		return nil, ErrNoOptions
	}

	positions := map[CourseType]int{}
	options := make([]Option, 0, len(specs))
	hasMain := false
	for _, spec := range specs {
		if !spec.CourseType.IsValid() {
			return nil, ErrInvalidCourseType
		}
		name := strings.TrimSpace(spec.Name)
		if name == "" {
			return nil, ErrOptionNameEmpty
		}
		if spec.MaxCapacity != nil && *spec.MaxCapacity < 1 {
			return nil, ErrInvalidCapacity
		}
		order := positions[spec.CourseType]
		if spec.SortOrder != nil {
			order = *spec.SortOrder
		}
		positions[spec.CourseType]++
		hasMain = hasMain || spec.CourseType == CourseMain

		options = append(options, Option{
			id:          uuid.New(),
			courseType:  spec.CourseType,
			name:        name,
			description: spec.Description,
			maxCapacity: spec.MaxCapacity,
			sortOrder:   order,
		})
	}
	if !hasMain {
		return nil, ErrNoMainOption
	}

	m := &Menu{
		id:          uuid.New(),
		date:        date,
		isPublished: isPublished,
		sideDishes:  sideDishes,
		notes:       notes,
		options:     options,
	}
	m.sortOptions()
	return m, nil
}

func Reconstruct(
	id uuid.UUID,
	date calendar.Date,
	isPublished bool,
	sideDishes, notes *string,
	options []Option,
	createdAt, updatedAt time.Time,
) *Menu {
	m := &Menu{
		id:          id,
		date:        date,
		isPublished: isPublished,
		sideDishes:  sideDishes,
		notes:       notes,
		options:     slices.Clone(options),
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
	m.sortOptions()
	return m
}

func (m *Menu) ID() uuid.UUID         { return m.id }
func (m *Menu) Date() calendar.Date   { return m.date }
func (m *Menu) IsPublished() bool     { return m.isPublished }
func (m *Menu) SideDishes() *string   { return m.sideDishes }
func (m *Menu) Notes() *string        { return m.notes }
func (m *Menu) Options() []Option     { return slices.Clone(m.options) }
func (m *Menu) CreatedAt() time.Time  { return m.createdAt }
func (m *Menu) UpdatedAt() time.Time  { return m.updatedAt }

func (m *Menu) SetPublished(published bool, now time.Time) {
	m.isPublished = published
	m.updatedAt = now
}

// OptionsOf returns the options of one course, already in display order.
func (m *Menu) OptionsOf(course CourseType) []Option {
	var out []Option
	for _, o := range m.options {
		if o.courseType == course {
			out = append(out, o)
		}
	}
	return out
}

func (m *Menu) Option(id uuid.UUID) (Option, bool) {
	for _, o := range m.options {
		if o.id == id {
			return o, true
		}
	}
	return Option{}, false
}

// FindOption returns the option id if it belongs to this menu and is of the
// given course.
func (m *Menu) FindOption(id uuid.UUID, course CourseType) (Option, error) {
	o, ok := m.Option(id)
	if !ok {
		return Option{}, errs.WithDetailf(ErrOptionNotInMenu, "%s option %s is not on the menu of %s", strings.ToLower(course.String()), id, m.date)
	}
	if o.courseType != course {
		return Option{}, errs.WithDetailf(ErrWrongCourse, "option %s is a %s, expected a %s", id, o.courseType, course)
	}
	return o, nil
}

// ValidateChoice checks a full choice in a fixed order: main, then starter,
// then dessert. The first failure is returned.
func (m *Menu) ValidateChoice(mainID uuid.UUID, starterID, dessertID *uuid.UUID) error {
	if _, err := m.FindOption(mainID, CourseMain); err != nil {
		return err
	}
	if starterID != nil {
		if _, err := m.FindOption(*starterID, CourseStarter); err != nil {
			return err
		}
	}
	if dessertID != nil {
		if _, err := m.FindOption(*dessertID, CourseDessert); err != nil {
			return err
		}
	}
	return nil
}

func (m *Menu) sortOptions() {
	slices.SortStableFunc(m.options, func(a, b Option) int {
		if c := cmp.Compare(a.courseType.Rank(), b.courseType.Rank()); c != 0 {
			return c
		}
		return cmp.Compare(a.sortOrder, b.sortOrder)
	})
}
