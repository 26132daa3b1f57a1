//go:build unit

package menu_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"canteen-reservation/internal/domain/calendar"
	"canteen-reservation/internal/domain/menu"
	"canteen-reservation/internal/pkg/errs"
)

func ptr[T any](v T) *T { return &v }

var monday = calendar.NewDate(2025, time.March, 10)

func sampleSpecs() []menu.OptionSpec {
	return []menu.OptionSpec{
		{CourseType: menu.CourseDessert, Name: "Tarte aux pommes"},
		{CourseType: menu.CourseMain, Name: "Blanquette de veau", MaxCapacity: ptr(80)},
		{CourseType: menu.CourseStarter, Name: "Velouté de potiron"},
		{CourseType: menu.CourseMain, Name: "Gratin de légumes"},
	}
}

func TestNewMenu(t *testing.T) {
	t.Parallel()

	m, err := menu.NewMenu(monday, ptr("Riz pilaf"), nil, true, sampleSpecs())
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, m.ID())
	assert.Equal(t, monday, m.Date())
	assert.True(t, m.IsPublished())

	opts := m.Options()
	require.Len(t, opts, 4)
	assert.Equal(t, menu.CourseStarter, opts[0].CourseType())
	assert.Equal(t, "Blanquette de veau", opts[1].Name())
	assert.Equal(t, 0, opts[1].SortOrder())
	assert.Equal(t, "Gratin de légumes", opts[2].Name())
	assert.Equal(t, 1, opts[2].SortOrder())
	assert.Equal(t, menu.CourseDessert, opts[3].CourseType())

	assert.Len(t, m.OptionsOf(menu.CourseMain), 2)
}

func TestNewMenu_Invariants(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		date  calendar.Date
		specs []menu.OptionSpec
		errIs error
	}{
		{name: "zero date", date: calendar.Date{}, specs: sampleSpecs(), errIs: menu.ErrDateRequired},
		{name: "no options", date: monday, specs: nil, errIs: menu.ErrNoOptions},
		{
			name:  "starter and dessert only",
			date:  monday,
			specs: []menu.OptionSpec{{CourseType: menu.CourseStarter, Name: "Salade"}, {CourseType: menu.CourseDessert, Name: "Flan"}},
			errIs: menu.ErrNoMainOption,
		},
		{
			name:  "unknown course",
			date:  monday,
			specs: []menu.OptionSpec{{CourseType: "SIDE", Name: "Frites"}},
			errIs: menu.ErrInvalidCourseType,
		},
		{
			name:  "blank name",
			date:  monday,
			specs: []menu.OptionSpec{{CourseType: menu.CourseMain, Name: "  "}},
			errIs: menu.ErrOptionNameEmpty,
		},
		{
			name:  "zero capacity",
			date:  monday,
			specs: []menu.OptionSpec{{CourseType: menu.CourseMain, Name: "Poisson", MaxCapacity: ptr(0)}},
			errIs: menu.ErrInvalidCapacity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, err := menu.NewMenu(tt.date, nil, nil, false, tt.specs)
			require.Nil(t, m)
			assert.True(t, errs.Is(err, tt.errIs))
			assert.True(t, errs.Is(err, errs.ErrValidation))
		})
	}
}

func TestValidateChoice(t *testing.T) {
	t.Parallel()

	m, err := menu.NewMenu(monday, nil, nil, true, sampleSpecs())
	require.NoError(t, err)

	starter := m.OptionsOf(menu.CourseStarter)[0].ID()
	main := m.OptionsOf(menu.CourseMain)[0].ID()
	dessert := m.OptionsOf(menu.CourseDessert)[0].ID()
	foreign := uuid.New()

	tests := []struct {
		name      string
		main      uuid.UUID
		starter   *uuid.UUID
		dessert   *uuid.UUID
		wantErr   error
		wantInMsg string
	}{
		{name: "main only", main: main},
		{name: "full choice", main: main, starter: &starter, dessert: &dessert},
		{name: "main from another menu", main: foreign, wantErr: menu.ErrOptionNotInMenu, wantInMsg: foreign.String()},
		{name: "starter used as main", main: starter, wantErr: menu.ErrWrongCourse, wantInMsg: "expected a MAIN"},
		{name: "dessert used as starter", main: main, starter: &dessert, wantErr: menu.ErrWrongCourse, wantInMsg: "expected a STARTER"},
		{name: "foreign dessert", main: main, dessert: &foreign, wantErr: menu.ErrOptionNotInMenu},
		{
			name:      "main is checked before starter",
			main:      foreign,
			starter:   &foreign,
			wantErr:   menu.ErrOptionNotInMenu,
			wantInMsg: "main option",
		},
		{
			name:      "starter is checked before dessert",
			main:      main,
			starter:   &main,
			dessert:   &main,
			wantErr:   menu.ErrWrongCourse,
			wantInMsg: "expected a STARTER",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := m.ValidateChoice(tt.main, tt.starter, tt.dessert)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errs.Is(err, tt.wantErr))
			assert.True(t, errs.Is(err, errs.ErrInvalidOption))
			if tt.wantInMsg != "" {
				assert.Contains(t, errs.Details(err)[0], tt.wantInMsg)
			}
		})
	}
}

func TestSetPublished(t *testing.T) {
	t.Parallel()

	m, err := menu.NewMenu(monday, nil, nil, false, sampleSpecs())
	require.NoError(t, err)

	now := time.Date(2025, 3, 7, 12, 0, 0, 0, time.UTC)
	m.SetPublished(true, now)
	assert.True(t, m.IsPublished())
	assert.Equal(t, now, m.UpdatedAt())
}
