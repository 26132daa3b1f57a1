package menu

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"canteen-reservation/internal/pkg/errs"
	"canteen-reservation/internal/pkg/patch"
)

var (
	ErrEmptyEdit         = errs.Mark(errs.New("menu update changes nothing"), errs.ErrValidation)
	ErrDuplicateOptionID = errs.Mark(errs.New("an option id appears more than once"), errs.ErrValidation)
	ErrUnknownMenuOption = errs.Mark(errs.New("option does not belong to this menu"), errs.ErrInvalidOption)
)

// OptionEdit keeps the option with ID when set, otherwise adds a new one.
type OptionEdit struct {
	ID *uuid.UUID
	OptionSpec
}

// Edit is a partial update. A non-nil Options replaces the whole option list:
// existing options missing from it are removed.
type Edit struct {
	SideDishes  patch.Nullable[string]
	Notes       patch.Nullable[string]
	IsPublished *bool
	Options     *[]OptionEdit
}

func (e Edit) IsEmpty() bool {
	return !e.SideDishes.Set && !e.Notes.Set && e.IsPublished == nil && e.Options == nil
}

// OnlyPublication reports whether the edit toggles publication and nothing else.
func (e Edit) OnlyPublication() bool {
	return e.IsPublished != nil && !e.SideDishes.Set && !e.Notes.Set && e.Options == nil
}

// EditResult lists what an applied edit did to the options.
type EditResult struct {
	Added     []uuid.UUID
	Updated   []uuid.UUID
	Removed   []Option
	Recoursed []uuid.UUID // kept options whose course type changed
}

// ApplyEdit validates the whole edit before touching the menu, so a rejected
// edit leaves it unchanged. Whether removed or recoursed options are still
// referenced by reservations is for the caller to check.
func (m *Menu) ApplyEdit(e Edit, now time.Time) (EditResult, error) {
	if e.IsEmpty() {
		return EditResult{}, ErrEmptyEdit
	}

	var res EditResult
	options := m.options
	if e.Options != nil {
		var err error
		options, res, err = m.mergeOptions(*e.Options)
		if err != nil {
			return EditResult{}, err
		}
	}

	m.options = options
	m.sideDishes = e.SideDishes.Resolve(m.sideDishes)
	m.notes = e.Notes.Resolve(m.notes)
	if e.IsPublished != nil {
		m.isPublished = *e.IsPublished
	}
	m.updatedAt = now
	m.sortOptions()
	return res, nil
}

func (m *Menu) mergeOptions(edits []OptionEdit) ([]Option, EditResult, error) {
	var res EditResult
	if len(edits) == 0 {
		return nil, res, ErrNoOptions
	}

	kept := make(map[uuid.UUID]bool, len(edits))
	positions := map[CourseType]int{}
	options := make([]Option, 0, len(edits))
	hasMain := false
	for _, ed := range edits {
		if !ed.CourseType.IsValid() {
			return nil, res, ErrInvalidCourseType
		}
		name := strings.TrimSpace(ed.Name)
		if name == "" {
			return nil, res, ErrOptionNameEmpty
		}
		if ed.MaxCapacity != nil && *ed.MaxCapacity < 1 {
			return nil, res, ErrInvalidCapacity
		}
		order := positions[ed.CourseType]
		if ed.SortOrder != nil {
			order = *ed.SortOrder
		}
		positions[ed.CourseType]++
		hasMain = hasMain || ed.CourseType == CourseMain

		id := uuid.New()
		if ed.ID != nil {
			current, ok := m.Option(*ed.ID)
			if !ok {
				return nil, res, errs.WithDetailf(ErrUnknownMenuOption, "option %s is not on the menu of %s", *ed.ID, m.date)
			}
			if kept[*ed.ID] {
				return nil, res, errs.WithDetailf(ErrDuplicateOptionID, "option %s", *ed.ID)
			}
			kept[*ed.ID] = true
			id = *ed.ID
			res.Updated = append(res.Updated, id)
			if current.courseType != ed.CourseType {
				res.Recoursed = append(res.Recoursed, id)
			}
		} else {
			res.Added = append(res.Added, id)
		}

		options = append(options, Option{
			id:          id,
			courseType:  ed.CourseType,
			name:        name,
			description: ed.Description,
			maxCapacity: ed.MaxCapacity,
			sortOrder:   order,
		})
	}
	if !hasMain {
		return nil, res, ErrNoMainOption
	}

	for _, o := range m.options {
		if !kept[o.id] {
			res.Removed = append(res.Removed, o)
		}
	}
	return options, res, nil
}
