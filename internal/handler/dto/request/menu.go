package request

import (
	"canteen-reservation/internal/domain/calendar"
	"canteen-reservation/internal/domain/menu"
	"canteen-reservation/internal/pkg/errs"
	"canteen-reservation/internal/pkg/patch"

	"github.com/google/uuid"
)

type MenuOptionRequest struct {
	CourseType  string  `json:"course_type" binding:"required,oneof=STARTER MAIN DESSERT"`
	Name        string  `json:"name" binding:"required,max=200"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=1000"`
	MaxCapacity *int    `json:"max_capacity,omitempty" binding:"omitempty,min=1"`
	SortOrder   *int    `json:"sort_order,omitempty" binding:"omitempty,min=0"`
}

type CreateMenuRequest struct {
	Date        string              `json:"date" binding:"required"`
	SideDishes  *string             `json:"side_dishes,omitempty" binding:"omitempty,max=1000"`
	Notes       *string             `json:"notes,omitempty" binding:"omitempty,max=1000"`
	IsPublished bool                `json:"is_published"`
	Options     []MenuOptionRequest `json:"options" binding:"required,min=1,dive"`
}

func (r CreateMenuRequest) ToDomain() (*menu.Menu, error) {
	date, err := calendar.ParseDate(r.Date)
	if err != nil {
		return nil, errs.WithDetailf(errs.Mark(err, errs.ErrValidation), "date %q", r.Date)
	}
	specs := make([]menu.OptionSpec, len(r.Options))
	for i, o := range r.Options {
		if specs[i], err = o.toSpec(); err != nil {
			return nil, err
		}
	}
	return menu.NewMenu(date, r.SideDishes, r.Notes, r.IsPublished, specs)
}

func (o MenuOptionRequest) toSpec() (menu.OptionSpec, error) {
	course, err := menu.NewCourseType(o.CourseType)
	if err != nil {
		return menu.OptionSpec{}, err
	}
	return menu.OptionSpec{
		CourseType:  course,
		Name:        o.Name,
		Description: o.Description,
		MaxCapacity: o.MaxCapacity,
		SortOrder:   o.SortOrder,
	}, nil
}

// MenuOptionEditRequest keeps the option named by ID, or adds one when ID is absent.
type MenuOptionEditRequest struct {
	ID *uuid.UUID `json:"id,omitempty"`
	MenuOptionRequest
}

// UpdateMenuRequest is a partial update. When options is present it replaces
// the whole list; options left out are removed.
type UpdateMenuRequest struct {
	IsPublished *bool                    `json:"is_published,omitempty"`
	SideDishes  patch.Nullable[string]   `json:"side_dishes" swaggertype:"string"`
	Notes       patch.Nullable[string]   `json:"notes" swaggertype:"string"`
	Options     *[]MenuOptionEditRequest `json:"options,omitempty" binding:"omitempty,dive"`
}

func (r UpdateMenuRequest) ToEdit() (menu.Edit, error) {
	e := menu.Edit{
		SideDishes:  r.SideDishes,
		Notes:       r.Notes,
		IsPublished: r.IsPublished,
	}
	if err := maxLen("side_dishes", r.SideDishes, 1000); err != nil {
		return menu.Edit{}, err
	}
	if err := maxLen("notes", r.Notes, 1000); err != nil {
		return menu.Edit{}, err
	}
	if r.Options != nil {
		edits := make([]menu.OptionEdit, len(*r.Options))
		for i, o := range *r.Options {
			spec, err := o.toSpec()
			if err != nil {
				return menu.Edit{}, err
			}
			edits[i] = menu.OptionEdit{ID: o.ID, OptionSpec: spec}
		}
		e.Options = &edits
	}
	return e, nil
}

func maxLen(field string, v patch.Nullable[string], limit int) error {
	if v.Value != nil && len([]rune(*v.Value)) > limit {
		return errs.WithDetailf(errs.Mark(errs.New("field too long"), errs.ErrValidation), "%s exceeds %d characters", field, limit)
	}
	return nil
}
