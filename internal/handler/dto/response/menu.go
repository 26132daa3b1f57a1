package response

import (
	"time"

	"canteen-reservation/internal/domain/calendar"
	"canteen-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type MenuOptionResponse struct {
	ID          uuid.UUID `json:"id"`
	CourseType  string    `json:"course_type"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	MaxCapacity *int      `json:"max_capacity,omitempty"`
	SortOrder   int       `json:"sort_order"`
}

type MenuResponse struct {
	ID          uuid.UUID            `json:"id"`
	Date        calendar.Date        `json:"date" swaggertype:"string" format:"date"`
	IsPublished bool                 `json:"is_published"`
	SideDishes  *string              `json:"side_dishes,omitempty"`
	Notes       *string              `json:"notes,omitempty"`
	Starters    []MenuOptionResponse `json:"starters"`
	Mains       []MenuOptionResponse `json:"mains"`
	Desserts    []MenuOptionResponse `json:"desserts"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

func FromMenuView(v *queries.MenuView) *MenuResponse {
	var res MenuResponse
	mustCopy(&res, v)
	// empty courses render as [] rather than null
	if res.Starters == nil {
		res.Starters = []MenuOptionResponse{}
	}
	if res.Mains == nil {
		res.Mains = []MenuOptionResponse{}
	}
	if res.Desserts == nil {
		res.Desserts = []MenuOptionResponse{}
	}
	return &res
}

func FromMenuViews(views []*queries.MenuView) []*MenuResponse {
	res := make([]*MenuResponse, len(views))
	for i, v := range views {
		res[i] = FromMenuView(v)
	}
	return res
}
