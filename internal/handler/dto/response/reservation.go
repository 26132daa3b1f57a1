package response

import (
	"time"

	"canteen-reservation/internal/domain/calendar"
	"canteen-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type OptionRefResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type ReservationUserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
}

type ReservationResponse struct {
	ID              uuid.UUID               `json:"id"`
	User            ReservationUserResponse `json:"user"`
	Date            calendar.Date           `json:"date" swaggertype:"string" format:"date"`
	MainOption      OptionRefResponse       `json:"main_option"`
	StarterOption   *OptionRefResponse      `json:"starter_option"`
	DessertOption   *OptionRefResponse      `json:"dessert_option"`
	ConsumptionMode string                  `json:"consumption_mode"`
	Status          string                  `json:"status"`
	CreatedAt       time.Time               `json:"created_at"`
	UpdatedAt       time.Time               `json:"updated_at"`
}

type ReservationListResponse struct {
	Items      []*ReservationResponse `json:"items"`
	NextCursor *string                `json:"next_cursor,omitempty"`
}

type MainOptionCountResponse struct {
	OptionID    uuid.UUID `json:"option_id"`
	Name        string    `json:"name"`
	MaxCapacity *int      `json:"max_capacity,omitempty"`
	Count       int       `json:"count"`
	Remaining   *int      `json:"remaining,omitempty"`
}

type DailySummaryResponse struct {
	Date              calendar.Date             `json:"date" swaggertype:"string" format:"date"`
	Total             int                       `json:"total"`
	ByStatus          map[string]int            `json:"by_status"`
	ByConsumptionMode map[string]int            `json:"by_consumption_mode"`
	MainOptions       []MainOptionCountResponse `json:"main_options"`
	MaxDailyCapacity  *int                      `json:"max_daily_capacity,omitempty"`
	RemainingCapacity *int                      `json:"remaining_capacity,omitempty"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	res := &ReservationResponse{
		ID: v.ID,
		User: ReservationUserResponse{
			ID:        v.UserID,
			Email:     v.UserEmail,
			FirstName: v.UserFirstName,
			LastName:  v.UserLastName,
		},
		Date:            v.Date,
		MainOption:      OptionRefResponse(v.MainOption),
		ConsumptionMode: v.ConsumptionMode,
		Status:          v.Status,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
	if v.StarterOption != nil {
		ref := OptionRefResponse(*v.StarterOption)
		res.StarterOption = &ref
	}
	if v.DessertOption != nil {
		ref := OptionRefResponse(*v.DessertOption)
		res.DessertOption = &ref
	}
	return res
}

func FromReservationViews(views []*queries.ReservationView, next *queries.Cursor) *ReservationListResponse {
	res := &ReservationListResponse{Items: make([]*ReservationResponse, len(views))}
	for i, v := range views {
		res.Items[i] = FromReservationView(v)
	}
	if !next.IsZero() {
		res.NextCursor = &next.After
	}
	return res
}

func FromDailySummary(s *queries.DailySummary) *DailySummaryResponse {
	var res DailySummaryResponse
	mustCopy(&res, s)
	if res.MainOptions == nil {
		res.MainOptions = []MainOptionCountResponse{}
	}
	return &res
}
