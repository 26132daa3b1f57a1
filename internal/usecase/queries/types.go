package queries

import (
	"time"

	"canteen-reservation/internal/domain/calendar"

	"github.com/google/uuid"
)

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
}

type OptionRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ReservationView is a reservation joined with its owner and option names.
type ReservationView struct {
	ID              uuid.UUID     `json:"id"`
	UserID          uuid.UUID     `json:"user_id"`
	UserEmail       string        `json:"user_email"`
	UserFirstName   string        `json:"user_first_name"`
	UserLastName    string        `json:"user_last_name"`
	Date            calendar.Date `json:"date"`
	MainOption      OptionRef     `json:"main_option"`
	StarterOption   *OptionRef    `json:"starter_option,omitempty"`
	DessertOption   *OptionRef    `json:"dessert_option,omitempty"`
	ConsumptionMode string        `json:"consumption_mode"`
	Status          string        `json:"status"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

func (v *ReservationView) Key() ReservationKey {
	return ReservationKey{Date: v.Date, CreatedAt: v.CreatedAt, ID: v.ID}
}

type MenuOptionView struct {
	ID          uuid.UUID `json:"id"`
	CourseType  string    `json:"course_type"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	MaxCapacity *int      `json:"max_capacity,omitempty"`
	SortOrder   int       `json:"sort_order"`
}

// MenuView groups options by course, each group in display order.
type MenuView struct {
	ID          uuid.UUID        `json:"id"`
	Date        calendar.Date    `json:"date"`
	IsPublished bool             `json:"is_published"`
	SideDishes  *string          `json:"side_dishes,omitempty"`
	Notes       *string          `json:"notes,omitempty"`
	Starters    []MenuOptionView `json:"starters"`
	Mains       []MenuOptionView `json:"mains"`
	Desserts    []MenuOptionView `json:"desserts"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

type MainOptionCount struct {
	OptionID    uuid.UUID `json:"option_id"`
	Name        string    `json:"name"`
	MaxCapacity *int      `json:"max_capacity,omitempty"`
	Count       int       `json:"count"`
	Remaining   *int      `json:"remaining,omitempty"`
}

// DailySummary is the kitchen's view of one service day.
type DailySummary struct {
	Date              calendar.Date     `json:"date"`
	Total             int               `json:"total"`
	ByStatus          map[string]int    `json:"by_status"`
	ByConsumptionMode map[string]int    `json:"by_consumption_mode"`
	MainOptions       []MainOptionCount `json:"main_options"`
	MaxDailyCapacity  *int              `json:"max_daily_capacity,omitempty"`
	RemainingCapacity *int              `json:"remaining_capacity,omitempty"`
}

type AuditLogView struct {
	ID            uuid.UUID      `json:"id"`
	PerformedByID uuid.UUID      `json:"performed_by_id"`
	UserID        *uuid.UUID     `json:"user_id,omitempty"`
	Action        string         `json:"action"`
	EntityType    string         `json:"entity_type"`
	EntityID      string         `json:"entity_id"`
	Details       map[string]any `json:"details,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}

// SettingsView carries every setting; the optional fields are withheld from
// non-staff callers.
type SettingsView struct {
	ReservationDeadline        string     `json:"reservation_deadline"`
	OpenDays                   []int      `json:"open_days"`
	WeeksInAdvance             int        `json:"weeks_in_advance"`
	MaxDailyCapacity           *int       `json:"max_daily_capacity,omitempty"`
	NotificationsEnabled       *bool      `json:"notifications_enabled,omitempty"`
	OperationalTrackingEnabled *bool      `json:"operational_tracking_enabled,omitempty"`
	UpdatedAt                  *time.Time `json:"updated_at,omitempty"`
}

type DeadlineStatus struct {
	Date      calendar.Date `json:"date"`
	Weekday   string        `json:"weekday"`
	IsOpenDay bool          `json:"is_open_day"`
	CanModify bool          `json:"can_modify"`
	Reason    string        `json:"reason,omitempty"`
	TimeLeft  string        `json:"time_left,omitempty"`
	Deadline  string        `json:"deadline"`
}

type WeekView struct {
	Start    calendar.Date   `json:"start"`
	End      calendar.Date   `json:"end"`
	OpenDays []calendar.Date `json:"open_days"`
}
