package response

import (
	"canteen-reservation/internal/domain/calendar"
	"canteen-reservation/internal/usecase/queries"
)

type DeadlineStatusResponse struct {
	Date      calendar.Date `json:"date" swaggertype:"string" format:"date"`
	Weekday   string        `json:"weekday"`
	IsOpenDay bool          `json:"is_open_day"`
	CanModify bool          `json:"can_modify"`
	Reason    string        `json:"reason,omitempty"`
	TimeLeft  string        `json:"time_left,omitempty" example:"1h05"`
	Deadline  string        `json:"deadline" example:"10:00"`
}

type WeekResponse struct {
	Start    calendar.Date   `json:"start" swaggertype:"string" format:"date"`
	End      calendar.Date   `json:"end" swaggertype:"string" format:"date"`
	OpenDays []calendar.Date `json:"open_days" swaggertype:"array,string"`
}

func FromDeadlineStatus(s *queries.DeadlineStatus) *DeadlineStatusResponse {
	res := DeadlineStatusResponse(*s)
	return &res
}

func FromWeekViews(weeks []queries.WeekView) []WeekResponse {
	res := make([]WeekResponse, len(weeks))
	for i, w := range weeks {
		res[i] = WeekResponse(w)
	}
	return res
}
