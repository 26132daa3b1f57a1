package request

import (
	"canteen-reservation/internal/domain/calendar"

	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the custom binding tags used by the request DTOs:
// "hhmm" for a 24h HH:MM cut-off and "weekday" for 0 (Sunday) to 6.
func RegisterValidators(v *validator.Validate) error {
	if err := v.RegisterValidation("hhmm", validateHHMM); err != nil {
		return err
	}
	return v.RegisterValidation("weekday", validateWeekday)
}

func validateHHMM(fl validator.FieldLevel) bool {
	_, err := calendar.ParseDeadlineTime(fl.Field().String())
	return err == nil
}

func validateWeekday(fl validator.FieldLevel) bool {
	return calendar.Weekday(fl.Field().Int()).IsValid()
}
