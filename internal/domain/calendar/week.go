package calendar

// Week is a Monday-anchored week with the days the canteen serves in it.
type Week struct {
	Start    Date
	End      Date
	OpenDays []Date
}

// AvailableWeeks lists count weeks starting with the one containing today.
func AvailableWeeks(today Date, count int, openDays OpenDays) []Week {
	if count < 1 {
		return nil
	}
	weeks := make([]Week, 0, count)
	monday := today.Monday()
	for i := range count {
		start := monday.AddDays(7 * i)
		w := Week{Start: start, End: start.AddDays(6)}
		for d := range 7 {
			day := start.AddDays(d)
			if IsOpenDay(day, openDays) {
				w.OpenDays = append(w.OpenDays, day)
			}
		}
		weeks = append(weeks, w)
	}
	return weeks
}
