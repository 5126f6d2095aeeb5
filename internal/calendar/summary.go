package calendar

import (
	"time"

	"barkeep/internal/model"
)

// DayWindow returns the half-open local-day interval [midnight, midnight+24h)
// containing now, in now's location.
func DayWindow(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return start, start.Add(24 * time.Hour)
}

// Summarize reduces today's meetings, ordered by start, to the widget
// payload. Count includes meetings that already finished; Next is the first
// start at or after now, or "--" when everything has started.
func Summarize(meetings []model.Meeting, now time.Time) model.Summary {
	sum := model.Summary{Next: "--", Count: len(meetings)}
	for _, m := range meetings {
		if !m.Start.Before(now) {
			sum.Next = m.Start.In(now.Location()).Format("15:04")
			break
		}
	}
	return sum
}
