package calendar

import (
	"strings"
	"time"

	"github.com/teambition/rrule-go"

	"barkeep/internal/model"
)

// expand turns one stored row into its occurrences inside the half-open
// window. Plain events overlap iff end > windowStart and start < windowEnd;
// recurring events contribute the instances whose start falls in the window,
// minus deleted (negative-exception) instances.
func expand(r eventRow, windowStart, windowEnd time.Time, exceptions map[exceptionKey]bool) []model.Meeting {
	loc := locationFor(r.startTZ)
	start := time.UnixMicro(r.start).In(loc)

	if r.rrule == "" {
		if !r.end.Valid {
			// No stored end: the event counts when it starts inside the
			// window, midnight included.
			if !start.Before(windowStart) && start.Before(windowEnd) {
				return []model.Meeting{{Start: start, End: start, Title: r.title}}
			}
			return nil
		}
		end := time.UnixMicro(r.end.Int64).In(loc)
		if end.After(windowStart) && start.Before(windowEnd) {
			return []model.Meeting{{Start: start, End: end, Title: r.title}}
		}
		return nil
	}

	rule, err := rrule.StrToRRule(strings.TrimPrefix(r.rrule, "RRULE:"))
	if err != nil {
		// Rules the library cannot express skip this event only.
		return nil
	}
	rule.DTStart(start)

	var dur time.Duration
	if r.end.Valid {
		dur = time.Duration(r.end.Int64-r.start) * time.Microsecond
	}

	var out []model.Meeting
	for _, inst := range rule.Between(windowStart, windowEnd.Add(-time.Microsecond), true) {
		if exceptions[exceptionKey{r.calID, inst.UTC().UnixMicro()}] {
			continue
		}
		inst = inst.In(loc)
		out = append(out, model.Meeting{Start: inst, End: inst.Add(dur), Title: r.title})
	}
	return out
}

// locationFor maps a stored timezone name to a location, falling back to
// local time for floating or unknown zones.
func locationFor(tz string) *time.Location {
	if tz == "" || tz == "floating" {
		return time.Local
	}
	if loc, err := time.LoadLocation(tz); err == nil {
		return loc
	}
	// Mozilla-era stores prefix zone names with a registry path, e.g.
	// "/mozilla.org/20070129_1/Europe/Berlin".
	if strings.HasPrefix(tz, "/mozilla.org/") {
		if parts := strings.SplitN(strings.TrimPrefix(tz, "/mozilla.org/"), "/", 2); len(parts) == 2 {
			if loc, err := time.LoadLocation(parts[1]); err == nil {
				return loc
			}
		}
	}
	return time.Local
}
