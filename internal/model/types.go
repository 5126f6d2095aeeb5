package model

import (
	"fmt"
	"time"
)

// Meeting is one occurrence of a calendar event on the current day. Recurring
// events contribute one Meeting per expanded instance.
type Meeting struct {
	Start time.Time
	End   time.Time
	Title string
}

// Summary is the meeting widget's payload: the local start time of the next
// upcoming meeting ("--" when everything today has already started) and the
// total number of meetings overlapping today, finished ones included.
type Summary struct {
	Next  string
	Count int
}

// NoMeetings is the degraded summary used whenever the calendar data cannot
// be read: the widget must always have something displayable.
func NoMeetings() Summary {
	return Summary{Next: "--", Count: 0}
}

// Text renders the summary in the widget's wire form, e.g. "(09:00 | 2)".
func (s Summary) Text() string {
	return fmt.Sprintf("(%s | %d)", s.Next, s.Count)
}
