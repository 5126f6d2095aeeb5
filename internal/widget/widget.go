// Package widget renders provider results in the formats a status bar
// consumes: a bare text line, or the Waybar JSON envelope.
package widget

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"barkeep/internal/model"
	"barkeep/internal/util"
)

const maxText = 80

// Format selects how a provider result is printed.
type Format string

const (
	FormatPlain  Format = "plain"
	FormatWaybar Format = "waybar"
)

// ParseFormat validates a --format flag value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatPlain, FormatWaybar:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown format %q (want plain or waybar)", s)
}

// Result is one widget update. Waybar consumes the JSON form verbatim.
type Result struct {
	Text    string `json:"text"`
	Tooltip string `json:"tooltip"`
	Class   string `json:"class"`
}

// Unread builds the mail widget's result.
func Unread(total int64) Result {
	return Result{
		Text:    strconv.FormatInt(total, 10),
		Tooltip: fmt.Sprintf("Unread: %d", total),
		Class:   "email",
	}
}

// Meetings builds the calendar widget's result. Titles of today's meetings,
// when known, go into the tooltip.
func Meetings(sum model.Summary, meetings []model.Meeting) Result {
	var tip strings.Builder
	fmt.Fprintf(&tip, "Next meeting: %s\nTotal today: %d", sum.Next, sum.Count)
	for _, m := range meetings {
		if m.Title == "" {
			continue
		}
		fmt.Fprintf(&tip, "\n%s  %s", m.Start.Format("15:04"), m.Title)
	}
	return Result{
		Text:    sum.Text(),
		Tooltip: tip.String(),
		Class:   "meetings",
	}
}

// Render returns the single line to print for the chosen format. Text is
// sanitized so the bar never receives control characters or an overlong
// string.
func (r Result) Render(f Format) (string, error) {
	r.Text = util.SanitizeStatus(r.Text, maxText)
	if f == FormatPlain {
		return r.Text, nil
	}
	buf, err := json.Marshal(r)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}
