package util

import "strings"

// SanitizeStatus makes a string safe for a status-bar widget slot: one line,
// printable ASCII only, at most max characters. Tabs and newlines collapse to
// spaces; everything else outside printable ASCII is dropped.
func SanitizeStatus(s string, max int) string {
	var b strings.Builder
	for _, r := range s {
		if b.Len() >= max {
			break
		}
		switch {
		case r == '\n' || r == '\r' || r == '\t':
			b.WriteByte(' ')
		case r < 0x20 || r > 0x7e:
			// dropped
		default:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
