package util

import (
	"strings"
	"testing"
)

func TestSanitizeStatus(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"(09:00 | 2)", 80, "(09:00 | 2)"},
		{"line\nbreak", 80, "line break"},
		{"tab\tand\rcr", 80, "tab and cr"},
		{"café ≠ cafe", 80, "caf  cafe"}, // non-ASCII dropped
		{"  padded  ", 80, "padded"},
		{strings.Repeat("x", 100), 80, strings.Repeat("x", 80)},
		{"", 80, ""},
	}
	for _, tc := range tests {
		if got := SanitizeStatus(tc.in, tc.max); got != tc.want {
			t.Errorf("SanitizeStatus(%q) = %q; want %q", tc.in, got, tc.want)
		}
	}
}
