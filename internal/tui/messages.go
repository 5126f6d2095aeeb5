package tui

import (
	"time"

	"barkeep/internal/model"
)

// Async message types for Bubble Tea commands.

type unreadMsg struct {
	total int64
	err   error
}

type meetingsMsg struct {
	meetings []model.Meeting
	summary  model.Summary
}

type tickMsg time.Time
