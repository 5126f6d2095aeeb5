// Package tui implements the barkeep dashboard: both widget providers
// rendered in a terminal and refreshed on a ticker.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"barkeep/internal/calendar"
	"barkeep/internal/config"
	"barkeep/internal/model"
	"barkeep/internal/unread"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	upcomingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// Dashboard polls both providers the way a status bar would and shows the
// results, plus today's meeting list with titles.
type Dashboard struct {
	cfg  config.Config
	spin spinner.Model

	loading   int // provider refreshes in flight
	unread    int64
	unreadErr error
	summary   model.Summary
	meetings  []model.Meeting
	updated   time.Time

	width, height int
}

func NewDashboard(cfg config.Config) Dashboard {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return Dashboard{
		cfg:     cfg,
		spin:    sp,
		loading: 2,
		summary: model.NoMeetings(),
	}
}

func (d Dashboard) Init() tea.Cmd {
	return tea.Batch(d.spin.Tick, d.refreshUnread(), d.refreshMeetings(), d.tick())
}

func (d Dashboard) tick() tea.Cmd {
	return tea.Tick(d.cfg.RefreshInterval(), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (d Dashboard) refreshUnread() tea.Cmd {
	root, field := d.cfg.Mail.Root, d.cfg.Mail.Field
	return func() tea.Msg {
		total, err := unread.Total(root, field)
		return unreadMsg{total: total, err: err}
	}
}

func (d Dashboard) refreshMeetings() tea.Cmd {
	registry := d.cfg.Calendar.Registry
	return func() tea.Msg {
		now := time.Now()
		meetings, ok := calendar.Today(context.Background(), registry, now)
		if !ok {
			return meetingsMsg{summary: model.NoMeetings()}
		}
		return meetingsMsg{
			meetings: meetings,
			summary:  calendar.Summarize(meetings, now),
		}
	}
}

func (d Dashboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.width, d.height = msg.Width, msg.Height
		return d, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return d, tea.Quit
		case "r":
			d.loading = 2
			return d, tea.Batch(d.refreshUnread(), d.refreshMeetings())
		}
		return d, nil

	case tickMsg:
		d.loading = 2
		return d, tea.Batch(d.refreshUnread(), d.refreshMeetings(), d.tick())

	case unreadMsg:
		d.loading--
		d.unread, d.unreadErr = msg.total, msg.err
		d.updated = time.Now()
		return d, nil

	case meetingsMsg:
		d.loading--
		d.meetings, d.summary = msg.meetings, msg.summary
		d.updated = time.Now()
		return d, nil
	}

	var cmd tea.Cmd
	d.spin, cmd = d.spin.Update(msg)
	return d, cmd
}

func (d Dashboard) View() string {
	var b strings.Builder

	header := titleStyle.Render("barkeep")
	if d.loading > 0 {
		header += " " + d.spin.View()
	}
	b.WriteString(header + "\n\n")

	if d.unreadErr != nil {
		fmt.Fprintf(&b, "Mail      %s\n", dimStyle.Render("unavailable"))
	} else {
		fmt.Fprintf(&b, "Mail      %d unread\n", d.unread)
	}
	fmt.Fprintf(&b, "Meetings  %s\n\n", d.summary.Text())

	if len(d.meetings) == 0 {
		b.WriteString(dimStyle.Render("no meetings today") + "\n")
	}
	now := time.Now()
	for _, m := range d.meetings {
		line := fmt.Sprintf("%s  %s", m.Start.Format("15:04"), m.Title)
		if m.Start.Before(now) {
			line = dimStyle.Render(line)
		} else {
			line = upcomingStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}

	footer := "r: refresh  q: quit"
	if !d.updated.IsZero() {
		footer = "updated " + d.updated.Format("15:04:05") + "  " + footer
	}
	b.WriteString("\n" + dimStyle.Render(footer))
	return b.String()
}
