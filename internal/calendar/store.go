// Package calendar reads a mail client's calendar SQLite store and reduces
// today's events to a status-widget summary.
package calendar

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	_ "modernc.org/sqlite"

	"barkeep/internal/model"
	"barkeep/internal/profile"
)

// Store reads one calendar event database. The database file is copied to a
// temp location before opening: the calendar application keeps the live copy
// locked while it runs.
type Store struct {
	db      *sql.DB
	tmpPath string
}

// OpenProfileStore opens the calendar store at its fixed location under a
// resolved profile directory.
func OpenProfileStore(profileDir string) (*Store, error) {
	return Open(filepath.Join(profileDir, "calendar-data", "local.sqlite"))
}

// Open copies the database at dbPath aside and opens the copy read-only.
func Open(dbPath string) (*Store, error) {
	tmp, err := copyToTemp(dbPath)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", tmp)
	if err != nil {
		os.Remove(tmp)
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	return &Store{db: db, tmpPath: tmp}, nil
}

// Close releases the database and deletes the temp copy.
func (s *Store) Close() error {
	err := s.db.Close()
	os.Remove(s.tmpPath)
	return err
}

func copyToTemp(path string) (string, error) {
	src, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.CreateTemp("", "barkeep-*.sqlite")
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(dst.Name())
		return "", err
	}
	if err := dst.Close(); err != nil {
		os.Remove(dst.Name())
		return "", err
	}
	return dst.Name(), nil
}

// eventRow is one cal_events row with its optional recurrence rule joined in.
// Timestamps are Unix-epoch microseconds.
type eventRow struct {
	id      string
	calID   string
	title   string
	start   int64
	end     sql.NullInt64
	startTZ string
	rrule   string
}

// EventsForWindow returns every occurrence falling in the half-open window
// [windowStart, windowEnd), recurring events expanded and negative exceptions
// removed, ordered ascending by start. Rows with unusable timestamps or
// recurrence rules are skipped individually.
func (s *Store) EventsForWindow(ctx context.Context, windowStart, windowEnd time.Time) ([]model.Meeting, error) {
	exceptions := s.negativeExceptions(ctx)

	// Recurring events keep generating instances long after their own end
	// timestamp, so only prune by event_end for plain rows.
	rows, err := s.db.QueryContext(ctx, `
		SELECT e.id, e.cal_id, COALESCE(e.title, ''),
		       e.event_start, e.event_end, COALESCE(e.event_start_tz, ''),
		       COALESCE(p.value, '')
		FROM cal_events e
		LEFT JOIN cal_properties p ON p.item_id = e.id AND p.key = 'RRULE'
		WHERE e.event_end > ? OR e.event_end IS NULL OR p.value IS NOT NULL`,
		windowStart.UnixMicro())
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var meetings []model.Meeting
	for rows.Next() {
		var r eventRow
		var start sql.NullInt64
		if err := rows.Scan(&r.id, &r.calID, &r.title, &start, &r.end, &r.startTZ, &r.rrule); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		if !start.Valid {
			continue
		}
		r.start = start.Int64
		meetings = append(meetings, expand(r, windowStart, windowEnd, exceptions)...)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.Slice(meetings, func(i, j int) bool { return meetings[i].Start.Before(meetings[j].Start) })
	return meetings, nil
}

type exceptionKey struct {
	calID        string
	recurrenceID int64
}

// negativeExceptions collects deleted instances of recurring events. Older
// stores may lack the table entirely; that just means no exceptions.
func (s *Store) negativeExceptions(ctx context.Context) map[exceptionKey]bool {
	out := map[exceptionKey]bool{}
	rows, err := s.db.QueryContext(ctx,
		`SELECT cal_id, recurrence_id FROM cal_exceptions WHERE is_negative = 1`)
	if err != nil {
		return out
	}
	defer rows.Close()

	for rows.Next() {
		var k exceptionKey
		if err := rows.Scan(&k.calID, &k.recurrenceID); err != nil {
			continue
		}
		out[k] = true
	}
	return out
}

// Today returns the active profile's meetings overlapping the local day
// containing now. The boolean is false when no profile resolves or the store
// cannot be read.
func Today(ctx context.Context, registryPath string, now time.Time) ([]model.Meeting, bool) {
	dir, ok := profile.Resolve(registryPath)
	if !ok {
		return nil, false
	}
	st, err := OpenProfileStore(dir)
	if err != nil {
		return nil, false
	}
	defer st.Close()

	windowStart, windowEnd := DayWindow(now)
	meetings, err := st.EventsForWindow(ctx, windowStart, windowEnd)
	if err != nil {
		return nil, false
	}
	return meetings, true
}

// SummaryForRegistry is the meeting provider's whole contract: any data
// problem degrades to ("--", 0) so the status bar always gets text.
func SummaryForRegistry(ctx context.Context, registryPath string, now time.Time) model.Summary {
	meetings, ok := Today(ctx, registryPath, now)
	if !ok {
		return model.NoMeetings()
	}
	return Summarize(meetings, now)
}
