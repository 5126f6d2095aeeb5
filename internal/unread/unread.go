// Package unread sums the unread-message counters that a mail client embeds
// in its mailbox index (.msf) files.
package unread

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Total walks root for inbox index files (INBOX.msf or INBOX-*.msf) and sums
// the counter each one carries in a "(^A<field>=<hex>)" marker. The caret and
// the "A" are literal characters in the index format. field selects which
// counter id means "unread"; both 1 and 2 appear in the wild depending on the
// client version.
//
// Files without a parseable marker contribute 0. A missing or unreadable root
// is an error: that is an operator mistake, not a data condition to mask.
func Total(root string, field int) (int64, error) {
	if field != 1 && field != 2 {
		return 0, fmt.Errorf("unread field must be 1 or 2, got %d", field)
	}

	info, err := os.Stat(root)
	if err != nil {
		return 0, fmt.Errorf("mail root: %w", err)
	}
	if !info.IsDir() {
		return 0, fmt.Errorf("mail root %s: not a directory", root)
	}

	marker := fmt.Sprintf("(^A%d=", field)
	var total int64
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			// Subtrees that vanish or deny access mid-walk contribute nothing.
			return nil
		}
		if d.IsDir() || !isInboxIndex(d.Name()) {
			return nil
		}
		total += fileCount(path, marker)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("scan %s: %w", root, err)
	}
	return total, nil
}

func isInboxIndex(name string) bool {
	if name == "INBOX.msf" {
		return true
	}
	ok, _ := filepath.Match("INBOX-*.msf", name)
	return ok
}

// fileCount extracts the counter from the last marker line in one index
// file. Index files accumulate superseded marker lines as the client updates
// them in place, so the last occurrence is the live value; earlier ones are
// stale and must not win even when the last one fails to parse.
func fileCount(path, marker string) int64 {
	f, err := os.Open(path)
	if err != nil {
		return 0
	}
	defer f.Close()

	// Lines in index files can grow arbitrarily long, so read without a
	// token cap. A file that cannot be read to the end contributes nothing:
	// a partial scan could resurrect a stale superseded marker.
	var line string
	r := bufio.NewReader(f)
	for {
		s, err := r.ReadString('\n')
		if strings.Contains(s, marker) {
			line = s
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0
		}
	}
	if line == "" {
		return 0
	}

	rest := line[strings.LastIndex(line, marker)+len(marker):]
	end := strings.IndexByte(rest, ')')
	if end < 0 {
		return 0
	}
	n, err := strconv.ParseInt(rest[:end], 16, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
