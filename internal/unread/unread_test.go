package unread

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeIndex(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestTotal_SumsAcrossFiles(t *testing.T) {
	root := t.TempDir()
	writeIndex(t, filepath.Join(root, "Mail", "a"), "INBOX.msf",
		"// <!-- <mdb:mork:z v=\"1.4\"/> -->\n(^A1=a)\n")
	writeIndex(t, filepath.Join(root, "Mail", "b"), "INBOX-work.msf",
		"(^A1=10)\n")
	writeIndex(t, filepath.Join(root, "ImapMail", "c"), "INBOX.msf",
		"junk\n(^A1=FF)\n")

	total, err := Total(root, 1)
	if err != nil {
		t.Fatalf("Total: %v", err)
	}
	// 0xa + 0x10 + 0xff
	if total != 10+16+255 {
		t.Fatalf("total = %d, want %d", total, 10+16+255)
	}
}

func TestTotal_LastMarkerWins(t *testing.T) {
	root := t.TempDir()
	writeIndex(t, root, "INBOX.msf",
		"(^A1=5)\nother line\n(^A1=2)\n")

	total, err := Total(root, 1)
	if err != nil {
		t.Fatalf("Total: %v", err)
	}
	if total != 2 {
		t.Fatalf("total = %d, want 2 (last marker line)", total)
	}
}

func TestTotal_LongLinesDoNotHideLaterMarkers(t *testing.T) {
	root := t.TempDir()
	// A multi-megabyte line between two markers must not end the scan early
	// and resurrect the stale first value.
	content := "(^A1=5)\n" + strings.Repeat("x", 2<<20) + "\n(^A1=2)\n"
	writeIndex(t, root, "INBOX.msf", content)

	total, err := Total(root, 1)
	if err != nil {
		t.Fatalf("Total: %v", err)
	}
	if total != 2 {
		t.Fatalf("total = %d, want 2 (last marker line)", total)
	}
}

func TestTotal_NonHexLastMarkerContributesZero(t *testing.T) {
	root := t.TempDir()
	// The stale-but-valid first line must not be resurrected when the live
	// line is malformed.
	writeIndex(t, root, "INBOX.msf", "(^A1=beef)\n(^A1=zz)\n")
	writeIndex(t, filepath.Join(root, "other"), "INBOX.msf", "(^A1=3)\n")

	total, err := Total(root, 1)
	if err != nil {
		t.Fatalf("Total: %v", err)
	}
	if total != 3 {
		t.Fatalf("total = %d, want 3", total)
	}
}

func TestTotal_FieldSelection(t *testing.T) {
	root := t.TempDir()
	writeIndex(t, root, "INBOX.msf", "(^A1=1)(^A2=20)\n")

	if total, _ := Total(root, 1); total != 1 {
		t.Fatalf("field 1 total = %d, want 1", total)
	}
	if total, _ := Total(root, 2); total != 0x20 {
		t.Fatalf("field 2 total = %d, want %d", total, 0x20)
	}
	if _, err := Total(root, 3); err == nil {
		t.Fatal("expected error for field 3")
	}
}

func TestTotal_IgnoresNonInboxFiles(t *testing.T) {
	root := t.TempDir()
	writeIndex(t, root, "Sent.msf", "(^A1=ff)\n")
	writeIndex(t, root, "INBOX.msf.bak", "(^A1=ff)\n")
	writeIndex(t, root, "INBOX.msf", "no markers here\n")

	total, err := Total(root, 1)
	if err != nil {
		t.Fatalf("Total: %v", err)
	}
	if total != 0 {
		t.Fatalf("total = %d, want 0", total)
	}
}

func TestTotal_EmptyDir(t *testing.T) {
	total, err := Total(t.TempDir(), 2)
	if err != nil {
		t.Fatalf("Total: %v", err)
	}
	if total != 0 {
		t.Fatalf("total = %d, want 0", total)
	}
}

func TestTotal_MissingRoot(t *testing.T) {
	if _, err := Total(filepath.Join(t.TempDir(), "nope"), 1); err == nil {
		t.Fatal("expected error for missing root")
	}
}
