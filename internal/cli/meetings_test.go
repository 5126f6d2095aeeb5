package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMeetings_BrokenConfigDegrades(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".config", "barkeep")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("mail: [broken\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cmd := newMeetingsCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{})

	// The bar drops the widget on any non-zero exit, so a config typo has
	// to degrade, not fail.
	if err := cmd.Execute(); err != nil {
		t.Fatalf("meetings failed on a broken config: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "(-- | 0)" {
		t.Fatalf("output = %q, want (-- | 0)", got)
	}
}

func TestMeetings_ExplicitRegistrySkipsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".config", "barkeep")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("mail: [broken\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cmd := newMeetingsCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--registry", filepath.Join(home, "absent.ini")})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("meetings failed with explicit registry: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "(-- | 0)" {
		t.Fatalf("output = %q, want (-- | 0)", got)
	}
}
