package persistence

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore(filepath.Join(t.TempDir(), "scores.json"))
	s.now = func() time.Time {
		return time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)
	}
	return s
}

func TestStoreRecordAndLoad(t *testing.T) {
	s := testStore(t)
	if got := s.Load(); len(got) != 0 {
		t.Fatalf("fresh store loaded %d entries, want 0", len(got))
	}

	if err := s.Record("Alice", "Bob", [2]int{2, 1}, -37.25); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := s.Record("Bob", "Alice", [2]int{1, 2}, 12.3456); err != nil {
		t.Fatalf("Record: %v", err)
	}

	entries := s.Load()
	if len(entries) != 2 {
		t.Fatalf("loaded %d entries, want 2", len(entries))
	}
	e := entries[0]
	if e.Winner != "Alice" || e.Loser != "Bob" {
		t.Fatalf("entry 0 = %q over %q, want Alice over Bob", e.Winner, e.Loser)
	}
	if e.Rounds.Player1 != 2 || e.Rounds.Player2 != 1 {
		t.Fatalf("entry 0 rounds = %d-%d, want 2-1", e.Rounds.Player1, e.Rounds.Player2)
	}
	if e.Timestamp != "2025-03-14T15:09:26" {
		t.Fatalf("entry 0 timestamp = %q", e.Timestamp)
	}
	if e.Wind != -37.25 {
		t.Fatalf("entry 0 wind = %v, want -37.25", e.Wind)
	}
	if entries[1].Wind != 12.35 {
		t.Fatalf("entry 1 wind = %v, want rounded to 12.35", entries[1].Wind)
	}
}

func TestStoreSeparateHandlesShareFile(t *testing.T) {
	s := testStore(t)
	if err := s.Record("Alice", "Bob", [2]int{2, 0}, 0); err != nil {
		t.Fatalf("Record: %v", err)
	}

	reopened := NewStore(s.path)
	entries := reopened.Load()
	if len(entries) != 1 || entries[0].Winner != "Alice" {
		t.Fatalf("reopened store loaded %v", entries)
	}
}

func TestStoreRecoversFromCorruptFile(t *testing.T) {
	s := testStore(t)
	if err := os.WriteFile(s.path, []byte("{this is not json"), 0o644); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}

	if got := s.Load(); len(got) != 0 {
		t.Fatalf("corrupt file loaded %d entries, want 0", len(got))
	}
	if err := s.Record("Alice", "Bob", [2]int{2, 1}, 5); err != nil {
		t.Fatalf("Record over corrupt file: %v", err)
	}
	entries := s.Load()
	if len(entries) != 1 {
		t.Fatalf("after recovery loaded %d entries, want 1", len(entries))
	}
}

func TestStoreMissingFileIsEmpty(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "never-written.json"))
	if got := s.Load(); got != nil {
		t.Fatalf("missing file loaded %v, want nil", got)
	}
}

func TestFormatHistory(t *testing.T) {
	s := testStore(t)
	if got := s.FormatHistory(); got != "No matches recorded yet." {
		t.Fatalf("empty history = %q", got)
	}

	if err := s.Record("Bob", "Alice", [2]int{1, 2}, -3.5); err != nil {
		t.Fatalf("Record: %v", err)
	}
	out := s.FormatHistory()
	if !strings.Contains(out, "Bob defeats Alice 2-1") {
		t.Fatalf("history %q missing winner-first tally", out)
	}
	if !strings.Contains(out, "2025-03-14T15:09:26") {
		t.Fatalf("history %q missing timestamp", out)
	}
	if !strings.Contains(out, "(wind -3.50)") {
		t.Fatalf("history %q missing wind", out)
	}
}
