// Package persistence keeps the match score history in a small JSON file
// next to the game. The file is the whole database: read it all, append,
// write it all back.
package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// RoundsTally is the per-side round count of one match.
type RoundsTally struct {
	Player1 int `json:"player_1"`
	Player2 int `json:"player_2"`
}

// ScoreEntry is one finished match as stored on disk.
type ScoreEntry struct {
	Timestamp string      `json:"timestamp"`
	Winner    string      `json:"winner"`
	Loser     string      `json:"loser"`
	Rounds    RoundsTally `json:"rounds"`
	Wind      float64     `json:"wind"`
}

// Store reads and appends the score file. It keeps no state beyond the path,
// so concurrent games on the same file last-write-win, same as the original
// single-player setup assumes.
type Store struct {
	path string
	now  func() time.Time
}

// NewStore creates a store backed by the given file path. The file is only
// created on the first recorded match.
func NewStore(path string) *Store {
	return &Store{path: path, now: time.Now}
}

// Load returns every recorded entry. A missing file is an empty history; a
// corrupt one is logged and treated as empty rather than blocking play.
func (s *Store) Load() []ScoreEntry {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Warn("score history unreadable", "path", s.path, "err", err)
		}
		return nil
	}
	var entries []ScoreEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Warn("score history corrupt, starting fresh", "path", s.path, "err", err)
		return nil
	}
	return entries
}

// Record appends one match result and rewrites the whole file.
func (s *Store) Record(winner, loser string, wins [2]int, wind float64) error {
	entries := append(s.Load(), ScoreEntry{
		Timestamp: s.now().Format("2006-01-02T15:04:05"),
		Winner:    winner,
		Loser:     loser,
		Rounds:    RoundsTally{Player1: wins[0], Player2: wins[1]},
		Wind:      math.Round(wind*100) / 100,
	})
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode score history: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write score history: %w", err)
	}
	return nil
}

// FormatHistory renders the history as plain lines, newest last, for the
// clipboard export.
func (s *Store) FormatHistory() string {
	entries := s.Load()
	if len(entries) == 0 {
		return "No matches recorded yet."
	}
	var sb strings.Builder
	for _, e := range entries {
		hi, lo := e.Rounds.Player1, e.Rounds.Player2
		if lo > hi {
			hi, lo = lo, hi
		}
		fmt.Fprintf(&sb, "%s  %s defeats %s %d-%d (wind %+.2f)\n",
			e.Timestamp, e.Winner, e.Loser, hi, lo, e.Wind)
	}
	return sb.String()
}
