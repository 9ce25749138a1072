// Package quota tracks a persisted daily budget for expensive research calls.
//
// The counter survives process restarts via a small JSON file and rolls over
// automatically at midnight. Corruption or I/O errors are treated as "quota
// available" — availability matters more than strict accounting here.
package quota

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

const dateLayout = "2006-01-02"

type state struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Tracker counts how many deep email lookups ran today.
type Tracker struct {
	path  string
	limit int

	count int
	date  string
}

// NewTracker loads the persisted counter from path. A missing, unreadable, or
// malformed file yields a zero count (fail open). A stored date other than
// today also reads as zero; storage is not rewritten until the next Increment.
func NewTracker(path string, dailyLimit int) *Tracker {
	if dailyLimit < 1 {
		dailyLimit = 1
	}
	t := &Tracker{path: path, limit: dailyLimit, date: today()}
	t.count = t.load()
	return t
}

// CanProcess reports whether another deep lookup fits in today's budget.
func (t *Tracker) CanProcess() bool {
	t.roll()
	return t.count < t.limit
}

// Remaining returns how many deep lookups are left today.
func (t *Tracker) Remaining() int {
	t.roll()
	if left := t.limit - t.count; left > 0 {
		return left
	}
	return 0
}

// Increment records n deep lookups (at least one) and persists the counter.
func (t *Tracker) Increment(n int) {
	t.roll()
	if n < 1 {
		n = 1
	}
	t.count += n
	if err := t.save(); err != nil {
		// Losing a write only risks a few extra lookups tomorrow.
		log.Printf("quota: failed to persist counter: %v", err)
	}
}

// roll resets the in-memory count when the calendar date has changed since
// the last observation.
func (t *Tracker) roll() {
	if now := today(); now != t.date {
		t.date = now
		t.count = 0
	}
}

func (t *Tracker) load() int {
	data, err := os.ReadFile(t.path)
	if err != nil {
		return 0
	}
	var s state
	if err := json.Unmarshal(data, &s); err != nil {
		return 0
	}
	if s.Date != t.date || s.Count < 0 {
		return 0
	}
	return s.Count
}

// save writes the counter with write-then-rename semantics so a crash mid-write
// cannot leave a truncated file behind.
func (t *Tracker) save() error {
	if err := os.MkdirAll(filepath.Dir(t.path), 0o755); err != nil {
		return fmt.Errorf("create quota dir: %w", err)
	}
	data, err := json.Marshal(state{Date: t.date, Count: t.count})
	if err != nil {
		return err
	}
	tmp := t.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write quota file: %w", err)
	}
	if err := os.Rename(tmp, t.path); err != nil {
		return fmt.Errorf("replace quota file: %w", err)
	}
	return nil
}

func today() string {
	return time.Now().Format(dateLayout)
}
