// Package stats tracks how often and how recently each game was launched.
// The file format is a JSON object keyed by game title:
//
//	{"Dino Run": {"play_count": 3, "last_played": 1718000000.5}}
package stats

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
)

// Entry is the launch record of one game.
type Entry struct {
	PlayCount  int     `json:"play_count"`
	LastPlayed float64 `json:"last_played"` // Unix seconds, 0 = never
}

// LastPlayedTime converts LastPlayed to a time. Zero means never.
func (e Entry) LastPlayedTime() time.Time {
	if e.LastPlayed <= 0 {
		return time.Time{}
	}
	sec, frac := math.Modf(e.LastPlayed)
	return time.Unix(int64(sec), int64(frac*1e9))
}

// Describe renders the entry for the launcher, e.g. "Played 3x, 2 hours ago".
func (e Entry) Describe(now time.Time) string {
	if e.PlayCount == 0 {
		return "Never played"
	}
	last := e.LastPlayedTime()
	if last.IsZero() {
		return fmt.Sprintf("Played %dx", e.PlayCount)
	}
	return fmt.Sprintf("Played %dx, %s", e.PlayCount, humanize.RelTime(last, now, "ago", "from now"))
}

// File is the stats file, loaded once and saved after each change.
type File struct {
	mu      sync.Mutex
	path    string
	entries map[string]Entry
}

// Load reads the stats file. A missing, unreadable or malformed file
// yields empty stats; the error is returned for logging only.
func Load(path string) (*File, error) {
	f := &File{path: path, entries: make(map[string]Entry)}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return f, nil
	}
	if err != nil {
		return f, fmt.Errorf("stats: read %s: %w", path, err)
	}

	var entries map[string]Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return f, fmt.Errorf("stats: parse %s: %w", path, err)
	}
	for title, e := range entries {
		if e.PlayCount < 0 {
			e.PlayCount = 0
		}
		f.entries[title] = e
	}
	return f, nil
}

// Path returns the file location.
func (f *File) Path() string {
	return f.path
}

// Get returns the entry for a title; unknown titles have a zero entry.
func (f *File) Get(title string) Entry {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.entries[title]
}

// Titles returns every recorded title in sorted order.
func (f *File) Titles() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	titles := make([]string, 0, len(f.entries))
	for t := range f.entries {
		titles = append(titles, t)
	}
	sort.Strings(titles)
	return titles
}

// RecordLaunch bumps the play count, stamps the launch time and saves.
func (f *File) RecordLaunch(title string, now time.Time) (Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	e := f.entries[title]
	e.PlayCount++
	e.LastPlayed = float64(now.UnixNano()) / 1e9
	f.entries[title] = e
	return e, f.save()
}

// Save writes the file.
func (f *File) Save() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.save()
}

// save writes through a temp file so a crash never leaves half a file.
func (f *File) save() error {
	data, err := json.MarshalIndent(f.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("stats: encode: %w", err)
	}
	if dir := filepath.Dir(f.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("stats: create directory %s: %w", dir, err)
		}
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("stats: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("stats: replace %s: %w", f.path, err)
	}
	return nil
}
