// Package launcher starts games as child processes and tracks them until
// they exit.
package launcher

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/arcade-collection/internal/registry"
)

// Entry is one launchable game.
type Entry struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Exec        string   `yaml:"exec"`
	Args        []string `yaml:"args"`
	Dir         string   `yaml:"dir"` // Working directory, empty = directory of Exec
	Env         []string `yaml:"env"` // Extra KEY=VALUE pairs
}

// catalogFile is the YAML layout of a catalog override.
type catalogFile struct {
	Games []Entry `yaml:"games"`
}

// DefaultCatalog builds one entry per registered game, each re-running
// exe as "exe [flags...] play <id>" from the binary's directory.
func DefaultCatalog(exe string, games []registry.GameInfo, flags []string) []Entry {
	entries := make([]Entry, 0, len(games))
	for _, g := range games {
		args := append(append([]string(nil), flags...), "play", g.ID)
		entries = append(entries, Entry{
			ID:          g.ID,
			Title:       g.Title,
			Description: g.Description,
			Exec:        exe,
			Args:        args,
			Dir:         filepath.Dir(exe),
		})
	}
	return entries
}

// LoadCatalog applies the YAML file at path on top of base. Entries with a
// known ID replace the base entry field by field; unknown IDs are appended.
// A missing file returns base unchanged.
func LoadCatalog(path string, base []Entry) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return base, nil
	}
	if err != nil {
		return base, fmt.Errorf("launcher: read catalog %s: %w", path, err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return base, fmt.Errorf("launcher: parse catalog %s: %w", path, err)
	}

	out := append([]Entry(nil), base...)
	for _, e := range file.Games {
		if e.ID == "" {
			return base, fmt.Errorf("launcher: catalog %s: entry without id", path)
		}
		if i := indexOf(out, e.ID); i >= 0 {
			out[i] = merge(out[i], e)
			continue
		}
		if e.Exec == "" {
			return base, fmt.Errorf("launcher: catalog %s: %s has no exec", path, e.ID)
		}
		if e.Title == "" {
			e.Title = e.ID
		}
		out = append(out, e)
	}
	return out, nil
}

// merge overlays the non-empty fields of o onto e. A new Exec drops the
// inherited arguments unless o brings its own.
func merge(e, o Entry) Entry {
	if o.Title != "" {
		e.Title = o.Title
	}
	if o.Description != "" {
		e.Description = o.Description
	}
	if o.Exec != "" {
		e.Exec = o.Exec
		e.Args = nil
		e.Dir = ""
	}
	if o.Args != nil {
		e.Args = o.Args
	}
	if o.Dir != "" {
		e.Dir = o.Dir
	}
	if o.Env != nil {
		e.Env = o.Env
	}
	return e
}

func indexOf(entries []Entry, id string) int {
	for i, e := range entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// Find returns the entry with the given ID.
func Find(entries []Entry, id string) (Entry, bool) {
	if i := indexOf(entries, id); i >= 0 {
		return entries[i], true
	}
	return Entry{}, false
}

// workDir resolves the entry's working directory.
func (e Entry) workDir() string {
	if e.Dir != "" {
		return e.Dir
	}
	return filepath.Dir(e.Exec)
}
