package launcher

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-collection/internal/stats"
)

// Launcher joins the catalog, the process registry and the stats file.
type Launcher struct {
	entries []Entry
	procs   *Registry
	stats   *stats.File
	logger  *log.Logger
	now     func() time.Time
}

// New creates a launcher. stats may be nil to skip bookkeeping.
func New(entries []Entry, st *stats.File, logger *log.Logger) *Launcher {
	if logger == nil {
		logger = log.Default()
	}
	return &Launcher{
		entries: entries,
		procs:   NewRegistry(),
		stats:   st,
		logger:  logger,
		now:     time.Now,
	}
}

// Entries returns the catalog in display order.
func (l *Launcher) Entries() []Entry {
	return l.entries
}

// Launch starts a game by ID and, once it is running, records the launch
// in the stats file. Failures are logged and returned; nothing is retried.
func (l *Launcher) Launch(id string) error {
	e, ok := Find(l.entries, id)
	if !ok {
		err := fmt.Errorf("launcher: unknown game %q", id)
		l.logger.Error("launch failed", "err", err)
		return err
	}

	st, err := l.procs.Launch(e)
	if err != nil {
		l.logger.Error("launch failed", "game", id, "exec", e.Exec, "err", err)
		return err
	}
	l.logger.Info("launched", "game", id, "pid", st.PID)

	if l.stats != nil {
		if _, err := l.stats.RecordLaunch(e.Title, l.now()); err != nil {
			l.logger.Warn("stats not saved", "path", l.stats.Path(), "err", err)
		}
	}
	return nil
}

// Running reports whether a game's child is alive.
func (l *Launcher) Running(id string) bool {
	return l.procs.Running(id)
}

// Status returns a game's latest child status.
func (l *Launcher) Status(id string) Status {
	return l.procs.Status(id)
}

// Poll collects finished children and logs how they ended.
func (l *Launcher) Poll() []Status {
	ended := l.procs.Poll()
	for _, st := range ended {
		took := st.Ended.Sub(st.Started).Round(time.Second)
		if st.State == Failed {
			l.logger.Warn("game exited", "game", st.ID, "code", st.ExitCode, "after", took, "err", st.Err)
			continue
		}
		l.logger.Info("game exited", "game", st.ID, "after", took)
	}
	return ended
}

// Stats returns the launch record for an entry.
func (l *Launcher) Stats(e Entry) stats.Entry {
	if l.stats == nil {
		return stats.Entry{}
	}
	return l.stats.Get(e.Title)
}

// Wait blocks until a game's child exits or the timeout passes.
func (l *Launcher) Wait(id string, timeout time.Duration) (Status, bool) {
	return l.procs.Wait(id, timeout)
}
