package launcher

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sort"
	"sync"
	"time"
)

// ErrAlreadyRunning is returned when a game's previous child is still alive.
var ErrAlreadyRunning = errors.New("launcher: game already running")

// State is the lifecycle of a child process.
type State int

const (
	Idle State = iota
	Running
	Exited // Exited with status 0
	Failed // Non-zero exit or wait error
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Exited:
		return "exited"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Status describes one game's latest child.
type Status struct {
	ID       string
	State    State
	PID      int
	Started  time.Time
	Ended    time.Time
	ExitCode int
	Err      error
}

type child struct {
	status   Status
	done     chan struct{}
	reported bool
}

// Registry tracks child processes by game ID. Each child gets a goroutine
// that waits for it and records the exit status; nothing else signals it.
type Registry struct {
	mu       sync.Mutex
	children map[string]*child
	now      func() time.Time
}

// NewRegistry creates an empty process registry.
func NewRegistry() *Registry {
	return &Registry{children: make(map[string]*child), now: time.Now}
}

// Launch starts the entry's program with output discarded. It fails when
// the program cannot be started or the same ID is still running.
func (r *Registry) Launch(e Entry) (Status, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.children[e.ID]; ok && c.status.State == Running {
		return c.status, ErrAlreadyRunning
	}

	cmd := exec.Command(e.Exec, e.Args...)
	cmd.Dir = e.workDir() // Nil stdio goes to the null device
	if len(e.Env) > 0 {
		cmd.Env = append(os.Environ(), e.Env...)
	}
	if err := cmd.Start(); err != nil {
		return Status{ID: e.ID, State: Failed, Err: err}, fmt.Errorf("launcher: start %s: %w", e.ID, err)
	}

	c := &child{
		status: Status{ID: e.ID, State: Running, PID: cmd.Process.Pid, Started: r.now()},
		done:   make(chan struct{}),
	}
	r.children[e.ID] = c
	go r.wait(c, cmd)
	return c.status, nil
}

func (r *Registry) wait(c *child, cmd *exec.Cmd) {
	err := cmd.Wait()

	r.mu.Lock()
	c.status.Ended = r.now()
	if cmd.ProcessState != nil {
		c.status.ExitCode = cmd.ProcessState.ExitCode()
	}
	if err != nil {
		c.status.State = Failed
		c.status.Err = err
	} else {
		c.status.State = Exited
	}
	r.mu.Unlock()
	close(c.done)
}

// Running reports whether the game's child is alive.
func (r *Registry) Running(id string) bool {
	return r.Status(id).State == Running
}

// Status returns the latest known status; unknown IDs are Idle.
func (r *Registry) Status(id string) Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.children[id]; ok {
		return c.status
	}
	return Status{ID: id, State: Idle}
}

// Poll returns the children that ended since the previous Poll, by ID.
func (r *Registry) Poll() []Status {
	r.mu.Lock()
	defer r.mu.Unlock()

	var ended []Status
	for _, c := range r.children {
		if c.status.State == Running || c.reported {
			continue
		}
		c.reported = true
		ended = append(ended, c.status)
	}
	sort.Slice(ended, func(i, j int) bool { return ended[i].ID < ended[j].ID })
	return ended
}

// Wait blocks until the game's current child exits or the timeout passes.
func (r *Registry) Wait(id string, timeout time.Duration) (Status, bool) {
	r.mu.Lock()
	c, ok := r.children[id]
	r.mu.Unlock()
	if !ok {
		return Status{ID: id, State: Idle}, false
	}

	select {
	case <-c.done:
		return r.Status(id), true
	case <-time.After(timeout):
		return r.Status(id), false
	}
}
