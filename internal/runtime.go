package internal

import (
	"fmt"
	"log/slog"
)

type Runtime struct {
	tracker *Tracker
	logger  *slog.Logger
}

func NewRuntime() *Runtime {
	return &Runtime{
		tracker: NewTracker(),
		logger:  slog.New(slog.DiscardHandler),
	}
}

func (r *Runtime) Untrack(fn func()) {
	r.tracker.RunUntracked(fn)
}

// SetLogger installs a logger for engine tracing. Recomputes and dirty waves
// are logged at Debug level. A nil logger silences tracing again.
func (r *Runtime) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	r.logger = logger
}

func nodeID(n *Node) string {
	return fmt.Sprintf("%p", n)
}
