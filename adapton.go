package adapton

import (
	"log/slog"

	"github.com/AnatoleLucet/adapton/internal"
)

func as[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}

	return v.(T)
}

type Ref[T any] struct {
	node *internal.Node
}

// NewRef creates a mutable input cell holding an initial value.
func NewRef[T any](initial T) *Ref[T] {
	return &Ref[T]{
		internal.GetRuntime().NewRef(initial),
	}
}

// Read the current value of the ref, recording a dependency edge if called
// from within a thunk's computation.
func (r *Ref[T]) Read() T {
	return as[T](internal.GetRuntime().Force(r.node))
}

// Peek reads the current value without recording a dependency edge.
// Use it for reads that should not cause recomputation when the ref changes.
func (r *Ref[T]) Peek() T {
	return as[T](internal.GetRuntime().Compute(r.node))
}

// Set overwrites the ref's value and marks every thunk that read it,
// directly or transitively, stale. Nothing recomputes until the next read.
func (r *Ref[T]) Set(v T) {
	internal.GetRuntime().SetRef(r.node, v)
}

type Thunk[T any] struct {
	node *internal.Node
}

// NewThunk creates a memoized computation node. The computation runs on
// first read and again only when one of the nodes it read has changed; its
// dependency set is rediscovered on every run.
//
// A computation that panics propagates the panic and leaves the thunk clean
// with its previous value cached; call Invalidate to retry it. A computation
// that transitively reads itself recurses until the stack runs out, so the
// graph must stay acyclic.
func NewThunk[T any](compute func() T) *Thunk[T] {
	return &Thunk[T]{
		internal.GetRuntime().NewThunk(func(n *internal.Node) any {
			return compute()
		}),
	}
}

// Read the current value of the thunk, recomputing it if stale and
// recording a dependency edge if called from within another thunk's
// computation.
func (t *Thunk[T]) Read() T {
	return as[T](internal.GetRuntime().Force(t.node))
}

// Peek reads the current value, recomputing it if stale, without recording
// a dependency edge. This is the usual entry point for top-level reads.
func (t *Thunk[T]) Peek() T {
	return as[T](internal.GetRuntime().Compute(t.node))
}

// Invalidate marks the thunk and everything that depends on it stale, so
// the next read recomputes.
func (t *Thunk[T]) Invalidate() {
	internal.GetRuntime().Dirty(t.node)
}

// Untrack runs the given function without recording any dependency edges.
func Untrack[T any](fn func() T) T {
	var result T
	internal.GetRuntime().Untrack(func() { result = fn() })
	return result
}

// SetLogger installs a logger for the calling goroutine's engine. Recompute
// and invalidation events are logged at Debug level; nil silences them.
func SetLogger(logger *slog.Logger) {
	internal.GetRuntime().SetLogger(logger)
}
