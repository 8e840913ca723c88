package internal

// NewRef creates a leaf node holding an externally mutable input.
// Refs are born clean; their "computation" is returning the stored value.
func (r *Runtime) NewRef(initial any) *Node {
	return &Node{
		fn:    nil, // refs don't recompute
		value: initial,
		clean: true,
	}
}

// SetRef overwrites the ref's value and invalidates every node that read it,
// directly or transitively. Nothing recomputes until the next demand.
func (r *Runtime) SetRef(n *Node, v any) {
	n.value = v
	r.Dirty(n)
}
