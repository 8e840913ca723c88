package internal

// Compute returns the node's value, recomputing it if the cached value is
// stale. The computation runs with the node installed as the current
// evaluation context, so every Force it performs links back to it.
//
// The node is marked clean *before* its computation runs. A computation that
// writes one of its own inputs mid-run re-dirties the node; the recursive
// call at the end catches that and recomputes until the node settles. A
// computation that never settles recurses unboundedly; caller contract.
func (r *Runtime) Compute(n *Node) any {
	if n.clean {
		return n.value
	}

	// the new run may read a different set of nodes
	n.ClearDeps()

	n.clean = true

	if n.fn != nil {
		r.logger.Debug("recomputing thunk", "node", nodeID(n))

		r.tracker.RunWithNode(n, func() {
			n.value = n.fn(n)
		})
	}

	return r.Compute(n)
}

// Force computes the node's value and records a dependency edge from the
// node currently being evaluated, if any. This is the read entry point
// computations should use on each other; Compute alone records nothing.
func (r *Runtime) Force(n *Node) any {
	value := r.Compute(n)

	if r.tracker.ShouldTrack() {
		r.tracker.current.Link(n)
	}

	return value
}
