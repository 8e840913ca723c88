package internal

// Dirty marks the node and, transitively, every node that depends on it as
// stale. Nothing is recomputed here; recomputation is deferred to the next
// Compute or Force. Already-dirty nodes short-circuit, which bounds the wave
// to currently-clean nodes and visits each node of a diamond only once.
func (r *Runtime) Dirty(n *Node) {
	if !n.clean {
		return
	}

	n.clean = false

	r.logger.Debug("dirtied node", "node", nodeID(n), "dependents", len(n.subs))

	for _, sub := range n.subs {
		r.Dirty(sub)
	}
}
