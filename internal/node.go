package internal

import "slices"

// Node is the atomic unit of the dependency graph: a memoized computation
// (thunk) or a mutable input cell (ref). A ref is a node whose fn is nil.
type Node struct {
	// recomputes the node's value; nil for refs, which don't recompute
	fn func(*Node) any

	// the last computed value
	value any

	// whether value is known to reflect the current state of deps
	clean bool

	deps []*Node // nodes the last computation read from
	subs []*Node // nodes that read from this node
}

// Link creates a bidirectional dependency edge between this node (subscriber)
// and the given node (dependency). Linking an existing edge is a no-op.
func (sub *Node) Link(dep *Node) {
	if slices.Contains(sub.deps, dep) {
		return
	}

	sub.deps = append(sub.deps, dep)
	dep.subs = append(dep.subs, sub)
}

// Unlink removes the edge between this node and the given dependency from
// both sides. Removing an absent edge is a no-op.
func (sub *Node) Unlink(dep *Node) {
	if i := slices.Index(sub.deps, dep); i != -1 {
		sub.deps = slices.Delete(sub.deps, i, i+1)
	}

	if i := slices.Index(dep.subs, sub); i != -1 {
		dep.subs = slices.Delete(dep.subs, i, i+1)
	}
}

// ClearDeps removes all dependency edges, ahead of a recompute that will
// rediscover the current set.
func (n *Node) ClearDeps() {
	// cloning to avoid mutation during iteration
	deps := slices.Clone(n.deps)

	for _, dep := range deps {
		n.Unlink(dep)
	}
}
