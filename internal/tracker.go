package internal

// Tracker holds the evaluation context: the node whose computation is
// presently running. A single rewindable slot, saved and restored around
// each computation, threads nested evaluation correctly (A forces B forces
// C) because each level restores its caller's context.
type Tracker struct {
	tracking bool

	current *Node
}

func NewTracker() *Tracker {
	return &Tracker{
		tracking: true,
	}
}

func (t *Tracker) RunWithNode(node *Node, fn func()) {
	prev := t.current
	t.current = node
	defer func() { t.current = prev }()

	fn()
}

func (t *Tracker) RunUntracked(fn func()) {
	prev := t.tracking
	t.tracking = false
	defer func() { t.tracking = prev }()

	fn()
}

func (t *Tracker) ShouldTrack() bool {
	return t.current != nil && t.tracking
}
