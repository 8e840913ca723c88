package internal

// NewThunk creates a computation node. Thunks are born dirty with no cached
// value; fn runs on first compute. It receives the node itself so a
// computation can register edges against its own identity.
func (r *Runtime) NewThunk(fn func(*Node) any) *Node {
	return &Node{
		fn:    fn,
		clean: false,
	}
}
