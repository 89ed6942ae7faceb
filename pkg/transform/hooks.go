package transform

// Hooks receives graph lifecycle events. Implementations must be safe for
// concurrent use; the graph calls them while holding no locks.
type Hooks interface {
	// EdgeRegistered fires when an operator is registered or replaced.
	EdgeRegistered(src, dst, kind string)
	// TransformApplied fires after a successful transform, with the number
	// of edges traversed.
	TransformApplied(src, dst string, hops int)
}

type nopHooks struct{}

func (nopHooks) EdgeRegistered(string, string, string) {}
func (nopHooks) TransformApplied(string, string, int)  {}

// NopHooks returns a Hooks that ignores every event.
func NopHooks() Hooks { return nopHooks{} }
