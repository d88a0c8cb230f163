package domain

// DirtyState is the forward-only staleness cascade threaded through the stage
// sequence. Each stage call takes the incoming state and returns the outgoing
// one; once marked, every later stage must execute regardless of its own
// artifact's presence.
type DirtyState struct {
	stale bool
}

// CleanState returns the baseline state at the start of a run.
func CleanState() DirtyState {
	return DirtyState{}
}

// Stale reports whether downstream stages are forced to execute.
func (d DirtyState) Stale() bool {
	return d.stale
}

// Mark returns a state with the cascade raised. Marking is monotonic; there
// is deliberately no way to lower it again.
func (d DirtyState) Mark() DirtyState {
	return DirtyState{stale: true}
}

// Or combines two states, staying stale if either is.
func (d DirtyState) Or(other DirtyState) DirtyState {
	if other.stale {
		return other
	}
	return d
}
