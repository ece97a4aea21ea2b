// File: methods_commit.go
// Role: CommitEvent/Compile — pinning an event to a concrete time and
// forcing recomputation. See the dispatch package for the greedy
// execution layer built on top of these two operations.

package schedule

// CommitEvent installs a pinning constraint Root→e with interval
// [t, t], overwriting any prior pin on e. This is accepted even when t
// falls outside e's previously admissible window — the engine does not
// reject a "missed window" commit; the next query (or Compile) will
// surface a NegativeCycle if the commit is actually infeasible against
// other constraints (spec.md §4.4, §7 observed-drift policy).
func (s *Schedule) CommitEvent(e Event, t float64) error {
	if err := s.AddConstraint(s.root, e, pinned(t)); err != nil {
		return err
	}
	s.commits[e] = t

	return nil
}

// Committed reports whether e currently has a commit installed, and
// the committed value if so. A freed episode's events are forgotten.
func (s *Schedule) Committed(e Event) (float64, bool) {
	t, ok := s.commits[e]

	return t, ok
}

// Compile forces an APSP recomputation and returns the first
// NegativeCycle failure, if any, instead of waiting for the next query.
func (s *Schedule) Compile() error {
	s.markDirty()

	return s.ensureCompiled()
}
