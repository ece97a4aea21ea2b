// File: schedule.go
// Role: event/episode/constraint lifecycle — CreateEvent, AddEpisode,
// FreeEpisode, AddConstraint. Query and commit operations live in
// methods_query.go and methods_commit.go.

package schedule

import (
	"github.com/katalvlaran/tempograph/core"
	"github.com/katalvlaran/tempograph/interval"
)

// defaultEpisodeDuration is the implicit duration when AddEpisode is
// called with no explicit interval: an instantaneous episode.
var defaultEpisodeDuration = interval.New(0, 0)

// defaultConstraintInterval is the implicit admissibility when
// AddConstraint is called with no explicit interval.
var defaultConstraintInterval = interval.New(0, 0)

// CreateEvent allocates a fresh, stand-alone event. The first event
// ever created in a Schedule becomes its Root.
// Complexity: O(1).
func (s *Schedule) CreateEvent() Event {
	id := s.g.AddNode()
	e := Event(id)
	if !s.rooted {
		s.root = e
		s.rooted = true
	}
	s.markDirty()

	return e
}

// AddEpisode allocates a start/end event pair and installs the
// start→end duration constraint. duration defaults to [0, 0] when
// omitted; it must satisfy 0 ≤ lo ≤ hi or ErrInvalidInterval is
// returned and no events are created.
// Complexity: O(1).
func (s *Schedule) AddEpisode(duration ...interval.Interval) (Episode, error) {
	d := defaultEpisodeDuration
	if len(duration) > 0 {
		d = duration[0]
	}
	if d.Lo < 0 || d.Lo > d.Hi {
		return Episode{}, ErrInvalidInterval
	}

	start := s.CreateEvent()
	end := s.CreateEvent()
	ep := Episode{start: start, end: end}

	// AddConstraint already marks dirty and validates the interval
	// again, but the endpoints are fresh so it cannot fail here.
	if err := s.AddConstraint(start, end, d); err != nil {
		return Episode{}, err
	}

	return ep, nil
}

// FreeEpisode removes both of ep's events and every edge incident to
// them. Subsequent use of ep.Start()/ep.End() fails with
// ErrUnknownEvent. Complexity: O(V) (core.RemoveNode scans incoming
// edges once per removed node).
func (s *Schedule) FreeEpisode(ep Episode) error {
	if !s.g.HasNode(core.NodeID(ep.start)) || !s.g.HasNode(core.NodeID(ep.end)) {
		return ErrUnknownEpisode
	}

	if err := s.g.RemoveNode(core.NodeID(ep.start)); err != nil {
		return ErrUnknownEpisode
	}
	if err := s.g.RemoveNode(core.NodeID(ep.end)); err != nil {
		return ErrUnknownEpisode
	}
	delete(s.commits, ep.start)
	delete(s.commits, ep.end)
	s.markDirty()

	return nil
}

// AddConstraint installs the directed admissibility lo ≤ t(v) − t(u) ≤
// hi between two live events, as two signed edges: u→v with weight hi,
// v→u with weight −lo. iv defaults to [0, 0] when omitted.
//
// A constraint already present for (u, v) is overwritten — adding a
// constraint always installs both signed edges for the pair it
// describes, resolving spec.md §9's open question about partial
// (single-direction) calls in the source material: this API has no
// single-direction form, so the ambiguity does not arise.
//
// Fails with ErrUnknownEvent if either endpoint is not live, or
// ErrInvalidInterval if hi < lo. Both checks happen before the dirty
// bit is raised (spec.md §7).
// Complexity: O(1).
func (s *Schedule) AddConstraint(u, v Event, iv ...interval.Interval) error {
	in := defaultConstraintInterval
	if len(iv) > 0 {
		in = iv[0]
	}
	if !in.IsValid() {
		return ErrInvalidInterval
	}
	if !s.g.HasNode(core.NodeID(u)) || !s.g.HasNode(core.NodeID(v)) {
		return ErrUnknownEvent
	}

	// Endpoints validated; these cannot fail now.
	_ = s.g.SetEdge(core.NodeID(u), core.NodeID(v), in.Hi)
	_ = s.g.SetEdge(core.NodeID(v), core.NodeID(u), -in.Lo)
	s.markDirty()

	return nil
}
