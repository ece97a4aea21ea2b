// Package schedule owns the Simple Temporal Network graph: events,
// episodes, constraints, and the queries that translate the engine's
// signed-weight distance matrix back into [lo, hi] intervals.
//
// A Schedule is created empty: events and episodes are added,
// constraints are added or overwritten, events may be committed to
// concrete times, and freeing an episode removes its two events together
// with every edge incident to them. A dirty bit tracks whether the
// cached distance matrix still reflects every mutation; queries force
// a recomputation through the apsp package on demand.
//
// Schedule is not safe for concurrent mutation from multiple
// goroutines — spec.md §5 scopes that out by design, so unlike the
// lvlath core.Graph this package is adapted from, there is no internal
// locking here.
package schedule

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/tempograph/core"
)

// Event is an opaque time-point identifier minted by a Schedule.
// Consumers must not infer ordering from Event values beyond "root is
// the smallest" (spec.md §9 Design Notes).
type Event int

// Episode pairs a start and end Event with an implicit duration
// constraint between them. The zero Episode is not valid; episodes are
// only produced by Schedule.AddEpisode.
type Episode struct {
	start Event
	end   Event
}

// Start returns the episode's start event.
func (ep Episode) Start() Event { return ep.start }

// End returns the episode's end event.
func (ep Episode) End() Event { return ep.end }

// Option configures a Schedule at construction time.
type Option func(*Schedule)

// WithRunID overrides the Schedule's auto-generated correlation ID, for
// callers that want a fixed, reproducible ID in their logs; no query or
// invariant consults RunID.
func WithRunID(id uuid.UUID) Option {
	return func(s *Schedule) { s.runID = id }
}

// Schedule owns the STN graph: a sparse digraph of admissibility edges,
// a cache of the last-computed APSP distance matrix, and the set of
// committed events.
type Schedule struct {
	g      *core.Digraph
	root   Event
	rooted bool

	commits map[Event]float64

	dirty bool
	dist  *distanceCache
	runID uuid.UUID
}

// New returns an empty Schedule.
func New(opts ...Option) *Schedule {
	s := &Schedule{
		g:       core.NewDigraph(),
		commits: make(map[Event]float64),
		dirty:   false,
		runID:   uuid.New(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// RunID returns the Schedule's correlation ID, used only for external
// log correlation (e.g. cmd/tempograph); it plays no part in any query
// or invariant.
func (s *Schedule) RunID() uuid.UUID {
	return s.runID
}

// Root returns the first event ever created in this Schedule. Calling
// Root before any event exists returns the zero Event; callers should
// check CreateEvent/AddEpisode has been called at least once.
func (s *Schedule) Root() Event {
	return s.root
}
