// Package tempograph is a Simple Temporal Network engine: events and
// episodes bound by signed-interval admissibility constraints, closed
// under all-pairs shortest paths to answer "what windows remain open"
// and "is this schedule still feasible" queries.
//
// Everything lives in focused subpackages:
//
//	interval/ — closed numeric ranges with a finite HUGE sentinel
//	core/     — the sparse signed-weight digraph
//	apsp/     — the Floyd-Warshall closure kernel and negative-cycle detection
//	schedule/ — events, episodes, constraints, and interval/distance queries
//	dispatch/ — the greedy commit-as-you-go execution layer
//	scenario/ — deterministic fixed and random STN fixture builders
//	cmd/tempograph/ — a CLI that loads a scenario file and reports windows
//
// A minimal walk:
//
//	s := schedule.New()
//	e1, _ := s.AddEpisode(interval.New(1, 5))
//	e2, _ := s.AddEpisode(interval.New(2, 9))
//	_ = s.AddConstraint(e1.End(), e2.Start())
//	w, _ := s.Window(e2.End())
package tempograph
