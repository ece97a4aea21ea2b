// File: methods_query.go
// Role: read-only queries — GetDuration, Interval, EventDistance,
// Window. Every query forces ensureCompiled, so the first query after
// a batch of mutations pays the O(n³) APSP cost once; subsequent
// queries against the same state are O(1).

package schedule

import (
	"github.com/katalvlaran/tempograph/core"
	"github.com/katalvlaran/tempograph/interval"
)

// GetDuration returns the currently admissible duration of ep: the
// explicit duration given to AddEpisode, tightened by any other
// constraints that now bound start→end more narrowly.
func (s *Schedule) GetDuration(ep Episode) (interval.Interval, error) {
	return s.Interval(ep.start, ep.end)
}

// Interval recomputes the distance matrix if dirty and returns
// [−D(v, u), D(u, v)]. When both weights are unbounded the result is
// [−HUGE, +HUGE] automatically, since unbounded entries are represented
// by exactly HUGE in the matrix. Callers must treat IsValid() == false
// as "this Schedule is currently inconsistent" for this pair.
func (s *Schedule) Interval(u, v Event) (interval.Interval, error) {
	if err := s.ensureCompiled(); err != nil {
		return interval.Interval{}, err
	}
	i, err := s.rowOf(u)
	if err != nil {
		return interval.Interval{}, err
	}
	j, err := s.rowOf(v)
	if err != nil {
		return interval.Interval{}, err
	}

	dvu := s.dist.matrix.At(j, i)
	duv := s.dist.matrix.At(i, j)

	return interval.New(-dvu, duv), nil
}

// EventDistance returns D(u, v) directly: the shortest admissible
// signed delay from u to v, without translating to an interval.
func (s *Schedule) EventDistance(u, v Event) (float64, error) {
	if err := s.ensureCompiled(); err != nil {
		return 0, err
	}
	i, err := s.rowOf(u)
	if err != nil {
		return 0, err
	}
	j, err := s.rowOf(v)
	if err != nil {
		return 0, err
	}

	return s.dist.matrix.At(i, j), nil
}

// Window returns the admissible interval of t(e) relative to Root:
// Interval(Root(), e). If e has been committed, the interval collapses
// to [committed, committed], subject to feasibility.
func (s *Schedule) Window(e Event) (interval.Interval, error) {
	if !s.g.HasNode(core.NodeID(e)) {
		return interval.Interval{}, ErrUnknownEvent
	}

	return s.Interval(s.root, e)
}
