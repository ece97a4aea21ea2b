// File: distance.go
// Role: materialize the sparse core.Digraph into a dense apsp.Matrix on
// demand and cache it until the next mutation trips the dirty bit.

package schedule

import (
	"github.com/katalvlaran/tempograph/apsp"
	"github.com/katalvlaran/tempograph/core"
)

// distanceCache holds the last-computed closure plus the Event<->row
// index mapping it was computed against. The mapping is rebuilt every
// time because RemoveNode can change which indices are live.
type distanceCache struct {
	matrix *apsp.Matrix
	index  map[Event]int
	events []Event // events[i] is the Event at row/col i
}

// markDirty raises the dirty bit; called by every mutating method.
func (s *Schedule) markDirty() {
	s.dirty = true
}

// ensureCompiled recomputes the distance matrix if dirty, translating
// any apsp.NegativeCycle into a schedule.NegativeCycle. On success the
// dirty bit is cleared; on failure it is left set so the next call
// retries against (presumably still broken) state.
func (s *Schedule) ensureCompiled() error {
	if !s.dirty && s.dist != nil {
		return nil
	}

	nodes := s.g.Nodes()
	events := make([]Event, len(nodes))
	index := make(map[Event]int, len(nodes))
	for i, n := range nodes {
		e := Event(n)
		events[i] = e
		index[e] = i
	}

	m := apsp.New(len(nodes))
	for _, edge := range s.g.Edges() {
		i, iok := index[Event(edge.From)]
		j, jok := index[Event(edge.To)]
		if !iok || !jok {
			continue // defensive; Edges() only returns live endpoints
		}
		m.Set(i, j, edge.Weight)
	}

	if err := apsp.Close(m); err != nil {
		if nc, ok := err.(*apsp.NegativeCycle); ok {
			return &NegativeCycle{
				At:    events[nc.At],
				LegIK: nc.LegIK,
				LegKJ: nc.LegKJ,
			}
		}

		return err
	}

	s.dist = &distanceCache{matrix: m, index: index, events: events}
	s.dirty = false

	return nil
}

// rowOf returns the compiled matrix row for e, or ErrUnknownEvent if e
// is not live. Must be called after a successful ensureCompiled.
func (s *Schedule) rowOf(e Event) (int, error) {
	if !s.g.HasNode(core.NodeID(e)) {
		return 0, ErrUnknownEvent
	}
	i, ok := s.dist.index[e]
	if !ok {
		return 0, ErrUnknownEvent
	}

	return i, nil
}
