// File: methods_nodes.go
// Role: node lifecycle — AddNode/RemoveNode/Nodes.
// Determinism: Nodes() returns IDs in ascending order, matching the
// teacher's "Edges() sorted by ID" convention so APSP iteration order
// is reproducible byte-for-byte across runs (spec.md §4.2).

package core

import "sort"

// AddNode allocates a fresh NodeID and marks it live.
// Complexity: O(1).
func (d *Digraph) AddNode() NodeID {
	id := d.next
	d.next++
	d.alive[id] = struct{}{}
	d.out[id] = make(map[NodeID]float64)

	return id
}

// RemoveNode deletes n and every edge incident to it (both outgoing and
// incoming). Returns ErrUnknownNode if n is not live. Complexity: O(V)
// to scan incoming edges from every other node.
func (d *Digraph) RemoveNode(n NodeID) error {
	if !d.HasNode(n) {
		return ErrUnknownNode
	}

	delete(d.alive, n)
	delete(d.out, n)
	for _, row := range d.out {
		delete(row, n)
	}

	return nil
}

// Nodes returns all live node IDs in ascending order.
// Complexity: O(V log V).
func (d *Digraph) Nodes() []NodeID {
	ids := make([]NodeID, 0, len(d.alive))
	for id := range d.alive {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}
