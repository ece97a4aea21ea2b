// SPDX-License-Identifier: MIT
// Package apsp computes all-pairs shortest paths over a dense weighted
// digraph and detects negative cycles (STN infeasibility).
//
// Contract:
//   - Square n×n matrix; HUGE means "no path"; the diagonal must be 0
//     before Close is called.
//   - Loop order is fixed (k → i → j) for deterministic accumulation,
//     matching matrix.FloydWarshall in the lvlath lineage this package
//     is adapted from, but trading IEEE +Inf for interval.HUGE so
//     negative edge weights (admissible in an STN) stay well-defined.
package apsp

import (
	"fmt"

	"github.com/katalvlaran/tempograph/interval"
)

// HUGE is the sentinel distance meaning "no known finite bound",
// re-exported from interval so callers never need two imports to talk
// about the same ceiling.
const HUGE = interval.HUGE

// Matrix is a row-major n×n distance matrix of float64 values.
type Matrix struct {
	n    int
	data []float64
}

// New allocates an n×n Matrix with every entry set to HUGE except the
// diagonal, which is 0 — the required pre-condition for Close.
func New(n int) *Matrix {
	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			data[i*n+j] = HUGE
		}
	}

	return &Matrix{n: n, data: data}
}

// N returns the matrix order (number of nodes).
func (m *Matrix) N() int {
	return m.n
}

// At returns the current distance from i to j.
func (m *Matrix) At(i, j int) float64 {
	return m.data[i*m.n+j]
}

// Set installs weight w for the directed entry i→j, overwriting any
// prior value. Used to seed the matrix with constraint edges before
// calling Close.
func (m *Matrix) Set(i, j int, w float64) {
	m.data[i*m.n+j] = w
}

// String renders the matrix for debugging.
func (m *Matrix) String() string {
	s := ""
	for i := 0; i < m.n; i++ {
		s += "["
		for j := 0; j < m.n; j++ {
			if j > 0 {
				s += ", "
			}
			s += fmt.Sprintf("%g", m.data[i*m.n+j])
		}
		s += "]\n"
	}

	return s
}
