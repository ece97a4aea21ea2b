// File: floydwarshall.go
// Role: in-place Floyd-Warshall closure with early negative-cycle exit.
// Adapted from matrix.floydWarshallInPlace (lvlath), replacing the
// math.IsInf "no path" check with equality against the finite HUGE
// sentinel, and adding the diagonal guard spec.md §4.2 requires: the
// very first relaxation that drives a diagonal entry negative aborts
// the closure immediately rather than returning a "best effort" matrix.

package apsp

// Close runs APSP closure on m in place. It returns a *NegativeCycle
// the moment any diagonal entry would be relaxed below zero; m is left
// in a partially-relaxed state in that case and must not be used by the
// caller (no partial relaxation is a supported result, per spec.md §4.2).
//
// Determinism: loop order is fixed (k → i → j); identical inputs yield
// byte-identical matrices (or identical NegativeCycle reports).
// Complexity: O(n³) time, O(1) extra space.
func Close(m *Matrix) error {
	n := m.n
	data := m.data

	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, ij   float64
		cand         float64
	)

	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if ik == HUGE {
				continue // i cannot reach k: no candidate path via k
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if kj == HUGE {
					continue // k cannot reach j: no candidate path via k
				}
				ij = data[baseI+j]
				cand = ik + kj
				if cand < ij { // strict improvement only (deterministic tie rule)
					data[baseI+j] = cand
					if i == j && cand < 0 {
						return &NegativeCycle{At: i, Via: k, LegIK: ik, LegKJ: kj}
					}
				}
			}
		}
	}

	return nil
}
