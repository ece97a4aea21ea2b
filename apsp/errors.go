package apsp

import "fmt"

// NegativeCycle reports that closing the matrix found D(at, at) < 0:
// a cycle through at whose signed weight sum is negative, i.e. STN
// infeasibility. LegIK and LegKJ are the two shortest-path legs
// (D(at, k) and D(k, at)) whose sum first produced the violation, kept
// for diagnostics.
type NegativeCycle struct {
	At    int
	Via   int
	LegIK float64
	LegKJ float64
}

// Error implements the error interface.
func (e *NegativeCycle) Error() string {
	return fmt.Sprintf("apsp: negative cycle at node %d via %d (%.6g + %.6g < 0)", e.At, e.Via, e.LegIK, e.LegKJ)
}
