package schedule

import "github.com/katalvlaran/tempograph/interval"

// pinned returns the degenerate interval [t, t] used to pin an event to
// a concrete committed time.
func pinned(t float64) interval.Interval {
	return interval.New(t, t)
}
