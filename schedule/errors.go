package schedule

import (
	"errors"
	"fmt"
)

// Sentinel errors for schedule operations (spec.md §7).
var (
	// ErrUnknownEvent indicates an event id is not present in this
	// Schedule (never created, or already freed).
	ErrUnknownEvent = errors.New("schedule: unknown event")

	// ErrUnknownEpisode indicates an episode handle refers to freed or
	// foreign events.
	ErrUnknownEpisode = errors.New("schedule: unknown episode")

	// ErrInvalidInterval indicates hi < lo on an input interval, or a
	// negative duration lower bound on an episode.
	ErrInvalidInterval = errors.New("schedule: invalid interval")
)

// NegativeCycle reports that the distance matrix closure found a
// negative cycle through At: the Schedule is currently infeasible. It
// is only observable at query time or via Compile — mutations are
// accepted optimistically and never roll back (spec.md §7).
type NegativeCycle struct {
	At    Event
	LegIK float64
	LegKJ float64
}

// Error implements the error interface.
func (e *NegativeCycle) Error() string {
	return fmt.Sprintf("schedule: negative cycle at event %d (legs %.6g + %.6g < 0)", e.At, e.LegIK, e.LegKJ)
}
