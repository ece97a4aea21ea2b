// Package dispatch implements the greedy execution layer on top of a
// schedule.Schedule: committing events one at a time in causal order and
// tracking, per event, whether it is still Free or has been Committed.
//
// This layer adds no new constraint-propagation logic of its own — every
// commit and every window query is delegated straight to the underlying
// Schedule. What it adds is bookkeeping: a Dispatcher refuses to commit an
// event twice and can report the current state of any event it has seen,
// which is the minimum a caller executing a plan step by step needs.
package dispatch

import "github.com/katalvlaran/tempograph/schedule"

// State is the execution status of a single event within a Dispatcher.
type State int

const (
	// Free means the event has not yet been committed to a concrete time.
	Free State = iota
	// Committed means CommitEvent has been called for this event at least
	// once.
	Committed
)

// String renders State for logging and test failure messages.
func (s State) String() string {
	switch s {
	case Free:
		return "free"
	case Committed:
		return "committed"
	default:
		return "unknown"
	}
}

// Dispatcher wraps a *schedule.Schedule and tracks the Free/Committed state
// of every event it has dispatched. It holds no temporal logic of its own;
// it is a thin, stateful convenience over Schedule.CommitEvent/Window.
type Dispatcher struct {
	sched  *schedule.Schedule
	states map[schedule.Event]State
}

// New wraps sched in a Dispatcher with every existing event starting Free.
func New(sched *schedule.Schedule) *Dispatcher {
	return &Dispatcher{
		sched:  sched,
		states: make(map[schedule.Event]State),
	}
}

// Schedule returns the underlying Schedule, for callers that need direct
// access to queries the Dispatcher does not wrap (e.g. GetDuration).
func (d *Dispatcher) Schedule() *schedule.Schedule {
	return d.sched
}
