package dispatch

import (
	"github.com/katalvlaran/tempograph/interval"
	"github.com/katalvlaran/tempograph/schedule"
)

// StateOf reports the current execution state of e. Events the Dispatcher
// has never seen are Free.
func (d *Dispatcher) StateOf(e schedule.Event) State {
	return d.states[e]
}

// Window returns the admissible window for e: the committed singleton
// [t, t] if e has already been committed, otherwise the live admissible
// interval relative to Root.
func (d *Dispatcher) Window(e schedule.Event) (interval.Interval, error) {
	return d.sched.Window(e)
}

// CommitEvent pins e to the observed time t and marks it Committed. It
// fails with ErrAlreadyCommitted if e was committed before — a Dispatcher
// enforces that every event is observed at most once, even though the
// underlying Schedule itself would happily accept a second, overwriting
// commit. It returns whatever error Schedule.CommitEvent returns
// (ErrUnknownEvent for an event that is not live). A t that is infeasible
// against other constraints is still accepted; the *schedule.NegativeCycle
// surfaces on the next Window query or Schedule.Compile.
func (d *Dispatcher) CommitEvent(e schedule.Event, t float64) error {
	if d.states[e] == Committed {
		return ErrAlreadyCommitted
	}
	if err := d.sched.CommitEvent(e, t); err != nil {
		return err
	}
	d.states[e] = Committed

	return nil
}
