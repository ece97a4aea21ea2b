package dispatch

import "errors"

// ErrAlreadyCommitted is returned by CommitEvent when the event has already
// been committed once. Re-committing an event is not part of the greedy
// execution model: once a time is observed, it is final.
var ErrAlreadyCommitted = errors.New("dispatch: event already committed")
