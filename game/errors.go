package game

import (
	"errors"
	"fmt"
)

// ErrGameNotStarted is returned when turns are applied before a roster exists.
var ErrGameNotStarted = errors.New("game has not been started")

// InvalidTurnError reports a turn that cannot be applied to the current game.
type InvalidTurnError struct {
	Index  int // position in the turn list, -1 for a single Apply
	Turn   Turn
	Reason string
}

func (e *InvalidTurnError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("invalid turn %s: %s", e.Turn, e.Reason)
	}
	return fmt.Sprintf("invalid turn #%d %s: %s", e.Index, e.Turn, e.Reason)
}

// InvalidArgumentError reports a precondition violation on an input value.
type InvalidArgumentError struct {
	Name   string
	Value  string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Name, e.Value, e.Reason)
}
