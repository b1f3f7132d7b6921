package game

import "errors"

var (
	ErrInvalidAction     = errors.New("invalid action")
	ErrNoArrowsRemaining = errors.New("no arrows remaining")
)

// InvalidActionError carries the reason an action was refused.
type InvalidActionError struct {
	Action ActionName
	Reason string
}

func (e *InvalidActionError) Error() string {
	return ErrInvalidAction.Error() + " " + string(e.Action) + ": " + e.Reason
}

func (e *InvalidActionError) Unwrap() error {
	return ErrInvalidAction
}
