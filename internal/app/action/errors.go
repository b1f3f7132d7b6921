package action

import (
	"errors"

	"wumpusworld/internal/domain/game"
)

var (
	ErrInvalidRequest = errors.New("invalid action request")
)

// RejectedError is returned when the rules refuse an action. The session is
// unchanged and Snapshot shows it as it stands.
type RejectedError struct {
	Err      error
	Snapshot game.Snapshot
}

func (e *RejectedError) Error() string {
	return e.Err.Error()
}

func (e *RejectedError) Unwrap() error {
	return e.Err
}
