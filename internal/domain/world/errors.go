package world

import "errors"

var (
	ErrOutOfBounds   = errors.New("placement out of bounds")
	ErrCollision     = errors.New("placements collide")
	ErrStartOccupied = errors.New("start cell cannot hold the wumpus")
	ErrNothingPlaced = errors.New("no placements given")
	ErrInvalidSize   = errors.New("invalid grid size")
)

// ConfigError reports a bad environment configuration. It wraps one of the
// sentinel errors above.
type ConfigError struct {
	Err    error
	Detail string
}

func (e *ConfigError) Error() string {
	if e.Detail == "" {
		return "config error: " + e.Err.Error()
	}
	return "config error: " + e.Err.Error() + ": " + e.Detail
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
