package observe

import "wumpusworld/internal/domain/game"

type Request struct {
	SessionID string
	View      game.View
}

type Response struct {
	Snapshot game.Snapshot `json:"snapshot"`
}
