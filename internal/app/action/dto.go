package action

import (
	"wumpusworld/internal/app/ports"
	"wumpusworld/internal/domain/game"
)

type Request struct {
	SessionID      string
	IdempotencyKey string
	Action         game.ActionName
	Direction      string
	View           game.View
}

type Response struct {
	Outcome    game.Outcome     `json:"outcome"`
	Snapshot   game.Snapshot    `json:"snapshot"`
	ResultCode ports.ResultCode `json:"result_code"`
	Replayed   bool             `json:"replayed,omitempty"`
}
