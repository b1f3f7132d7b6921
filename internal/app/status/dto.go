package status

import "wumpusworld/internal/domain/game"

type Request struct {
	SessionID string
}

type Response struct {
	SessionID   string      `json:"session_id"`
	Status      game.Status `json:"status"`
	Score       int         `json:"score"`
	Stats       game.Stats  `json:"stats"`
	Rules       game.Rules  `json:"rules"`
	ActionsLeft int         `json:"actions_left"`
	Actions     []string    `json:"actions"`
}
