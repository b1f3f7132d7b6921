package replay

import (
	"wumpusworld/internal/app/ports"
	"wumpusworld/internal/domain/game"
)

type Request struct {
	SessionID    string
	Limit        int
	OccurredFrom int64
	OccurredTo   int64
}

// Summary is what the returned history says about the current game: the
// score after the newest entry and how many actions followed the last
// environment load or reset.
type Summary struct {
	Score          int         `json:"score"`
	Status         game.Status `json:"status"`
	ActionsInGame  int         `json:"actions_in_game"`
	MovesInGame    int         `json:"moves_in_game"`
	DeathsRecorded int         `json:"deaths_recorded"`
}

type Response struct {
	Entries []ports.HistoryRecord `json:"entries"`
	Latest  Summary               `json:"latest"`
}
