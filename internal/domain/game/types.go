package game

import (
	"time"

	"wumpusworld/internal/domain/world"
)

type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
)

func (s Status) Terminal() bool {
	return s == StatusWon || s == StatusLost
}

type ActionName string

const (
	ActionMove  ActionName = "move"
	ActionShoot ActionName = "shoot"
	ActionGrab  ActionName = "grab"
	ActionClimb ActionName = "climb"
	ActionTurn  ActionName = "turn"
)

func SupportedActions() []ActionName {
	return []ActionName{ActionMove, ActionShoot, ActionGrab, ActionClimb, ActionTurn}
}

func (a ActionName) NeedsDirection() bool {
	return a == ActionMove || a == ActionTurn
}

type Agent struct {
	Position world.Coord     `json:"position"`
	Facing   world.Direction `json:"facing"`
	Arrows   int             `json:"arrows"`
	HasGold  bool            `json:"has_gold"`
	Alive    bool            `json:"alive"`
}

type Percepts struct {
	Breeze  bool `json:"breeze"`
	Stench  bool `json:"stench"`
	Glitter bool `json:"glitter"`
	Bump    bool `json:"bump"`
	Scream  bool `json:"scream"`
}

// Outcome describes one applied action. Success is false for reported no-ops
// such as walking into the edge or grabbing where there is no gold.
type Outcome struct {
	Action     ActionName      `json:"action"`
	Direction  world.Direction `json:"direction,omitempty"`
	From       world.Coord     `json:"from"`
	To         world.Coord     `json:"to"`
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	ScoreDelta int             `json:"score_delta"`
	Percepts   Percepts        `json:"percepts"`
	Status     Status          `json:"status"`
	OccurredAt time.Time       `json:"occurred_at"`
}

type Stats struct {
	ActionsMade   int  `json:"actions_made"`
	Score         int  `json:"score"`
	ArrowsUsed    int  `json:"arrows_used"`
	CellsVisited  int  `json:"cells_visited"`
	GoldCollected bool `json:"gold_collected"`
	WumpusKilled  bool `json:"wumpus_killed"`
	Won           bool `json:"won"`
	AgentAlive    bool `json:"agent_alive"`
}
