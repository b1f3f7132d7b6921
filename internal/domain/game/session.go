package game

import (
	"time"

	"wumpusworld/internal/domain/world"
)

// Session is the state of one game. It is mutated only through Load, Reset
// and Apply, and stops changing once Status is terminal. Session holds no
// locks; callers serialize access per session.
type Session struct {
	ID          string            `json:"id"`
	Env         world.Environment `json:"env"`
	Agent       Agent             `json:"agent"`
	WumpusAlive bool              `json:"wumpus_alive"`
	Score       int               `json:"score"`
	Status      Status            `json:"status"`
	ActionCount int               `json:"action_count"`
	LastMessage string            `json:"last_message,omitempty"`
	Rules       Rules             `json:"rules"`
	Version     int64             `json:"version"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// NewSession starts a game on a blank grid of the given size.
func NewSession(id string, size int, rules Rules, now time.Time) (Session, error) {
	env, err := world.NewEnvironment(size)
	if err != nil {
		return Session{}, err
	}
	s := Session{ID: id, Rules: rules, CreatedAt: now}
	s.restart(env, now)
	return s, nil
}

func (s *Session) restart(env world.Environment, now time.Time) {
	s.Env = env
	s.Agent = Agent{
		Position: env.Start(),
		Facing:   world.DirRight,
		Arrows:   s.Rules.InitialArrows,
		Alive:    true,
	}
	s.WumpusAlive = true
	s.Score = 0
	s.Status = StatusPlaying
	s.ActionCount = 0
	s.LastMessage = ""
	s.UpdatedAt = now
}

// Load replaces the environment with the given placements and starts a fresh
// game on it. On error the session is left as it was.
func (s *Session) Load(p world.Placements, now time.Time) error {
	size := p.Size
	if size == 0 {
		size = s.Env.Size
	}
	env, err := world.Initialize(size, p)
	if err != nil {
		return err
	}
	s.restart(env, now)
	s.LastMessage = "Environment loaded"
	return nil
}

// Reset returns the session to a blank start state on an empty grid of the
// same size. Choosing new hazards is a separate Load.
func (s *Session) Reset(now time.Time) {
	env, err := world.NewEnvironment(s.Env.Size)
	if err != nil {
		env, _ = world.NewEnvironment(world.DefaultSize)
	}
	s.restart(env, now)
	s.LastMessage = "Game reset"
}

// Percepts reports the ambient cues at the agent's cell. Stench is never
// reported once the Wumpus is dead.
func (s Session) Percepts() Percepts {
	cell, _ := s.Env.At(s.Agent.Position)
	return Percepts{
		Breeze:  cell.Breeze,
		Stench:  cell.Stench && s.WumpusAlive,
		Glitter: cell.Glitter,
	}
}

func (s Session) Visited() []world.Coord {
	return s.Env.VisitedCoords()
}

func (s Session) Stats() Stats {
	return Stats{
		ActionsMade:   s.ActionCount,
		Score:         s.Score,
		ArrowsUsed:    s.Rules.InitialArrows - s.Agent.Arrows,
		CellsVisited:  len(s.Visited()),
		GoldCollected: s.Agent.HasGold,
		WumpusKilled:  !s.WumpusAlive,
		Won:           s.Status == StatusWon,
		AgentAlive:    s.Agent.Alive,
	}
}

// Clone returns a deep copy so a caller can apply an action speculatively.
func (s Session) Clone() Session {
	out := s
	out.Env = s.Env.Clone()
	return out
}
