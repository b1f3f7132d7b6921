package game

import (
	"strings"
	"time"

	"wumpusworld/internal/domain/world"
)

// Apply runs one action against the session. Refused actions return an error
// and leave the session untouched; reported no-ops return an Outcome with
// Success false.
func (s *Session) Apply(action ActionName, direction string, now time.Time) (Outcome, error) {
	dir, err := s.validate(action, direction)
	if err != nil {
		return Outcome{}, err
	}

	out := Outcome{
		Action:     action,
		Direction:  dir,
		From:       s.Agent.Position,
		OccurredAt: now,
	}
	scoreBefore := s.Score

	switch action {
	case ActionMove:
		s.move(dir, &out)
	case ActionShoot:
		s.shoot(&out)
	case ActionGrab:
		s.grab(&out)
	case ActionClimb:
		s.climb(&out)
	case ActionTurn:
		s.Agent.Facing = dir
		out.Success = true
		out.Message = "Turned " + string(dir)
	}

	// Reported no-ops leave everything but the message alone.
	if out.Success {
		s.ActionCount++
		if s.Status == StatusPlaying && s.Rules.MaxActions > 0 && s.ActionCount >= s.Rules.MaxActions {
			s.Status = StatusLost
			out.Message += " - Maximum moves reached"
		}
		s.UpdatedAt = now
	}

	out.To = s.Agent.Position
	out.ScoreDelta = s.Score - scoreBefore
	out.Status = s.Status
	if s.Status == StatusPlaying || s.Status == StatusWon {
		p := s.Percepts()
		out.Percepts.Breeze, out.Percepts.Stench, out.Percepts.Glitter = p.Breeze, p.Stench, p.Glitter
	}
	s.LastMessage = out.Message
	return out, nil
}

func (s *Session) validate(action ActionName, direction string) (world.Direction, error) {
	if s.Status.Terminal() {
		return "", &InvalidActionError{Action: action, Reason: "game is over"}
	}
	switch action {
	case ActionMove, ActionTurn:
		dir, ok := world.ParseDirection(strings.TrimSpace(direction))
		if !ok {
			return "", &InvalidActionError{Action: action, Reason: "direction must be one of up, down, left, right"}
		}
		return dir, nil
	case ActionShoot:
		if s.Agent.Arrows <= 0 {
			return "", ErrNoArrowsRemaining
		}
		return s.Agent.Facing, nil
	case ActionGrab, ActionClimb:
		return "", nil
	default:
		return "", &InvalidActionError{Action: action, Reason: "unknown action"}
	}
}

func (s *Session) move(dir world.Direction, out *Outcome) {
	next := s.Agent.Position.Step(dir)
	if !s.Env.InBounds(next) {
		out.Percepts.Bump = true
		out.Message = "Cannot move outside the board"
		return
	}

	s.Agent.Position = next
	s.Agent.Facing = dir
	s.Env.MarkVisited(next)
	s.Score += s.Rules.MovePenalty
	out.Success = true
	out.Message = "Moved " + string(dir)

	cell, _ := s.Env.At(next)
	switch {
	case cell.Pit:
		s.die()
		out.Message += " - Fell into a pit! Game over!"
		return
	case cell.Wumpus && s.WumpusAlive:
		s.die()
		out.Message += " - Eaten by the Wumpus! Game over!"
		return
	}

	if cues := perceptNames(s.Percepts()); len(cues) > 0 {
		out.Message += " - You perceive: " + strings.Join(cues, ", ")
	}
}

func (s *Session) die() {
	s.Agent.Alive = false
	s.Status = StatusLost
	s.Score += s.Rules.DeathPenalty
}

func (s *Session) shoot(out *Outcome) {
	s.Agent.Arrows--
	s.Score += s.Rules.ArrowPenalty
	out.Success = true

	if s.WumpusAlive {
		if target, ok := s.Env.WumpusCoord(); ok {
			for _, c := range s.Env.Ray(s.Agent.Position, s.Agent.Facing) {
				if c != target {
					continue
				}
				s.WumpusAlive = false
				s.Env.RecomputeStenches(false)
				s.Score += s.Rules.KillReward
				out.Percepts.Scream = true
				out.Message = "Shot arrow " + string(s.Agent.Facing) + " - You hear a scream! The Wumpus is dead"
				return
			}
		}
	}
	out.Message = "Shot arrow " + string(s.Agent.Facing) + " - missed"
}

func (s *Session) grab(out *Outcome) {
	switch {
	case s.Agent.HasGold:
		out.Message = "Already holding the gold"
	case !s.Env.GoldAt(s.Agent.Position):
		out.Message = "No gold here"
	default:
		s.Env.TakeGold(s.Agent.Position)
		s.Agent.HasGold = true
		s.Score += s.Rules.GoldReward
		out.Success = true
		out.Message = "Grabbed the gold"
	}
}

func (s *Session) climb(out *Outcome) {
	if s.Agent.Position != s.Env.Start() {
		out.Message = "Can only climb out from the starting position"
		return
	}
	s.Status = StatusWon
	out.Success = true
	if s.Agent.HasGold {
		s.Score += s.Rules.ClimbGoldBonus
		out.Message = "Climbed out with the gold - Game won!"
		return
	}
	out.Message = "Climbed out - Game won!"
}

func perceptNames(p Percepts) []string {
	out := make([]string, 0, 3)
	if p.Breeze {
		out = append(out, "breeze")
	}
	if p.Stench {
		out = append(out, "stench")
	}
	if p.Glitter {
		out = append(out, "glitter")
	}
	return out
}
