package game

import "wumpusworld/internal/domain/world"

type View string

const (
	// ViewPlayer hides every cell that is neither visited nor next to a
	// visited cell, until the game ends.
	ViewPlayer View = "player"
	// ViewOperator shows the whole grid.
	ViewOperator View = "operator"
)

type CellView struct {
	X       int  `json:"x"`
	Y       int  `json:"y"`
	Visible bool `json:"visible"`
	Agent   bool `json:"agent,omitempty"`
	Visited bool `json:"visited,omitempty"`
	Pit     bool `json:"pit,omitempty"`
	Wumpus  bool `json:"wumpus,omitempty"`
	Gold    bool `json:"gold,omitempty"`
	Breeze  bool `json:"breeze,omitempty"`
	Stench  bool `json:"stench,omitempty"`
	Glitter bool `json:"glitter,omitempty"`
}

// Snapshot is the single external serialization of a session.
type Snapshot struct {
	SessionID   string        `json:"session_id"`
	View        View          `json:"view"`
	Size        int           `json:"size"`
	Start       world.Coord   `json:"start"`
	Grid        [][]CellView  `json:"grid"`
	Agent       Agent         `json:"agent"`
	Score       int           `json:"score"`
	Arrows      int           `json:"arrows"`
	WumpusAlive bool          `json:"wumpus_alive"`
	Visited     []world.Coord `json:"visited"`
	Status      Status        `json:"status"`
	Message     string        `json:"message,omitempty"`
	Percepts    Percepts      `json:"percepts"`
	Stats       Stats         `json:"stats"`
	Version     int64         `json:"version"`
}

func (s Session) Snapshot(view View) Snapshot {
	reveal := view == ViewOperator || s.Status.Terminal()
	if view != ViewOperator {
		view = ViewPlayer
	}

	grid := make([][]CellView, s.Env.Size)
	for y := 0; y < s.Env.Size; y++ {
		row := make([]CellView, s.Env.Size)
		for x := 0; x < s.Env.Size; x++ {
			c := world.Coord{X: x, Y: y}
			cv := CellView{X: x, Y: y, Visible: s.Env.Visible(c)}
			if reveal || cv.Visible {
				cell, _ := s.Env.At(c)
				cv.Agent = c == s.Agent.Position
				cv.Visited = cell.Visited
				cv.Pit = cell.Pit
				cv.Wumpus = cell.Wumpus
				cv.Gold = cell.Gold
				cv.Breeze = cell.Breeze
				cv.Stench = cell.Stench && s.WumpusAlive
				cv.Glitter = cell.Glitter
			}
			row[x] = cv
		}
		grid[y] = row
	}

	return Snapshot{
		SessionID:   s.ID,
		View:        view,
		Size:        s.Env.Size,
		Start:       s.Env.Start(),
		Grid:        grid,
		Agent:       s.Agent,
		Score:       s.Score,
		Arrows:      s.Agent.Arrows,
		WumpusAlive: s.WumpusAlive,
		Visited:     s.Visited(),
		Status:      s.Status,
		Message:     s.LastMessage,
		Percepts:    s.Percepts(),
		Stats:       s.Stats(),
		Version:     s.Version,
	}
}

// As narrows an operator snapshot to the given view. A player snapshot has
// already lost the hidden cells and is returned unchanged.
func (s Snapshot) As(view View) Snapshot {
	if view == ViewOperator || s.View != ViewOperator {
		return s
	}
	out := s
	out.View = ViewPlayer
	if s.Status.Terminal() {
		return out
	}
	out.Grid = make([][]CellView, len(s.Grid))
	for y, row := range s.Grid {
		masked := make([]CellView, len(row))
		for x, cv := range row {
			if cv.Visible {
				masked[x] = cv
				continue
			}
			masked[x] = CellView{X: cv.X, Y: cv.Y}
		}
		out.Grid[y] = masked
	}
	return out
}
