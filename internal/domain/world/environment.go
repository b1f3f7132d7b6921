package world

const (
	DefaultSize = 10
	MinSize     = 2
	MaxSize     = 64
)

// Environment is a square grid stored row-major. The shape never changes after
// construction; only cell contents do.
type Environment struct {
	Size  int    `json:"size"`
	Cells []Cell `json:"cells"`
}

// NewEnvironment returns an empty grid with the start cell already visited.
func NewEnvironment(size int) (Environment, error) {
	if size < MinSize || size > MaxSize {
		return Environment{}, &ConfigError{Err: ErrInvalidSize, Detail: "size must be between 2 and 64"}
	}
	env := Environment{Size: size, Cells: make([]Cell, size*size)}
	env.cell(env.Start()).Visited = true
	return env, nil
}

// Start is the bottom-left entry and exit cell.
func (e Environment) Start() Coord {
	return Coord{X: 0, Y: e.Size - 1}
}

func (e Environment) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < e.Size && c.Y >= 0 && c.Y < e.Size
}

// At returns a copy of the cell at c. Out-of-bounds coordinates yield a zero
// cell and false.
func (e Environment) At(c Coord) (Cell, bool) {
	if !e.InBounds(c) {
		return Cell{}, false
	}
	return e.Cells[c.Y*e.Size+c.X], true
}

func (e *Environment) cell(c Coord) *Cell {
	return &e.Cells[c.Y*e.Size+c.X]
}

func (e Environment) Clone() Environment {
	out := Environment{Size: e.Size, Cells: make([]Cell, len(e.Cells))}
	copy(out.Cells, e.Cells)
	return out
}

// Neighbors returns the in-bounds orthogonal neighbours of c. No wraparound.
func (e Environment) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, 4)
	for _, d := range Directions {
		n := c.Step(d)
		if e.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// Ray returns every cell from the step after from up to the grid edge.
// An unknown direction yields no cells.
func (e Environment) Ray(from Coord, d Direction) []Coord {
	if _, ok := ParseDirection(string(d)); !ok {
		return nil
	}
	out := make([]Coord, 0, e.Size)
	for c := from.Step(d); e.InBounds(c); c = c.Step(d) {
		out = append(out, c)
	}
	return out
}

func (e *Environment) RecomputeBreezes() {
	for i := range e.Cells {
		e.Cells[i].Breeze = false
	}
	for y := 0; y < e.Size; y++ {
		for x := 0; x < e.Size; x++ {
			c := Coord{X: x, Y: y}
			if !e.cell(c).Pit {
				continue
			}
			for _, n := range e.Neighbors(c) {
				e.cell(n).Breeze = true
			}
		}
	}
}

// RecomputeStenches clears every stench and, if the Wumpus still lives,
// re-derives them around its cell.
func (e *Environment) RecomputeStenches(wumpusAlive bool) {
	for i := range e.Cells {
		e.Cells[i].Stench = false
	}
	if !wumpusAlive {
		return
	}
	for y := 0; y < e.Size; y++ {
		for x := 0; x < e.Size; x++ {
			c := Coord{X: x, Y: y}
			if !e.cell(c).Wumpus {
				continue
			}
			for _, n := range e.Neighbors(c) {
				e.cell(n).Stench = true
			}
		}
	}
}

func (e Environment) GoldAt(c Coord) bool {
	cell, ok := e.At(c)
	return ok && cell.Gold
}

func (e Environment) GlitterAt(c Coord) bool {
	cell, ok := e.At(c)
	return ok && cell.Glitter
}

// TakeGold removes gold and its glitter from c. It reports whether there was
// any gold to take.
func (e *Environment) TakeGold(c Coord) bool {
	if !e.GoldAt(c) {
		return false
	}
	cell := e.cell(c)
	cell.Gold = false
	cell.Glitter = false
	return true
}

func (e *Environment) MarkVisited(c Coord) {
	if e.InBounds(c) {
		e.cell(c).Visited = true
	}
}

// WumpusCoord returns the cell holding the Wumpus, dead or alive.
func (e Environment) WumpusCoord() (Coord, bool) {
	for i, cell := range e.Cells {
		if cell.Wumpus {
			return Coord{X: i % e.Size, Y: i / e.Size}, true
		}
	}
	return Coord{}, false
}

// Visible reports whether c or one of its orthogonal neighbours has been
// visited.
func (e Environment) Visible(c Coord) bool {
	cell, ok := e.At(c)
	if !ok {
		return false
	}
	if cell.Visited {
		return true
	}
	for _, n := range e.Neighbors(c) {
		if nc, _ := e.At(n); nc.Visited {
			return true
		}
	}
	return false
}

// VisitedCoords returns visited cells ordered by row, then column.
func (e Environment) VisitedCoords() []Coord {
	out := make([]Coord, 0)
	for i, cell := range e.Cells {
		if cell.Visited {
			out = append(out, Coord{X: i % e.Size, Y: i / e.Size})
		}
	}
	return out
}
