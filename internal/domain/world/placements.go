package world

import "fmt"

type Placements struct {
	Size   int     `json:"size,omitempty" yaml:"size,omitempty"`
	Wumpus *Coord  `json:"wumpus,omitempty" yaml:"wumpus,omitempty"`
	Gold   *Coord  `json:"gold,omitempty" yaml:"gold,omitempty"`
	Pits   []Coord `json:"pits,omitempty" yaml:"pits,omitempty"`
}

func (p Placements) Empty() bool {
	return p.Wumpus == nil && p.Gold == nil && len(p.Pits) == 0
}

// Initialize builds a grid of the given size holding exactly the placed
// hazards, with every ambient percept derived and the start cell visited.
//
// A pit on the start cell is skipped without error, but a layout left empty
// by that skip is rejected. The Wumpus may not sit on the start cell, and no
// two of Wumpus, gold and pit may share a cell.
func Initialize(size int, p Placements) (Environment, error) {
	env, err := NewEnvironment(size)
	if err != nil {
		return Environment{}, err
	}
	if p.Empty() {
		return Environment{}, &ConfigError{Err: ErrNothingPlaced}
	}

	occupied := map[Coord]string{}
	claim := func(c Coord, what string) error {
		if !env.InBounds(c) {
			return &ConfigError{Err: ErrOutOfBounds, Detail: fmt.Sprintf("%s at %s on a %dx%d grid", what, c, size, size)}
		}
		if prev, ok := occupied[c]; ok && prev != what {
			return &ConfigError{Err: ErrCollision, Detail: fmt.Sprintf("%s and %s at %s", prev, what, c)}
		}
		occupied[c] = what
		return nil
	}

	if p.Wumpus != nil {
		w := *p.Wumpus
		if err := claim(w, "wumpus"); err != nil {
			return Environment{}, err
		}
		if w == env.Start() {
			return Environment{}, &ConfigError{Err: ErrStartOccupied, Detail: w.String()}
		}
		env.cell(w).Wumpus = true
	}
	if p.Gold != nil {
		g := *p.Gold
		if err := claim(g, "gold"); err != nil {
			return Environment{}, err
		}
		cell := env.cell(g)
		cell.Gold = true
		cell.Glitter = true
	}
	for _, pit := range p.Pits {
		if !env.InBounds(pit) {
			return Environment{}, &ConfigError{Err: ErrOutOfBounds, Detail: fmt.Sprintf("pit at %s on a %dx%d grid", pit, size, size)}
		}
		if pit == env.Start() {
			continue
		}
		if err := claim(pit, "pit"); err != nil {
			return Environment{}, err
		}
		env.cell(pit).Pit = true
	}
	if len(occupied) == 0 {
		return Environment{}, &ConfigError{Err: ErrNothingPlaced, Detail: "only the start cell was named"}
	}

	env.RecomputeBreezes()
	env.RecomputeStenches(p.Wumpus != nil)
	return env, nil
}

// PlacementsOf reads the hazard layout back out of an environment.
func PlacementsOf(e Environment) Placements {
	p := Placements{Size: e.Size}
	for i, cell := range e.Cells {
		c := Coord{X: i % e.Size, Y: i / e.Size}
		if cell.Wumpus {
			w := c
			p.Wumpus = &w
		}
		if cell.Gold {
			g := c
			p.Gold = &g
		}
		if cell.Pit {
			p.Pits = append(p.Pits, c)
		}
	}
	return p
}
