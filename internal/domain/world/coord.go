package world

import "fmt"

type Coord struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

func (c Coord) Step(d Direction) Coord {
	switch d {
	case DirUp:
		return Coord{X: c.X, Y: c.Y - 1}
	case DirDown:
		return Coord{X: c.X, Y: c.Y + 1}
	case DirLeft:
		return Coord{X: c.X - 1, Y: c.Y}
	case DirRight:
		return Coord{X: c.X + 1, Y: c.Y}
	default:
		return c
	}
}

type Direction string

const (
	DirUp    Direction = "up"
	DirDown  Direction = "down"
	DirLeft  Direction = "left"
	DirRight Direction = "right"
)

// Directions lists the four orthogonal directions in clockwise order.
var Directions = []Direction{DirUp, DirRight, DirDown, DirLeft}

func ParseDirection(s string) (Direction, bool) {
	switch d := Direction(s); d {
	case DirUp, DirDown, DirLeft, DirRight:
		return d, true
	default:
		return "", false
	}
}
