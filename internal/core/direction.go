package core

// Direction is one of the four cardinal directions.
type Direction int

const (
	North Direction = iota
	South
	West
	East
)

// Directions lists the cardinal directions in the fixed order the planner
// enumerates them: N, S, W, E. This order decides which of several
// equal-quality approach cells wins, so it is part of the observable
// contract and must not be reordered.
var Directions = [4]Direction{North, South, West, East}

// Vector returns the (row, col) offset of one step in this direction.
func (d Direction) Vector() (dr, dc int) {
	switch d {
	case North:
		return -1, 0
	case South:
		return 1, 0
	case West:
		return 0, -1
	case East:
		return 0, 1
	default:
		return 0, 0
	}
}

// Arrow returns the display glyph for this direction.
func (d Direction) Arrow() string {
	switch d {
	case North:
		return "^"
	case South:
		return "v"
	case West:
		return "<"
	case East:
		return ">"
	default:
		return "?"
	}
}

// Clockwise returns the next direction in the rotation cycle monsters
// follow: N -> E -> S -> W -> N.
func (d Direction) Clockwise() Direction {
	switch d {
	case North:
		return East
	case East:
		return South
	case South:
		return West
	case West:
		return North
	default:
		return d
	}
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case West:
		return East
	case East:
		return West
	default:
		return d
	}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case South:
		return "S"
	case West:
		return "W"
	case East:
		return "E"
	default:
		return "unknown"
	}
}
