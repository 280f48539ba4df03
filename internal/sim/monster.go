package sim

import "github.com/vovakirdan/monster-hunt/internal/core"

// Monster is a grid inhabitant with a level and a facing that rotates one
// clockwise step on every second environment turn.
type Monster struct {
	Pos    core.Cell
	Level  int
	Facing core.Direction

	// ticks counts rotation triggers. The facing advances when the count
	// is even, giving a period-2 state machine over the period-4 cycle.
	ticks int
}

// tick advances the rotation state machine by one environment turn.
func (m *Monster) tick() {
	m.ticks++
	if m.ticks%2 == 0 {
		m.Facing = m.Facing.Clockwise()
	}
}

// NextFacing returns the facing the monster will have after its next
// rotation trigger, without mutating state. Used by lookahead planning.
func (m *Monster) NextFacing() core.Direction {
	if (m.ticks+1)%2 == 0 {
		return m.Facing.Clockwise()
	}
	return m.Facing
}

// Ahead returns the cell directly in front of the monster's current facing.
// The cell may be out of bounds; callers filter.
func (m *Monster) Ahead() core.Cell {
	return m.Pos.Add(m.Facing)
}
