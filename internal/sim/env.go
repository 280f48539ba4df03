// Package sim implements the turn-based hunt simulation: a single agent
// chasing rotating monsters across a bounded grid. The package is pure
// logic with no I/O; renderers and CLI drivers observe it through Snapshot
// and drive it by calling Step.
package sim

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/vovakirdan/monster-hunt/internal/core"
)

// ErrTooManyMonsters is returned when the requested monster count cannot be
// placed without collisions (more monsters than free cells).
var ErrTooManyMonsters = errors.New("sim: more monsters than free cells")

// LevelScheme selects how monster levels are assigned at construction.
type LevelScheme int

const (
	// LevelsAscending assigns 1, 2, 3, … in placement order.
	LevelsAscending LevelScheme = iota
	// LevelsRandom draws each level uniformly from [1, LevelMax].
	LevelsRandom
)

// ParseLevelScheme converts a config string to a LevelScheme.
func ParseLevelScheme(s string) (LevelScheme, error) {
	switch s {
	case "ascending":
		return LevelsAscending, nil
	case "random":
		return LevelsRandom, nil
	default:
		return LevelsAscending, fmt.Errorf("sim: unknown level scheme %q", s)
	}
}

// Settings describes one simulation. Environments built from equal Settings
// are turn-for-turn identical: all randomness derives from the single seed.
type Settings struct {
	Rows, Cols int
	Monsters   int
	Seed       int64

	Levels   LevelScheme
	LevelMax int // upper bound for LevelsRandom

	// EnsureViable downgrades the weakest monster to the agent's level
	// whenever every survivor outranks the agent, so a walkthrough always
	// exists. Checked at construction and after every step.
	EnsureViable bool

	Policies Policies
}

// DefaultSettings returns a 10×10 hunt with 8 randomly leveled monsters and
// the classic policy set. Seed 0 is kept as-is; callers that want wall-clock
// seeding substitute it before construction.
func DefaultSettings() Settings {
	return Settings{
		Rows:     10,
		Cols:     10,
		Monsters: 8,
		Levels:   LevelsRandom,
		LevelMax: 7,
		Policies: DefaultPolicies(),
	}
}

// Environment owns the grid, the monster table, and the agent, and advances
// global turn state. Monsters are keyed by position; the table never holds
// two monsters on one cell and never shares a cell with the agent.
type Environment struct {
	rows, cols int
	settings   Settings
	policies   Policies
	rng        *rand.Rand

	agent    *Agent
	monsters map[core.Cell]*Monster
	turn     int
}

// New constructs a deterministic environment from the settings. Agent
// placement, monster levels, positions, and facings all come from one
// seeded stream, in that order, so equal seeds reproduce exact worlds.
func New(s Settings) (*Environment, error) {
	if s.Rows < 1 || s.Cols < 1 {
		return nil, fmt.Errorf("sim: invalid grid %dx%d", s.Rows, s.Cols)
	}
	if s.Monsters < 0 || s.Monsters > s.Rows*s.Cols-1 {
		return nil, fmt.Errorf("%w: %d monsters on a %dx%d grid", ErrTooManyMonsters, s.Monsters, s.Rows, s.Cols)
	}
	if s.LevelMax < 1 {
		s.LevelMax = 1
	}

	rng := rand.New(rand.NewSource(s.Seed))

	env := &Environment{
		rows:     s.Rows,
		cols:     s.Cols,
		settings: s,
		policies: s.Policies,
		rng:      rng,
		monsters: make(map[core.Cell]*Monster, s.Monsters),
	}

	env.agent = newAgent(core.Cell{Row: rng.Intn(s.Rows), Col: rng.Intn(s.Cols)})

	for i := 0; i < s.Monsters; i++ {
		level := i + 1
		if s.Levels == LevelsRandom {
			level = rng.Intn(s.LevelMax) + 1
		}

		var pos core.Cell
		for {
			pos = core.Cell{Row: rng.Intn(s.Rows), Col: rng.Intn(s.Cols)}
			if pos == env.agent.Pos {
				continue
			}
			if _, taken := env.monsters[pos]; !taken {
				break
			}
		}

		env.monsters[pos] = &Monster{
			Pos:    pos,
			Level:  level,
			Facing: core.Directions[rng.Intn(len(core.Directions))],
		}
	}

	if s.EnsureViable {
		env.ensureViable()
	}

	return env, nil
}

// Step advances one full turn. The ordering is authoritative: monsters
// rotate first, then the agent acts, then every surviving monster's updated
// facing is checked against the agent's updated position. An agent move can
// therefore walk into a freshly rotated line of sight within the same turn.
func (e *Environment) Step() {
	e.turn++

	for _, pos := range e.sortedMonsterCells() {
		e.monsters[pos].tick()
	}

	e.agent.execute(e)

	if e.agent.Alive {
		for _, pos := range e.sortedMonsterCells() {
			if e.monsters[pos].Ahead() == e.agent.Pos {
				e.agent.Alive = false
				break
			}
		}
	}

	if e.settings.EnsureViable {
		e.ensureViable()
	}
}

// IsOver reports whether the simulation has ended: the agent died or no
// monsters remain.
func (e *Environment) IsOver() bool {
	return !e.agent.Alive || len(e.monsters) == 0
}

// ensureViable keeps at least one killable target on the board by setting
// the weakest monster's level to the agent's when everyone outranks it.
func (e *Environment) ensureViable() {
	if len(e.monsters) == 0 {
		return
	}

	var weakest *Monster
	for _, pos := range e.sortedMonsterCells() {
		m := e.monsters[pos]
		if weakest == nil || m.Level < weakest.Level {
			weakest = m
		}
	}

	if weakest.Level > e.agent.Level {
		weakest.Level = core.Max(1, e.agent.Level)
	}
}

// InBounds reports whether a cell lies on the grid.
func (e *Environment) InBounds(c core.Cell) bool {
	return c.Row >= 0 && c.Row < e.rows && c.Col >= 0 && c.Col < e.cols
}

// blocked returns the set of monster-occupied cells.
func (e *Environment) blocked() map[core.Cell]bool {
	set := make(map[core.Cell]bool, len(e.monsters))
	for pos := range e.monsters {
		set[pos] = true
	}
	return set
}

// dangerTiles returns the in-bounds cells directly ahead of each monster,
// using the current facing or the predicted next one per the danger policy.
func (e *Environment) dangerTiles() map[core.Cell]bool {
	set := make(map[core.Cell]bool, len(e.monsters))
	for _, m := range e.monsters {
		facing := m.Facing
		if e.policies.Danger == DangerLookahead {
			facing = m.NextFacing()
		}
		ahead := m.Pos.Add(facing)
		if e.InBounds(ahead) {
			set[ahead] = true
		}
	}
	return set
}

// forbidden composes the cells the path search must not enter: monster
// bodies always, danger cells when the policy avoids them.
func (e *Environment) forbidden() map[core.Cell]bool {
	set := e.blocked()
	if e.policies.AvoidDanger {
		for c := range e.dangerTiles() {
			set[c] = true
		}
	}
	return set
}

// removeMonster transfers a monster out of the table, returning nil if the
// cell is empty. A removed monster ceases to exist.
func (e *Environment) removeMonster(pos core.Cell) *Monster {
	m := e.monsters[pos]
	if m != nil {
		delete(e.monsters, pos)
	}
	return m
}

// sortedMonsterCells returns monster positions in row-major order. All
// iteration over the table goes through this so behavior never depends on
// map order.
func (e *Environment) sortedMonsterCells() []core.Cell {
	cells := make([]core.Cell, 0, len(e.monsters))
	for pos := range e.monsters {
		cells = append(cells, pos)
	}
	sort.Slice(cells, func(i, j int) bool { return cells[i].Less(cells[j]) })
	return cells
}

// Rows returns the grid height.
func (e *Environment) Rows() int { return e.rows }

// Cols returns the grid width.
func (e *Environment) Cols() int { return e.cols }

// Turn returns the number of completed steps.
func (e *Environment) Turn() int { return e.turn }

// Settings returns the construction settings.
func (e *Environment) Settings() Settings { return e.settings }
