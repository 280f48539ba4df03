package sim

import (
	"sort"

	"github.com/vovakirdan/monster-hunt/internal/core"
)

// ActionType classifies the outcome of one planning pass.
type ActionType int

const (
	// Wait leaves all agent state untouched this turn.
	Wait ActionType = iota
	// Move shifts the agent one cell in Action.Dir.
	Move
	// Attack removes the monster at Action.Target from the board.
	Attack
)

func (t ActionType) String() string {
	switch t {
	case Wait:
		return "WAIT"
	case Move:
		return "MOVE"
	case Attack:
		return "ATTACK"
	default:
		return "unknown"
	}
}

// Action is the single intent produced by PlanAction each turn.
type Action struct {
	Type   ActionType
	Dir    core.Direction // set for Move
	Target core.Cell      // set for Attack
}

// sighting is one perception-cache entry: what the agent last saw at a cell.
type sighting struct {
	level int
	turn  int // environment turn of the observation
}

// Agent is the single pursuing entity. It owns the turn-planning policy and
// a subjective cache of monster sightings that can go stale.
type Agent struct {
	Pos   core.Cell
	Level int
	Kills int
	Alive bool

	known map[core.Cell]sighting
}

func newAgent(pos core.Cell) *Agent {
	return &Agent{
		Pos:   pos,
		Level: 1,
		Alive: true,
		known: make(map[core.Cell]sighting),
	}
}

// perceive scans the Chebyshev neighborhood around the agent and records any
// monster found there, then prunes cache entries whose monster no longer
// exists. Pruning must run before planning: the cache is subjective
// knowledge, not ground truth.
func (a *Agent) perceive(env *Environment) {
	radius := env.policies.PerceptionRadius
	for _, pos := range env.sortedMonsterCells() {
		if core.Chebyshev(pos, a.Pos) <= radius {
			a.known[pos] = sighting{level: env.monsters[pos].Level, turn: env.turn}
		}
	}
	for pos := range a.known {
		if _, ok := env.monsters[pos]; !ok {
			delete(a.known, pos)
		}
	}
}

// candidate is a ranked attack target.
type candidate struct {
	pos   core.Cell
	level int
	dist  int
}

// candidates lists the viable targets (level ≤ agent level) visible under
// the active policy, ranked by distance ascending, then level descending,
// then row-major position so equal-ranked targets resolve deterministically.
func (a *Agent) candidates(env *Environment) []candidate {
	var cands []candidate

	appendViable := func(pos core.Cell, level int) {
		if level <= a.Level {
			cands = append(cands, candidate{
				pos:   pos,
				level: level,
				dist:  core.Manhattan(pos, a.Pos),
			})
		}
	}

	if env.policies.Visibility == VisibilityPerception {
		for _, pos := range sortedCells(a.known) {
			appendViable(pos, a.known[pos].level)
		}
	} else {
		for _, pos := range env.sortedMonsterCells() {
			appendViable(pos, env.monsters[pos].Level)
		}
	}

	sort.Slice(cands, func(i, j int) bool {
		if cands[i].dist != cands[j].dist {
			return cands[i].dist < cands[j].dist
		}
		if cands[i].level != cands[j].level {
			return cands[i].level > cands[j].level
		}
		return cands[i].pos.Less(cands[j].pos)
	})

	return cands
}

// PlanAction decides the agent's intent for this turn without mutating any
// state. The decision is deterministic: refresh perception, rank viable
// targets, attack if safely adjacent, otherwise path toward the best
// reachable safe approach cell, falling through weaker candidates before
// giving up with Wait.
func (a *Agent) PlanAction(env *Environment) Action {
	if env.policies.Visibility == VisibilityPerception {
		a.perceive(env)
	}

	forbidden := env.forbidden()

	for _, cand := range a.candidates(env) {
		m := env.monsters[cand.pos]
		if m == nil {
			continue
		}

		if core.Manhattan(cand.pos, a.Pos) == 1 {
			if env.policies.Danger == DangerLookahead && m.Pos.Add(m.NextFacing()) == a.Pos {
				// The monster will be staring at us after its next
				// rotation; attacking cannot prevent the retaliation.
				continue
			}
			return Action{Type: Attack, Target: cand.pos}
		}

		facing := m.Facing
		if env.policies.Danger == DangerLookahead {
			facing = m.NextFacing()
		}

		for _, d := range core.Directions {
			approach := m.Pos.Add(d)
			if !env.InBounds(approach) {
				continue
			}
			if _, occupied := env.monsters[approach]; occupied {
				continue
			}
			if d == facing {
				continue
			}
			path := FindPath(env.rows, env.cols, a.Pos, approach, forbidden)
			if len(path) > 0 {
				return Action{Type: Move, Dir: path[0]}
			}
		}
	}

	return Action{Type: Wait}
}

// execute plans one action and applies it.
func (a *Agent) execute(env *Environment) {
	a.apply(env, a.PlanAction(env))
}

// apply mutates agent and environment state per the action. Move trusts the
// planner: the target cell was already validated, so no bounds or occupancy
// re-check happens here. Attack removes the monster unconditionally; a fight
// the agent cannot win (possible only if the viability filter was violated)
// is fatal.
func (a *Agent) apply(env *Environment, action Action) {
	switch action.Type {
	case Move:
		a.Pos = a.Pos.Add(action.Dir)
	case Attack:
		m := env.removeMonster(action.Target)
		if m == nil {
			return
		}
		if a.Level >= m.Level {
			a.Kills++
			a.Level++
		} else {
			a.Alive = false
		}
	}
}

// sortedCells returns the keys of a perception cache in row-major order.
func sortedCells(m map[core.Cell]sighting) []core.Cell {
	cells := make([]core.Cell, 0, len(m))
	for c := range m {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool { return cells[i].Less(cells[j]) })
	return cells
}
