package sim

import "github.com/vovakirdan/monster-hunt/internal/core"

// AgentView is a read-only copy of the agent's observable state.
type AgentView struct {
	Pos   core.Cell
	Level int
	Kills int
	Alive bool
}

// MonsterView is a read-only copy of one monster's observable state.
type MonsterView struct {
	Pos    core.Cell
	Level  int
	Facing core.Direction
}

// Snapshot captures the complete observable simulation state. It is the
// entire contract for external collaborators (renderer, CLI, tests): they
// read snapshots and call Step, nothing else.
type Snapshot struct {
	Turn     int
	Rows     int
	Cols     int
	Agent    AgentView
	Monsters []MonsterView // row-major order
	Danger   []core.Cell   // in-bounds cells lethal at end of this turn
	Over     bool
}

// Snapshot returns the current simulation state.
func (e *Environment) Snapshot() Snapshot {
	monsters := make([]MonsterView, 0, len(e.monsters))
	for _, pos := range e.sortedMonsterCells() {
		m := e.monsters[pos]
		monsters = append(monsters, MonsterView{Pos: m.Pos, Level: m.Level, Facing: m.Facing})
	}

	danger := make([]core.Cell, 0)
	for _, m := range monsters {
		ahead := m.Pos.Add(m.Facing)
		if e.InBounds(ahead) {
			danger = append(danger, ahead)
		}
	}

	return Snapshot{
		Turn: e.turn,
		Rows: e.rows,
		Cols: e.cols,
		Agent: AgentView{
			Pos:   e.agent.Pos,
			Level: e.agent.Level,
			Kills: e.agent.Kills,
			Alive: e.agent.Alive,
		},
		Monsters: monsters,
		Danger:   danger,
		Over:     e.IsOver(),
	}
}
