package sim

import (
	"math/rand"

	"github.com/vovakirdan/monster-hunt/internal/core"
)

// newTestEnv builds an environment with a fixed layout, bypassing random
// placement, so tests can pin exact scenarios.
func newTestEnv(rows, cols int, agentPos core.Cell, policies Policies, monsters ...*Monster) *Environment {
	env := &Environment{
		rows:     rows,
		cols:     cols,
		settings: Settings{Rows: rows, Cols: cols, Monsters: len(monsters), Policies: policies},
		policies: policies,
		rng:      rand.New(rand.NewSource(1)),
		agent:    newAgent(agentPos),
		monsters: make(map[core.Cell]*Monster, len(monsters)),
	}
	for _, m := range monsters {
		env.monsters[m.Pos] = m
	}
	return env
}
