package sim

import (
	"testing"

	"github.com/vovakirdan/monster-hunt/internal/core"
)

func TestMonsterRotatesEverySecondTick(t *testing.T) {
	m := &Monster{Pos: core.Cell{Row: 0, Col: 0}, Level: 1, Facing: core.North}

	m.tick()
	if m.Facing != core.North {
		t.Fatalf("after 1 tick: facing %v, expected North", m.Facing)
	}

	m.tick()
	if m.Facing != core.East {
		t.Fatalf("after 2 ticks: facing %v, expected East", m.Facing)
	}

	m.tick()
	if m.Facing != core.East {
		t.Fatalf("after 3 ticks: facing %v, expected East", m.Facing)
	}

	m.tick()
	if m.Facing != core.South {
		t.Fatalf("after 4 ticks: facing %v, expected South", m.Facing)
	}
}

func TestMonsterNextFacingPrediction(t *testing.T) {
	m := &Monster{Pos: core.Cell{Row: 2, Col: 2}, Level: 1, Facing: core.North}

	// Over a full cycle, NextFacing must always equal the facing actually
	// observed after the following tick.
	for i := 0; i < 8; i++ {
		predicted := m.NextFacing()
		m.tick()
		if m.Facing != predicted {
			t.Fatalf("tick %d: predicted %v, actual %v", i+1, predicted, m.Facing)
		}
	}
}

func TestMonsterAhead(t *testing.T) {
	m := &Monster{Pos: core.Cell{Row: 3, Col: 3}, Level: 1, Facing: core.West}
	if ahead := m.Ahead(); ahead != (core.Cell{Row: 3, Col: 2}) {
		t.Errorf("Ahead() = %v, expected {3 2}", ahead)
	}
}
