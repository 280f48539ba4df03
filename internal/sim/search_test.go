package sim

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/monster-hunt/internal/core"
)

// referenceBFS computes true graph distances from start with plain
// breadth-first search, used as an independent oracle for FindPath.
func referenceBFS(rows, cols int, start core.Cell, forbidden map[core.Cell]bool) map[core.Cell]int {
	dist := map[core.Cell]int{start: 0}
	queue := []core.Cell{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range core.Directions {
			next := cur.Add(d)
			if next.Row < 0 || next.Row >= rows || next.Col < 0 || next.Col >= cols {
				continue
			}
			if forbidden[next] {
				continue
			}
			if _, seen := dist[next]; seen {
				continue
			}
			dist[next] = dist[cur] + 1
			queue = append(queue, next)
		}
	}
	return dist
}

func TestFindPathMatchesBFSDistance(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const rows, cols = 10, 10

	for trial := 0; trial < 20; trial++ {
		// Random obstacle field, ~25% density
		forbidden := make(map[core.Cell]bool)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if rng.Intn(4) == 0 {
					forbidden[core.Cell{Row: r, Col: c}] = true
				}
			}
		}

		start := core.Cell{Row: rng.Intn(rows), Col: rng.Intn(cols)}
		delete(forbidden, start)

		dist := referenceBFS(rows, cols, start, forbidden)

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				goal := core.Cell{Row: r, Col: c}
				if forbidden[goal] {
					continue
				}
				path := FindPath(rows, cols, start, goal, forbidden)

				want, reachable := dist[goal]
				if !reachable {
					if len(path) != 0 {
						t.Fatalf("trial %d: found path of %d moves to unreachable %v", trial, len(path), goal)
					}
					continue
				}
				if len(path) != want {
					t.Fatalf("trial %d: path to %v has %d moves, BFS distance is %d", trial, goal, len(path), want)
				}

				// Verify the path actually walks start -> goal through open cells
				pos := start
				for i, d := range path {
					pos = pos.Add(d)
					if pos.Row < 0 || pos.Row >= rows || pos.Col < 0 || pos.Col >= cols || forbidden[pos] {
						t.Fatalf("trial %d: path step %d enters invalid cell %v", trial, i, pos)
					}
				}
				if pos != goal {
					t.Fatalf("trial %d: path ends at %v, expected %v", trial, pos, goal)
				}
			}
		}
	}
}

func TestFindPathInvalidGoal(t *testing.T) {
	start := core.Cell{Row: 0, Col: 0}

	tests := []struct {
		name string
		goal core.Cell
	}{
		{"negative row", core.Cell{Row: -1, Col: 0}},
		{"row past edge", core.Cell{Row: 5, Col: 0}},
		{"col past edge", core.Cell{Row: 0, Col: 5}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if path := FindPath(5, 5, start, tc.goal, nil); path != nil {
				t.Errorf("expected nil path, got %v", path)
			}
		})
	}

	t.Run("forbidden goal", func(t *testing.T) {
		goal := core.Cell{Row: 2, Col: 2}
		forbidden := map[core.Cell]bool{goal: true}
		if path := FindPath(5, 5, start, goal, forbidden); path != nil {
			t.Errorf("expected nil path, got %v", path)
		}
	})
}

func TestFindPathStartIsGoal(t *testing.T) {
	start := core.Cell{Row: 1, Col: 1}
	if path := FindPath(3, 3, start, start, nil); len(path) != 0 {
		t.Errorf("expected empty path, got %v", path)
	}
}

func TestFindPathWallGap(t *testing.T) {
	// 3x3 grid, vertical wall with a gap at the bottom:
	//   . # .
	//   . # .
	//   . . .
	forbidden := map[core.Cell]bool{
		{Row: 0, Col: 1}: true,
		{Row: 1, Col: 1}: true,
	}
	path := FindPath(3, 3, core.Cell{Row: 0, Col: 0}, core.Cell{Row: 0, Col: 2}, forbidden)
	if len(path) != 6 {
		t.Fatalf("expected 6 moves through the gap, got %d (%v)", len(path), path)
	}
}

func TestFindPathTieBreakDeterministic(t *testing.T) {
	// (0,0) -> (1,1) has two shortest paths; insertion-order tie-breaking
	// must always pick the same one. With the N,S,W,E enumeration the
	// south-first expansion wins.
	start := core.Cell{Row: 0, Col: 0}
	goal := core.Cell{Row: 1, Col: 1}

	want := []core.Direction{core.South, core.East}
	for i := 0; i < 5; i++ {
		path := FindPath(3, 3, start, goal, nil)
		if len(path) != 2 || path[0] != want[0] || path[1] != want[1] {
			t.Fatalf("run %d: path = %v, expected %v", i, path, want)
		}
	}
}
