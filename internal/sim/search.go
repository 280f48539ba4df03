package sim

import (
	"container/heap"

	"github.com/vovakirdan/monster-hunt/internal/core"
)

// FindPath returns the shortest sequence of moves from start to goal on a
// rows×cols grid, stepping only through cells absent from forbidden. It runs
// A* with the Manhattan heuristic; with uniform unit edge costs the result
// length always equals the true graph distance.
//
// Ties between equal f = g+h candidates break by insertion order (earlier
// pushed wins), which makes the exact path deterministic. An unreachable,
// out-of-bounds, or forbidden goal yields a nil path; callers treat "no
// path" as an ordinary planning outcome, not an error.
func FindPath(rows, cols int, start, goal core.Cell, forbidden map[core.Cell]bool) []core.Direction {
	if goal.Row < 0 || goal.Row >= rows || goal.Col < 0 || goal.Col >= cols {
		return nil
	}
	if forbidden[goal] {
		return nil
	}

	frontier := &searchFrontier{}
	heap.Init(frontier)

	seq := 0
	heap.Push(frontier, &searchNode{
		cell: start,
		f:    core.Manhattan(start, goal),
		seq:  seq,
	})

	// bestG tracks the cheapest known cost to reach each cell; a cell is
	// only re-expanded via a strictly better path (standard relaxation).
	bestG := map[core.Cell]int{start: 0}

	for frontier.Len() > 0 {
		node := heap.Pop(frontier).(*searchNode)
		if node.cell == goal {
			return node.path
		}

		for _, d := range core.Directions {
			next := node.cell.Add(d)
			if next.Row < 0 || next.Row >= rows || next.Col < 0 || next.Col >= cols {
				continue
			}
			if forbidden[next] {
				continue
			}

			g := node.g + 1
			if prev, seen := bestG[next]; seen && g >= prev {
				continue
			}
			bestG[next] = g

			path := make([]core.Direction, len(node.path)+1)
			copy(path, node.path)
			path[len(node.path)] = d

			seq++
			heap.Push(frontier, &searchNode{
				cell: next,
				path: path,
				g:    g,
				f:    g + core.Manhattan(next, goal),
				seq:  seq,
			})
		}
	}

	return nil
}

// searchNode is a frontier entry carrying the moves taken to reach cell.
type searchNode struct {
	cell core.Cell
	path []core.Direction
	g    int // cost from start
	f    int // g + Manhattan heuristic to goal
	seq  int // insertion order, breaks f ties
}

// searchFrontier is a min-heap ordered by f, then insertion sequence.
type searchFrontier []*searchNode

func (q searchFrontier) Len() int { return len(q) }

func (q searchFrontier) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].seq < q[j].seq
}

func (q searchFrontier) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *searchFrontier) Push(x any) { *q = append(*q, x.(*searchNode)) }

func (q *searchFrontier) Pop() any {
	old := *q
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return node
}
