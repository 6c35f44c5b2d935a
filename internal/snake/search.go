package snake

import (
	"math/rand"

	"github.com/pmelo/snaze/internal/maze"
)

// FindPath runs a breadth-first search from the snake's head to the
// food and returns the first step of the shortest path found. ok is
// false when the food is unreachable; the caller decides what to do
// next (normally RandomStep).
//
// Neighbors are expanded in the fixed order up, right, down, left, so
// among equal-length paths the result is deterministic for a given grid
// and head position. A cell is expandable iff it is in bounds and not a
// crash per the grid's own collision test.
func (s *Snake) FindPath(g *maze.Grid) (next maze.TilePos, ok bool) {
	start := s.Head()

	visited := make([][]bool, g.Rows())
	for r := range visited {
		visited[r] = make([]bool, g.Cols())
	}
	pred := make(map[maze.TilePos]maze.TilePos)

	queue := []maze.TilePos{start}
	visited[start.Row][start.Col] = true

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		if g.TileAt(curr) == maze.Food {
			return s.firstStep(curr, start, pred), true
		}

		for _, d := range maze.Directions {
			v := maze.Move(curr, d)
			if !g.InBounds(v) || visited[v.Row][v.Col] || g.IsCrash(v) {
				continue
			}
			visited[v.Row][v.Col] = true
			pred[v] = curr
			queue = append(queue, v)
		}
	}

	return maze.TilePos{}, false
}

// firstStep walks the predecessor map backward from the food until it
// reaches the cell discovered directly from the start; that cell is the
// single move to make this tick. When the food has no predecessor other
// than the start (head adjacent to food), the food cell itself is the
// move.
func (s *Snake) firstStep(food, start maze.TilePos, pred map[maze.TilePos]maze.TilePos) maze.TilePos {
	curr := food
	for {
		prev, found := pred[curr]
		if !found || prev == start {
			return curr
		}
		curr = prev
	}
}

// RandomStep shuffles the four directions and returns the first
// resulting position the snake could validly occupy. ok is false when
// every neighbor is invalid, which the controller treats exactly like a
// physical crash.
func (s *Snake) RandomStep(g *maze.Grid, rng *rand.Rand) (next maze.TilePos, ok bool) {
	dirs := []maze.Dir{maze.DirUp, maze.DirRight, maze.DirDown, maze.DirLeft}
	rng.Shuffle(len(dirs), func(i, j int) {
		dirs[i], dirs[j] = dirs[j], dirs[i]
	})

	head := s.Head()
	for _, d := range dirs {
		p := maze.Move(head, d)
		if s.IsValidPosition(p, g) {
			return p, true
		}
	}

	return maze.TilePos{}, false
}
