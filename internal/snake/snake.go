// Package snake owns the snake's body and its movement planning: a
// breadth-first shortest-path search toward the food and a randomized
// single-step fallback for when no path exists.
package snake

import (
	"github.com/pmelo/snaze/internal/maze"
)

// Snake is an ordered sequence of positions, head first. Length is at
// least 1 while the snake is alive. The snake never retains a grid
// reference; every operation takes the grid it should act on.
type Snake struct {
	body []maze.TilePos
}

// New returns an empty snake. Call Reset before using it.
func New() *Snake {
	return &Snake{}
}

// Reset places the snake as a single head segment on the grid's spawn
// point and marks that tile on the grid.
func (s *Snake) Reset(g *maze.Grid) {
	s.body = s.body[:0]
	spawn := g.Spawn()
	s.body = append(s.body, spawn)
	g.SetTile(spawn, maze.SnakeHead)
}

// Head returns the position of the snake's head.
func (s *Snake) Head() maze.TilePos {
	return s.body[0]
}

// Len returns the number of body segments, head included.
func (s *Snake) Len() int {
	return len(s.body)
}

// Body returns a copy of the body, head first.
func (s *Snake) Body() []maze.TilePos {
	out := make([]maze.TilePos, len(s.body))
	copy(out, s.body)
	return out
}

// Occupies reports whether any segment, head included, sits on p.
func (s *Snake) Occupies(p maze.TilePos) bool {
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}

// IsValidPosition reports whether the snake may step onto p: the tile
// must not be a wall and must not coincide with any current body
// segment. Out-of-bounds positions are always invalid.
func (s *Snake) IsValidPosition(p maze.TilePos, g *maze.Grid) bool {
	if !g.InBounds(p) {
		return false
	}
	if g.TileAt(p) == maze.Wall {
		return false
	}
	return !s.Occupies(p)
}

// Advance moves the head onto next, which the caller has already
// cleared through the grid's crash test. When grow is true (next held
// food) the tail stays put and the body gains a segment; otherwise the
// tail segment is popped and its tile reset to floor. The tile behind
// the head is remarked as body.
func (s *Snake) Advance(g *maze.Grid, next maze.TilePos, grow bool) {
	g.SetTile(next, maze.SnakeHead)
	s.body = append([]maze.TilePos{next}, s.body...)

	if !grow {
		tail := s.body[len(s.body)-1]
		s.body = s.body[:len(s.body)-1]
		g.SetTile(tail, maze.Empty)
	}

	if len(s.body) > 1 {
		g.SetTile(s.body[1], maze.SnakeBody)
	}
}
