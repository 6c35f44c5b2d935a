// Package maze provides the grid and tile model for the snaze simulation.
// It is UI-agnostic and owns all collision semantics.
package maze

import "fmt"

// TileType identifies what occupies a single cell of the maze.
type TileType uint8

const (
	Empty         TileType = iota // Walkable floor
	Wall                          // Visible, impassable
	InvisibleWall                 // Impassable but rendered blank
	Food                          // The current food pellet
	SnakeHead
	SnakeBody
)

// String returns a human-readable name for the tile type.
func (t TileType) String() string {
	switch t {
	case Empty:
		return "empty"
	case Wall:
		return "wall"
	case InvisibleWall:
		return "invisible_wall"
	case Food:
		return "food"
	case SnakeHead:
		return "snake_head"
	case SnakeBody:
		return "snake_body"
	default:
		return "unknown"
	}
}

// walkable reports whether the snake may enter this tile.
// Only the grid's crash test should need this.
func (t TileType) walkable() bool {
	return t == Empty || t == Food
}

// TilePos is a (row, col) location inside a maze.
// Coordinates are signed so that stepping off the top or left edge
// produces a plainly negative, out-of-bounds position.
type TilePos struct {
	Row int
	Col int
}

// String returns a string representation of the position.
func (p TilePos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Dir is one of the four orthogonal movement directions.
// The declaration order (up, right, down, left) is load-bearing: the
// pathfinder expands neighbors in exactly this order, which makes its
// tie-breaking deterministic.
type Dir uint8

const (
	DirUp Dir = iota
	DirRight
	DirDown
	DirLeft
)

// Directions lists all four directions in expansion order.
var Directions = [4]Dir{DirUp, DirRight, DirDown, DirLeft}

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "unknown"
	}
}

// Delta returns the (row, col) offset for one step in this direction.
// Up decreases the row, down increases it.
func (d Dir) Delta() (dr, dc int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirRight:
		return 0, 1
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	default:
		return 0, 0
	}
}

// Move returns the position one step from p in direction d.
// It performs no bounds checking; callers test the result against the grid.
func Move(p TilePos, d Dir) TilePos {
	dr, dc := d.Delta()
	return TilePos{Row: p.Row + dr, Col: p.Col + dc}
}
