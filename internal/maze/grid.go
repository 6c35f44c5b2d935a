package maze

import (
	"fmt"
	"math/rand"
)

// Grid holds one level's tile matrix plus the snake spawn point and the
// current food location. It is constructed once at load time and mutated
// in place as the simulation runs.
type Grid struct {
	tiles   [][]TileType
	rows    int
	cols    int
	spawn   TilePos
	food    TilePos
	hasFood bool
}

// NewGrid builds a grid from raw maze rows. Recognized characters:
// ' ' floor, '#' wall, '.' invisible wall, '&' snake spawn (occupied by
// the head from the start).
// Anything else is treated as floor. Rows shorter than cols are padded
// with floor so the matrix is always rectangular. Exactly one spawn
// marker must be present; the caller (the level loader) filters mazes
// that violate that, but the constructor re-checks to fail loudly on
// programming errors.
//
// One food pellet is placed immediately after construction, using rng
// to pick uniformly among the empty cells.
func NewGrid(rows []string, cols int, rng *rand.Rand) (*Grid, error) {
	if len(rows) == 0 || cols <= 0 {
		return nil, fmt.Errorf("maze: grid must have at least one row and one column")
	}

	g := &Grid{
		rows:  len(rows),
		cols:  cols,
		tiles: make([][]TileType, len(rows)),
	}

	spawns := 0
	for r, line := range rows {
		g.tiles[r] = make([]TileType, cols)
		for c, ch := range line {
			if c >= cols {
				break
			}
			switch ch {
			case '#':
				g.tiles[r][c] = Wall
			case '.':
				g.tiles[r][c] = InvisibleWall
			case '&':
				// Marked occupied right away so the initial food
				// placement can never land under the snake's head.
				g.spawn = TilePos{Row: r, Col: c}
				g.tiles[r][c] = SnakeHead
				spawns++
			default:
				g.tiles[r][c] = Empty
			}
		}
	}

	if spawns != 1 {
		return nil, fmt.Errorf("maze: expected exactly one spawn marker, found %d", spawns)
	}

	g.PlaceFood(rng)
	return g, nil
}

// Rows returns the number of rows in the maze.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns in the maze.
func (g *Grid) Cols() int { return g.cols }

// Spawn returns the snake's starting position for this level.
func (g *Grid) Spawn() TilePos { return g.spawn }

// Food returns the current food location. ok is false when no food is
// placed, which only happens on a maze with zero empty cells.
func (g *Grid) Food() (pos TilePos, ok bool) {
	return g.food, g.hasFood
}

// InBounds reports whether p lies inside the maze rectangle.
func (g *Grid) InBounds(p TilePos) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// TileAt returns the tile at p. Out-of-bounds positions are a contract
// violation and panic via the slice index; callers that may hold an
// arbitrary position must go through IsCrash instead.
func (g *Grid) TileAt(p TilePos) TileType {
	return g.tiles[p.Row][p.Col]
}

// SetTile overwrites the tile at p.
func (g *Grid) SetTile(p TilePos, t TileType) {
	g.tiles[p.Row][p.Col] = t
}

// IsCrash reports whether moving onto p kills the snake. It is true for
// any out-of-bounds position and for any tile other than floor or food.
// This predicate is the single collision authority: both the pathfinder
// and the move applier route through it so the two can never disagree.
func (g *Grid) IsCrash(p TilePos) bool {
	if !g.InBounds(p) {
		return true
	}
	return !g.tiles[p.Row][p.Col].walkable()
}

// EmptyCells returns every floor tile, scanned row-major.
func (g *Grid) EmptyCells() []TilePos {
	var cells []TilePos
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.tiles[r][c] == Empty {
				cells = append(cells, TilePos{Row: r, Col: c})
			}
		}
	}
	return cells
}

// PlaceFood puts the food pellet on a uniformly random empty cell.
// With no empty cell anywhere the food location is left unchanged.
func (g *Grid) PlaceFood(rng *rand.Rand) {
	cells := g.EmptyCells()
	if len(cells) == 0 {
		return
	}

	g.food = cells[rng.Intn(len(cells))]
	g.hasFood = true
	g.tiles[g.food.Row][g.food.Col] = Food
}

// ClearSnake resets every snake tile back to floor. Used when the snake
// respawns after a crash and when a new level starts.
func (g *Grid) ClearSnake() {
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.tiles[r][c] == SnakeHead || g.tiles[r][c] == SnakeBody {
				g.tiles[r][c] = Empty
			}
		}
	}
}
