package snake

import (
	"math/rand"
	"testing"

	"github.com/pmelo/snaze/internal/maze"
)

// mustGrid builds a grid or fails the test.
func mustGrid(t *testing.T, rows []string, cols int) *maze.Grid {
	t.Helper()
	g, err := maze.NewGrid(rows, cols, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	return g
}

// clearFood removes the food pellet so tests control tiles themselves.
func clearFood(g *maze.Grid) {
	if food, ok := g.Food(); ok {
		g.SetTile(food, maze.Empty)
	}
}

func TestResetPlacesHeadAtSpawn(t *testing.T) {
	g := mustGrid(t, []string{" & ", "   "}, 3)

	s := New()
	s.Reset(g)

	if s.Len() != 1 {
		t.Errorf("Expected length 1 after reset, got %d", s.Len())
	}
	if s.Head() != g.Spawn() {
		t.Errorf("Expected head at spawn %v, got %v", g.Spawn(), s.Head())
	}
	if g.TileAt(g.Spawn()) != maze.SnakeHead {
		t.Error("Spawn tile should be marked as the head")
	}
}

func TestAdvanceWithoutGrowth(t *testing.T) {
	g := mustGrid(t, []string{"&    "}, 5)
	clearFood(g)

	s := New()
	s.Reset(g)

	next := maze.TilePos{Row: 0, Col: 1}
	s.Advance(g, next, false)

	if s.Len() != 1 {
		t.Errorf("Expected length to stay 1, got %d", s.Len())
	}
	if s.Head() != next {
		t.Errorf("Expected head at %v, got %v", next, s.Head())
	}
	if g.TileAt(maze.TilePos{Row: 0, Col: 0}) != maze.Empty {
		t.Error("Vacated tail tile should be floor again")
	}
	if g.TileAt(next) != maze.SnakeHead {
		t.Error("New head tile should be marked")
	}
}

func TestAdvanceWithGrowth(t *testing.T) {
	g := mustGrid(t, []string{"&    "}, 5)
	clearFood(g)

	s := New()
	s.Reset(g)

	s.Advance(g, maze.TilePos{Row: 0, Col: 1}, true)
	s.Advance(g, maze.TilePos{Row: 0, Col: 2}, true)

	if s.Len() != 3 {
		t.Errorf("Expected length 3 after two growing moves, got %d", s.Len())
	}
	if s.Head() != (maze.TilePos{Row: 0, Col: 2}) {
		t.Errorf("Unexpected head position %v", s.Head())
	}
	if g.TileAt(maze.TilePos{Row: 0, Col: 1}) != maze.SnakeBody {
		t.Error("Tile behind the head should be marked as body")
	}
	if g.TileAt(maze.TilePos{Row: 0, Col: 0}) != maze.SnakeBody {
		t.Error("Tail tile should be marked as body")
	}

	body := s.Body()
	want := []maze.TilePos{
		{Row: 0, Col: 2},
		{Row: 0, Col: 1},
		{Row: 0, Col: 0},
	}
	for i := range want {
		if body[i] != want[i] {
			t.Errorf("Body[%d] = %v, want %v", i, body[i], want[i])
		}
	}
}

func TestIsValidPosition(t *testing.T) {
	g := mustGrid(t, []string{"&# ", "   "}, 3)

	s := New()
	s.Reset(g)

	if s.IsValidPosition(maze.TilePos{Row: 0, Col: 1}, g) {
		t.Error("Wall should be invalid")
	}
	if s.IsValidPosition(maze.TilePos{Row: -1, Col: 0}, g) {
		t.Error("Out-of-bounds should be invalid")
	}
	if s.IsValidPosition(s.Head(), g) {
		t.Error("Own body should be invalid")
	}
	if !s.IsValidPosition(maze.TilePos{Row: 1, Col: 0}, g) {
		t.Error("Open floor below the head should be valid")
	}

	food, ok := g.Food()
	if !ok {
		t.Fatal("Expected food on the grid")
	}
	if !s.IsValidPosition(food, g) {
		t.Error("The food tile should be a valid destination")
	}
}

func TestOccupies(t *testing.T) {
	g := mustGrid(t, []string{"&  "}, 3)
	clearFood(g)

	s := New()
	s.Reset(g)
	s.Advance(g, maze.TilePos{Row: 0, Col: 1}, true)

	if !s.Occupies(maze.TilePos{Row: 0, Col: 0}) {
		t.Error("Expected tail position to be occupied")
	}
	if !s.Occupies(maze.TilePos{Row: 0, Col: 1}) {
		t.Error("Expected head position to be occupied")
	}
	if s.Occupies(maze.TilePos{Row: 0, Col: 2}) {
		t.Error("Free cell should not be occupied")
	}
}
