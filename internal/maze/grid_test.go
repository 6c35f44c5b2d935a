package maze

import (
	"math/rand"
	"testing"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func TestNewGridCharMapping(t *testing.T) {
	g, err := NewGrid([]string{"#.&", "   "}, 3, testRNG())
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}

	if got := g.TileAt(TilePos{Row: 0, Col: 0}); got != Wall {
		t.Errorf("Expected wall at (0,0), got %v", got)
	}
	if got := g.TileAt(TilePos{Row: 0, Col: 1}); got != InvisibleWall {
		t.Errorf("Expected invisible wall at (0,1), got %v", got)
	}
	if got := g.Spawn(); got != (TilePos{Row: 0, Col: 2}) {
		t.Errorf("Expected spawn at (0,2), got %v", got)
	}
	if got := g.TileAt(g.Spawn()); got != SnakeHead {
		t.Errorf("Spawn tile should start occupied, got %v", got)
	}

	food, ok := g.Food()
	if !ok {
		t.Fatal("Expected food to be placed on construction")
	}
	if g.TileAt(food) != Food {
		t.Errorf("Food position %v does not hold a food tile", food)
	}
	if food == g.Spawn() {
		t.Error("Food must never be placed on the spawn tile")
	}
}

func TestNewGridSpawnCount(t *testing.T) {
	if _, err := NewGrid([]string{"   "}, 3, testRNG()); err == nil {
		t.Error("Expected error for a maze with no spawn marker")
	}
	if _, err := NewGrid([]string{"&&"}, 2, testRNG()); err == nil {
		t.Error("Expected error for a maze with two spawn markers")
	}
}

func TestNewGridPadsShortRows(t *testing.T) {
	g, err := NewGrid([]string{"&", "##"}, 2, testRNG())
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}

	// Row 0 is shorter than the declared width; the missing cell is floor.
	got := g.TileAt(TilePos{Row: 0, Col: 1})
	if got != Empty && got != Food {
		t.Errorf("Expected padded cell to be walkable floor, got %v", got)
	}
}

func TestIsCrash(t *testing.T) {
	g, err := NewGrid([]string{"&# ", " . "}, 3, testRNG())
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}

	outOfBounds := []TilePos{
		{Row: -1, Col: 0},
		{Row: 0, Col: -1},
		{Row: 2, Col: 0},
		{Row: 0, Col: 3},
		{Row: -5, Col: -5},
	}
	for _, p := range outOfBounds {
		if !g.IsCrash(p) {
			t.Errorf("Expected crash for out-of-bounds %v", p)
		}
	}

	if !g.IsCrash(TilePos{Row: 0, Col: 1}) {
		t.Error("Expected crash on a wall")
	}
	if !g.IsCrash(TilePos{Row: 1, Col: 1}) {
		t.Error("Expected crash on an invisible wall")
	}

	food, _ := g.Food()
	if g.IsCrash(food) {
		t.Error("Food tile must be enterable")
	}
}

func TestPlaceFoodSingleCandidate(t *testing.T) {
	// Only (0,2) is floor, so food has exactly one place to go.
	g, err := NewGrid([]string{"&# "}, 3, testRNG())
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}

	food, ok := g.Food()
	if !ok {
		t.Fatal("Expected food to be placed")
	}
	if food != (TilePos{Row: 0, Col: 2}) {
		t.Errorf("Expected food at the only floor cell (0,2), got %v", food)
	}
}

func TestPlaceFoodNoCandidates(t *testing.T) {
	g, err := NewGrid([]string{"&#"}, 2, testRNG())
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}

	if _, ok := g.Food(); ok {
		t.Error("Expected no food on a maze without floor cells")
	}
}

func TestClearSnake(t *testing.T) {
	g, err := NewGrid([]string{"&  ", "#  "}, 3, testRNG())
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}

	// Pick a floor cell that is not the food pellet for the body segment.
	food, _ := g.Food()
	body := TilePos{Row: 0, Col: 1}
	if body == food {
		body = TilePos{Row: 0, Col: 2}
	}

	g.SetTile(body, SnakeBody)
	g.ClearSnake()

	if got := g.TileAt(TilePos{Row: 0, Col: 0}); got != Empty {
		t.Errorf("Expected cleared head tile to be floor, got %v", got)
	}
	if got := g.TileAt(body); got != Empty {
		t.Errorf("Expected cleared body tile to be floor, got %v", got)
	}
	if got := g.TileAt(TilePos{Row: 1, Col: 0}); got != Wall {
		t.Errorf("ClearSnake must not touch walls, got %v", got)
	}

	// Food survives a snake clear.
	food, ok := g.Food()
	if !ok || g.TileAt(food) != Food {
		t.Error("ClearSnake must not remove the food pellet")
	}
}

func TestMoveAndDelta(t *testing.T) {
	p := TilePos{Row: 5, Col: 5}

	cases := []struct {
		dir  Dir
		want TilePos
	}{
		{DirUp, TilePos{Row: 4, Col: 5}},
		{DirRight, TilePos{Row: 5, Col: 6}},
		{DirDown, TilePos{Row: 6, Col: 5}},
		{DirLeft, TilePos{Row: 5, Col: 4}},
	}
	for _, c := range cases {
		if got := Move(p, c.dir); got != c.want {
			t.Errorf("Move(%v, %v) = %v, want %v", p, c.dir, got, c.want)
		}
	}
}
