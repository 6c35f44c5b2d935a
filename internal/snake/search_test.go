package snake

import (
	"math/rand"
	"testing"

	"github.com/pmelo/snaze/internal/maze"
)

// placeFoodAt pins the food pellet to a known cell for deterministic
// search assertions.
func placeFoodAt(g *maze.Grid, p maze.TilePos) {
	clearFood(g)
	g.SetTile(p, maze.Food)
}

func TestFindPathStraightCorridor(t *testing.T) {
	g := mustGrid(t, []string{"&    "}, 5)
	placeFoodAt(g, maze.TilePos{Row: 0, Col: 3})

	s := New()
	s.Reset(g)

	next, ok := s.FindPath(g)
	if !ok {
		t.Fatal("Expected a path to the food")
	}
	if next != (maze.TilePos{Row: 0, Col: 1}) {
		t.Errorf("Expected first step (0,1), got %v", next)
	}

	// Walking the route step by step covers the Manhattan distance.
	target := maze.TilePos{Row: 0, Col: 3}
	steps := 0
	for s.Head() != target {
		next, ok := s.FindPath(g)
		if !ok {
			t.Fatalf("Path lost at %v", s.Head())
		}
		s.Advance(g, next, false)
		steps++
		if steps > 10 {
			t.Fatal("Route should be 3 steps")
		}
	}
	if steps != 3 {
		t.Errorf("Expected 3 steps to the food, got %d", steps)
	}
}

func TestFindPathAdjacentFood(t *testing.T) {
	g := mustGrid(t, []string{"&  "}, 3)
	placeFoodAt(g, maze.TilePos{Row: 0, Col: 1})

	s := New()
	s.Reset(g)

	next, ok := s.FindPath(g)
	if !ok {
		t.Fatal("Expected a path to adjacent food")
	}
	if next != (maze.TilePos{Row: 0, Col: 1}) {
		t.Errorf("Expected the food cell itself as the move, got %v", next)
	}
}

func TestFindPathDeterministicTieBreak(t *testing.T) {
	// Head in the center, food at the top-left corner. Up-then-left and
	// left-then-up are both two steps; the fixed expansion order
	// (up, right, down, left) must pick up first.
	g := mustGrid(t, []string{"   ", " & ", "   "}, 3)
	placeFoodAt(g, maze.TilePos{Row: 0, Col: 0})

	s := New()
	s.Reset(g)

	next, ok := s.FindPath(g)
	if !ok {
		t.Fatal("Expected a path to the corner food")
	}
	if next != (maze.TilePos{Row: 0, Col: 1}) {
		t.Errorf("Expected the up step (0,1), got %v", next)
	}
}

func TestFindPathAroundWall(t *testing.T) {
	g := mustGrid(t, []string{
		"&#  ",
		" #  ",
		"    ",
	}, 4)
	placeFoodAt(g, maze.TilePos{Row: 0, Col: 2})

	s := New()
	s.Reset(g)

	// Only route is down the left side and around the wall: 6 steps.
	target := maze.TilePos{Row: 0, Col: 2}
	steps := 0
	for s.Head() != target {
		next, ok := s.FindPath(g)
		if !ok {
			t.Fatalf("Path lost after %d steps at %v", steps, s.Head())
		}
		if g.IsCrash(next) {
			t.Fatalf("Pathfinder suggested a crash at %v", next)
		}
		s.Advance(g, next, false)
		steps++
		if steps > 20 {
			t.Fatal("Snake is wandering; the path should be 6 steps")
		}
	}
	if steps != 6 {
		t.Errorf("Expected the shortest route of 6 steps, got %d", steps)
	}
}

func TestFindPathUnreachable(t *testing.T) {
	g := mustGrid(t, []string{"&# "}, 3)

	s := New()
	s.Reset(g)

	// Food sits behind the wall; there is no route at all.
	if _, ok := s.FindPath(g); ok {
		t.Error("Expected no path to unreachable food")
	}
}

func TestRandomStepTakesOnlyOpening(t *testing.T) {
	// A dead-end cell with a single open neighbor.
	g := mustGrid(t, []string{
		"###",
		"#& ",
		"###",
	}, 3)

	s := New()
	s.Reset(g)

	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		next, ok := s.RandomStep(g, rng)
		if !ok {
			t.Fatalf("Seed %d: expected a valid step", seed)
		}
		if next != (maze.TilePos{Row: 1, Col: 2}) {
			t.Errorf("Seed %d: expected the only opening (1,2), got %v", seed, next)
		}
	}
}

func TestRandomStepTrapped(t *testing.T) {
	g := mustGrid(t, []string{"#", "&"}, 1)

	s := New()
	s.Reset(g)

	if _, ok := s.RandomStep(g, rand.New(rand.NewSource(7))); ok {
		t.Error("Expected no valid step for a fully trapped snake")
	}
}
