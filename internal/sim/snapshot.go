package sim

import "github.com/pmelo/snaze/internal/maze"

// Snapshot captures the observable simulation state for rendering,
// determinism tests, and replay.
type Snapshot struct {
	State      State
	Score      int
	Lives      int
	TotalLives int
	FoodEaten  int
	FoodTarget int
	Level      int // 1-indexed for display
	LevelCount int
	SnakeLen   int
	Head       maze.TilePos
	Food       maze.TilePos
	HasFood    bool
	Rows       int
	Cols       int
}

// Snapshot returns the current snapshot.
func (s *Simulation) Snapshot() Snapshot {
	g := s.grid()
	food, hasFood := g.Food()
	return Snapshot{
		State:      s.state,
		Score:      s.score,
		Lives:      s.lives,
		TotalLives: s.livesTotal,
		FoodEaten:  s.foodEaten,
		FoodTarget: s.foodTarget,
		Level:      s.levelIndex + 1,
		LevelCount: len(s.levels),
		SnakeLen:   s.snake.Len(),
		Head:       s.snake.Head(),
		Food:       food,
		HasFood:    hasFood,
		Rows:       g.Rows(),
		Cols:       g.Cols(),
	}
}
