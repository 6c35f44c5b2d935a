// Package sim implements the snaze simulation controller: a turn-driven
// state machine that sequences game phases and delegates collision and
// food outcomes to the maze and snake packages.
package sim

import (
	"fmt"
	"math/rand"

	"github.com/pmelo/snaze/internal/maze"
	"github.com/pmelo/snaze/internal/snake"
)

// ScoreIncrement is the base value of one food pellet. The n-th pellet
// of a level is worth ScoreIncrement times n, so later pickups within a
// level pay progressively more.
const ScoreIncrement = 20

// AIMode selects how the snake picks its next move.
type AIMode uint8

const (
	AIPathfind AIMode = iota // BFS shortest path, random fallback
	AIRandom                 // Random valid step only
)

// ParseAIMode maps a CLI/config string to an AIMode.
func ParseAIMode(s string) (AIMode, error) {
	switch s {
	case "", "pathfind":
		return AIPathfind, nil
	case "random":
		return AIRandom, nil
	default:
		return AIPathfind, fmt.Errorf("sim: unknown ai mode %q (want pathfind or random)", s)
	}
}

// String returns the config spelling of the mode.
func (m AIMode) String() string {
	if m == AIRandom {
		return "random"
	}
	return "pathfind"
}

// Config carries the tunables the simulation consumes. Tick pacing is
// the platform layer's concern and deliberately absent here.
type Config struct {
	Lives      int    // Lives for the whole run
	FoodTarget int    // Pellets to eat per level
	AI         AIMode // Move selection strategy
	Seed       int64  // RNG seed; 0 means the caller picked a time-based one
}

// DefaultConfig returns the classic snaze defaults.
func DefaultConfig() Config {
	return Config{
		Lives:      5,
		FoodTarget: 10,
		AI:         AIPathfind,
	}
}

// Simulation owns the ordered level list, the snake, and all run
// counters, and drives the per-tick state machine. All state is
// mutated by the single goroutine calling Tick; no locking.
type Simulation struct {
	levels     []*maze.Grid
	levelIndex int
	snake      *snake.Snake
	state      State
	rng        *rand.Rand

	score      int
	lives      int
	livesTotal int
	foodEaten  int
	foodTotal  int
	foodTarget int
	ai         AIMode

	nextPos maze.TilePos // Move planned by the last thinking phase
	confirm bool         // Pending confirmation, consumed by one tick
}

// New builds a simulation over the given level list. The levels must
// come from the loader (already validated and food-seeded); the rng is
// the single process-wide generator shared with the loader so that a
// fixed seed reproduces an entire run.
func New(levels []*maze.Grid, cfg Config, rng *rand.Rand) (*Simulation, error) {
	if len(levels) == 0 {
		return nil, fmt.Errorf("sim: at least one level is required")
	}
	if cfg.Lives <= 0 || cfg.FoodTarget <= 0 {
		return nil, fmt.Errorf("sim: lives and food target must be positive")
	}

	s := &Simulation{
		levels:     levels,
		snake:      snake.New(),
		state:      StateStart,
		rng:        rng,
		lives:      cfg.Lives,
		livesTotal: cfg.Lives,
		foodTarget: cfg.FoodTarget,
		ai:         cfg.AI,
	}
	s.snake.Reset(s.grid())
	return s, nil
}

// grid returns the active level's grid.
func (s *Simulation) grid() *maze.Grid {
	return s.levels[s.levelIndex]
}

// SubmitConfirmation signals that a blocking-input state may advance.
// The platform calls this when the user presses Enter; the flag is
// consumed by the next tick of a state that waits on it and is ignored
// by all others.
func (s *Simulation) SubmitConfirmation() {
	s.confirm = true
}

// takeConfirm consumes a pending confirmation.
func (s *Simulation) takeConfirm() bool {
	if !s.confirm {
		return false
	}
	s.confirm = false
	return true
}

// Done reports whether the simulation reached a terminal state.
func (s *Simulation) Done() bool {
	return s.state.Terminal()
}

// Tick advances the state machine by one turn. Each state has its own
// explicit handler; there is deliberately no shared fallthrough between
// thinking and running.
func (s *Simulation) Tick() {
	switch s.state {
	case StateStart:
		s.state = StateWelcome
	case StateWelcome:
		s.state = StateStartScreen
	case StateStartScreen:
		if s.takeConfirm() {
			s.state = StateSnakeThinking
		}
	case StateSnakeThinking:
		s.think()
	case StateGameRunning:
		s.applyMove()
	case StateSnakeCrashed:
		if s.takeConfirm() {
			s.leaveCrash()
		}
	case StateLevelUp:
		if s.takeConfirm() {
			s.advanceLevel()
		}
	case StateGameWon, StateGameOver:
		// Terminal; nothing to do.
	}
}

// think asks the snake for its next position. The pathfinder only
// recommends a move; all food and collision bookkeeping happens later
// in applyMove. A snake with no valid move at all loses a life exactly
// as if it had crashed.
func (s *Simulation) think() {
	g := s.grid()

	var next maze.TilePos
	var ok bool
	if s.ai == AIRandom {
		next, ok = s.snake.RandomStep(g, s.rng)
	} else {
		next, ok = s.snake.FindPath(g)
		if !ok {
			next, ok = s.snake.RandomStep(g, s.rng)
		}
	}

	if !ok {
		s.loseLife()
		return
	}

	s.nextPos = next
	s.state = StateGameRunning
}

// applyMove executes the planned move against the grid. The grid's
// crash test is the only collision authority consulted here.
func (s *Simulation) applyMove() {
	g := s.grid()

	if g.IsCrash(s.nextPos) {
		s.loseLife()
		return
	}

	ate := g.TileAt(s.nextPos) == maze.Food
	s.snake.Advance(g, s.nextPos, ate)

	if !ate {
		s.state = StateSnakeThinking
		return
	}

	g.PlaceFood(s.rng)
	s.foodEaten++
	s.foodTotal++
	s.score += ScoreIncrement * s.foodEaten

	if s.foodEaten < s.foodTarget {
		s.state = StateSnakeThinking
		return
	}

	// Level cleared. With no further level there is nothing to confirm
	// into, so the run is won on the spot.
	if s.levelIndex+1 >= len(s.levels) {
		s.state = StateGameWon
		return
	}
	s.state = StateLevelUp
}

// loseLife decrements lives after an invalid move. The snake is not
// respawned here; that happens when leaving StateSnakeCrashed, so the
// crash site stays on the grid for rendering.
func (s *Simulation) loseLife() {
	s.lives--
	if s.lives <= 0 {
		s.lives = 0
		s.state = StateGameOver
		return
	}
	s.state = StateSnakeCrashed
}

// leaveCrash respawns the snake at the level's spawn point and resumes
// thinking. The lives check mirrors loseLife defensively; a crash with
// zero lives left never enters StateSnakeCrashed in the first place.
func (s *Simulation) leaveCrash() {
	s.respawn()
	if s.lives == 0 {
		s.state = StateGameOver
		return
	}
	s.state = StateSnakeThinking
}

// respawn clears the snake tiles off the grid and resets the body onto
// the spawn point.
func (s *Simulation) respawn() {
	g := s.grid()
	g.ClearSnake()
	s.snake.Reset(g)
}

// advanceLevel loads the next grid, zeroes the per-level food counter,
// and plants the snake on the new spawn. Callers guarantee a next level
// exists: applyMove routes the last level straight to StateGameWon.
func (s *Simulation) advanceLevel() {
	s.levelIndex++
	s.foodEaten = 0
	s.respawn()
	s.state = StateSnakeThinking
}

// --- Read-only accessors for the render layer ---

// CurrentState returns the active state.
func (s *Simulation) CurrentState() State { return s.state }

// Score returns the accumulated score for the run.
func (s *Simulation) Score() int { return s.score }

// Lives returns the remaining lives.
func (s *Simulation) Lives() int { return s.lives }

// TotalLives returns the lives the run started with.
func (s *Simulation) TotalLives() int { return s.livesTotal }

// FoodEaten returns pellets eaten on the current level.
func (s *Simulation) FoodEaten() int { return s.foodEaten }

// FoodTarget returns pellets needed to clear a level.
func (s *Simulation) FoodTarget() int { return s.foodTarget }

// TotalFoodEaten returns pellets eaten across the whole run.
func (s *Simulation) TotalFoodEaten() int { return s.foodTotal }

// LevelsCleared returns how many levels were fully completed.
func (s *Simulation) LevelsCleared() int {
	if s.state == StateGameWon {
		return len(s.levels)
	}
	return s.levelIndex
}

// AI returns the active move selection strategy.
func (s *Simulation) AI() AIMode { return s.ai }

// Level returns the zero-based index of the active level.
func (s *Simulation) Level() int { return s.levelIndex }

// LevelCount returns how many levels were loaded.
func (s *Simulation) LevelCount() int { return len(s.levels) }

// Grid exposes the active grid for rendering. The render layer must
// treat it as read-only.
func (s *Simulation) Grid() *maze.Grid { return s.grid() }

// SnakeLen returns the current body length.
func (s *Simulation) SnakeLen() int { return s.snake.Len() }

// Head returns the snake's head position.
func (s *Simulation) Head() maze.TilePos { return s.snake.Head() }
