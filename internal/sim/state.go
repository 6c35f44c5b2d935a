package sim

// State is one phase of the simulation's turn-driven state machine.
// Exactly one state is active at a time; only the Simulation's own
// transition logic mutates it.
type State uint8

const (
	StateStart         State = iota // Sole initial state
	StateWelcome                    // Welcome banner shown once
	StateStartScreen                // Waiting for confirmation to begin
	StateSnakeThinking              // Pathfinder computes the next move
	StateGameRunning                // The computed move is applied
	StateSnakeCrashed               // Life lost, waiting for confirmation
	StateLevelUp                    // Level cleared, waiting for confirmation
	StateGameWon                    // Terminal: all levels cleared
	StateGameOver                   // Terminal: out of lives
)

// String returns a stable identifier for the state.
func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateWelcome:
		return "welcome"
	case StateStartScreen:
		return "start_screen"
	case StateSnakeThinking:
		return "snake_thinking"
	case StateGameRunning:
		return "game_running"
	case StateSnakeCrashed:
		return "snake_crashed"
	case StateLevelUp:
		return "level_up"
	case StateGameWon:
		return "game_won"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Terminal reports whether the simulation has ended in this state.
func (s State) Terminal() bool {
	return s == StateGameWon || s == StateGameOver
}
