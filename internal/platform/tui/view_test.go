package tui

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/pmelo/snaze/internal/core"
	"github.com/pmelo/snaze/internal/maze"
	"github.com/pmelo/snaze/internal/sim"
)

// newTestSim builds a simulation over a single maze and walks it to the
// start screen.
func newTestSim(t *testing.T, rows []string, cols int, cfg sim.Config) *sim.Simulation {
	t.Helper()
	rng := rand.New(rand.NewSource(1))
	g, err := maze.NewGrid(rows, cols, rng)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	s, err := sim.New([]*maze.Grid{g}, cfg, rng)
	if err != nil {
		t.Fatalf("sim.New failed: %v", err)
	}
	s.Tick() // start -> welcome
	s.Tick() // welcome -> start_screen
	return s
}

func TestDrawStartScreenGlyphs(t *testing.T) {
	s := newTestSim(t, []string{"#& "}, 3, sim.DefaultConfig())

	sc := core.NewScreen(40, 12)
	Draw(sc, s)

	if got := sc.GetCell(0, hudRows).Rune; got != glyphWall {
		t.Errorf("Expected wall glyph at (0,%d), got %q", hudRows, got)
	}
	if got := sc.GetCell(1, hudRows).Rune; got != glyphSpawn {
		t.Errorf("Expected spawn glyph before the run starts, got %q", got)
	}
	if got := sc.GetCell(2, hudRows).Rune; got != glyphFood {
		t.Errorf("Expected food glyph at (2,%d), got %q", hudRows, got)
	}

	prompt := sc.Row(hudRows + s.Grid().Rows() + 1)
	if !strings.Contains(prompt, "Press <ENTER>") {
		t.Errorf("Expected a start prompt, got %q", prompt)
	}
}

func TestDrawRunningHead(t *testing.T) {
	s := newTestSim(t, []string{"#& "}, 3, sim.DefaultConfig())
	s.SubmitConfirmation()
	s.Tick() // start_screen -> snake_thinking

	sc := core.NewScreen(40, 12)
	Draw(sc, s)

	if got := sc.GetCell(1, hudRows).Rune; got != glyphHead {
		t.Errorf("Expected head glyph once the run started, got %q", got)
	}
}

func TestDrawCrashSkull(t *testing.T) {
	// Fully walled in with one life: the first thinking tick ends the run.
	s := newTestSim(t, []string{"###", "#&#", "###"}, 3, sim.Config{Lives: 1, FoodTarget: 1})
	s.SubmitConfirmation()
	s.Tick() // -> snake_thinking
	s.Tick() // trapped on the last life -> game_over

	if s.CurrentState() != sim.StateGameOver {
		t.Fatalf("Expected game_over, got %v", s.CurrentState())
	}

	sc := core.NewScreen(40, 12)
	Draw(sc, s)

	if got := sc.GetCell(1, hudRows+1).Rune; got != glyphCrash {
		t.Errorf("Expected crash glyph on the dead head, got %q", got)
	}
	if !strings.Contains(sc.String(), "GAME OVER") {
		t.Error("Expected a game over message")
	}
}

func TestDrawHUDHearts(t *testing.T) {
	s := newTestSim(t, []string{"& "}, 2, sim.Config{Lives: 3, FoodTarget: 1})

	sc := core.NewScreen(40, 12)
	Draw(sc, s)

	hud := sc.Row(0)
	if !strings.Contains(hud, strings.Repeat(string(heartFull), 3)) {
		t.Errorf("Expected three full hearts, got %q", hud)
	}
	if !strings.Contains(sc.Row(1), "Food eaten: 0 of 1") {
		t.Errorf("Expected the food progress line, got %q", sc.Row(1))
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	// Default-colored cells pass through without escape sequences.
	sc := core.NewScreen(5, 2)
	sc.DrawText(0, 0, "abcde", core.ColorDefault)
	sc.DrawText(0, 1, "fghij", core.ColorDefault)

	if got := RenderScreen(sc); got != sc.String() {
		t.Errorf("RenderScreen() = %q, expected plain %q", got, sc.String())
	}
}
