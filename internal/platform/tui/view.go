package tui

import (
	"fmt"
	"strings"

	"github.com/pmelo/snaze/internal/core"
	"github.com/pmelo/snaze/internal/maze"
	"github.com/pmelo/snaze/internal/sim"
)

// Glyphs for board elements. Invisible walls block movement but are
// drawn as blanks, same as the classic game.
const (
	glyphWall  = '█'
	glyphFood  = '¤'
	glyphHead  = '◎'
	glyphBody  = '●'
	glyphCrash = '☠'
	glyphSpawn = '๑'

	heartFull  = '♥'
	heartEmpty = '♡'
)

// hudRows is the number of rows reserved above the board.
const hudRows = 3

// Draw renders the simulation's current state into the screen buffer.
// The layout is a two-line HUD, a separator, and the board; blocking
// states add a prompt line under the board.
func Draw(sc *core.Screen, s *sim.Simulation) {
	sc.Clear()

	switch s.CurrentState() {
	case sim.StateStart, sim.StateWelcome:
		drawWelcome(sc, s)
	case sim.StateGameWon:
		drawHUD(sc, s)
		drawBoard(sc, s)
		drawPrompt(sc, s, "CONGRATULATIONS, the snake cleared every maze!", "Press q to exit.")
	case sim.StateGameOver:
		drawHUD(sc, s)
		drawBoard(sc, s)
		drawPrompt(sc, s, "The snake is out of lives. GAME OVER.", "Press q to exit.")
	case sim.StateStartScreen:
		drawHUD(sc, s)
		drawBoard(sc, s)
		drawPrompt(sc, s, "Press <ENTER> to start the simulation.", "")
	case sim.StateSnakeCrashed:
		drawHUD(sc, s)
		drawBoard(sc, s)
		drawPrompt(sc, s, "The snake crashed!", "Press <ENTER> to try again.")
	case sim.StateLevelUp:
		drawHUD(sc, s)
		drawBoard(sc, s)
		drawPrompt(sc, s, "Level cleared!", "Press <ENTER> to enter the next maze.")
	default: // thinking / running
		drawHUD(sc, s)
		drawBoard(sc, s)
	}
}

// drawWelcome renders the greeting shown before the start screen.
func drawWelcome(sc *core.Screen, s *sim.Simulation) {
	sc.DrawTextCentered(1, "---> Welcome to the classic Snaze simulation <---", core.ColorBrightYellow)
	sc.DrawTextCentered(2, "The snake plays itself; you just watch.", core.ColorGray)
	line := fmt.Sprintf("Levels: %d | Lives: %d | Food per level: %d",
		s.LevelCount(), s.TotalLives(), s.FoodTarget())
	sc.DrawTextCentered(4, line, core.ColorDefault)
}

// drawHUD renders lives, score, and progress above the board.
func drawHUD(sc *core.Screen, s *sim.Simulation) {
	var hearts strings.Builder
	for i := 0; i < s.TotalLives(); i++ {
		if i < s.Lives() {
			hearts.WriteRune(heartFull)
		} else {
			hearts.WriteRune(heartEmpty)
		}
	}

	sc.DrawText(0, 0, "Lives: ", core.ColorDefault)
	sc.DrawText(7, 0, hearts.String(), core.ColorBrightRed)

	status := fmt.Sprintf("Score: %d | Food eaten: %d of %d | Level: %d of %d",
		s.Score(), s.FoodEaten(), s.FoodTarget(), s.Level()+1, s.LevelCount())
	sc.DrawText(0, 1, status, core.ColorDefault)

	width := s.Grid().Cols()
	if width > sc.Width() {
		width = sc.Width()
	}
	sc.DrawHLine(0, 2, width, '─')
}

// drawBoard renders the maze grid below the HUD. The head glyph depends
// on state: a skull after a crash, a spawn marker while the run has not
// started yet.
func drawBoard(sc *core.Screen, s *sim.Simulation) {
	g := s.Grid()
	state := s.CurrentState()

	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			cell := tileCell(g.TileAt(maze.TilePos{Row: r, Col: c}), state)
			sc.SetCell(c, hudRows+r, cell)
		}
	}
}

// tileCell maps one tile to its glyph and color.
func tileCell(t maze.TileType, state sim.State) core.Cell {
	switch t {
	case maze.Wall:
		return core.Cell{Rune: glyphWall, Color: core.ColorBlue}
	case maze.InvisibleWall:
		return core.Cell{Rune: ' ', Color: core.ColorDefault}
	case maze.Food:
		return core.Cell{Rune: glyphFood, Color: core.ColorBrightYellow}
	case maze.SnakeHead:
		switch state {
		case sim.StateSnakeCrashed, sim.StateGameOver:
			return core.Cell{Rune: glyphCrash, Color: core.ColorBrightRed}
		case sim.StateStartScreen, sim.StateLevelUp:
			return core.Cell{Rune: glyphSpawn, Color: core.ColorBrightYellow}
		default:
			return core.Cell{Rune: glyphHead, Color: core.ColorBrightGreen}
		}
	case maze.SnakeBody:
		return core.Cell{Rune: glyphBody, Color: core.ColorGreen}
	default:
		return core.Cell{Rune: ' ', Color: core.ColorDefault}
	}
}

// drawPrompt writes up to two message lines under the board.
func drawPrompt(sc *core.Screen, s *sim.Simulation, first, second string) {
	y := hudRows + s.Grid().Rows() + 1
	sc.DrawText(0, y, first, core.ColorBrightYellow)
	if second != "" {
		sc.DrawText(0, y+1, second, core.ColorGray)
	}
}
