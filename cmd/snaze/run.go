package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pmelo/snaze/internal/config"
	"github.com/pmelo/snaze/internal/levels"
	"github.com/pmelo/snaze/internal/maze"
	"github.com/pmelo/snaze/internal/platform/tui"
	"github.com/pmelo/snaze/internal/sim"
	"github.com/pmelo/snaze/internal/storage"
)

var (
	flagConfig string
	flagLives  int
	flagFood   int
	flagAI     string
)

var runCmd = &cobra.Command{
	Use:   "run [level-file]",
	Short: "Watch a simulation run",
	Long: `Run the simulation on a level file, or on the built-in level set
when no file is given.

Controls:
  Enter/Space - Confirm (start, respawn, next level)
  Q/Ctrl+C    - Quit

AI options:
  pathfind - BFS shortest path to the food, random step as fallback
  random   - Random valid steps only

Examples:
  snaze run
  snaze run levels/maze.snaze
  snaze run --lives 3 --food 5 --ai random
  snaze run --seed 42              # Reproducible run
  snaze run --config ./snaze.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	runCmd.Flags().IntVar(&flagLives, "lives", 0, "Lives for the run (0 = from config, default 5)")
	runCmd.Flags().IntVar(&flagFood, "food", 0, "Food pellets per level (0 = from config, default 10)")
	runCmd.Flags().StringVar(&flagAI, "ai", "", "Snake AI: pathfind or random (default from config)")
}

func runRun(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// CLI flags override the config file.
	if flagFPS > 0 {
		cfg.FPS = flagFPS
	}
	if flagLives > 0 {
		cfg.Lives = flagLives
	}
	if flagFood > 0 {
		cfg.Food = flagFood
	}
	if flagAI != "" {
		cfg.AI = flagAI
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ai, err := sim.ParseAIMode(cfg.AI)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	grids, levelSet, err := loadLevelArg(args, rng)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	simulation, err := sim.New(grids, sim.Config{
		Lives:      cfg.Lives,
		FoodTarget: cfg.Food,
		AI:         ai,
		Seed:       seed,
	}, rng)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run history database: %v\n", err)
		// Continue without storage - the simulation still works
		store = nil
	}

	runErr := tui.Run(simulation, store, tui.Options{
		FPS:      cfg.FPS,
		ScreenW:  width,
		ScreenH:  height,
		LevelSet: levelSet,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running simulation: %v\n", runErr)
		os.Exit(1)
	}
}

// loadLevelArg loads the level file named on the command line, falling
// back to the embedded set when none was given.
func loadLevelArg(args []string, rng *rand.Rand) ([]*maze.Grid, string, error) {
	if len(args) == 0 {
		grids, err := levels.Default(rng)
		return grids, "builtin", err
	}
	grids, err := levels.LoadFile(args[0], rng)
	return grids, filepath.Base(args[0]), err
}
