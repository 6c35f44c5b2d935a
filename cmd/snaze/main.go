// snaze is a terminal simulation of a snake that plays itself inside a
// maze, searching for food with a breadth-first pathfinder.
//
// Usage:
//
//	snaze run [level-file]   - Watch a simulation run
//	snaze check <level-file> - Validate a level file
//	snaze history            - Browse past runs
//	snaze serve              - Serve simulations over SSH
//
// Global flags:
//
//	--fps <rate>    - Simulation turns per second (default: 10)
//	--seed <value>  - RNG seed for reproducible runs
//	--db <path>     - Run history database (default: ~/.snaze/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snaze",
	Short: "Snaze - watch a snake solve mazes in your terminal",
	Long: `Snaze simulates the classic snake game with an autonomous snake:
it hunts food through a maze on its own, you just watch.

Available commands:
  run      - Watch a simulation on a level file (or the built-in set)
  check    - Validate a level file without running it
  history  - Browse recorded runs
  serve    - Start an SSH server so others can watch remotely

Examples:
  snaze run
  snaze run levels/maze.snaze --ai random
  snaze run --seed 42 --fps 20
  snaze check levels/maze.snaze
  snaze history
  snaze serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Simulation turns per second (0 = from config, default 10)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snaze/runs.db", "Path to run history database")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}
