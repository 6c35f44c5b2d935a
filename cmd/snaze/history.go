package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pmelo/snaze/internal/platform/tui"
	"github.com/pmelo/snaze/internal/storage"
)

var (
	flagPlain bool
	flagTop   int
	flagClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse recorded simulation runs",
	Long: `Show past runs from the history database.

By default opens an interactive table of recent runs. With --plain the
top runs are printed to stdout instead, best score first.

Examples:
  snaze history
  snaze history --plain
  snaze history --plain --top 5
  snaze history --clear`,
	Run: runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print top runs to stdout instead of the interactive view")
	historyCmd.Flags().IntVar(&flagTop, "top", 10, "How many runs to print with --plain")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
}

func runHistory(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run history cleared.")
		return
	}

	if flagPlain {
		printTopRuns(store)
		return
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunHistory(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// printTopRuns writes a plain-text leaderboard to stdout.
func printTopRuns(store *storage.Store) {
	runs, err := store.TopRuns(flagTop)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'snaze run' to watch the snake play.")
		return
	}

	fmt.Println("Top Snaze Runs")
	fmt.Println()
	fmt.Printf("  %-4s  %-8s  %-8s  %-7s  %-5s  %-16s  %s\n",
		"Rank", "Score", "Outcome", "Levels", "Food", "Level set", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-7s  %-5s  %-16s  %s\n",
		"----", "-----", "-------", "------", "----", "---------", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-8s  %-7d  %-5d  %-16s  %s\n",
			i+1, r.Score, r.Outcome, r.LevelsCleared, r.FoodEaten,
			r.LevelSet, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.BestScore(); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
}
