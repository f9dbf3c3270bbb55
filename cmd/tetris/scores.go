package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/g3ner1c/tetris/internal/engine"
	"github.com/g3ner1c/tetris/internal/platform/tui"
	"github.com/g3ner1c/tetris/internal/storage"
)

var flagStats bool

var scoresCmd = &cobra.Command{
	Use:   "scores [preset]",
	Short: "Show high scores",
	Long: `Without arguments, open the interactive scoreboard.
With a preset name, print its top 10 scores.

Examples:
  tetris scores
  tetris scores modern
  tetris scores --stats`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagStats, "stats", false, "Print per-preset play statistics instead")
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagStats {
		printStats(store)
		return
	}

	if len(args) == 0 {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	preset := args[0]
	if !engine.Exists(preset) {
		fmt.Fprintf(os.Stderr, "Error: unknown preset %q\n", preset)
		fmt.Fprintln(os.Stderr, "Run 'tetris presets' to see available presets.")
		os.Exit(1)
	}

	scores, err := store.TopScores(preset, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n\n", preset)

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'tetris play --preset %s' to set the first high score!\n", preset)
		return
	}

	fmt.Printf("  %-4s  %-10s  %-6s  %-6s  %s\n", "Rank", "Score", "Level", "Lines", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %-6s  %s\n", "----", "-----", "-----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %-6d  %-6d  %s\n",
			i+1, entry.Score, entry.Level, entry.Lines,
			entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if high, err := store.HighScore(preset); err == nil {
		fmt.Printf("\nBest: %d\n", high)
	}
}

func printStats(store *storage.Store) {
	stats, err := store.GetAllPresetStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	if len(stats) == 0 {
		fmt.Println("No games recorded yet.")
		return
	}

	names := make([]string, 0, len(stats))
	for name := range stats {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Printf("  %-10s  %-6s  %-10s  %-10s  %s\n", "Preset", "Games", "Best", "Lines", "Last played")
	fmt.Printf("  %-10s  %-6s  %-10s  %-10s  %s\n", "------", "-----", "----", "-----", "-----------")
	for _, name := range names {
		s := stats[name]
		fmt.Printf("  %-10s  %-6d  %-10d  %-10d  %s\n",
			s.Preset, s.GamesCount, s.HighScore, s.TotalLines,
			s.LastPlayed.Format("2006-01-02 15:04"))
	}
}
