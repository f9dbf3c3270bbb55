// tetris plays falling-block games in the terminal, locally or over SSH.
//
// Usage:
//
//	tetris play               - Play with the configured preset
//	tetris presets            - List available rule presets
//	tetris serve              - Start SSH server for remote play
//	tetris scores [preset]    - Show high scores
//
// Global flags:
//
//	--config <path>  - Custom config YAML
//	--db <path>      - Scores database (default: ~/.tetris/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Register the built-in presets.
	_ "github.com/g3ner1c/tetris/internal/presets"
)

var (
	flagConfig string
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Play falling blocks in your terminal",
	Long: `A terminal falling-block game with pluggable rule presets.

Available commands:
  play     - Play a game
  presets  - List the rule presets
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  tetris play
  tetris play --preset nes
  tetris serve --ssh :2222
  tetris scores modern`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tetris/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
