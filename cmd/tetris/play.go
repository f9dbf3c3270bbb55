package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/g3ner1c/tetris/internal/config"
	"github.com/g3ner1c/tetris/internal/engine"
	"github.com/g3ner1c/tetris/internal/game"
	"github.com/g3ner1c/tetris/internal/platform/tui"
	"github.com/g3ner1c/tetris/internal/storage"
)

var (
	flagPreset string
	flagSeed   string
	flagFPS    int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game with the configured preset.

Controls:
  Left/H, Right/L  - Move
  Down/J           - Soft drop
  Space            - Hard drop
  Up/X/K, Z        - Rotate
  A                - 180 rotate
  C                - Hold
  P/Esc            - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Flags override the config file, which overrides the preset defaults.

Examples:
  tetris play
  tetris play --preset nes
  tetris play --seed myseed --fps 30
  tetris play --config ./my-rules.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Rule preset to play (overrides config)")
	playCmd.Flags().StringVar(&flagSeed, "seed", "", "Piece sequence seed (empty = random)")
	playCmd.Flags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = config value)")
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	preset := cfg.Preset
	if flagPreset != "" {
		preset = flagPreset
	}

	parts, err := engine.Lookup(preset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown preset %q\n", preset)
		fmt.Fprintln(os.Stderr, "Run 'tetris presets' to see available presets.")
		os.Exit(1)
	}

	overrides, err := cfg.RuleOverrides()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := game.Options{RuleOverrides: overrides}

	if size, ok, sizeErr := cfg.VisibleSize(); sizeErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", sizeErr)
		os.Exit(1)
	} else if ok {
		opts.BoardSize = size
	}

	seed := cfg.Seed
	if flagSeed != "" {
		seed = flagSeed
	}
	if seed != "" {
		opts.Seed = []byte(seed)
	}

	g, err := game.New(parts, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	fps := cfg.FPS
	if flagFPS > 0 {
		fps = flagFPS
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	runErr := tui.Run(g, store, preset, fps)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
