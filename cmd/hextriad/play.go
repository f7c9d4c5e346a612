package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/avolkhin/hextriad/internal/config"
	"github.com/avolkhin/hextriad/internal/core"
	"github.com/avolkhin/hextriad/internal/games/triad"
	"github.com/avolkhin/hextriad/internal/platform/tui"
	"github.com/avolkhin/hextriad/internal/registry"
	"github.com/avolkhin/hextriad/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a mode",
	Long: `Start playing the specified mode.

Controls:
  Q/E        - Slide northwest / northeast
  A/D        - Slide west / east
  Z/C        - Slide southwest / southeast
  U          - Undo last move
  P          - Pause
  R          - Restart (after the round ends)
  Ctrl+C     - Quit

Modes:
  classic - Standard rules, 3 undos
  zen     - Relaxed play, 25 undos
  sprint  - 3 minute timer, 1 undo
  flux    - Tiles keep spawning on their own

Examples:
  hextriad play classic
  hextriad play sprint --seed 42
  hextriad play flux --config ./my-modes.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom modes config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	modeID := args[0]

	// Apply mode config overrides before creating the game
	modesCfg, err := config.LoadModes(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	triad.ApplyModesConfig(modesCfg)

	// Check if mode exists
	if !registry.Exists(modeID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", modeID)
		fmt.Fprintln(os.Stderr, "Run 'hextriad list' to see available modes.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Create game instance
	game, err := registry.Create(modeID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
