// hextriad is a hexagonal triple-merge puzzle for the terminal.
//
// Usage:
//
//	hextriad list              - List available modes
//	hextriad play <mode>       - Play a mode
//	hextriad menu              - Start menu to pick modes interactively
//	hextriad serve             - Start SSH server for remote play
//	hextriad scores <mode>     - Show high scores for a mode
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible games
//	--db <path>     - Set database path (default: ~/.hextriad/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import triad to register the modes
	_ "github.com/avolkhin/hextriad/internal/games/triad"
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
	Use:   "hextriad",
	Short: "Hextriad - Hexagonal triple-merge puzzle in your terminal",
	Long: `Hextriad is a terminal puzzle game played on a hexagonal board.
Slide tiles in six directions and merge triplets of equal tiles to
climb the value ladder.

Available commands:
  list     - Show all available modes
  play     - Play a specific mode directly
  menu     - Interactive mode picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  hextriad list
  hextriad play classic
  hextriad menu
  hextriad serve --ssh :2222
  hextriad scores sprint`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.hextriad/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
