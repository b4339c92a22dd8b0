// huematch is a color matching game for the terminal: find the tile whose
// color matches the background before the clock runs out.
//
// Usage:
//
//	huematch modes               - List game modes
//	huematch play [mode]         - Play a mode (default: time_trial)
//	huematch menu                - Pick modes interactively
//	huematch serve               - Start SSH server for remote play
//	huematch scores <mode>       - Show high scores for a mode
//	huematch history [game-id]   - List stored games or show one game's rounds
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible rounds
//	--db <path>           - Set database path (default: ~/.huematch/scores.db)
//	--config <path>       - Load a custom huematch.yaml
//	--difficulty <name>   - Difficulty preset: easy, normal, hard
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/huematch/internal/config"
	"github.com/vovakirdan/huematch/internal/core"
	"github.com/vovakirdan/huematch/internal/games/huematch"
	"github.com/vovakirdan/huematch/internal/platform/tui"
	"github.com/vovakirdan/huematch/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagPlayer     string
)

// Set up by the root command before any subcommand runs.
var (
	logger    *log.Logger
	puzzleCfg config.PuzzleConfig
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "huematch",
	Short: "Hue Match - find the tile that matches the background",
	Long: `Hue Match is a color matching game for the terminal.

Every round shows a few tiles on a colored background. One tile has exactly
the background color, the others are slightly off. Click the match.

Available commands:
  modes    - Show all game modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  history  - Review stored games

Examples:
  huematch modes
  huematch play time_trial
  huematch play infinite --difficulty hard
  huematch menu
  huematch serve --ssh :2222
  huematch scores against_the_clock`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.huematch/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom huematch.yaml")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", defaultPlayer(), "Player name stored with finished games")

	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(historyCmd)
}

// setup builds the logger and loads the game configuration.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "huematch",
	})

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return err
	}
	puzzleCfg = cfg

	huematch.SetSettings(cfg.Settings())
	huematch.SetLogger(logger)
	logger.Debug("configuration loaded", "config", flagConfig, "difficulty", preset)
	return nil
}

func defaultPlayer() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "player"
}

// runtimeConfig returns the tick settings sized to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database. Games still run without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

func newEnv(store *storage.Store) tui.Env {
	return tui.Env{
		Store:    store,
		Player:   flagPlayer,
		PageSize: puzzleCfg.PageSize(),
		Logger:   logger,
	}
}
