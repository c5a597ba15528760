package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/abhisek/aptiq/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "aptiq",
	Short: "Adaptive aptitude assessment in the terminal",
	Long:  "AptIQ — terminal aptitude trainer that reweights future tests toward the questions you miss.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("data", "", "Path to the progress JSON file (overrides APTIQ_DATA env var)")

	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDataPath returns the progress file path using the --data flag
// (highest priority), then APTIQ_DATA, then the default XDG path.
func resolveDataPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("data"); p != "" {
		return p, nil
	}
	return store.DefaultPath()
}

// newLogger writes structured logs to aptiq.log next to the data file; the
// TUI owns the terminal, so nothing goes to stdout. A broken log destination
// degrades to a no-op logger.
func newLogger(dataPath string) zerolog.Logger {
	dir := filepath.Dir(dataPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return zerolog.Nop()
	}
	f, err := os.OpenFile(filepath.Join(dir, "aptiq.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintln(os.Stderr, "log file unavailable:", err)
		return zerolog.Nop()
	}

	level := zerolog.InfoLevel
	if os.Getenv("APTIQ_DEBUG") != "" {
		level = zerolog.DebugLevel
	}
	return zerolog.New(f).With().Timestamp().Logger().Level(level)
}
