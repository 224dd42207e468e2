package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/JRedrupp/fossil/internal/slogutil"
	"github.com/JRedrupp/fossil/internal/version"
)

var verbosity int

var rootCmd = &cobra.Command{
	Use:   "fossil",
	Short: "Unearth your technical debt",
	Long: `Fossil locates technical debt markers (TODO, FIXME, HACK, ...) in a
source tree, captures their surrounding context, and attributes each one
to an author and an age using git history.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.SetVersionTemplate("fossil version {{.Version}}\n")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"Increase log verbosity (-v info, -vv debug)")
}

// newLogger builds the CLI logger from the verbosity flags. Logs go to
// stderr so report output stays clean on stdout.
func newLogger() *slog.Logger {
	return slogutil.NewLogger(os.Stderr, slogutil.LevelFromVerbosity(verbosity))
}
