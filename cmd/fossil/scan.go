package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/JRedrupp/fossil/internal/config"
	"github.com/JRedrupp/fossil/internal/debt"
	"github.com/JRedrupp/fossil/internal/filters"
	"github.com/JRedrupp/fossil/internal/history"
	"github.com/JRedrupp/fossil/internal/report"
	"github.com/JRedrupp/fossil/internal/scan"
)

var (
	scanFormat    string
	scanOutput    string
	scanOlderThan string
	scanAuthor    string
	scanType      string
	scanConfig    string
	scanTop       int
	scanCountOnly bool
)

var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Scan a directory for technical debt markers",
	Long: `Scan a directory tree for technical debt markers.

Markers are matched inside comments (//, #, /*, *, <!--), enriched with
git blame authorship when the tree is under version control, and
rendered as a terminal, markdown or JSON report.

Examples:
  # Scan the current directory
  fossil scan

  # Markers older than six months, as markdown
  fossil scan --older-than 6m --format markdown

  # Alice's FIXMEs, written to a file
  fossil scan --type FIXME --author alice -o debt.json --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVarP(&scanFormat, "format", "f", "terminal", "Output format: terminal, markdown, json")
	scanCmd.Flags().StringVarP(&scanOutput, "output", "o", "", "Write report to file instead of stdout (.gz compresses)")
	scanCmd.Flags().StringVar(&scanOlderThan, "older-than", "", "Only markers older than this age (e.g. 30d, 6m, 1y)")
	scanCmd.Flags().StringVar(&scanAuthor, "author", "", "Only markers last touched by this author")
	scanCmd.Flags().StringVarP(&scanType, "type", "t", "", "Only markers of this type (TODO, FIXME, ...)")
	scanCmd.Flags().StringVarP(&scanConfig, "config", "c", "", "Path to a custom config file")
	scanCmd.Flags().IntVar(&scanTop, "top", 10, "Show the top N oldest markers")
	scanCmd.Flags().BoolVar(&scanCountOnly, "count-only", false, "Print only the marker count")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	ctx := context.Background()

	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	format, err := report.ParseFormat(scanFormat)
	if err != nil {
		return err
	}

	cfg, err := config.Load(scanConfig, root)
	if err != nil {
		return err
	}
	logger.Debug("configuration resolved",
		"markers", len(cfg.Markers), "contextLines", cfg.ContextLines)

	scanner, err := scan.NewScanner(cfg, logger)
	if err != nil {
		return err
	}

	markers, err := scanner.Scan(ctx, root)
	if err != nil {
		return err
	}

	// Type filtering happens before enrichment to avoid blaming files
	// whose markers are all filtered away.
	if scanType != "" {
		markers = filters.ByType(markers, scanType)
		logger.Debug("type filter applied", "type", scanType, "remaining", len(markers))
	}

	repo, err := history.Discover(root)
	if err != nil {
		return err
	}
	if repo == nil {
		logger.Info("no git repository found, skipping blame data")
	} else {
		logger.Debug("git repository detected", "root", repo.Root)
	}

	history.NewEnricher(repo, logger).Enrich(ctx, markers)

	if scanOlderThan != "" {
		markers, err = filters.ByAge(markers, scanOlderThan)
		if err != nil {
			return err
		}
	}
	if scanAuthor != "" {
		markers = filters.ByAuthor(markers, scanAuthor)
	}

	r := debt.NewReport(markers, root)

	return report.Generate(r, report.Options{
		Format:     format,
		OutputPath: scanOutput,
		Top:        scanTop,
		CountOnly:  scanCountOnly,
		Severity:   cfg.Severity,
	})
}
