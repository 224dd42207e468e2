// Package report renders debt reports for the terminal, markdown and
// JSON consumers.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/JRedrupp/fossil/internal/debt"
)

// Format selects a report renderer.
type Format string

const (
	FormatTerminal Format = "terminal"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
)

// ParseFormat validates a format string from the CLI.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "terminal", "":
		return FormatTerminal, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown format %q (use terminal, markdown or json)", s)
	}
}

// Options control rendering.
type Options struct {
	Format Format

	// OutputPath writes the report to a file instead of stdout. A
	// ".gz" suffix gzip-compresses the output.
	OutputPath string

	// Top bounds the oldest-markers section.
	Top int

	// CountOnly prints only the marker total.
	CountOnly bool

	// Severity maps marker types to configured severity labels.
	Severity map[string]string
}

// Generate renders the report per opts.
func Generate(r *debt.Report, opts Options) error {
	var body string
	switch {
	case opts.CountOnly:
		body = fmt.Sprintf("%d\n", r.Total)
	case opts.Format == FormatMarkdown:
		body = formatMarkdown(r, opts)
	case opts.Format == FormatJSON:
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize report: %w", err)
		}
		body = string(data) + "\n"
	default:
		body = formatTerminal(r, opts)
	}

	if opts.OutputPath == "" {
		_, err := io.WriteString(os.Stdout, body)
		return err
	}
	return writeFile(opts.OutputPath, body)
}

// writeFile writes the rendered report, gzipping when the path asks
// for it.
func writeFile(path, body string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to write output to %s: %w", path, err)
	}

	var w io.Writer = f
	var gz *gzip.Writer
	if strings.HasSuffix(path, ".gz") {
		gz = gzip.NewWriter(f)
		w = gz
	}

	_, err = io.WriteString(w, body)
	if gz != nil {
		if cerr := gz.Close(); err == nil {
			err = cerr
		}
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("failed to write output to %s: %w", path, err)
	}
	return nil
}
