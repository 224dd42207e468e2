package report

import (
	"fmt"
	"strings"

	"github.com/JRedrupp/fossil/internal/debt"
)

// formatMarkdown renders the report as a markdown document.
func formatMarkdown(r *debt.Report, opts Options) string {
	var b strings.Builder

	b.WriteString("# Fossil - Technical Debt Report\n\n")
	fmt.Fprintf(&b, "**Scanned**: `%s`\n", r.ScanPath)
	fmt.Fprintf(&b, "**Total Markers**: %d\n", r.Total)
	fmt.Fprintf(&b, "**Generated**: %s\n\n", r.ScanTime.Format("2006-01-02 15:04:05 UTC"))

	if len(r.ByType) > 0 {
		b.WriteString("## Summary by Type\n\n")
		for _, e := range topCounts(r.ByType, len(r.ByType)) {
			if label, ok := opts.Severity[e.key]; ok {
				fmt.Fprintf(&b, "- **%s**: %d (%s)\n", e.key, e.count, label)
			} else {
				fmt.Fprintf(&b, "- **%s**: %d\n", e.key, e.count)
			}
		}
		b.WriteString("\n")
	}

	if len(r.ByAuthor) > 0 {
		b.WriteString("## Summary by Author (Top 10)\n\n")
		for _, e := range topCounts(r.ByAuthor, 10) {
			fmt.Fprintf(&b, "- **%s**: %d\n", e.key, e.count)
		}
		b.WriteString("\n")
	}

	oldest := r.OldestMarkers(opts.Top)
	if len(oldest) > 0 {
		fmt.Fprintf(&b, "## Top %d Oldest Markers\n\n", len(oldest))

		for i, m := range oldest {
			h := m.History
			fmt.Fprintf(&b, "%d. **%s** in `%s:%d`\n", i+1, m.Type, m.FilePath, m.Line)
			fmt.Fprintf(&b, "   - Author: %s\n", h.AuthorName)
			fmt.Fprintf(&b, "   - Age: %s (%d days)\n", h.AgeDisplay(), h.AgeDays)
			fmt.Fprintf(&b, "   - Commit: %s\n", h.CommitHash)
			fmt.Fprintf(&b, "   - Line: `%s`\n", strings.TrimSpace(m.Content))

			if len(m.ContextBefore) > 0 || len(m.ContextAfter) > 0 {
				b.WriteString("   - Context:\n```\n")
				for _, line := range m.ContextBefore {
					b.WriteString(line + "\n")
				}
				b.WriteString(m.Content + " <-- MARKER\n")
				for _, line := range m.ContextAfter {
					b.WriteString(line + "\n")
				}
				b.WriteString("```\n")
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}
