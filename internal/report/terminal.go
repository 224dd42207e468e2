package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/JRedrupp/fossil/internal/debt"
)

// formatTerminal renders the report for an interactive terminal.
func formatTerminal(r *debt.Report, opts Options) string {
	var b strings.Builder

	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	gray := color.New(color.FgHiBlack).SprintFunc()

	fmt.Fprintf(&b, "\n%s\n", cyan("Fossil - Technical Debt Report"))
	fmt.Fprintf(&b, "Scanned:       %s\n", r.ScanPath)
	fmt.Fprintf(&b, "Total Markers: %d\n", r.Total)
	fmt.Fprintf(&b, "%s\n\n", gray(r.ScanTime.Format("2006-01-02 15:04:05 UTC")))

	if len(r.ByType) > 0 {
		b.WriteString("Summary by Type:\n")
		b.WriteString(typeTable(r, opts.Severity))
		b.WriteString("\n")
	}

	if len(r.ByAuthor) > 0 {
		b.WriteString("Summary by Author:\n")
		b.WriteString(countTable("Author", topCounts(r.ByAuthor, 10)))
		b.WriteString("\n")
	}

	oldest := r.OldestMarkers(opts.Top)
	if len(oldest) > 0 {
		fmt.Fprintf(&b, "Top %d Oldest Markers:\n", len(oldest))
		b.WriteString(oldestTable(oldest))
	}

	return b.String()
}

// typeTable renders marker counts per type, with severity labels when
// configured.
func typeTable(r *debt.Report, severity map[string]string) string {
	var buf strings.Builder
	table := tablewriter.NewWriter(&buf)

	withSeverity := len(severity) > 0
	if withSeverity {
		table.SetHeader([]string{"Type", "Count", "Severity"})
	} else {
		table.SetHeader([]string{"Type", "Count"})
	}
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, e := range topCounts(r.ByType, len(r.ByType)) {
		row := []string{e.key, fmt.Sprintf("%d", e.count)}
		if withSeverity {
			row = append(row, severity[e.key])
		}
		table.Append(row)
	}

	table.Render()
	return buf.String()
}

// countTable renders a generic name/count table.
func countTable(label string, entries []countEntry) string {
	var buf strings.Builder
	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{label, "Count"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, e := range entries {
		table.Append([]string{e.key, fmt.Sprintf("%d", e.count)})
	}

	table.Render()
	return buf.String()
}

// oldestTable renders the oldest markers with authorship.
func oldestTable(markers []*debt.Marker) string {
	var buf strings.Builder
	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Type", "File", "Line", "Author", "Age"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, m := range markers {
		table.Append([]string{
			m.Type,
			m.FilePath,
			fmt.Sprintf("%d", m.Line),
			m.History.AuthorName,
			m.History.AgeDisplay(),
		})
	}

	table.Render()
	return buf.String()
}

// countEntry is one row of a count summary.
type countEntry struct {
	key   string
	count int
}

// topCounts sorts a count map descending and keeps the first limit
// entries. Ties break alphabetically so output is stable.
func topCounts(counts map[string]int, limit int) []countEntry {
	entries := make([]countEntry, 0, len(counts))
	for k, v := range counts {
		entries = append(entries, countEntry{key: k, count: v})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].key < entries[j].key
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
