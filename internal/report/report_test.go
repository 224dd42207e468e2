package report

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/klauspost/compress/gzip"

	"github.com/JRedrupp/fossil/internal/debt"
)

func fixtureReport() *debt.Report {
	markers := []*debt.Marker{
		{Type: "TODO", FilePath: "src/main.go", Line: 12,
			Content:       "\t// TODO: retry on timeout",
			ContextBefore: []string{"\tresp, err := client.Do(req)"},
			ContextAfter:  []string{"\tif err != nil {"},
			History: &debt.HistoryInfo{
				AuthorName:  "Alice",
				AuthorEmail: "alice@example.com",
				CommitHash:  "abc1234",
				CommitTime:  time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
				AgeDays:     400,
			}},
		{Type: "FIXME", FilePath: "src/util.go", Line: 3,
			Content: "// FIXME: off by one",
			History: &debt.HistoryInfo{AuthorName: "Bob", AgeDays: 12}},
		{Type: "TODO", FilePath: "src/util.go", Line: 30,
			Content: "// TODO: untracked"},
	}
	return debt.NewReport(markers, "/repo")
}

func TestParseFormat(t *testing.T) {
	testCases := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"terminal", FormatTerminal, false},
		{"", FormatTerminal, false},
		{"markdown", FormatMarkdown, false},
		{"md", FormatMarkdown, false},
		{"JSON", FormatJSON, false},
		{"xml", "", true},
	}

	for _, tc := range testCases {
		got, err := ParseFormat(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatMarkdown(t *testing.T) {
	r := fixtureReport()
	out := formatMarkdown(r, Options{Top: 10, Severity: map[string]string{"FIXME": "high"}})

	for _, want := range []string{
		"# Fossil - Technical Debt Report",
		"**Scanned**: `/repo`",
		"**Total Markers**: 3",
		"## Summary by Type",
		"- **TODO**: 2",
		"- **FIXME**: 1 (high)",
		"## Summary by Author (Top 10)",
		"- **Alice**: 1",
		"## Top 2 Oldest Markers",
		"`src/main.go:12`",
		"Age: 1y (400 days)",
		"Commit: abc1234",
		"<-- MARKER",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown output missing %q\n%s", want, out)
		}
	}

	// The oldest list never includes the uncommitted marker.
	if strings.Contains(out, "untracked") {
		t.Error("history-less marker leaked into the oldest section")
	}
}

func TestFormatTerminal(t *testing.T) {
	r := fixtureReport()
	out := formatTerminal(r, Options{Top: 1})

	for _, want := range []string{
		"Fossil - Technical Debt Report",
		"Scanned:       /repo",
		"Total Markers: 3",
		"Summary by Type:",
		"Summary by Author:",
		"Top 1 Oldest Markers:",
		"src/main.go",
		"Alice",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("terminal output missing %q\n%s", want, out)
		}
	}

	// Top 1 keeps only the oldest row.
	if strings.Contains(out, "src/util.go") {
		t.Error("oldest table exceeded the top limit")
	}
}

func TestGenerateJSONToFile(t *testing.T) {
	r := fixtureReport()
	path := filepath.Join(t.TempDir(), "report.json")

	err := Generate(r, Options{Format: FormatJSON, OutputPath: path, Top: 10})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}

	var decoded debt.Report
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("report is not valid JSON: %v", err)
	}
	if decoded.Total != 3 || decoded.ScanPath != "/repo" {
		t.Errorf("decoded report = total %d path %q", decoded.Total, decoded.ScanPath)
	}
	if decoded.Markers[0].History == nil {
		t.Error("history lost in serialization")
	}
}

func TestGenerateGzipOutput(t *testing.T) {
	r := fixtureReport()
	path := filepath.Join(t.TempDir(), "report.md.gz")

	err := Generate(r, Options{Format: FormatMarkdown, OutputPath: path, Top: 5})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open report: %v", err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		t.Fatalf("output is not gzip: %v", err)
	}
	body, err := io.ReadAll(gz)
	if err != nil {
		t.Fatalf("decompress: %v", err)
	}
	if !strings.Contains(string(body), "# Fossil - Technical Debt Report") {
		t.Error("decompressed body is not the markdown report")
	}
}

func TestGenerateCountOnly(t *testing.T) {
	r := fixtureReport()
	path := filepath.Join(t.TempDir(), "count.txt")

	err := Generate(r, Options{Format: FormatTerminal, OutputPath: path, CountOnly: true})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read count: %v", err)
	}
	if string(data) != "3\n" {
		t.Errorf("count output = %q, want %q", data, "3\n")
	}
}

func TestTopCounts(t *testing.T) {
	counts := map[string]int{"TODO": 5, "FIXME": 5, "HACK": 1, "NOTE": 9}

	got := topCounts(counts, 3)
	if len(got) != 3 {
		t.Fatalf("kept %d entries, want 3", len(got))
	}
	if got[0].key != "NOTE" {
		t.Errorf("first entry = %s, want NOTE", got[0].key)
	}
	// Equal counts order alphabetically.
	if got[1].key != "FIXME" || got[2].key != "TODO" {
		t.Errorf("tie order = [%s %s], want [FIXME TODO]", got[1].key, got[2].key)
	}
}
