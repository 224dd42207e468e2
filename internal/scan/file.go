package scan

import (
	"bufio"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/JRedrupp/fossil/internal/debt"
)

// maxLineBytes bounds a single line; longer lines abort the rest of the
// file but keep any markers already found.
const maxLineBytes = 1024 * 1024

// collecting tracks a marker whose context-after window is still open.
// Explicit state keeps the interleaved-match edge case auditable.
type collecting struct {
	marker    *debt.Marker
	remaining int
}

// scanFile reads one file line by line and returns its markers in
// ascending line order. Lines that are not valid UTF-8 are skipped
// (treated as binary content) without aborting the scan.
func scanFile(path string, pat *Pattern, window int) ([]*debt.Marker, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var (
		markers []*debt.Marker
		before  []string    // rolling window of preceding non-marker lines
		pending *collecting // non-nil while a context-after window is open
	)

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNo := 0
	for sc.Scan() {
		lineNo++

		raw := sc.Bytes()
		if !utf8.Valid(raw) {
			continue
		}
		line := strings.TrimSuffix(string(raw), "\r")

		markerType, _, matched := pat.Match(line)
		if matched {
			// A fresh match closes the previous window at whatever it
			// has collected; context lines are never shared.
			if pending != nil {
				markers = append(markers, pending.marker)
				pending = nil
			}

			m := &debt.Marker{
				Type:          markerType,
				FilePath:      path,
				Line:          lineNo,
				Content:       line,
				ContextBefore: before,
			}
			before = nil

			if window > 0 {
				pending = &collecting{marker: m, remaining: window}
			} else {
				markers = append(markers, m)
			}
			continue
		}

		if pending != nil {
			pending.marker.ContextAfter = append(pending.marker.ContextAfter, line)
			pending.remaining--
			if pending.remaining == 0 {
				markers = append(markers, pending.marker)
				pending = nil
			}
			continue
		}

		if window > 0 {
			before = append(before, line)
			if len(before) > window {
				before = before[1:]
			}
		}
	}

	// EOF with the window still open: finalize with partial context.
	if pending != nil {
		markers = append(markers, pending.marker)
	}

	// A scanner error (e.g. an oversized line) ends the scan early but
	// does not discard markers already found.
	return markers, nil
}
