// Package debt defines the data model for technical-debt markers.
package debt

import (
	"fmt"
	"time"
)

// Marker is a single technical-debt annotation found in a source file.
type Marker struct {
	// Type is the matched token (TODO, FIXME, ...), case as found.
	Type string `json:"type"`

	// FilePath is the path of the containing file as discovered by the
	// walk; it is not canonicalized until history enrichment.
	FilePath string `json:"filePath"`

	// Line is the 1-indexed line number of the match.
	Line int `json:"line"`

	// Content is the raw text of the matching line.
	Content string `json:"content"`

	// ContextBefore holds up to the configured window of raw lines
	// preceding the match, oldest first.
	ContextBefore []string `json:"contextBefore,omitempty"`

	// ContextAfter holds up to the configured window of raw lines
	// following the match.
	ContextAfter []string `json:"contextAfter,omitempty"`

	// History is set once by enrichment, or stays nil when the file is
	// not under version control or blame fails.
	History *HistoryInfo `json:"history,omitempty"`
}

// HistoryInfo is the authorship snapshot for a marker's line.
type HistoryInfo struct {
	AuthorName  string    `json:"authorName"`
	AuthorEmail string    `json:"authorEmail"`
	CommitHash  string    `json:"commitHash"`
	CommitTime  time.Time `json:"commitTime"`

	// AgeDays is computed once per enrichment run and never recomputed.
	AgeDays int `json:"ageDays"`
}

// AgeDisplay renders the age as a short human string: "15d", "2m", "1y".
func (h *HistoryInfo) AgeDisplay() string {
	switch {
	case h.AgeDays < 30:
		return fmt.Sprintf("%dd", h.AgeDays)
	case h.AgeDays < 365:
		return fmt.Sprintf("%dm", h.AgeDays/30)
	default:
		return fmt.Sprintf("%dy", h.AgeDays/365)
	}
}
