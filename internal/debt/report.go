package debt

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Report aggregates the markers of one scan run.
type Report struct {
	ScanID   string         `json:"scanId"`
	ScanPath string         `json:"scanPath"`
	ScanTime time.Time      `json:"scanTime"`
	Markers  []*Marker      `json:"markers"`
	Total    int            `json:"total"`
	ByType   map[string]int `json:"byType"`
	ByAuthor map[string]int `json:"byAuthor"`
	ByFile   map[string]int `json:"byFile"`
}

// NewReport builds a Report from a finished marker list.
func NewReport(markers []*Marker, scanPath string) *Report {
	r := &Report{
		ScanID:   uuid.NewString(),
		ScanPath: scanPath,
		ScanTime: time.Now().UTC(),
		Markers:  markers,
		Total:    len(markers),
		ByType:   make(map[string]int),
		ByAuthor: make(map[string]int),
		ByFile:   make(map[string]int),
	}

	for _, m := range markers {
		r.ByType[m.Type]++
		r.ByFile[m.FilePath]++
		if m.History != nil {
			r.ByAuthor[m.History.AuthorName]++
		}
	}

	return r
}

// OldestMarkers returns up to limit markers ordered oldest first.
// Markers without history are excluded; age is unknown for them.
func (r *Report) OldestMarkers(limit int) []*Marker {
	withAge := make([]*Marker, 0, len(r.Markers))
	for _, m := range r.Markers {
		if m.History != nil {
			withAge = append(withAge, m)
		}
	}

	sort.SliceStable(withAge, func(i, j int) bool {
		return withAge[i].History.AgeDays > withAge[j].History.AgeDays
	})

	if len(withAge) > limit {
		withAge = withAge[:limit]
	}
	return withAge
}
