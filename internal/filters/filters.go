// Package filters provides predicate filters over enriched markers.
package filters

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/JRedrupp/fossil/internal/debt"
)

// ByType keeps markers whose type equals markerType, case-insensitively.
func ByType(markers []*debt.Marker, markerType string) []*debt.Marker {
	want := strings.ToLower(markerType)
	out := markers[:0:0]
	for _, m := range markers {
		if strings.ToLower(m.Type) == want {
			out = append(out, m)
		}
	}
	return out
}

// ByAuthor keeps markers whose author name or email contains author,
// case-insensitively. Markers without history are excluded.
func ByAuthor(markers []*debt.Marker, author string) []*debt.Marker {
	want := strings.ToLower(author)
	out := markers[:0:0]
	for _, m := range markers {
		if m.History == nil {
			continue
		}
		if strings.Contains(strings.ToLower(m.History.AuthorName), want) ||
			strings.Contains(strings.ToLower(m.History.AuthorEmail), want) {
			out = append(out, m)
		}
	}
	return out
}

// ByAge keeps markers at least minAge old, where minAge is a duration
// string like "30d", "2w", "6m", "1y". Markers without history are
// excluded.
func ByAge(markers []*debt.Marker, minAge string) ([]*debt.Marker, error) {
	minDays, err := ParseAgeDays(minAge)
	if err != nil {
		return nil, fmt.Errorf("invalid age %q: %w", minAge, err)
	}

	out := markers[:0:0]
	for _, m := range markers {
		if m.History != nil && m.History.AgeDays >= minDays {
			out = append(out, m)
		}
	}
	return out, nil
}

// ParseAgeDays parses "Nd", "Nw", "Nm" or "Ny" into whole days
// (1/7/30/365 respectively).
func ParseAgeDays(s string) (int, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return 0, fmt.Errorf("expected <number><d|w|m|y>")
	}

	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid number %q", s[:len(s)-1])
	}

	switch s[len(s)-1] {
	case 'd':
		return n, nil
	case 'w':
		return n * 7, nil
	case 'm':
		return n * 30, nil
	case 'y':
		return n * 365, nil
	default:
		return 0, fmt.Errorf("invalid unit %q, use d, w, m or y", s[len(s)-1:])
	}
}
