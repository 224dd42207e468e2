// Package scan implements marker extraction: pattern compilation, the
// single-pass file scanner, and the parallel tree walk.
package scan

import (
	"regexp"
	"strings"

	scanerrors "github.com/JRedrupp/fossil/internal/errors"
)

// Pattern is the compiled matching rule for a marker vocabulary.
// It recognizes a token only at the start of a comment-like prefix
// (//, #, /*, *, <!--), never embedded in prose.
type Pattern struct {
	re *regexp.Regexp
}

// Compile builds the matching rule for the given tokens. Duplicate
// tokens are tolerated. Fails with PATTERN_INVALID on an empty set,
// an empty token, or a regexp compilation error.
func Compile(tokens []string) (*Pattern, error) {
	if len(tokens) == 0 {
		return nil, scanerrors.New(scanerrors.PatternInvalid,
			"marker token set must not be empty", nil)
	}

	quoted := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok == "" {
			return nil, scanerrors.New(scanerrors.PatternInvalid,
				"marker tokens must be non-empty", nil)
		}
		quoted = append(quoted, regexp.QuoteMeta(tok))
	}

	expr := `^\s*(?://|#|/\*|\*|<!--)\s*(` + strings.Join(quoted, "|") +
		`)\b(?::|\s)?\s*(.*?)(?:-->|\*/)?$`

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, scanerrors.New(scanerrors.PatternInvalid,
			"failed to compile marker pattern", err)
	}

	return &Pattern{re: re}, nil
}

// Match applies the rule to one line. On a match it returns the token
// found (case as written in the source) and the trailing text.
func (p *Pattern) Match(line string) (markerType, text string, ok bool) {
	m := p.re.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	return m[1], strings.TrimSpace(m[2]), true
}
