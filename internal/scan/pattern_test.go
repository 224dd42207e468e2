package scan

import (
	"testing"
)

func TestCompileMatchesCommentStyles(t *testing.T) {
	pat, err := Compile([]string{"TODO", "FIXME"})
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	testCases := []struct {
		name     string
		line     string
		wantType string
		wantOK   bool
	}{
		{"slash comment", "// TODO: fix this", "TODO", true},
		{"hash comment", "# FIXME: broken", "FIXME", true},
		{"block comment", "/* TODO something */", "TODO", true},
		{"star continuation", "  * FIXME: stuff", "FIXME", true},
		{"html comment", "<!-- TODO clean up -->", "TODO", true},
		{"indented slash", "    // TODO later", "TODO", true},
		{"no colon", "// TODO fix", "TODO", true},
		{"prose", "This is a TODO in prose", "", false},
		{"mid sentence", "x := 1 // trailing TODO comment", "", false},
		{"embedded token", "// TODOLATER: not a marker", "", false},
		{"plain code", "func main() {}", "", false},
		{"empty line", "", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gotType, _, ok := pat.Match(tc.line)
			if ok != tc.wantOK {
				t.Fatalf("Match(%q) ok = %v, want %v", tc.line, ok, tc.wantOK)
			}
			if gotType != tc.wantType {
				t.Errorf("Match(%q) type = %q, want %q", tc.line, gotType, tc.wantType)
			}
		})
	}
}

func TestCompileCapturesTrailingText(t *testing.T) {
	pat, err := Compile([]string{"TODO"})
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	testCases := []struct {
		line     string
		wantText string
	}{
		{"// TODO: fix the parser", "fix the parser"},
		{"/* TODO drop this */", "drop this"},
		{"<!-- TODO rewrite -->", "rewrite"},
		{"# TODO", ""},
	}

	for _, tc := range testCases {
		_, text, ok := pat.Match(tc.line)
		if !ok {
			t.Fatalf("Match(%q) did not match", tc.line)
		}
		if text != tc.wantText {
			t.Errorf("Match(%q) text = %q, want %q", tc.line, text, tc.wantText)
		}
	}
}

func TestCompileRejectsInvalidInput(t *testing.T) {
	if _, err := Compile(nil); err == nil {
		t.Error("Compile(nil) should fail")
	}
	if _, err := Compile([]string{}); err == nil {
		t.Error("Compile(empty) should fail")
	}
	if _, err := Compile([]string{"TODO", ""}); err == nil {
		t.Error("Compile with empty token should fail")
	}
}

func TestCompileToleratesDuplicatesAndMetaChars(t *testing.T) {
	pat, err := Compile([]string{"TODO", "TODO", "FIX.ME"})
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	if typ, _, ok := pat.Match("// TODO: dup tokens"); !ok || typ != "TODO" {
		t.Errorf("duplicate token broke matching: ok=%v type=%q", ok, typ)
	}

	// The dot is quoted, not a wildcard.
	if _, _, ok := pat.Match("// FIXAME: wrong"); ok {
		t.Error("regex metachar in token should be matched literally")
	}
	if typ, _, ok := pat.Match("// FIX.ME: right"); !ok || typ != "FIX.ME" {
		t.Errorf("literal token failed: ok=%v type=%q", ok, typ)
	}
}

func TestMatchPreservesTokenCase(t *testing.T) {
	pat, err := Compile([]string{"todo"})
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	if _, _, ok := pat.Match("// TODO: upper"); ok {
		t.Error("matching should be case-sensitive to the configured token")
	}
	if typ, _, ok := pat.Match("// todo: lower"); !ok || typ != "todo" {
		t.Errorf("lowercase token failed: ok=%v type=%q", ok, typ)
	}
}
