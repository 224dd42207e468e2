package scan

import (
	"testing"
)

func TestLoadGitIgnoredOutsideWorkTree(t *testing.T) {
	ignored := loadGitIgnored(t.TempDir())
	if len(ignored) != 0 {
		t.Errorf("plain directory yielded ignored entries: %v", ignored)
	}
}

func TestInsideWorkTreeFalseForPlainDir(t *testing.T) {
	if insideWorkTree(t.TempDir()) {
		t.Error("plain temp directory reported inside a work tree")
	}
}
