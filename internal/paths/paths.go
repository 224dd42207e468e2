// Package paths normalizes file paths against a repository root.
package paths

import (
	"os"
	"path/filepath"
	"strings"
)

// Canonicalize converts a path (absolute or relative to the working
// directory) to a repo-relative path with forward slashes. Symlinks are
// resolved; `.` and `..` segments are eliminated.
func Canonicalize(path string, repoRoot string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		// A file that no longer exists still canonicalizes lexically.
		if os.IsNotExist(err) {
			resolved = abs
		} else {
			return "", err
		}
	}

	rootResolved, err := filepath.EvalSymlinks(repoRoot)
	if err != nil {
		if os.IsNotExist(err) {
			rootResolved = repoRoot
		} else {
			return "", err
		}
	}

	rel, err := filepath.Rel(rootResolved, resolved)
	if err != nil {
		return "", err
	}

	return filepath.ToSlash(rel), nil
}

// IsWithinRepo reports whether path lies under repoRoot.
func IsWithinRepo(path string, repoRoot string) bool {
	canonical, err := Canonicalize(path, repoRoot)
	if err != nil {
		return false
	}
	return canonical != ".." && !strings.HasPrefix(canonical, "../")
}

// Normalize converts separators to forward slashes.
func Normalize(path string) string {
	return filepath.ToSlash(path)
}
