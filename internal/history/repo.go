// Package history enriches debt markers with line authorship derived
// from git blame, batched once per file.
package history

import (
	"os/exec"
	"strings"
)

// Repository is a handle to the git work tree containing the scan root.
type Repository struct {
	// Root is the absolute path of the work tree top level.
	Root string
}

// Discover locates the repository containing path. A path outside any
// work tree is not an error: it returns (nil, nil) and enrichment
// becomes a no-op.
func Discover(path string) (*Repository, error) {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	cmd.Dir = path

	output, err := cmd.Output()
	if err != nil {
		return nil, nil
	}

	root := strings.TrimSpace(string(output))
	if root == "" {
		return nil, nil
	}
	return &Repository{Root: root}, nil
}
