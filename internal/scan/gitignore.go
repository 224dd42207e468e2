package scan

import (
	"bytes"
	"os/exec"
	"strings"
)

// loadGitIgnored asks git for the set of ignored paths beneath root,
// relative to root with forward slashes. Ignored directories carry a
// trailing slash. Returns an empty set when root is not inside a work
// tree or git is unavailable; ignore rules are then simply not applied.
func loadGitIgnored(root string) map[string]bool {
	ignored := make(map[string]bool)

	if !insideWorkTree(root) {
		return ignored
	}

	cmd := exec.Command("git", "ls-files",
		"--others", "--ignored", "--exclude-standard", "--directory", "-z")
	cmd.Dir = root

	output, err := cmd.Output()
	if err != nil {
		return ignored
	}

	for _, entry := range bytes.Split(output, []byte{0}) {
		p := strings.TrimSpace(string(entry))
		if p == "" {
			continue
		}
		ignored[p] = true
	}
	return ignored
}

// insideWorkTree reports whether root is inside a git work tree.
func insideWorkTree(root string) bool {
	cmd := exec.Command("git", "rev-parse", "--is-inside-work-tree")
	cmd.Dir = root
	output, err := cmd.Output()
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(output)) == "true"
}
