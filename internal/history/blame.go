package history

import (
	"bufio"
	"bytes"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// zeroHash is how blame reports a working-tree line with no commit yet:
// placeholder authorship ("Not Committed Yet") under the all-zero SHA.
const zeroHash = "0000000000000000000000000000000000000000"

// commitInfo is the authorship of one commit seen in blame output.
type commitInfo struct {
	author     string
	authorMail string
	authorTime time.Time
}

// fileHistory is the parsed blame of one file: which commit last
// touched each line, plus the commit table.
type fileHistory struct {
	lines   map[int]string // 1-indexed line -> commit hash
	commits map[string]*commitInfo
}

// blameFile runs git blame once for the whole file and parses the
// porcelain output. relPath is relative to the repository root.
func blameFile(repoRoot, relPath string) (*fileHistory, error) {
	cmd := exec.Command("git", "blame", "--porcelain", "--", relPath)
	cmd.Dir = repoRoot

	output, err := cmd.Output()
	if err != nil {
		return nil, err
	}

	return parsePorcelain(output)
}

// parsePorcelain reads git blame porcelain format. Each blamed line is
// introduced by "<sha> <orig> <final> [<group>]"; author headers appear
// only the first time a commit is seen, so authorship is kept in a
// commit table rather than per line.
func parsePorcelain(output []byte) (*fileHistory, error) {
	fh := &fileHistory{
		lines:   make(map[int]string),
		commits: make(map[string]*commitInfo),
	}

	sc := bufio.NewScanner(bytes.NewReader(output))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var current string // commit hash the following headers belong to

	for sc.Scan() {
		line := sc.Text()

		if strings.HasPrefix(line, "\t") {
			// Content line, terminates one blamed line's headers.
			continue
		}

		if hash, final, ok := parseHeader(line); ok {
			current = hash
			if hash == zeroHash {
				// Uncommitted line: no real authorship exists, so it
				// stays out of the line table and keeps nil history.
				continue
			}
			fh.lines[final] = hash
			if _, seen := fh.commits[hash]; !seen {
				fh.commits[hash] = &commitInfo{}
			}
			continue
		}

		info := fh.commits[current]
		if info == nil {
			continue
		}
		switch {
		case strings.HasPrefix(line, "author "):
			info.author = strings.TrimPrefix(line, "author ")
		case strings.HasPrefix(line, "author-mail "):
			mail := strings.TrimPrefix(line, "author-mail ")
			info.authorMail = strings.Trim(mail, "<>")
		case strings.HasPrefix(line, "author-time "):
			raw := strings.TrimPrefix(line, "author-time ")
			if secs, err := strconv.ParseInt(raw, 10, 64); err == nil {
				info.authorTime = time.Unix(secs, 0).UTC()
			}
		}
	}

	return fh, sc.Err()
}

// parseHeader matches "<40-hex-sha> <orig> <final> [<group>]".
func parseHeader(line string) (hash string, finalLine int, ok bool) {
	if len(line) < 40 || !isHex(line[:40]) {
		return "", 0, false
	}
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return "", 0, false
	}
	final, err := strconv.Atoi(fields[2])
	if err != nil {
		return "", 0, false
	}
	return fields[0], final, true
}

func isHex(s string) bool {
	for _, c := range s {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
