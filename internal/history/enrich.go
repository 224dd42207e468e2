package history

import (
	"context"
	"log/slog"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/JRedrupp/fossil/internal/debt"
	"github.com/JRedrupp/fossil/internal/paths"
)

// runBlame is swappable so tests can observe per-file batching.
var runBlame = blameFile

// Enricher attaches authorship metadata to markers. Blame runs once per
// file regardless of how many markers that file holds.
type Enricher struct {
	repo   *Repository
	logger *slog.Logger
	now    time.Time
}

// NewEnricher creates an Enricher. repo may be nil (scan root not under
// version control); Enrich is then a no-op.
func NewEnricher(repo *Repository, logger *slog.Logger) *Enricher {
	return &Enricher{
		repo:   repo,
		logger: logger,
		now:    time.Now().UTC(),
	}
}

// Enrich mutates markers in place, setting History where the blamed
// line is known. Best effort: any per-file failure leaves that file's
// markers without history and other files proceed unaffected.
func (e *Enricher) Enrich(ctx context.Context, markers []*debt.Marker) {
	if e.repo == nil || len(markers) == 0 {
		return
	}

	// Group by file so blame is computed once per file. Relative order
	// within a group does not matter.
	groups := make(map[string][]*debt.Marker)
	for _, m := range markers {
		groups[m.FilePath] = append(groups[m.FilePath], m)
	}

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for filePath, group := range groups {
		filePath, group := filePath, group
		g.Go(func() error {
			e.enrichGroup(filePath, group)
			return nil
		})
	}

	// Workers never return errors; degradation is per file.
	_ = g.Wait()
}

// enrichGroup blames one file and assigns history to its markers.
func (e *Enricher) enrichGroup(filePath string, group []*debt.Marker) {
	rel, err := paths.Canonicalize(filePath, e.repo.Root)
	if err != nil || rel == ".." || strings.HasPrefix(rel, "../") {
		e.logger.Debug("file not resolvable inside repository",
			"path", filePath, "error", err)
		return
	}

	fh, err := runBlame(e.repo.Root, rel)
	if err != nil {
		// Untracked or unreadable file: markers keep nil history.
		e.logger.Debug("blame failed", "path", rel, "error", err)
		return
	}

	// Per-line cache, local to this file's processing.
	cache := make(map[int]*debt.HistoryInfo)

	for _, m := range group {
		if info, ok := cache[m.Line]; ok {
			m.History = info
			continue
		}
		info := e.lookupLine(fh, m.Line)
		cache[m.Line] = info
		m.History = info
	}
}

// lookupLine builds the HistoryInfo for one line, or nil when the line
// is absent from blame output (e.g. uncommitted).
func (e *Enricher) lookupLine(fh *fileHistory, line int) *debt.HistoryInfo {
	hash, ok := fh.lines[line]
	if !ok {
		return nil
	}
	commit, ok := fh.commits[hash]
	if !ok || commit.authorTime.IsZero() {
		return nil
	}

	ageDays := int(e.now.Sub(commit.authorTime).Hours() / 24)
	if ageDays < 0 {
		ageDays = 0
	}

	short := hash
	if len(short) > 7 {
		short = short[:7]
	}

	return &debt.HistoryInfo{
		AuthorName:  commit.author,
		AuthorEmail: commit.authorMail,
		CommitHash:  short,
		CommitTime:  commit.authorTime,
		AgeDays:     ageDays,
	}
}
