package scan

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/JRedrupp/fossil/internal/config"
	"github.com/JRedrupp/fossil/internal/debt"
	scanerrors "github.com/JRedrupp/fossil/internal/errors"
)

// maxFileSize is the per-file ceiling; larger files are skipped before
// scanning begins.
const maxFileSize = 10 * 1024 * 1024

// Scanner walks a directory tree and extracts debt markers from every
// eligible file.
type Scanner struct {
	cfg     *config.Config
	pattern *Pattern
	logger  *slog.Logger
	workers int
}

// NewScanner compiles the marker pattern from cfg and returns a
// ready-to-use Scanner. Pattern compilation failure is fatal.
func NewScanner(cfg *config.Config, logger *slog.Logger) (*Scanner, error) {
	pat, err := Compile(cfg.Markers)
	if err != nil {
		return nil, err
	}
	return &Scanner{
		cfg:     cfg,
		pattern: pat,
		logger:  logger,
		workers: runtime.NumCPU(),
	}, nil
}

// Pattern exposes the compiled rule, mainly for tests.
func (s *Scanner) Pattern() *Pattern {
	return s.pattern
}

// Scan walks root and returns all markers found beneath it. The walk
// fully drains before returning. Cross-file ordering is completion
// order; each file's own markers stay in ascending line order.
func (s *Scanner) Scan(ctx context.Context, root string) ([]*debt.Marker, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, scanerrors.New(scanerrors.RootNotFound,
			"scan root is not a readable directory: "+root, err)
	}

	ignored := loadGitIgnored(root)
	excluded := make(map[string]bool, len(s.cfg.IgnoredDirs))
	for _, d := range s.cfg.IgnoredDirs {
		excluded[d] = true
	}

	var (
		markers []*debt.Marker
		mu      sync.Mutex
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Permission errors and vanished entries are skipped,
			// never fatal.
			s.logger.Debug("skipping unreadable entry", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if path != root && excluded[d.Name()] {
				return filepath.SkipDir
			}
			if ignored[rel+"/"] {
				return filepath.SkipDir
			}
			return nil
		}

		// Regular files only; WalkDir does not follow symlinks, so
		// link cycles cannot occur.
		if !d.Type().IsRegular() {
			return nil
		}
		if ignored[rel] {
			return nil
		}
		if isBinaryPath(path) {
			return nil
		}
		if fi, err := d.Info(); err != nil || fi.Size() > maxFileSize {
			if err == nil {
				s.logger.Debug("skipping oversized file", "path", path, "size", fi.Size())
			}
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		g.Go(func() error {
			found, err := scanFile(path, s.pattern, s.cfg.ContextLines)
			if err != nil {
				// Recoverable per file: skip and continue.
				s.logger.Debug("failed to scan file", "path", path, "error", err)
				return nil
			}
			if len(found) > 0 {
				mu.Lock()
				markers = append(markers, found...)
				mu.Unlock()
			}
			return nil
		})
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if walkErr != nil {
		return nil, scanerrors.New(scanerrors.InternalError,
			"tree walk failed", walkErr)
	}

	s.logger.Info("scan complete", "root", root, "markers", len(markers))
	return markers, nil
}

// isBinaryPath reports whether the file extension marks a file we never
// scan.
func isBinaryPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg", ".gif", ".ico", ".pdf",
		".zip", ".tar", ".gz", ".exe", ".dll", ".so", ".dylib",
		".bin", ".dat", ".woff", ".woff2", ".ttf", ".class", ".pyc",
		".o", ".a":
		return true
	}
	return false
}
