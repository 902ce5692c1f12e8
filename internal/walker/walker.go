package walker

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"

	"github.com/smellscan/smellscan/pkg/analysis"
)

// Entry is one element of the walk stream: either an eligible file path
// relative to the scan root, or a traversal error tied to the entry that
// caused it.
type Entry struct {
	RelPath string
	Err     error
}

// Walker enumerates eligible source files under a root, filtering by
// extension allow-list and excluded path substrings.
type Walker struct {
	cfg    analysis.Config
	logger hclog.Logger
}

func New(cfg analysis.Config, logger hclog.Logger) *Walker {
	return &Walker{cfg: cfg, logger: logger}
}

// Walk verifies the root and streams eligible files over the returned
// channel. The sequence is lazy, finite and non-restartable; directory read
// errors are surfaced as entries with Err set and the traversal continues.
// A missing or non-directory root fails here, before any scanning begins.
func (w *Walker) Walk(root string) (<-chan Entry, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("scan root %q: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scan root %q is not a directory", root)
	}

	out := make(chan Entry)
	go func() {
		defer close(out)
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				w.logger.Debug("walk error", "path", path, "error", err)
				out <- Entry{RelPath: w.relativeTo(root, path), Err: err}
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if d.IsDir() {
				return nil
			}

			rel := w.relativeTo(root, path)
			if !w.cfg.MatchesExtension(rel) || w.cfg.IsExcluded(rel) {
				return nil
			}
			out <- Entry{RelPath: rel}
			return nil
		})
	}()
	return out, nil
}

func (w *Walker) relativeTo(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
