package rewrite

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// consoleReplacements maps console calls to their logger equivalents. Order
// matters only for deterministic counting, not correctness.
var consoleReplacements = []struct {
	pattern     *regexp.Regexp
	replacement string
}{
	{regexp.MustCompile(`console\.error\(`), "logger.error("},
	{regexp.MustCompile(`console\.warn\(`), "logger.warn("},
	{regexp.MustCompile(`console\.log\(`), "logger.log("},
	{regexp.MustCompile(`console\.debug\(`), "logger.debug("},
	{regexp.MustCompile(`console\.info\(`), "logger.info("},
}

// skipSuffixes are files never rewritten: the logger implementation itself
// and tool configuration.
var skipSuffixes = []string{
	"src/utils/logger.ts",
	"eslint.config.js",
}

var importMarkers = []string{
	"from './utils/logger'",
	`from "@/utils/logger"`,
	"from './logger'",
	"from '../logger'",
}

// Rewriter replaces console statements with logger calls across a TypeScript
// source tree, inserting the logger import where needed.
type Rewriter struct {
	logger hclog.Logger
	dryRun bool
}

// FileChange records one modified file and its replacement count.
type FileChange struct {
	Path         string
	Replacements int
}

// Result summarizes a rewrite run.
type Result struct {
	FilesModified     int
	TotalReplacements int
	Changes           []FileChange
}

func New(logger hclog.Logger, dryRun bool) *Rewriter {
	return &Rewriter{logger: logger, dryRun: dryRun}
}

// Run walks the source root and rewrites every eligible .ts/.tsx file. Files
// are processed in sorted order so repeated runs report identically.
func (r *Rewriter) Run(root string) (*Result, error) {
	paths, err := findSourceFiles(root)
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	result := &Result{}
	for _, path := range paths {
		modified, replacements, err := r.processFile(path)
		if err != nil {
			r.logger.Error("failed to process file", "path", path, "error", err)
			continue
		}
		if !modified {
			continue
		}

		relPath, relErr := filepath.Rel(root, path)
		if relErr != nil {
			relPath = path
		}
		result.FilesModified++
		result.TotalReplacements += replacements
		result.Changes = append(result.Changes, FileChange{Path: filepath.ToSlash(relPath), Replacements: replacements})
		r.logger.Info("rewrote console statements", "path", relPath, "replacements", replacements)
	}
	return result, nil
}

// processFile rewrites a single file, returning whether it changed and how
// many replacements were made. In dry-run mode nothing is written back.
func (r *Rewriter) processFile(path string) (bool, int, error) {
	if shouldSkip(path) {
		return false, 0, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return false, 0, fmt.Errorf("failed to read %q: %w", path, err)
	}
	original := string(data)

	updated, replacements := replaceConsoleStatements(original)
	if replacements == 0 {
		return false, 0, nil
	}

	if needsLoggerImport(original) {
		updated = addLoggerImport(updated, filepath.ToSlash(path))
	}

	if r.dryRun {
		return true, replacements, nil
	}
	if err := os.WriteFile(path, []byte(updated), 0644); err != nil {
		return false, 0, fmt.Errorf("failed to write %q: %w", path, err)
	}
	return true, replacements, nil
}

// shouldSkip excludes test files, scripts, tooling and the skip list.
func shouldSkip(path string) bool {
	slashPath := filepath.ToSlash(path)
	if strings.Contains(slashPath, "/tests/") || strings.Contains(slashPath, ".test.") {
		return true
	}
	if strings.Contains(slashPath, "/scripts/") || strings.Contains(slashPath, "/.claude/") {
		return true
	}
	for _, suffix := range skipSuffixes {
		if strings.HasSuffix(slashPath, suffix) {
			return true
		}
	}
	return false
}

// replaceConsoleStatements applies every console-to-logger substitution and
// counts the total replacements.
func replaceConsoleStatements(content string) (string, int) {
	replacements := 0
	for _, rule := range consoleReplacements {
		matches := len(rule.pattern.FindAllStringIndex(content, -1))
		if matches == 0 {
			continue
		}
		content = rule.pattern.ReplaceAllString(content, rule.replacement)
		replacements += matches
	}
	return content, replacements
}

// needsLoggerImport reports whether the file references console output but
// does not yet import the logger.
func needsLoggerImport(content string) bool {
	for _, marker := range importMarkers {
		if strings.Contains(content, marker) {
			return false
		}
	}
	for _, rule := range consoleReplacements {
		if rule.pattern.MatchString(content) {
			return true
		}
	}
	return false
}

// addLoggerImport inserts the logger import after the last import statement,
// or at the top of the file when there are none. Files under src/utils/ get a
// relative import; everything else uses the path alias.
func addLoggerImport(content, path string) string {
	importLine := `import { logger } from '@/utils/logger'`
	if strings.Contains(path, "src/utils/") {
		importLine = `import { logger } from './logger'`
	}

	lines := strings.Split(content, "\n")
	lastImportIdx := -1
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "import ") || strings.HasPrefix(trimmed, "} from") {
			lastImportIdx = i
		}
	}

	if lastImportIdx == -1 {
		return importLine + "\n\n" + content
	}

	updated := make([]string, 0, len(lines)+1)
	updated = append(updated, lines[:lastImportIdx+1]...)
	updated = append(updated, importLine)
	updated = append(updated, lines[lastImportIdx+1:]...)
	return strings.Join(updated, "\n")
}

// findSourceFiles lists .ts/.tsx files under root, excluding declarations.
func findSourceFiles(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("source root %q: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("source root %q is not a directory", root)
	}

	var paths []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		name := d.Name()
		if strings.HasSuffix(name, ".d.ts") {
			return nil
		}
		if strings.HasSuffix(name, ".ts") || strings.HasSuffix(name, ".tsx") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %q: %w", root, err)
	}
	return paths, nil
}
