package analyzer

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/hashicorp/go-hclog"

	"github.com/smellscan/smellscan/internal/walker"
	"github.com/smellscan/smellscan/pkg/analysis"
)

// Scanner locates function spans and classifies lines within one file. The
// default implementation is the heuristic text scanner; a grammar-aware
// implementation can be swapped in without touching the issue model or any
// classifier's contract.
type Scanner interface {
	FindFunctionSpans(content string) []FunctionSpan
	ClassifyLines(path, content string, lines []string) []analysis.Issue
}

// heuristicScanner is the regex-and-brace-balance implementation. It trades
// syntactic precision for speed: no lexer, no grammar, no dependency on a
// compiler front end.
type heuristicScanner struct {
	cfg analysis.Config
}

func (s heuristicScanner) FindFunctionSpans(content string) []FunctionSpan {
	return findFunctionSpans(content)
}

func (s heuristicScanner) ClassifyLines(path, content string, lines []string) []analysis.Issue {
	var issues []analysis.Issue
	issues = append(issues, checkFileSize(s.cfg, path, lines)...)
	issues = append(issues, checkDebtMarkers(path, lines)...)
	issues = append(issues, checkConsoleStatements(path, lines)...)
	issues = append(issues, checkWeakTypes(s.cfg, path, lines)...)
	issues = append(issues, checkLongParameters(s.cfg, path, content)...)
	issues = append(issues, checkNestingDepth(s.cfg, path, lines)...)
	issues = append(issues, checkMagicNumbers(s.cfg, path, lines)...)
	return issues
}

// Analyzer runs the structural scan over a directory tree and folds the
// per-file findings into a single report.
type Analyzer struct {
	cfg     analysis.Config
	scanner Scanner
	logger  hclog.Logger
	workers int
}

// New creates an Analyzer with the given configuration and worker count.
func New(cfg analysis.Config, logger hclog.Logger, workers int) *Analyzer {
	if workers < 1 {
		workers = 1
	}
	return &Analyzer{
		cfg:     cfg,
		scanner: heuristicScanner{cfg: cfg},
		logger:  logger,
		workers: workers,
	}
}

// fileResult is the outcome of one per-file pass. counted marks results that
// contribute to the file/line statistics; walk errors do not.
type fileResult struct {
	path    string
	lines   int
	counted bool
	issues  []analysis.Issue
}

// Run walks the root and analyzes every eligible file. Files are processed by
// a bounded pool of workers; since workers complete out of order, the per-file
// results are sorted by path before folding, so an unchanged tree always
// produces an identical report.
func (a *Analyzer) Run(root string) (*analysis.Report, error) {
	entries, err := walker.New(a.cfg, a.logger).Walk(root)
	if err != nil {
		return nil, err
	}

	var (
		mu      sync.Mutex
		results []fileResult
		wg      sync.WaitGroup
	)
	guard := make(chan struct{}, a.workers)

	for entry := range entries {
		if entry.Err != nil {
			mu.Lock()
			results = append(results, fileResult{
				path:   entry.RelPath,
				issues: []analysis.Issue{errorIssue(entry.RelPath, entry.Err)},
			})
			mu.Unlock()
			continue
		}

		guard <- struct{}{} // blocks while the pool is full
		wg.Add(1)
		go func(rel string) {
			defer wg.Done()
			result := a.analyzePath(root, rel)
			mu.Lock()
			results = append(results, result)
			mu.Unlock()
			<-guard
		}(entry.RelPath)
	}
	wg.Wait()

	sort.Slice(results, func(i, j int) bool { return results[i].path < results[j].path })

	report := analysis.NewReport()
	for _, result := range results {
		if result.counted {
			report.RecordFile(result.lines)
		}
		report.Append(result.issues...)
	}

	a.logger.Debug("scan finished",
		"files", report.Stats.TotalFiles,
		"lines", report.Stats.TotalLines,
		"issues", report.Stats.TotalIssues,
	)
	return report, nil
}

// analyzePath reads one file and runs the pure per-file pass. A read failure
// is recovered locally as a single errors-category issue.
func (a *Analyzer) analyzePath(root, rel string) fileResult {
	content, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		a.logger.Warn("failed to read file", "path", rel, "error", err)
		return fileResult{
			path:    rel,
			counted: true,
			issues:  []analysis.Issue{errorIssue(rel, err)},
		}
	}

	lineCount, issues := a.AnalyzeContent(rel, string(content))
	return fileResult{path: rel, counted: true, lines: lineCount, issues: issues}
}

// AnalyzeContent is the pure per-file pass: (path, text, config) to a list of
// issues, with no shared state touched mid-scan. It returns the file's line
// count alongside its findings.
func (a *Analyzer) AnalyzeContent(path, content string) (int, []analysis.Issue) {
	lines := strings.Split(content, "\n")

	var issues []analysis.Issue
	issues = append(issues, checkComplexity(a.cfg, path, a.scanner.FindFunctionSpans(content))...)
	issues = append(issues, a.scanner.ClassifyLines(path, content, lines)...)
	return len(lines), issues
}

func errorIssue(path string, err error) analysis.Issue {
	return analysis.Issue{
		Category: analysis.CategoryErrors,
		File:     path,
		Severity: analysis.SeverityHigh,
		Message:  fmt.Sprintf("Error analyzing file: %v", err),
	}
}
