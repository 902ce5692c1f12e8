package analyzer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/smellscan/smellscan/pkg/analysis"
)

// Line classifiers are independent: each operates over the file's line
// sequence and appends issues to its own category only. The "preceded by a
// comment token" checks are plain substring-index comparisons, not lexical
// scans; a comment token inside a string literal fools them, and that is
// accepted.

var debtMarkers = []string{"TODO", "FIXME", "HACK", "XXX", "BUG", "DEPRECATED"}

var urgentDebtMarkers = map[string]bool{
	"FIXME": true,
	"BUG":   true,
	"HACK":  true,
}

var (
	consolePattern  = regexp.MustCompile(`\bconsole\.(log|debug|info|warn|error)\(`)
	weakTypePattern = regexp.MustCompile(`:\s*any\b|<any>`)
	numberPattern   = regexp.MustCompile(`\b(\d{2,})\b`)
)

// checkFileSize flags files above the configured line count.
func checkFileSize(cfg analysis.Config, path string, lines []string) []analysis.Issue {
	lineCount := len(lines)
	if lineCount <= cfg.LargeFileLines {
		return nil
	}

	severity := analysis.SeverityMedium
	if lineCount > analysis.SevereFileLines {
		severity = analysis.SeverityHigh
	}
	return []analysis.Issue{{
		Category: analysis.CategoryLargeFiles,
		File:     path,
		Lines:    lineCount,
		Severity: severity,
		Message:  fmt.Sprintf("File has %d lines (should be < %d)", lineCount, cfg.LargeFileLines),
	}}
}

// checkDebtMarkers flags debt-marker keywords on commented lines. The match
// is case-insensitive and a line can produce one issue per distinct marker.
func checkDebtMarkers(path string, lines []string) []analysis.Issue {
	var issues []analysis.Issue
	for num, line := range lines {
		if !strings.Contains(line, "//") && !strings.Contains(line, "/*") {
			continue
		}
		upper := strings.ToUpper(line)
		for _, marker := range debtMarkers {
			if !strings.Contains(upper, marker) {
				continue
			}
			severity := analysis.SeverityLow
			if urgentDebtMarkers[marker] {
				severity = analysis.SeverityHigh
			}
			issues = append(issues, analysis.Issue{
				Category: analysis.CategoryDebtMarkers,
				File:     path,
				Line:     num + 1,
				Marker:   marker,
				Severity: severity,
				Comment:  strings.TrimSpace(line),
				Message:  fmt.Sprintf("%s comment found", marker),
			})
		}
	}
	return issues
}

// checkConsoleStatements flags debug-output calls left in code, unless a
// comment token opens earlier on the same line.
func checkConsoleStatements(path string, lines []string) []analysis.Issue {
	var issues []analysis.Issue
	for num, line := range lines {
		if !consolePattern.MatchString(line) {
			continue
		}
		if commentIdx := strings.Index(line, "//"); commentIdx >= 0 && commentIdx < strings.Index(line, "console") {
			continue
		}
		issues = append(issues, analysis.Issue{
			Category: analysis.CategoryConsoleStatements,
			File:     path,
			Line:     num + 1,
			Severity: analysis.SeverityLow,
			Code:     strings.TrimSpace(line),
			Message:  "Console statement left in code",
		})
	}
	return issues
}

// checkWeakTypes flags explicit "any" annotations in statically typed files.
func checkWeakTypes(cfg analysis.Config, path string, lines []string) []analysis.Issue {
	if !cfg.HasTypedExtension(path) {
		return nil
	}

	var issues []analysis.Issue
	for num, line := range lines {
		if !weakTypePattern.MatchString(line) {
			continue
		}
		if commentIdx := strings.Index(line, "//"); commentIdx >= 0 && commentIdx < strings.Index(line, "any") {
			continue
		}
		issues = append(issues, analysis.Issue{
			Category: analysis.CategoryWeakTyping,
			File:     path,
			Line:     num + 1,
			Severity: analysis.SeverityMedium,
			Code:     strings.TrimSpace(line),
			Message:  `Using "any" type reduces type safety`,
		})
	}
	return issues
}

// checkNestingDepth tracks a running brace depth across the whole file and
// flags each line where the depth exceeds the limit and sets a new maximum.
func checkNestingDepth(cfg analysis.Config, path string, lines []string) []analysis.Issue {
	var issues []analysis.Issue
	maxDepth := 0
	currentDepth := 0

	for num, line := range lines {
		currentDepth += strings.Count(line, "{") - strings.Count(line, "}")
		if currentDepth <= maxDepth {
			continue
		}
		maxDepth = currentDepth

		if currentDepth > cfg.NestingLimit {
			severity := analysis.SeverityMedium
			if currentDepth > analysis.SevereNestingDepth {
				severity = analysis.SeverityHigh
			}
			issues = append(issues, analysis.Issue{
				Category: analysis.CategoryDeepNesting,
				File:     path,
				Line:     num + 1,
				Depth:    currentDepth,
				Severity: severity,
				Message:  fmt.Sprintf("Nesting depth of %d (should be < %d)", currentDepth, cfg.NestingLimit),
			})
		}
	}
	return issues
}

// checkMagicNumbers flags the first multi-digit literal per line that is not
// on the allow-list. Lines containing a comment token or a quote character
// are skipped entirely.
func checkMagicNumbers(cfg analysis.Config, path string, lines []string) []analysis.Issue {
	var issues []analysis.Issue
	for num, line := range lines {
		if strings.Contains(line, "//") || strings.Contains(line, "/*") ||
			strings.ContainsAny(line, `"'`) {
			continue
		}

		for _, literal := range numberPattern.FindAllString(line, -1) {
			value, err := strconv.Atoi(literal)
			if err == nil && cfg.AllowsNumber(value) {
				continue
			}
			issues = append(issues, analysis.Issue{
				Category: analysis.CategoryMagicNumbers,
				File:     path,
				Line:     num + 1,
				Number:   literal,
				Severity: analysis.SeverityLow,
				Code:     strings.TrimSpace(line),
				Message:  fmt.Sprintf("Magic number %s should be a named constant", literal),
			})
			break // one per line is enough
		}
	}
	return issues
}
