package analyzer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/smellscan/smellscan/pkg/analysis"
)

var decisionPointPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bif\b`),
	regexp.MustCompile(`\belse\s+if\b`),
	regexp.MustCompile(`\bfor\b`),
	regexp.MustCompile(`\bwhile\b`),
	regexp.MustCompile(`\bcase\b`),
	regexp.MustCompile(`\bcatch\b`),
}

// estimateComplexity scores branching density: one implicit path plus one per
// decision-point occurrence. The heuristic is purely additive; an "else if"
// is hit by both the if and the else-if patterns.
func estimateComplexity(body string) int {
	complexity := 1
	for _, pattern := range decisionPointPatterns {
		complexity += len(pattern.FindAllStringIndex(body, -1))
	}
	complexity += strings.Count(body, "&&")
	complexity += strings.Count(body, "||")
	complexity += strings.Count(body, "?")
	return complexity
}

// checkComplexity flags spans whose complexity or body size exceeds the
// configured limits. Body size is the body's internal newline count.
func checkComplexity(cfg analysis.Config, path string, spans []FunctionSpan) []analysis.Issue {
	var issues []analysis.Issue
	for _, span := range spans {
		complexity := estimateComplexity(span.Body)
		bodyLines := strings.Count(span.Body, "\n")

		if complexity <= cfg.ComplexityLimit && bodyLines <= cfg.FunctionLines {
			continue
		}

		severity := analysis.SeverityMedium
		if complexity > analysis.SevereComplexity || bodyLines > analysis.SevereFunctionLines {
			severity = analysis.SeverityHigh
		}

		issues = append(issues, analysis.Issue{
			Category:   analysis.CategoryComplexFunctions,
			File:       path,
			Function:   span.Name,
			Complexity: complexity,
			Lines:      bodyLines,
			Severity:   severity,
			Message:    fmt.Sprintf("Function %q has complexity %d and %d lines", span.Name, complexity, bodyLines),
		})
	}
	return issues
}
