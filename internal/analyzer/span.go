package analyzer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/smellscan/smellscan/pkg/analysis"
)

// FunctionSpan is a heuristically matched function: a best-effort name, the
// match offset, and the balanced-brace body starting at the first opening
// brace after the match.
type FunctionSpan struct {
	Name  string
	Start int
	End   int
	Body  string
}

// Signature patterns: a named function declaration, an arrow function
// assigned to a const, and a bare method. They are applied independently, so
// the same underlying function may surface once per matching pattern.
// Duplicates are kept.
var signaturePatterns = []*regexp.Regexp{
	regexp.MustCompile(`function\s+(\w+)\s*\([^)]*\)\s*\{`),
	regexp.MustCompile(`const\s+(\w+)\s*=\s*\([^)]*\)\s*=>\s*\{`),
	regexp.MustCompile(`(\w+)\s*\([^)]*\)\s*\{`),
}

var longParamPattern = regexp.MustCompile(`(?:function\s+\w+|const\s+\w+\s*=.*?)\s*\(([^)]+)\)`)

// findFunctionSpans matches the signature patterns against the file text and
// extracts each candidate body via brace balancing. Constructs whose braces
// never balance before end of file are skipped silently.
func findFunctionSpans(content string) []FunctionSpan {
	var spans []FunctionSpan
	for _, pattern := range signaturePatterns {
		for _, match := range pattern.FindAllStringSubmatchIndex(content, -1) {
			name := content[match[2]:match[3]]
			start := match[0]
			body, end, ok := extractBody(content, start)
			if !ok {
				continue
			}
			spans = append(spans, FunctionSpan{Name: name, Start: start, End: end, Body: body})
		}
	}
	return spans
}

// extractBody scans forward from start keeping a running brace balance. The
// body begins at the first opening brace and ends where the balance returns
// to zero. Braces inside string or comment literals are counted like any
// other, which can cut a span short or extend it; that imprecision is the
// cost of not parsing.
func extractBody(content string, start int) (body string, end int, ok bool) {
	depth := 0
	bodyStart := -1
	for i := start; i < len(content); i++ {
		switch content[i] {
		case '{':
			if bodyStart < 0 {
				bodyStart = i
			}
			depth++
		case '}':
			depth--
			if depth == 0 && bodyStart >= 0 {
				return content[bodyStart : i+1], i + 1, true
			}
		}
	}
	return "", 0, false
}

// checkLongParameters flags signatures whose parenthesized parameter text
// splits into more comma-separated items than the configured limit.
func checkLongParameters(cfg analysis.Config, path, content string) []analysis.Issue {
	var issues []analysis.Issue
	for _, match := range longParamPattern.FindAllStringSubmatchIndex(content, -1) {
		params := content[match[2]:match[3]]

		count := 0
		for _, param := range strings.Split(params, ",") {
			if strings.TrimSpace(param) != "" {
				count++
			}
		}
		if count <= cfg.ParameterLimit {
			continue
		}

		severity := analysis.SeverityMedium
		if count > analysis.SevereParameterCount {
			severity = analysis.SeverityHigh
		}
		line := strings.Count(content[:match[0]], "\n") + 1

		issues = append(issues, analysis.Issue{
			Category:   analysis.CategoryLongParameters,
			File:       path,
			Line:       line,
			Parameters: count,
			Severity:   severity,
			Message:    fmt.Sprintf("Function has %d parameters (should be < %d)", count, cfg.ParameterLimit),
		})
	}
	return issues
}
