package deps

import (
	"fmt"
	"sort"
	"strings"

	"github.com/smellscan/smellscan/pkg/analysis"
)

// RenderMarkdown formats a manifest analysis as a markdown report.
func RenderMarkdown(a *Analysis) string {
	var b strings.Builder

	b.WriteString("# Dependency Analysis Report\n\n")
	fmt.Fprintf(&b, "**Package:** %s\n", a.PackageName)
	fmt.Fprintf(&b, "**Dependencies:** %d\n", a.TotalDependencies)
	fmt.Fprintf(&b, "**Dev Dependencies:** %d\n", a.TotalDevDependencies)
	fmt.Fprintf(&b, "**Total Issues:** %d\n\n", a.Summary.TotalIssues)

	b.WriteString("## Summary\n\n")
	for _, severity := range []analysis.Severity{analysis.SeverityHigh, analysis.SeverityMedium, analysis.SeverityLow} {
		if count := a.Summary.BySeverity[severity]; count > 0 {
			fmt.Fprintf(&b, "- **%s:** %d\n", strings.ToUpper(string(severity)), count)
		}
	}
	b.WriteString("\n")

	for _, category := range CategoryOrder {
		findings := a.Findings[category]
		if len(findings) == 0 {
			continue
		}
		fmt.Fprintf(&b, "## %s (%d)\n\n", categoryTitles[category], len(findings))

		for _, finding := range findings {
			name := finding.Package
			if name == "" {
				name = finding.Functionality
			}
			fmt.Fprintf(&b, "### %s [%s]\n\n", name, strings.ToUpper(string(finding.Severity)))
			fmt.Fprintf(&b, "%s\n", finding.Message)
			if finding.Version != "" {
				fmt.Fprintf(&b, "- Current version: `%s`\n", finding.Version)
			}
			if len(finding.Packages) > 0 {
				fmt.Fprintf(&b, "- Affected packages: %s\n", strings.Join(finding.Packages, ", "))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("## Recommendations\n\n")
	if a.Summary.TotalIssues > 0 {
		b.WriteString("1. Update deprecated packages to modern alternatives\n")
		b.WriteString("2. Consolidate duplicate functionality to reduce bundle size\n")
		b.WriteString("3. Run `npm audit` or `yarn audit` to check for security vulnerabilities\n")
		b.WriteString("4. Consider running `npm outdated` to check for available updates\n")
		b.WriteString("5. Use `depcheck` or similar tools to find unused dependencies\n")
	} else {
		b.WriteString("No major dependency issues detected.\n")
	}

	return b.String()
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
