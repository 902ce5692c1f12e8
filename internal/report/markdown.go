package report

import (
	"fmt"
	"strings"

	"github.com/smellscan/smellscan/pkg/analysis"
)

// maxIssuesPerSeverity caps how many issues a severity subsection lists
// before collapsing the rest into a single count.
const maxIssuesPerSeverity = 10

// RenderMarkdown formats the report as a markdown document: run header,
// summary, severity distribution, then one section per category in the fixed
// category order.
func RenderMarkdown(report *analysis.Report, meta Metadata) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", meta.Title)
	fmt.Fprintf(&b, "**Generated:** %s\n", meta.Time.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "**Run ID:** %s\n", meta.RunID)
	fmt.Fprintf(&b, "**Source:** %s\n", meta.SourceFolder)
	writeRepositoryHeader(&b, meta)
	b.WriteString("\n")

	b.WriteString("## Summary\n\n")
	fmt.Fprintf(&b, "- **Files Analyzed:** %d\n", report.Stats.TotalFiles)
	fmt.Fprintf(&b, "- **Total Lines:** %d\n", report.Stats.TotalLines)
	fmt.Fprintf(&b, "- **Total Issues:** %d\n\n", report.Stats.TotalIssues)

	b.WriteString("### Issues by Severity\n\n")
	counts := report.SeverityCounts()
	for _, severity := range []analysis.Severity{analysis.SeverityHigh, analysis.SeverityMedium, analysis.SeverityLow} {
		fmt.Fprintf(&b, "- **%s:** %d\n", strings.ToUpper(string(severity)), counts[severity])
	}
	b.WriteString("\n")

	for _, category := range analysis.CategoryOrder {
		issues := report.Issues[category]
		if len(issues) == 0 {
			continue
		}
		fmt.Fprintf(&b, "## %s (%d issues)\n\n", analysis.CategoryTitles[category], len(issues))
		writeCategorySection(&b, issues)
	}

	return b.String()
}

func writeRepositoryHeader(b *strings.Builder, meta Metadata) {
	if meta.Repository == nil {
		return
	}
	if meta.Repository.RepositoryFullName != nil {
		fmt.Fprintf(b, "**Repository:** %s\n", *meta.Repository.RepositoryFullName)
	}
	if meta.Repository.BranchName != nil {
		fmt.Fprintf(b, "**Branch:** %s\n", *meta.Repository.BranchName)
	}
	if meta.Repository.CommitHash != nil {
		fmt.Fprintf(b, "**Commit:** %s\n", *meta.Repository.CommitHash)
	}
}

// writeCategorySection groups a category's issues by severity, listing the
// highest first and capping each subsection.
func writeCategorySection(b *strings.Builder, issues []analysis.Issue) {
	grouped := map[analysis.Severity][]analysis.Issue{}
	for _, issue := range issues {
		grouped[issue.Severity] = append(grouped[issue.Severity], issue)
	}

	sections := []struct {
		heading  string
		severity analysis.Severity
	}{
		{"High", analysis.SeverityHigh},
		{"Medium", analysis.SeverityMedium},
		{"Low", analysis.SeverityLow},
	}

	for _, section := range sections {
		severityIssues := grouped[section.severity]
		if len(severityIssues) == 0 {
			continue
		}
		fmt.Fprintf(b, "### %s Priority\n\n", section.heading)

		limit := len(severityIssues)
		if limit > maxIssuesPerSeverity {
			limit = maxIssuesPerSeverity
		}
		for _, issue := range severityIssues[:limit] {
			b.WriteString("- **" + issue.File + "**")
			if issue.Line > 0 {
				fmt.Fprintf(b, " (line %d)", issue.Line)
			}
			b.WriteString(": " + issue.Message + "\n")
			if issue.Code != "" {
				fmt.Fprintf(b, "\n  ```\n  %s\n  ```\n", issue.Code)
			}
		}
		if len(severityIssues) > maxIssuesPerSeverity {
			fmt.Fprintf(b, "\n_... and %d more_\n", len(severityIssues)-maxIssuesPerSeverity)
		}
		b.WriteString("\n")
	}
}
