package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/smellscan/smellscan/pkg/analysis"
)

// PrintSummary writes a short severity-colored summary of the run, meant for
// the terminal after a report has been saved to a file.
func PrintSummary(report *analysis.Report, w io.Writer) {
	bold := color.New(color.Bold)

	fmt.Fprintln(w)
	bold.Fprintf(w, "Scanned %d files (%d lines), %d issues found\n",
		report.Stats.TotalFiles, report.Stats.TotalLines, report.Stats.TotalIssues)

	counts := report.SeverityCounts()
	severityColors := []struct {
		severity analysis.Severity
		color    *color.Color
	}{
		{analysis.SeverityHigh, color.New(color.FgRed, color.Bold)},
		{analysis.SeverityMedium, color.New(color.FgYellow, color.Bold)},
		{analysis.SeverityLow, color.New(color.FgGreen, color.Bold)},
	}
	for _, sc := range severityColors {
		sc.color.Fprintf(w, "  %s: %d\n", strings.ToUpper(string(sc.severity)), counts[sc.severity])
	}

	for _, category := range analysis.CategoryOrder {
		if issueCount := len(report.Issues[category]); issueCount > 0 {
			fmt.Fprintf(w, "  %s: %d\n", analysis.CategoryTitles[category], issueCount)
		}
	}
	fmt.Fprintln(w)
}
