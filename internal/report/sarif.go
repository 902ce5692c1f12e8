package report

import (
	"fmt"
	"io"

	"github.com/owenrumney/go-sarif/v2/sarif"

	"github.com/smellscan/smellscan/pkg/analysis"
)

const (
	toolName           = "smellscan"
	toolInformationURI = "https://github.com/smellscan/smellscan"
)

// WriteSarif converts the report to SARIF 2.1.0 and writes it out. One rule
// is registered per issue category; severities map onto SARIF levels.
func WriteSarif(report *analysis.Report, w io.Writer) error {
	sarifReport, err := sarif.New(sarif.Version210)
	if err != nil {
		return fmt.Errorf("failed to create SARIF report: %w", err)
	}

	run := sarif.NewRunWithInformationURI(toolName, toolInformationURI)
	for _, category := range analysis.CategoryOrder {
		issues := report.Issues[category]
		if len(issues) == 0 {
			continue
		}

		rule := run.AddRule(string(category)).
			WithDescription(analysis.CategoryTitles[category])

		for _, issue := range issues {
			location := sarif.NewLocation().WithPhysicalLocation(
				sarif.NewPhysicalLocation().
					WithArtifactLocation(sarif.NewArtifactLocation().WithUri(issue.File)).
					WithRegion(sarif.NewRegion().WithStartLine(issue.Line)),
			)

			result := sarif.NewRuleResult(rule.ID).
				WithMessage(sarif.NewTextMessage(issue.Message)).
				WithLevel(toSarifLevel(issue.Severity)).
				WithLocations([]*sarif.Location{location})
			run.AddResult(result)
		}
	}
	sarifReport.AddRun(run)

	if err := sarifReport.PrettyWrite(w); err != nil {
		return fmt.Errorf("failed to write SARIF report: %w", err)
	}
	return nil
}

func toSarifLevel(severity analysis.Severity) string {
	switch severity {
	case analysis.SeverityHigh:
		return "error"
	case analysis.SeverityMedium:
		return "warning"
	case analysis.SeverityLow:
		return "note"
	default:
		return "none"
	}
}
