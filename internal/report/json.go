package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/smellscan/smellscan/pkg/analysis"
)

// WriteJSON writes the report as indented JSON: stats plus the category to
// issue-list mapping.
func WriteJSON(report *analysis.Report, w io.Writer) error {
	data, err := json.MarshalIndent(report, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
