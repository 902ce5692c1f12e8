package analysis

// Report is the aggregated output of one scan run: issues grouped by category
// in insertion order, plus derived counters. It is the value consumed by the
// rendering layer; the engine itself never formats text.
type Report struct {
	Stats  Stats                `json:"stats"`
	Issues map[Category][]Issue `json:"issues"`
}

// NewReport returns an empty report ready to be folded into.
func NewReport() *Report {
	return &Report{
		Issues: make(map[Category][]Issue),
	}
}

// Append adds issues to their categories, preserving insertion order.
func (r *Report) Append(issues ...Issue) {
	for _, issue := range issues {
		r.Issues[issue.Category] = append(r.Issues[issue.Category], issue)
		r.Stats.TotalIssues++
	}
}

// RecordFile counts one scanned file and its line total.
func (r *Report) RecordFile(lineCount int) {
	r.Stats.TotalFiles++
	r.Stats.TotalLines += lineCount
}

// SeverityCounts tallies issues per severity level across all categories.
func (r *Report) SeverityCounts() map[Severity]int {
	counts := map[Severity]int{
		SeverityLow:    0,
		SeverityMedium: 0,
		SeverityHigh:   0,
	}
	for _, issues := range r.Issues {
		for _, issue := range issues {
			counts[issue.Severity]++
		}
	}
	return counts
}
