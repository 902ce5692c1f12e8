package analysis

// Severity ranks how urgently a finding should be addressed.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Category identifies the kind of smell a finding belongs to. Every issue
// carries exactly one category.
type Category string

const (
	CategoryLargeFiles        Category = "large_files"
	CategoryComplexFunctions  Category = "complex_functions"
	CategoryDebtMarkers       Category = "debt_markers"
	CategoryConsoleStatements Category = "console_statements"
	CategoryWeakTyping        Category = "weak_typing"
	CategoryLongParameters    Category = "long_parameters"
	CategoryDeepNesting       Category = "deep_nesting"
	CategoryMagicNumbers      Category = "magic_numbers"
	CategoryErrors            Category = "errors"
)

// CategoryOrder fixes the order in which categories are rendered in reports.
var CategoryOrder = []Category{
	CategoryLargeFiles,
	CategoryComplexFunctions,
	CategoryDebtMarkers,
	CategoryConsoleStatements,
	CategoryWeakTyping,
	CategoryLongParameters,
	CategoryDeepNesting,
	CategoryMagicNumbers,
	CategoryErrors,
}

// CategoryTitles maps categories to the headings used in rendered reports.
var CategoryTitles = map[Category]string{
	CategoryLargeFiles:        "Large Files",
	CategoryComplexFunctions:  "Complex Functions",
	CategoryDebtMarkers:       "Technical Debt Markers",
	CategoryConsoleStatements: "Console Statements",
	CategoryWeakTyping:        "Weak Typing",
	CategoryLongParameters:    "Long Parameter Lists",
	CategoryDeepNesting:       "Deep Nesting",
	CategoryMagicNumbers:      "Magic Numbers",
	CategoryErrors:            "Analysis Errors",
}

// Issue is a single finding produced by the engine. Only the fields relevant
// to the issue's category are populated.
type Issue struct {
	Category   Category `json:"-"`
	File       string   `json:"file"`
	Line       int      `json:"line,omitempty"`
	Severity   Severity `json:"severity"`
	Message    string   `json:"message"`
	Function   string   `json:"function,omitempty"`
	Complexity int      `json:"complexity,omitempty"`
	Lines      int      `json:"lines,omitempty"`
	Marker     string   `json:"marker,omitempty"`
	Comment    string   `json:"comment,omitempty"`
	Code       string   `json:"code,omitempty"`
	Parameters int      `json:"parameters,omitempty"`
	Depth      int      `json:"depth,omitempty"`
	Number     string   `json:"number,omitempty"`
}

// Stats holds the derived counters for one scan run.
type Stats struct {
	TotalFiles  int `json:"total_files"`
	TotalLines  int `json:"total_lines"`
	TotalIssues int `json:"total_issues"`
}
