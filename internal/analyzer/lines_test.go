package analyzer

import (
	"testing"

	"github.com/smellscan/smellscan/pkg/analysis"
)

func makeLines(count int) []string {
	lines := make([]string, count)
	for i := range lines {
		lines[i] = "const x = 1;"
	}
	return lines
}

func TestCheckFileSize(t *testing.T) {
	cfg := analysis.DefaultConfig()

	tests := []struct {
		name         string
		lineCount    int
		wantIssues   int
		wantSeverity analysis.Severity
	}{
		{"at the limit", 500, 0, ""},
		{"above the limit", 501, 1, analysis.SeverityMedium},
		{"far above the limit", 1001, 1, analysis.SeverityHigh},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := checkFileSize(cfg, "src/big.ts", makeLines(tt.lineCount))
			if len(issues) != tt.wantIssues {
				t.Fatalf("got %d issues, want %d", len(issues), tt.wantIssues)
			}
			if tt.wantIssues == 1 && issues[0].Severity != tt.wantSeverity {
				t.Errorf("got severity %q, want %q", issues[0].Severity, tt.wantSeverity)
			}
		})
	}
}

func TestCheckDebtMarkers(t *testing.T) {
	tests := []struct {
		name         string
		line         string
		wantIssues   int
		wantMarker   string
		wantSeverity analysis.Severity
	}{
		{"todo comment", "// TODO: tidy this up", 1, "TODO", analysis.SeverityLow},
		{"fixme block comment", "/* FIXME broken on resize */", 1, "FIXME", analysis.SeverityHigh},
		{"lowercase marker", "// todo later", 1, "TODO", analysis.SeverityLow},
		{"marker outside a comment", "const FIXME = 1;", 0, "", ""},
		{"plain comment", "// nothing to see", 0, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := checkDebtMarkers("src/app.ts", []string{tt.line})
			if len(issues) != tt.wantIssues {
				t.Fatalf("got %d issues, want %d", len(issues), tt.wantIssues)
			}
			if tt.wantIssues == 0 {
				return
			}
			if issues[0].Marker != tt.wantMarker {
				t.Errorf("got marker %q, want %q", issues[0].Marker, tt.wantMarker)
			}
			if issues[0].Severity != tt.wantSeverity {
				t.Errorf("got severity %q, want %q", issues[0].Severity, tt.wantSeverity)
			}
		})
	}
}

func TestCheckDebtMarkersMultiplePerLine(t *testing.T) {
	issues := checkDebtMarkers("src/app.ts", []string{"// TODO and FIXME in one place"})

	if len(issues) != 2 {
		t.Fatalf("got %d issues, want 2", len(issues))
	}
}

func TestCheckConsoleStatements(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		wantIssues int
	}{
		{"console call", "console.log('hi');", 1},
		{"console warn", "  console.warn(err);", 1},
		{"commented out", "// console.log('hi');", 0},
		{"not the console object", "myconsole.log('hi');", 0},
		{"unmatched method", "console.table(rows);", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := checkConsoleStatements("src/app.ts", []string{tt.line})
			if len(issues) != tt.wantIssues {
				t.Fatalf("got %d issues, want %d", len(issues), tt.wantIssues)
			}
		})
	}
}

func TestCheckWeakTypes(t *testing.T) {
	cfg := analysis.DefaultConfig()

	tests := []struct {
		name       string
		path       string
		line       string
		wantIssues int
	}{
		{"any annotation", "src/app.ts", "function f(x: any) {", 1},
		{"any cast", "src/app.tsx", "const v = <any>raw;", 1},
		{"identifier prefix only", "src/app.ts", "let y: anyType = z;", 0},
		{"commented out", "src/app.ts", "// x: any", 0},
		{"untyped file", "src/app.js", "function f(x: any) {", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := checkWeakTypes(cfg, tt.path, []string{tt.line})
			if len(issues) != tt.wantIssues {
				t.Fatalf("got %d issues, want %d", len(issues), tt.wantIssues)
			}
		})
	}
}

func TestCheckNestingDepth(t *testing.T) {
	cfg := analysis.DefaultConfig()
	lines := []string{
		"function f() {",
		"  if (a) {",
		"    if (b) {",
		"      if (c) {",
		"        if (d) {",
		"          if (e) {",
		"            if (g) {",
		"            }",
		"          }",
		"        }",
		"      }",
		"    }",
		"  }",
		"}",
	}

	issues := checkNestingDepth(cfg, "src/app.ts", lines)

	if len(issues) != 3 {
		t.Fatalf("got %d issues, want 3", len(issues))
	}
	wantDepths := []int{5, 6, 7}
	wantSeverities := []analysis.Severity{analysis.SeverityMedium, analysis.SeverityMedium, analysis.SeverityHigh}
	for i, issue := range issues {
		if issue.Depth != wantDepths[i] {
			t.Errorf("issue %d: got depth %d, want %d", i, issue.Depth, wantDepths[i])
		}
		if issue.Severity != wantSeverities[i] {
			t.Errorf("issue %d: got severity %q, want %q", i, issue.Severity, wantSeverities[i])
		}
		if issue.Line != wantDepths[i] {
			t.Errorf("issue %d: got line %d, want %d", i, issue.Line, wantDepths[i])
		}
	}
}

func TestCheckNestingDepthReportsNewMaximumOnly(t *testing.T) {
	cfg := analysis.DefaultConfig()
	lines := []string{"{", "{", "{", "{", "{", "}", "{"}

	issues := checkNestingDepth(cfg, "src/app.ts", lines)

	if len(issues) != 1 {
		t.Fatalf("got %d issues, want 1", len(issues))
	}
	if issues[0].Line != 5 {
		t.Errorf("got line %d, want 5", issues[0].Line)
	}
}

func TestCheckMagicNumbers(t *testing.T) {
	cfg := analysis.DefaultConfig()

	tests := []struct {
		name       string
		line       string
		wantIssues int
		wantNumber string
	}{
		{"magic literal", "const timeout = 5000;", 1, "5000"},
		{"allow-listed literal", "const pct = value * 100;", 0, ""},
		{"single digit", "const n = i + 5;", 0, ""},
		{"inside a string", `const s = "5000";`, 0, ""},
		{"inside a comment", "// retry 5000 times", 0, ""},
		{"first literal only", "const area = 42 * 99;", 1, "42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := checkMagicNumbers(cfg, "src/app.ts", []string{tt.line})
			if len(issues) != tt.wantIssues {
				t.Fatalf("got %d issues, want %d", len(issues), tt.wantIssues)
			}
			if tt.wantIssues == 1 && issues[0].Number != tt.wantNumber {
				t.Errorf("got number %q, want %q", issues[0].Number, tt.wantNumber)
			}
		})
	}
}
