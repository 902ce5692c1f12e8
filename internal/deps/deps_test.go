package deps

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/smellscan/smellscan/pkg/analysis"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "package.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

const testManifest = `{
  "name": "demo",
  "dependencies": {
    "moment": "^2.29.0",
    "dayjs": "1.11.0",
    "request": "*"
  },
  "devDependencies": {
    "tslint": "^6.0.0"
  }
}`

func TestAnalyzeManifest(t *testing.T) {
	result, err := Analyze(writeManifest(t, testManifest))
	if err != nil {
		t.Fatal(err)
	}

	if result.PackageName != "demo" {
		t.Errorf("got package name %q, want %q", result.PackageName, "demo")
	}
	if result.TotalDependencies != 3 || result.TotalDevDependencies != 1 {
		t.Errorf("unexpected dependency counts %d/%d", result.TotalDependencies, result.TotalDevDependencies)
	}

	warnings := result.Findings[CategoryWarnings]
	if len(warnings) != 2 {
		t.Fatalf("got %d warnings, want 2", len(warnings))
	}
	// Dependencies are checked in sorted package order.
	if warnings[0].Package != "dayjs" || warnings[0].Severity != analysis.SeverityLow {
		t.Errorf("unexpected first warning %+v", warnings[0])
	}
	if warnings[1].Package != "request" || warnings[1].Severity != analysis.SeverityHigh {
		t.Errorf("unexpected second warning %+v", warnings[1])
	}

	duplicates := result.Findings[CategoryDuplicateFunctionality]
	if len(duplicates) != 1 {
		t.Fatalf("got %d duplicates, want 1", len(duplicates))
	}
	if duplicates[0].Functionality != "Date/Time manipulation" {
		t.Errorf("got functionality %q", duplicates[0].Functionality)
	}

	outdated := result.Findings[CategoryOutdated]
	if len(outdated) != 2 {
		t.Fatalf("got %d outdated findings, want 2", len(outdated))
	}
	if outdated[0].Package != "request" || outdated[0].Type != "dependencies" {
		t.Errorf("unexpected first outdated finding %+v", outdated[0])
	}
	if outdated[1].Package != "tslint" || outdated[1].Type != "devDependencies" {
		t.Errorf("unexpected second outdated finding %+v", outdated[1])
	}

	if result.Summary.TotalIssues != 5 {
		t.Errorf("got %d total issues, want 5", result.Summary.TotalIssues)
	}
	if result.Summary.BySeverity[analysis.SeverityHigh] != 3 {
		t.Errorf("got %d high findings, want 3", result.Summary.BySeverity[analysis.SeverityHigh])
	}
}

func TestAnalyzeMissingManifest(t *testing.T) {
	if _, err := Analyze(filepath.Join(t.TempDir(), "package.json")); err == nil {
		t.Fatal("expected an error for a missing manifest")
	}
}

func TestAnalyzeMalformedManifest(t *testing.T) {
	if _, err := Analyze(writeManifest(t, "{not json")); err == nil {
		t.Fatal("expected an error for malformed JSON")
	}
}

func TestAnalyzeUnnamedManifest(t *testing.T) {
	result, err := Analyze(writeManifest(t, `{"dependencies": {}}`))
	if err != nil {
		t.Fatal(err)
	}
	if result.PackageName != "unknown" {
		t.Errorf("got package name %q, want %q", result.PackageName, "unknown")
	}
	if result.Summary.TotalIssues != 0 {
		t.Errorf("got %d issues, want 0", result.Summary.TotalIssues)
	}
}

func TestRenderMarkdown(t *testing.T) {
	result, err := Analyze(writeManifest(t, testManifest))
	if err != nil {
		t.Fatal(err)
	}

	out := RenderMarkdown(result)

	for _, want := range []string{
		"# Dependency Analysis Report\n",
		"**Package:** demo\n",
		"**Dependencies:** 3\n",
		"## Deprecated/Outdated Packages (2)\n",
		"## Duplicate Functionality (1)\n",
		"### request [HIGH]\n",
		"## Recommendations\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRenderMarkdownCleanManifest(t *testing.T) {
	result, err := Analyze(writeManifest(t, `{"name": "clean", "dependencies": {"react": "^18.0.0"}}`))
	if err != nil {
		t.Fatal(err)
	}

	out := RenderMarkdown(result)
	if !strings.Contains(out, "No major dependency issues detected.") {
		t.Error("clean manifest not reported as clean")
	}
}
