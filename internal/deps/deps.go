package deps

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/smellscan/smellscan/pkg/analysis"
)

// Finding categories, mirroring the issue-by-category shape of the code scan.
const (
	CategoryOutdated               = "outdated"
	CategoryDuplicateFunctionality = "duplicate_functionality"
	CategoryWarnings               = "warnings"
	CategoryUnused                 = "unused"
)

// CategoryOrder fixes the rendering order of manifest finding categories.
var CategoryOrder = []string{
	CategoryOutdated,
	CategoryDuplicateFunctionality,
	CategoryWarnings,
	CategoryUnused,
}

var categoryTitles = map[string]string{
	CategoryOutdated:               "Deprecated/Outdated Packages",
	CategoryDuplicateFunctionality: "Duplicate Functionality",
	CategoryWarnings:               "Version Constraint Warnings",
	CategoryUnused:                 "Potentially Unused Dependencies",
}

// Manifest is the subset of package.json the analyzer reads.
type Manifest struct {
	Name            string            `json:"name"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// Finding is a single dependency-level observation.
type Finding struct {
	Package       string            `json:"package,omitempty"`
	Type          string            `json:"type,omitempty"`
	Version       string            `json:"version,omitempty"`
	Severity      analysis.Severity `json:"severity"`
	Message       string            `json:"message"`
	Packages      []string          `json:"packages,omitempty"`
	Functionality string            `json:"functionality,omitempty"`
}

// Summary aggregates finding counts by severity and category.
type Summary struct {
	TotalIssues int                       `json:"total_issues"`
	BySeverity  map[analysis.Severity]int `json:"by_severity"`
	ByCategory  map[string]int            `json:"by_category"`
}

// Analysis is the full result of one manifest check.
type Analysis struct {
	PackageName          string               `json:"package_name"`
	TotalDependencies    int                  `json:"total_dependencies"`
	TotalDevDependencies int                  `json:"total_dev_dependencies"`
	Findings             map[string][]Finding `json:"issues"`
	Summary              Summary              `json:"summary"`
}

// duplicationGroups lists packages that provide overlapping functionality;
// having more than one of a group installed is flagged.
var duplicationGroups = []struct {
	packages      []string
	functionality string
}{
	{[]string{"moment", "dayjs", "date-fns", "luxon"}, "Date/Time manipulation"},
	{[]string{"lodash", "underscore", "ramda"}, "Utility functions"},
	{[]string{"axios", "node-fetch", "got", "request"}, "HTTP client"},
	{[]string{"webpack", "rollup", "parcel", "vite"}, "Module bundler"},
	{[]string{"jest", "mocha", "jasmine", "vitest"}, "Test framework"},
	{[]string{"eslint", "tslint"}, "Linting"},
}

// deprecatedPackages maps known deprecated packages to migration advice.
// Kept as an ordered slice so findings come out in a stable order.
var deprecatedPackages = []struct {
	name    string
	message string
}{
	{"request", "Deprecated - use axios, node-fetch, or got instead"},
	{"tslint", "Deprecated - migrate to ESLint with @typescript-eslint"},
	{"node-sass", "Deprecated - use dart-sass (sass) instead"},
	{"gulp", "Consider modern alternatives like npm scripts or vite"},
	{"bower", "Deprecated - use npm or yarn"},
	{"istanbul", "Deprecated - use nyc instead"},
	{"@types/node-sass", "node-sass is deprecated"},
}

// Analyze reads a package.json manifest and checks its dependencies for
// version-constraint problems, duplicate functionality and deprecations.
func Analyze(manifestPath string) (*Analysis, error) {
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %q: %w", manifestPath, err)
	}

	var manifest Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %q: %w", manifestPath, err)
	}

	packageName := manifest.Name
	if packageName == "" {
		packageName = "unknown"
	}

	result := &Analysis{
		PackageName:          packageName,
		TotalDependencies:    len(manifest.Dependencies),
		TotalDevDependencies: len(manifest.DevDependencies),
		Findings:             make(map[string][]Finding),
	}

	result.checkVersionConstraints(manifest.Dependencies, "dependencies")
	result.checkVersionConstraints(manifest.DevDependencies, "devDependencies")
	result.checkDuplicateFunctionality(manifest)
	result.checkDeprecatedPackages(manifest)
	result.summarize()

	return result, nil
}

// checkVersionConstraints flags wildcard constraints as unsafe and exact pins
// as inflexible.
func (a *Analysis) checkVersionConstraints(dependencies map[string]string, depType string) {
	for _, name := range sortedKeys(dependencies) {
		version := dependencies[name]

		if version == "*" || version == "latest" || version == "" {
			a.Findings[CategoryWarnings] = append(a.Findings[CategoryWarnings], Finding{
				Package:  name,
				Type:     depType,
				Version:  version,
				Severity: analysis.SeverityHigh,
				Message:  fmt.Sprintf("Using unsafe version constraint %q - can cause unexpected breaking changes", version),
			})
		}

		if version != "" && version[0] >= '0' && version[0] <= '9' {
			a.Findings[CategoryWarnings] = append(a.Findings[CategoryWarnings], Finding{
				Package:  name,
				Type:     depType,
				Version:  version,
				Severity: analysis.SeverityLow,
				Message:  fmt.Sprintf("Using exact version %q - consider using ^ or ~ for flexibility", version),
			})
		}
	}
}

func (a *Analysis) checkDuplicateFunctionality(manifest Manifest) {
	allDeps := mergeDeps(manifest)

	for _, group := range duplicationGroups {
		var found []string
		for _, pkg := range group.packages {
			if _, ok := allDeps[pkg]; ok {
				found = append(found, pkg)
			}
		}
		if len(found) > 1 {
			a.Findings[CategoryDuplicateFunctionality] = append(a.Findings[CategoryDuplicateFunctionality], Finding{
				Packages:      found,
				Functionality: group.functionality,
				Severity:      analysis.SeverityMedium,
				Message:       fmt.Sprintf("Multiple packages for %s: %s", group.functionality, strings.Join(found, ", ")),
			})
		}
	}
}

func (a *Analysis) checkDeprecatedPackages(manifest Manifest) {
	allDeps := mergeDeps(manifest)

	for _, deprecated := range deprecatedPackages {
		version, ok := allDeps[deprecated.name]
		if !ok {
			continue
		}
		depType := "devDependencies"
		if _, inDeps := manifest.Dependencies[deprecated.name]; inDeps {
			depType = "dependencies"
		}
		a.Findings[CategoryOutdated] = append(a.Findings[CategoryOutdated], Finding{
			Package:  deprecated.name,
			Type:     depType,
			Version:  version,
			Severity: analysis.SeverityHigh,
			Message:  deprecated.message,
		})
	}
}

func (a *Analysis) summarize() {
	summary := Summary{
		BySeverity: map[analysis.Severity]int{
			analysis.SeverityLow:    0,
			analysis.SeverityMedium: 0,
			analysis.SeverityHigh:   0,
		},
		ByCategory: make(map[string]int),
	}
	for category, findings := range a.Findings {
		summary.ByCategory[category] = len(findings)
		summary.TotalIssues += len(findings)
		for _, finding := range findings {
			summary.BySeverity[finding.Severity]++
		}
	}
	a.Summary = summary
}

func mergeDeps(manifest Manifest) map[string]string {
	merged := make(map[string]string, len(manifest.Dependencies)+len(manifest.DevDependencies))
	for name, version := range manifest.Dependencies {
		merged[name] = version
	}
	for name, version := range manifest.DevDependencies {
		merged[name] = version
	}
	return merged
}
