package deps

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/smellscan/smellscan/internal/deps"
	"github.com/smellscan/smellscan/pkg/shared/config"
	"github.com/smellscan/smellscan/pkg/shared/files"
	"github.com/smellscan/smellscan/pkg/shared/logger"
)

// RunOptionsDeps holds the arguments for the deps command.
type RunOptionsDeps struct {
	ReportFormat string
	OutputPath   string
}

var (
	AppConfig        *config.Config
	depsOptions      RunOptionsDeps
	exampleDepsUsage = `  # Checking the package.json in the current directory
  smellscan deps

  # Checking a specific manifest with a JSON report written to a file
  smellscan deps --format json --output /tmp/deps.json /path/to/my_project/package.json`
)

// DepsCmd represents the deps command.
var DepsCmd = &cobra.Command{
	Use:                   "deps [--format/-f markdown|json] [--output/-o PATH] [MANIFEST_PATH, default=package.json]",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               exampleDepsUsage,
	Short:                 "Check a package.json manifest for dependency problems",
	RunE:                  runDepsCommand,
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

// runDepsCommand executes the deps command.
func runDepsCommand(cmd *cobra.Command, args []string) error {
	logger := logger.NewLogger(AppConfig, "core-deps")

	if err := validateDepsArgs(&depsOptions, args); err != nil {
		logger.Error("invalid deps arguments", "error", err)
		return err
	}
	manifestPath := "package.json"
	if len(args) == 1 {
		manifestPath = args[0]
	}

	result, err := deps.Analyze(manifestPath)
	if err != nil {
		logger.Error("dependency analysis failed", "error", err)
		return err
	}

	if err := writeDepsReport(result); err != nil {
		logger.Error("failed to write report", "error", err)
		return err
	}

	logger.Info("deps command completed successfully",
		"package", result.PackageName,
		"issues", result.Summary.TotalIssues,
	)
	return nil
}

// writeDepsReport renders the analysis in the requested format, to the output
// file when one is given and to stdout otherwise.
func writeDepsReport(result *deps.Analysis) error {
	out := os.Stdout
	if depsOptions.OutputPath != "" {
		if err := files.CreateFolderIfNotExists(filepath.Dir(depsOptions.OutputPath)); err != nil {
			return err
		}
		file, err := os.Create(depsOptions.OutputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file %q: %w", depsOptions.OutputPath, err)
		}
		defer file.Close()
		out = file
	}

	if depsOptions.ReportFormat == "json" {
		return deps.WriteJSON(result, out)
	}
	_, err := out.WriteString(deps.RenderMarkdown(result))
	return err
}

// Initialize flags for the deps command.
func init() {
	DepsCmd.Flags().StringVarP(&depsOptions.ReportFormat, "format", "f", "markdown", "Format for the report with results (markdown or json).")
	DepsCmd.Flags().BoolP("help", "h", false, "Show help for the deps command.")
	DepsCmd.Flags().StringVarP(&depsOptions.OutputPath, "output", "o", "", "Path to the output file where the report will be saved. Defaults to stdout.")
}
