package scan

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/smellscan/smellscan/internal/analyzer"
	"github.com/smellscan/smellscan/internal/git"
	"github.com/smellscan/smellscan/internal/report"
	"github.com/smellscan/smellscan/pkg/analysis"
	"github.com/smellscan/smellscan/pkg/shared"
	"github.com/smellscan/smellscan/pkg/shared/config"
	"github.com/smellscan/smellscan/pkg/shared/files"
	"github.com/smellscan/smellscan/pkg/shared/logger"
)

// RunOptionsScan holds the arguments for the scan command.
type RunOptionsScan struct {
	ReportFormat string
	OutputPath   string
	Title        string
	Threads      int
}

var (
	AppConfig        *config.Config
	scanOptions      RunOptionsScan
	exampleScanUsage = `  # Scanning a source tree with the default markdown report on stdout
  smellscan scan /path/to/my_project/src

  # Scanning with a JSON report written to a file
  smellscan scan --format json --output /tmp/report.json /path/to/my_project/src

  # Scanning with a SARIF report and multiple concurrent workers
  smellscan scan --format sarif --output /tmp/report.sarif -j 4 /path/to/my_project/src`
)

// ScanCmd represents the scan command.
var ScanCmd = &cobra.Command{
	Use:                   "scan [--format/-f markdown|json|sarif] [--output/-o PATH] [-j THREADS_NUMBER, default=1] PATH",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               exampleScanUsage,
	Short:                 "Scan a source tree and catalogue structural code smells",
	RunE:                  runScanCommand,
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

// runScanCommand executes the scan command.
func runScanCommand(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && !shared.HasFlags(cmd.Flags()) {
		return cmd.Help()
	}

	logger := logger.NewLogger(AppConfig, "core-scan")

	if err := validateScanArgs(&scanOptions, args); err != nil {
		logger.Error("invalid scan arguments", "error", err)
		return err
	}
	targetPath := args[0]

	engineCfg := config.EngineConfig(AppConfig)
	a := analyzer.New(engineCfg, logger, scanOptions.Threads)

	result, err := a.Run(targetPath)
	if err != nil {
		logger.Error("scan failed", "error", err)
		return err
	}

	repoMetadata, err := git.CollectRepositoryMetadata(targetPath)
	if err != nil {
		logger.Debug("can't collect repository metadata", "error", err)
		repoMetadata = nil
	}
	meta := report.NewMetadata(scanOptions.Title, targetPath, repoMetadata)

	if err := writeReport(result, meta); err != nil {
		logger.Error("failed to write report", "error", err)
		return err
	}

	if scanOptions.OutputPath != "" {
		report.PrintSummary(result, os.Stdout)
	}

	logger.Info("scan command completed successfully",
		"files", result.Stats.TotalFiles,
		"issues", result.Stats.TotalIssues,
	)
	return nil
}

// writeReport renders the report in the requested format, to the output file
// when one is given and to stdout otherwise.
func writeReport(result *analysis.Report, meta report.Metadata) error {
	out := os.Stdout
	if scanOptions.OutputPath != "" {
		if err := files.CreateFolderIfNotExists(filepath.Dir(scanOptions.OutputPath)); err != nil {
			return err
		}
		file, err := os.Create(scanOptions.OutputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file %q: %w", scanOptions.OutputPath, err)
		}
		defer file.Close()
		out = file
	}

	switch scanOptions.ReportFormat {
	case "json":
		return report.WriteJSON(result, out)
	case "sarif":
		return report.WriteSarif(result, out)
	default:
		_, err := out.WriteString(report.RenderMarkdown(result, meta))
		return err
	}
}

// Initialize flags for the scan command.
func init() {
	ScanCmd.Flags().StringVarP(&scanOptions.ReportFormat, "format", "f", "markdown", "Format for the report with results (markdown, json or sarif).")
	ScanCmd.Flags().BoolP("help", "h", false, "Show help for the scan command.")
	ScanCmd.Flags().StringVarP(&scanOptions.OutputPath, "output", "o", "", "Path to the output file where the report will be saved. Defaults to stdout.")
	ScanCmd.Flags().StringVarP(&scanOptions.Title, "title", "t", "Technical Debt Analysis Report", "Title used in the rendered report.")
	ScanCmd.Flags().IntVarP(&scanOptions.Threads, "threads", "j", 1, "Number of concurrent workers to use.")
}
