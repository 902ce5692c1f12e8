package rewrite

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/smellscan/smellscan/internal/rewrite"
	"github.com/smellscan/smellscan/pkg/shared"
	"github.com/smellscan/smellscan/pkg/shared/config"
	"github.com/smellscan/smellscan/pkg/shared/logger"
)

// RunOptionsRewrite holds the arguments for the rewrite-console command.
type RunOptionsRewrite struct {
	DryRun bool
}

var (
	AppConfig           *config.Config
	rewriteOptions      RunOptionsRewrite
	exampleRewriteUsage = `  # Previewing the changes without touching any file
  smellscan rewrite-console --dry-run /path/to/my_project/src

  # Rewriting console statements in place
  smellscan rewrite-console /path/to/my_project/src`
)

// RewriteCmd represents the rewrite-console command.
var RewriteCmd = &cobra.Command{
	Use:                   "rewrite-console [--dry-run] PATH",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               exampleRewriteUsage,
	Short:                 "Replace console statements with structured logger calls in a TypeScript tree",
	RunE:                  runRewriteCommand,
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

// runRewriteCommand executes the rewrite-console command.
func runRewriteCommand(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && !shared.HasFlags(cmd.Flags()) {
		return cmd.Help()
	}

	logger := logger.NewLogger(AppConfig, "core-rewrite")

	if err := validateRewriteArgs(&rewriteOptions, args); err != nil {
		logger.Error("invalid rewrite arguments", "error", err)
		return err
	}
	sourceRoot := args[0]

	r := rewrite.New(logger, rewriteOptions.DryRun)
	result, err := r.Run(sourceRoot)
	if err != nil {
		logger.Error("rewrite failed", "error", err)
		return err
	}

	printRewriteSummary(result, rewriteOptions.DryRun)

	logger.Info("rewrite command completed successfully",
		"files_modified", result.FilesModified,
		"replacements", result.TotalReplacements,
	)
	return nil
}

// printRewriteSummary prints a per-file change list and overall totals.
func printRewriteSummary(result *rewrite.Result, dryRun bool) {
	bold := color.New(color.Bold)
	green := color.New(color.FgGreen, color.Bold)
	yellow := color.New(color.FgYellow, color.Bold)

	if dryRun {
		yellow.Fprintln(os.Stdout, "Dry run: no files were written.")
	}
	for _, change := range result.Changes {
		fmt.Fprintf(os.Stdout, "  %s: %d replacement(s)\n", change.Path, change.Replacements)
	}

	bold.Fprint(os.Stdout, "Files modified: ")
	fmt.Fprintln(os.Stdout, result.FilesModified)
	bold.Fprint(os.Stdout, "Total replacements: ")
	fmt.Fprintln(os.Stdout, result.TotalReplacements)
	if result.FilesModified == 0 {
		green.Fprintln(os.Stdout, "No console statements found.")
	}
}

// Initialize flags for the rewrite-console command.
func init() {
	RewriteCmd.Flags().BoolVar(&rewriteOptions.DryRun, "dry-run", false, "Report the changes that would be made without writing any file.")
	RewriteCmd.Flags().BoolP("help", "h", false, "Show help for the rewrite-console command.")
}
