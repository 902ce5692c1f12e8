package scan

import (
	"fmt"

	"github.com/smellscan/smellscan/pkg/shared/files"
)

var validReportFormats = map[string]bool{
	"markdown": true,
	"json":     true,
	"sarif":    true,
}

// validateScanArgs validates the arguments provided to the scan command.
func validateScanArgs(options *RunOptionsScan, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("a target path must be specified")
	}
	if len(args) > 1 {
		return fmt.Errorf("only one target path may be specified")
	}

	if err := files.ValidateDirectory(args[0]); err != nil {
		return fmt.Errorf("the target path is not scannable: %w", err)
	}

	if !validReportFormats[options.ReportFormat] {
		return fmt.Errorf("unknown report format %q: expected markdown, json or sarif", options.ReportFormat)
	}

	if options.Threads <= 0 {
		return fmt.Errorf("the 'threads' flag must be a positive integer")
	}
	return nil
}
