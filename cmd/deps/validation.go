package deps

import (
	"fmt"

	"github.com/smellscan/smellscan/pkg/shared/files"
)

// validateDepsArgs validates the arguments provided to the deps command.
func validateDepsArgs(options *RunOptionsDeps, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("only one manifest path may be specified")
	}

	manifestPath := "package.json"
	if len(args) == 1 {
		manifestPath = args[0]
	}
	if err := files.ValidatePath(manifestPath); err != nil {
		return fmt.Errorf("the manifest is not readable: %w", err)
	}

	if options.ReportFormat != "markdown" && options.ReportFormat != "json" {
		return fmt.Errorf("unknown report format %q: expected markdown or json", options.ReportFormat)
	}
	return nil
}
