package rewrite

import (
	"fmt"

	"github.com/smellscan/smellscan/pkg/shared/files"
)

// validateRewriteArgs validates the arguments provided to the rewrite-console command.
func validateRewriteArgs(options *RunOptionsRewrite, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("a source root must be specified")
	}
	if len(args) > 1 {
		return fmt.Errorf("only one source root may be specified")
	}

	if err := files.ValidateDirectory(args[0]); err != nil {
		return fmt.Errorf("the source root is not rewritable: %w", err)
	}
	return nil
}
