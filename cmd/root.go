package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/smellscan/smellscan/cmd/deps"
	"github.com/smellscan/smellscan/cmd/rewrite"
	"github.com/smellscan/smellscan/cmd/scan"
	"github.com/smellscan/smellscan/cmd/version"
	"github.com/smellscan/smellscan/pkg/shared/config"
)

var (
	cfgFile   string
	AppConfig *config.Config
	rootCmd   = &cobra.Command{
		Use:                   "smellscan [command]",
		SilenceUsage:          true,
		DisableFlagsInUseLine: true,
		Short:                 "Smellscan catalogues structural code smells in JavaScript/TypeScript trees.",
		Long: `Smellscan scans a tree of source files and produces a catalogue of structural
code smell findings: oversized files, overly complex functions, deep nesting,
long parameter lists, weak typing, leftover debug statements, magic numbers and
technical debt markers. It works on raw text, so no compiler front end or
node_modules install is needed.
`,
	}
)

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is config.yml)")
	rootCmd.AddCommand(scan.ScanCmd)
	rootCmd.AddCommand(deps.DepsCmd)
	rootCmd.AddCommand(rewrite.RewriteCmd)
	rootCmd.AddCommand(version.NewVersionCmd())
}

// Execute runs the root command and returns a process exit code.
func Execute() int {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		return 1
	}
	return 0
}

func initConfig() {
	var err error

	if cfgFile == "" {
		cfgFile = "config.yml"
	}
	AppConfig, err = config.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config file: %v\n", err)
		os.Exit(1)
	}
	if err := config.ValidateConfig(AppConfig); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	scan.Init(AppConfig)
	deps.Init(AppConfig)
	rewrite.Init(AppConfig)
}
