// Package cli implements the kaaval command-line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/kaaval-labs/kaaval-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	verboseFlag bool
	configFlag  string
)

var rootCmd = &cobra.Command{
	Use:   "kaaval",
	Short: "Bilingual question answering over police department documents",
	Long: `Kaaval answers questions about Thoothukudi District Police services,
procedures and contacts, in English or Tamil, grounded strictly in the
department's published documents.

Build the document index first with 'kaaval index', then ask questions
with 'kaaval ask' or start an interactive session with 'kaaval chat'.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose pipeline output")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file path (default ~/.kaaval/kaaval.toml)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string shown by the version command.
func SetVersion(v string) {
	version = v
}
