package envpath

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/envpath/pkg/config"
	"github.com/arthur-debert/envpath/pkg/output"
)

// PrintError reports a failed command. Structured formats write an error
// document to stdout, everything else a styled "Error: ..." line to stderr.
func PrintError(rootCmd *cobra.Command, err error) {
	format, perr := output.ParseFormat(config.Get().Output.Format)
	if perr == nil && format.Structured() {
		_ = output.NewRenderer(rootCmd.OutOrStdout(), format).Error(err)
		return
	}
	_ = output.NewRenderer(rootCmd.ErrOrStderr(), output.FormatAuto).Error(err)
}
