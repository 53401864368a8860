// internal/cli/inspect.go
package tracelens

import (
	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"

	"github.com/tracelens/tracelens/internal/metrics"
	"github.com/tracelens/tracelens/internal/trace"
)

// inspectCmd dumps the complete analysis of a single trace for debugging
// extraction issues.
var inspectCmd = &cobra.Command{
	Use:   "inspect <trace.json>",
	Short: "Pretty-print the full analysis of one trace file",
	Long: `Load a single trace export, run the complete analysis, and dump the
resulting structure with every intermediate value visible. Useful when a
metric looks wrong and you want to see what the extractors saw.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tf, err := trace.LoadFile(args[0])
		if err != nil {
			return err
		}

		analysis := metrics.Analyze(tf, analysisOptions(GetConfig()))
		pp.Println(analysis)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
