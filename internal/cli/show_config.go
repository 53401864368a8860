// internal/cli/show_config.go
package tracelens

import (
	"github.com/spf13/cobra"
)

// showConfigCmd prints the effective configuration after the JSON config
// file and flag overrides have been merged.
var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show config settings",
	Long:  `Show config settings ensuring that the JSON configs are loaded properly and overridden by flags accordingly.`,
	Run: func(cmd *cobra.Command, args []string) {
		runShowConfig()
	},
}

func init() {
	showCmd.AddCommand(showConfigCmd)
}
