// cmd/benchscope/inspect.go

package benchscope

import (
	"github.com/mwiater/benchscope/report"
	"github.com/spf13/cobra"
)

var runInspect = report.RunInspect

// inspectCmd represents the 'inspect' command.
var inspectCmd = &cobra.Command{
	Use:   "inspect [snapshot]",
	Short: "Dump a snapshot's parsed structure",
	Long: `The 'inspect' command pretty-prints everything the loader understood about
a snapshot, including which numeric fields each scenario's runs recorded.
Useful when a snapshot misbehaves and the styled reports hide the reason.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := defaultBaseline
		if len(args) == 1 {
			path = args[0]
		}
		return runInspect(path)
	},
}

// init adds the inspect command to the root command.
func init() {
	rootCmd.AddCommand(inspectCmd)
}
