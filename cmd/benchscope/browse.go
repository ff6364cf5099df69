// cmd/benchscope/browse.go

package benchscope

import (
	"github.com/mwiater/benchscope/analysis"
	"github.com/mwiater/benchscope/browse"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var startBrowse = browse.Start

// browseCmd represents the 'browse' command.
var browseCmd = &cobra.Command{
	Use:   "browse [snapshot]",
	Short: "Browse a snapshot's scenarios interactively",
	Long: `The 'browse' command opens a terminal UI listing the snapshot's scenarios.
Selecting one shows its full solve-time attribution in a scrollable view.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := defaultBaseline
		if len(args) == 1 {
			path = args[0]
		}
		mode, err := analysis.ParseMedianMode(viper.GetString("median"))
		if err != nil {
			return err
		}
		return startBrowse(path, mode)
	},
}

// init adds the browse command to the root command.
func init() {
	rootCmd.AddCommand(browseCmd)
}
