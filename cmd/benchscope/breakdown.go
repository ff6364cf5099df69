// cmd/benchscope/breakdown.go

package benchscope

import (
	"github.com/mwiater/benchscope/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var watchBreakdown = report.WatchBreakdown

// Flag targets for the breakdown command.
var (
	transientOnly bool
	watchSnapshot bool
)

// breakdownCmd represents the 'breakdown' command.
var breakdownCmd = &cobra.Command{
	Use:   "breakdown [snapshot]",
	Short: "Report per-scenario solve-time attribution",
	Long: `The 'breakdown' command attributes each scenario's wall-clock time. Build
and solve are shown as shares of the total, then the instrumented solver
phases as shares of solve. Without an argument it reads
benchmarks/baseline.json.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := defaultBaseline
		if len(args) == 1 {
			path = args[0]
		}
		opts, err := reportOptions()
		if err != nil {
			return err
		}
		if viper.GetBool("watch") {
			return watchBreakdown(path, opts)
		}
		return runBreakdown(path, opts)
	},
}

// init adds the breakdown command to the root command and binds its
// flags through viper.
func init() {
	rootCmd.AddCommand(breakdownCmd)

	breakdownCmd.Flags().BoolVarP(&transientOnly, "transient-only", "t", false, "limit the report to transient scenarios")
	viper.BindPFlag("transient-only", breakdownCmd.Flags().Lookup("transient-only"))

	breakdownCmd.Flags().BoolVarP(&watchSnapshot, "watch", "w", false, "re-render whenever the snapshot file changes")
	viper.BindPFlag("watch", breakdownCmd.Flags().Lookup("watch"))
}
