// cmd/benchscope/compare.go

package benchscope

import (
	"github.com/spf13/cobra"
)

// compareCmd represents the 'compare' command.
var compareCmd = &cobra.Command{
	Use:   "compare [before] [after]",
	Short: "Compare two snapshots, earlier one first",
	Long: `The 'compare' command joins two snapshots by scenario id and reports how
each headline metric moved, oriented so that a positive percentage is an
improvement. Without arguments it compares
benchmarks/baseline_before_opt.json against benchmarks/baseline.json; a
single argument replaces the before snapshot.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		before, after := defaultBefore, defaultBaseline
		switch len(args) {
		case 2:
			before, after = args[0], args[1]
		case 1:
			before = args[0]
		}
		opts, err := reportOptions()
		if err != nil {
			return err
		}
		return runCompare(before, after, opts)
	},
}

// init adds the compare command to the root command.
func init() {
	rootCmd.AddCommand(compareCmd)
}
