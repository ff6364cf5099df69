// cmd/benchscope/root.go
package benchscope

import (
	"fmt"
	"os"

	"github.com/mwiater/benchscope/analysis"
	"github.com/mwiater/benchscope/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Default snapshot locations. These are the filenames the solver's
// benchmark harness writes, so the bare command works from a project
// checkout without any arguments.
const (
	defaultBaseline = "benchmarks/baseline.json"
	defaultBefore   = "benchmarks/baseline_before_opt.json"
)

// Swap points for the report entry points so command tests can verify
// dispatch without reading real snapshot files.
var (
	runBreakdown = report.RunBreakdown
	runCompare   = report.RunCompare
)

// Declare a variable to store the median convention flag.
// This is not strictly necessary if you only access via viper,
// but it's common practice with StringVar.
var medianFlag string

// rootCmd is the base Cobra command for the benchscope application.
// All subcommands are attached to this root to form the complete CLI.
// The root is runnable itself: with no arguments it reports the
// default snapshot, with one path it reports that snapshot, and with
// two paths it compares them, before first.
var rootCmd = &cobra.Command{
	Use:   "benchscope [snapshot | before after]",
	Short: "Attribute and compare solver benchmark snapshots",
	Long: `benchscope reads the JSON snapshots recorded by the solver's benchmark
harness and reports where each scenario's wall-clock time goes.

With no arguments it attributes benchmarks/baseline.json. A single path
attributes that snapshot instead. Two paths are compared scenario by
scenario, with the earlier snapshot given first.`,
	Args:          cobra.MaximumNArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := reportOptions()
		if err != nil {
			return err
		}
		switch len(args) {
		case 2:
			return runCompare(args[0], args[1], opts)
		case 1:
			return runBreakdown(args[0], opts)
		default:
			return runBreakdown(defaultBaseline, opts)
		}
	},
}

// Execute runs the root Cobra command and all registered subcommands.
// It prints any returned error and exits the process with a non-zero
// status code on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// reportOptions assembles report options from the viper-bound flags,
// rejecting an unrecognized median convention before any file is read.
func reportOptions() (report.Options, error) {
	mode, err := analysis.ParseMedianMode(viper.GetString("median"))
	if err != nil {
		return report.Options{}, err
	}
	return report.Options{
		Median:        mode,
		TransientOnly: viper.GetBool("transient-only"),
	}, nil
}

func init() {
	// The median convention applies to every command that computes
	// statistics, so it lives on the root as a persistent flag.
	rootCmd.PersistentFlags().StringVarP(&medianFlag, "median", "m", "interpolated", "median convention: interpolated or lower-of-pair")
	viper.BindPFlag("median", rootCmd.PersistentFlags().Lookup("median"))
}
