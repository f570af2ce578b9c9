package cmd

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/c9s/bstree/pkg/metrics"
	"github.com/c9s/bstree/pkg/script"
)

func init() {
	RunCmd.Flags().Bool("stop-on-failure", false, "stop at the first failed expectation")
	RunCmd.Flags().Bool("print", false, "print the tree graph after the script")
	RunCmd.Flags().Bool("metrics", false, "print the operation metrics after the script")
	RootCmd.AddCommand(RunCmd)
}

// go run ./cmd/bstree run testdata/scenario.txt --print
var RunCmd = &cobra.Command{
	Use:   "run [script]",
	Short: "run a tree operation script (line format, or yaml with a .yaml extension)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ops, err := script.Load(args[0])
		if err != nil {
			return errors.Wrapf(err, "unable to load script %s", args[0])
		}

		log.Infof("loaded %d ops from %s", len(ops), args[0])

		out := cmd.OutOrStdout()
		runner := script.NewRunner(viper.GetString("tree-name"), log.StandardLogger())
		runner.Output = out
		runner.StopOnFailure = viper.GetBool("stop-on-failure")

		report, runErr := runner.Run(ops)
		if report != nil {
			renderReport(out, report, withColor())
		}

		if viper.GetBool("print") {
			runner.Tree.Print(out)
		}

		if viper.GetBool("metrics") {
			samples, err := metrics.Snapshot()
			if err != nil {
				return err
			}

			renderMetrics(out, samples, withColor())
		}

		if runErr != nil {
			return runErr
		}

		if report.Failures > 0 {
			return errors.Errorf("%d of %d steps failed", report.Failures, len(report.Steps))
		}

		return nil
	},
}
