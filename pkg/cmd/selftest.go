package cmd

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/c9s/bstree/pkg/harness"
)

func init() {
	RootCmd.AddCommand(SelfTestCmd)
}

var SelfTestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "run the acceptance cases of the tree and print a pass/fail report",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		results := harness.Run(log.StandardLogger())
		harness.Render(cmd.OutOrStdout(), results, withColor())

		if !harness.AllPassed(results) {
			return errors.New("selftest failed")
		}

		return nil
	},
}
