package cmd

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/c9s/bstree/pkg/bst"
)

func init() {
	ShowCmd.Flags().IntSlice("delete", nil, "values to delete after inserting, e.g. --delete 3,5")
	RootCmd.AddCommand(ShowCmd)
}

// bstree show 10 5 15 3 7 --delete 10
var ShowCmd = &cobra.Command{
	Use:   "show [values...]",
	Short: "insert the values in order and print the resulting tree",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tree := bst.New()
		for _, arg := range args {
			v, err := strconv.Atoi(arg)
			if err != nil {
				return errors.Wrapf(err, "invalid value %q", arg)
			}

			tree.Insert(v)
		}

		deletes, err := cmd.Flags().GetIntSlice("delete")
		if err != nil {
			return err
		}

		for _, v := range deletes {
			tree.Delete(v)
		}

		out := cmd.OutOrStdout()
		tree.Print(out)

		if min, ok := tree.Min(); ok {
			max, _ := tree.Max()
			fmt.Fprintf(out, "size: %d, min: %d, max: %d\n", tree.Size(), min, max)
		} else {
			fmt.Fprintln(out, "size: 0")
		}

		return tree.Validate()
	},
}
