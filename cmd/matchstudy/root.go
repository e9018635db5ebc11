package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "matchstudy",
		Short:         "Study a fixture's betting lines against historical precedents",
		Long:          `matchstudy reads a saved match analysis page, settles historical matches against the fixture's current handicap and goal lines, and prints the resulting report.`,
		Version:       Version + " (" + CommitID + ")",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newAnalyzeCmd())
	root.AddCommand(newLineCmd())
	return root
}
