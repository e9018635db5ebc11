package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/riskibarqy/matchstudy/internal/domain/market"
	"github.com/spf13/cobra"
)

func newLineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "line <token>...",
		Short: "Normalize handicap or goal-line tokens",
		Example: `  matchstudy line 0/0.5 -0.5/1 2.5/3
  matchstudy line -- -1/1.5`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printLines(cmd.OutOrStdout(), args)
		},
	}
}

func printLines(out io.Writer, tokens []string) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TOKEN\tVALUE\tDISPLAY\tSTORAGE")
	for _, token := range tokens {
		value := "-"
		if v, ok := market.ParseLine(token); ok {
			value = fmt.Sprintf("%g", v)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			token,
			value,
			market.FormatText(token, market.FormatDisplay),
			market.FormatText(token, market.FormatStorage),
		)
	}
	return w.Flush()
}
