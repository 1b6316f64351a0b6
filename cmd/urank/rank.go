package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mycok/uRank/search"
)

func newRankCmd(opts *options) *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Print the PageRank score of every page in descending order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine, err := opts.buildEngine()
			if err != nil {
				return err
			}

			return printRanking(cmd.OutOrStdout(), engine, top)
		},
	}

	cmd.Flags().IntVar(&top, "top", 0, "Only print the N highest ranked pages (0 prints all)")

	return cmd
}

func printRanking(out io.Writer, engine *search.Engine, top int) error {
	stats := engine.Stats()
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "RANK\tURI\tPAGERANK\n")
	for i, r := range engine.TopRanked(top) {
		fmt.Fprintf(tw, "%d\t%s\t%.6f\n", i+1, r.URI, r.PageRank)
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(out, "\n%d pages, %d iterations, converged: %t\n",
		stats.Documents, stats.Iterations, stats.Converged,
	)

	return err
}
