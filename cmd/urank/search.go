package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mycok/uRank/search"
)

func newSearchCmd(opts *options) *cobra.Command {
	var (
		top    int
		offset int
	)

	cmd := &cobra.Command{
		Use:   "search <terms...>",
		Short: "Run a combined authority and relevance query",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := opts.buildEngine()
			if err != nil {
				return err
			}

			query := search.Query{
				Terms:  search.ParseQuery(strings.Join(args, " ")),
				Limit:  top,
				Offset: offset,
			}

			return printResults(cmd.OutOrStdout(), engine, query)
		},
	}

	cmd.Flags().IntVar(&top, "top", search.DefaultResultLimit, "Maximum number of results")
	cmd.Flags().IntVar(&offset, "offset", 0, "Number of top results to skip")

	return cmd
}

func printResults(out io.Writer, engine *search.Engine, query search.Query) error {
	it, err := engine.Search(query)
	if err != nil {
		return err
	}
	defer func() { _ = it.Close() }()

	if it.TotalCount() == 0 {
		_, err = fmt.Fprintf(out, "no pages match %q\n", strings.Join(query.Terms, " "))

		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "RANK\tURI\tSCORE\tRELEVANCE\tPAGERANK\n")
	for rank := query.Offset + 1; it.Next(); rank++ {
		r := it.Result()
		fmt.Fprintf(tw, "%d\t%s\t%.6f\t%.6f\t%.6f\n", rank, r.URI, r.Score, r.Relevance, r.PageRank)
	}

	if err := it.Error(); err != nil {
		return err
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "\n%d matching pages\n", it.TotalCount())

	return err
}
