package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/bookstock/internal/shell"
)

func newLookupCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "lookup <query>",
		Short: "Search Open Library for candidate books",
		Long: `Searches Open Library and prints up to 10 candidate books.

Candidates get a price of 9.99, no stock, and the next free inventory id.
Failed lookups print no results; run with --verbose to see why.`,
		Example: `  bookstock lookup "ursula le guin"
  bookstock lookup dune --format yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.newStore()
			if err != nil {
				return err
			}

			books := a.newLookup(store).Search(cmd.Context(), strings.Join(args, " "))

			if format == "text" {
				return shell.WriteCandidates(cmd.OutOrStdout(), books)
			}
			return writeBooks(cmd.OutOrStdout(), books, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format (text, json, jsonl, yaml, csv)")

	return cmd
}
