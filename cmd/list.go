package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/bookstock/internal/dataset"
	"github.com/lehigh-university-libraries/bookstock/internal/inventory"
	"github.com/lehigh-university-libraries/bookstock/internal/models"
	"github.com/lehigh-university-libraries/bookstock/internal/shell"
)

func newListCmd(a *app) *cobra.Command {
	var searchTerm string
	var category string
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the inventory, optionally filtered",
		Long: `Lists books whose title or author contains the search term (ignoring case)
and whose category matches exactly. The totals always cover the whole inventory.`,
		Example: `  # Everything
  bookstock list

  # Titles or authors containing "the", as JSON
  bookstock list --search the --format json

  # One category from a seed file
  bookstock list --seed ./books.yaml --category Fantasy`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.newStore()
			if err != nil {
				return err
			}

			all := store.CurrentList()
			books := inventory.Filter(all, searchTerm, category)

			out := cmd.OutOrStdout()
			if format == "text" {
				if err := shell.WriteStats(out, inventory.Summarize(all)); err != nil {
					return err
				}
			}
			return writeBooks(out, books, format)
		},
	}

	cmd.Flags().StringVarP(&searchTerm, "search", "s", "", "Match title or author (case-insensitive)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Exact category")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format (text, json, jsonl, yaml, csv)")

	return cmd
}

// writeBooks prints books as a table or through one of the dataset codecs
func writeBooks(w io.Writer, books []models.Book, format string) error {
	if format == "text" {
		return shell.WriteTable(w, books)
	}
	return dataset.Write(w, books, dataset.Format(format))
}
