package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/bookstock/internal/dataset"
)

func newExportCmd(a *app) *cobra.Command {
	var output string
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the inventory to a file or stdout",
		Long: `Writes the inventory in YAML, JSON, JSON Lines, CSV or Parquet.

With --output the format follows the file extension. Without it the list
is written to stdout in --format. Exported files can be passed back with --seed.`,
		Example: `  # Parquet file
  bookstock export --output books.parquet

  # YAML to stdout
  bookstock export --format yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.newStore()
			if err != nil {
				return err
			}
			books := store.CurrentList()

			if output != "" {
				if err := dataset.WriteFile(output, books); err != nil {
					return fmt.Errorf("failed to export inventory: %w", err)
				}
				return nil
			}
			return dataset.Write(cmd.OutOrStdout(), books, dataset.Format(format))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file; format from extension")
	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "Format for stdout (yaml, json, jsonl, csv, parquet)")

	return cmd
}
