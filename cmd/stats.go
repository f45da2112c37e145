package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/bookstock/internal/inventory"
	"github.com/lehigh-university-libraries/bookstock/internal/shell"
)

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show total stock units, low stock and out of stock counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.newStore()
			if err != nil {
				return err
			}
			return shell.WriteStats(cmd.OutOrStdout(), inventory.Summarize(store.CurrentList()))
		},
	}
}
