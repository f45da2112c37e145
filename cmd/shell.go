package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/bookstock/internal/shell"
)

func newShellCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Manage the inventory interactively",
		Long: `Starts an interactive session over an in-memory inventory.

Type "help" for the list of commands. Changes last until the session ends.`,
		Example: `  bookstock shell
  bookstock shell --seed ./books.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.newStore()
			if err != nil {
				return err
			}

			sh := shell.New(store, a.newLookup(store), cmd.OutOrStdout())
			defer sh.Close()

			fmt.Fprintln(cmd.OutOrStdout(), `Bookstock shell. Type "help" for commands.`)
			slog.Debug("Shell started", "books", len(store.CurrentList()))

			if err := sh.Run(cmd.Context(), cmd.InOrStdin()); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			return nil
		},
	}
}
