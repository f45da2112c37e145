package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/bookstock/internal/config"
)

func NewRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "bookstock",
		Short: "In-memory bookstore inventory manager",
		Long: `Bookstock keeps a bookstore's inventory in memory: list, search and filter
books, add, edit and delete them, and adjust stock counts.

Candidate books can be looked up on Open Library and added to the inventory.
Nothing is saved between runs; use "export" to write the current list out.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if a.seedPath != "" {
				cfg.SeedPath = a.seedPath
			}
			if a.openLibraryURL != "" {
				cfg.OpenLibrary.BaseURL = a.openLibraryURL
			}
			if a.verbose {
				cfg.LogLevel = slog.LevelDebug
			}
			a.cfg = cfg

			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
			slog.SetDefault(logger)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&a.seedPath, "seed", "", "Seed file (.yaml, .json, .jsonl, .csv, .parquet); defaults to the sample books")
	cmd.PersistentFlags().StringVar(&a.openLibraryURL, "openlibrary-url", "", "Open Library base URL")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Verbose logging")

	cmd.AddCommand(newListCmd(a))
	cmd.AddCommand(newStatsCmd(a))
	cmd.AddCommand(newLookupCmd(a))
	cmd.AddCommand(newExportCmd(a))
	cmd.AddCommand(newShellCmd(a))

	return cmd
}
