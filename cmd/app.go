package cmd

import (
	"fmt"
	"log/slog"

	"github.com/lehigh-university-libraries/bookstock/internal/config"
	"github.com/lehigh-university-libraries/bookstock/internal/dataset"
	"github.com/lehigh-university-libraries/bookstock/internal/models"
	"github.com/lehigh-university-libraries/bookstock/internal/openlibrary"
	"github.com/lehigh-university-libraries/bookstock/internal/storage"
)

// app carries flag values and the loaded configuration to subcommands,
// and builds the store and lookup client each command works with.
type app struct {
	seedPath       string
	openLibraryURL string
	verbose        bool

	cfg *config.Config
}

// newStore builds the inventory from the seed file, or the sample books
func (a *app) newStore() (*storage.Store, error) {
	if a.cfg.SeedPath == "" {
		return storage.New(models.SampleBooks()), nil
	}

	books, err := dataset.NewLoader(a.cfg.SeedPath).Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load seed: %w", err)
	}
	slog.Info("Inventory seeded", "path", a.cfg.SeedPath, "books", len(books))
	return storage.New(books), nil
}

func (a *app) newLookup(store *storage.Store) *openlibrary.Client {
	return openlibrary.NewClient(a.cfg.OpenLibrary.BaseURL, store,
		openlibrary.WithTimeout(a.cfg.OpenLibrary.Timeout),
		openlibrary.WithInterval(a.cfg.OpenLibrary.Interval),
	)
}
