// Package inventory derives the filtered list and stock statistics shown
// for a snapshot of the store. Everything here is a pure function of its
// inputs except View, which only remembers the latest inputs.
package inventory

import (
	"strings"

	"github.com/lehigh-university-libraries/bookstock/internal/models"
)

// Categories is the suggestion set offered when choosing a category.
// Records are not restricted to it.
var Categories = []string{"Fiction", "Fantasy", "Dystopian", "Classic"}

// Filter keeps the books whose title or author contains searchTerm, ignoring
// case, and whose category equals category exactly. An empty searchTerm or
// category matches everything. Order is preserved.
func Filter(books []models.Book, searchTerm, category string) []models.Book {
	term := strings.ToLower(searchTerm)

	filtered := make([]models.Book, 0, len(books))
	for _, b := range books {
		matchesSearch := strings.Contains(strings.ToLower(b.Title), term) ||
			strings.Contains(strings.ToLower(b.Author), term)
		matchesCategory := category == "" || b.Category == category

		if matchesSearch && matchesCategory {
			filtered = append(filtered, b)
		}
	}
	return filtered
}
