package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lehigh-university-libraries/bookstock/internal/models"
)

func titles(books []models.Book) []string {
	out := make([]string, 0, len(books))
	for _, b := range books {
		out = append(out, b.Title)
	}
	return out
}

func TestFilter(t *testing.T) {
	seed := models.SampleBooks()

	tests := []struct {
		name       string
		searchTerm string
		category   string
		expected   []string
	}{
		{
			name:     "empty inputs return everything in order",
			expected: []string{"The Great Gatsby", "To Kill a Mockingbird", "The Hobbit", "1984", "Pride and Prejudice"},
		},
		{
			name:       "title match is case-insensitive",
			searchTerm: "the",
			expected:   []string{"The Great Gatsby", "The Hobbit"},
		},
		{
			name:       "author match",
			searchTerm: "ORWELL",
			expected:   []string{"1984"},
		},
		{
			name:     "category only",
			category: "Fiction",
			expected: []string{"The Great Gatsby", "To Kill a Mockingbird"},
		},
		{
			name:     "category is case-sensitive",
			category: "fiction",
			expected: []string{},
		},
		{
			name:       "term and category combine",
			searchTerm: "the",
			category:   "Fantasy",
			expected:   []string{"The Hobbit"},
		},
		{
			name:       "no match",
			searchTerm: "dune",
			expected:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, titles(Filter(seed, tt.searchTerm, tt.category)))
		})
	}
}

func TestFilterDoesNotAliasInput(t *testing.T) {
	seed := models.SampleBooks()

	filtered := Filter(seed, "", "")
	filtered[0].Title = "changed"

	assert.Equal(t, "The Great Gatsby", seed[0].Title)
}
