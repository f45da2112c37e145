package models

import (
	"math/rand/v2"
	"time"
)

// Book represents one inventory item
type Book struct {
	ID          int     `json:"id" yaml:"id"`
	Title       string  `json:"title" yaml:"title"`
	Author      string  `json:"author" yaml:"author"`
	ISBN        string  `json:"isbn" yaml:"isbn"`
	Price       float64 `json:"price" yaml:"price"`
	Stock       int     `json:"stock" yaml:"stock"`
	Category    string  `json:"category" yaml:"category"`
	PublishDate Date    `json:"publish_date" yaml:"publish_date"`
}

// maxDraftID bounds the ids handed out to records added without one.
const maxDraftID = 1000

// NewDraft returns an empty record the way the add form starts one:
// blank text fields, zero price and stock, today's date and a random id.
func NewDraft() Book {
	return Book{
		ID:          rand.IntN(maxDraftID) + 1,
		PublishDate: Today(),
	}
}

// SampleBooks returns the records a fresh inventory starts with
func SampleBooks() []Book {
	return []Book{
		{
			ID:          1,
			Title:       "The Great Gatsby",
			Author:      "F. Scott Fitzgerald",
			ISBN:        "9780743273565",
			Price:       12.99,
			Stock:       5,
			Category:    "Fiction",
			PublishDate: NewDate(1925, time.April, 10),
		},
		{
			ID:          2,
			Title:       "To Kill a Mockingbird",
			Author:      "Harper Lee",
			ISBN:        "9780061120084",
			Price:       14.99,
			Stock:       3,
			Category:    "Fiction",
			PublishDate: NewDate(1960, time.July, 11),
		},
		{
			ID:          3,
			Title:       "The Hobbit",
			Author:      "J.R.R. Tolkien",
			ISBN:        "9780547928227",
			Price:       11.99,
			Stock:       7,
			Category:    "Fantasy",
			PublishDate: NewDate(1937, time.September, 21),
		},
		{
			ID:          4,
			Title:       "1984",
			Author:      "George Orwell",
			ISBN:        "9780451524935",
			Price:       9.99,
			Stock:       0,
			Category:    "Dystopian",
			PublishDate: NewDate(1949, time.June, 8),
		},
		{
			ID:          5,
			Title:       "Pride and Prejudice",
			Author:      "Jane Austen",
			ISBN:        "9780141439518",
			Price:       7.99,
			Stock:       0,
			Category:    "Classic",
			PublishDate: NewDate(1813, time.January, 28),
		},
	}
}
