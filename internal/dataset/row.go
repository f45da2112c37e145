// Package dataset reads seed lists and writes exports of the inventory in
// YAML, JSON, JSON Lines, CSV and Parquet.
package dataset

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lehigh-university-libraries/bookstock/internal/models"
)

// ErrUnsupportedFormat is returned for file extensions and format names
// that have no codec.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Format names a codec
type Format string

const (
	FormatYAML    Format = "yaml"
	FormatJSON    Format = "json"
	FormatJSONL   Format = "jsonl"
	FormatCSV     Format = "csv"
	FormatParquet Format = "parquet"
)

// FormatFromPath picks the codec from a file extension
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".jsonl":
		return FormatJSONL, nil
	case ".csv":
		return FormatCSV, nil
	case ".parquet":
		return FormatParquet, nil
	default:
		return "", fmt.Errorf("%w: %q (supported: .yaml, .json, .jsonl, .csv, .parquet)", ErrUnsupportedFormat, ext)
	}
}

// bookRow is the flat Parquet layout of a book. The date travels as text.
type bookRow struct {
	ID          int64   `parquet:"id"`
	Title       string  `parquet:"title"`
	Author      string  `parquet:"author"`
	ISBN        string  `parquet:"isbn"`
	Price       float64 `parquet:"price"`
	Stock       int64   `parquet:"stock"`
	Category    string  `parquet:"category"`
	PublishDate string  `parquet:"publish_date"`
}

func toRow(b models.Book) bookRow {
	return bookRow{
		ID:          int64(b.ID),
		Title:       b.Title,
		Author:      b.Author,
		ISBN:        b.ISBN,
		Price:       b.Price,
		Stock:       int64(b.Stock),
		Category:    b.Category,
		PublishDate: b.PublishDate.String(),
	}
}

func (r bookRow) toBook() (models.Book, error) {
	var date models.Date
	if r.PublishDate != "" {
		parsed, err := models.ParseDate(r.PublishDate)
		if err != nil {
			return models.Book{}, err
		}
		date = parsed
	}
	return models.Book{
		ID:          int(r.ID),
		Title:       r.Title,
		Author:      r.Author,
		ISBN:        r.ISBN,
		Price:       r.Price,
		Stock:       int(r.Stock),
		Category:    r.Category,
		PublishDate: date,
	}, nil
}

// csvHeader is the column order used by the CSV codec
var csvHeader = []string{"id", "title", "author", "isbn", "price", "stock", "category", "publish_date"}
