package dataset

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/parquet-go/parquet-go"
	"gopkg.in/yaml.v3"

	"github.com/lehigh-university-libraries/bookstock/internal/models"
)

// Write encodes books to w in the given format
func Write(w io.Writer, books []models.Book, format Format) error {
	switch format {
	case FormatYAML:
		return writeYAML(w, books)
	case FormatJSON:
		return writeJSON(w, books)
	case FormatJSONL:
		return writeJSONL(w, books)
	case FormatCSV:
		return writeCSV(w, books)
	case FormatParquet:
		return writeParquet(w, books)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// WriteFile saves books to path, picking the format from its extension
func WriteFile(path string, books []models.Book) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}

	if err := Write(file, books, format); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close export file: %w", err)
	}

	slog.Info("Inventory exported", "path", path, "format", format, "books", len(books))
	return nil
}

func writeYAML(w io.Writer, books []models.Book) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(books); err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return encoder.Close()
}

func writeJSON(w io.Writer, books []models.Book) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(books); err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return nil
}

func writeJSONL(w io.Writer, books []models.Book) error {
	encoder := json.NewEncoder(w)
	for _, b := range books {
		if err := encoder.Encode(b); err != nil {
			return fmt.Errorf("failed to marshal JSON line for book %d: %w", b.ID, err)
		}
	}
	return nil
}

func writeCSV(w io.Writer, books []models.Book) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return err
	}
	for _, b := range books {
		row := []string{
			strconv.Itoa(b.ID),
			b.Title,
			b.Author,
			b.ISBN,
			strconv.FormatFloat(b.Price, 'f', -1, 64),
			strconv.Itoa(b.Stock),
			b.Category,
			b.PublishDate.String(),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func writeParquet(w io.Writer, books []models.Book) error {
	rows := make([]bookRow, 0, len(books))
	for _, b := range books {
		rows = append(rows, toRow(b))
	}

	writer := parquet.NewGenericWriter[bookRow](w)
	if _, err := writer.Write(rows); err != nil {
		return fmt.Errorf("failed to write parquet rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finish parquet file: %w", err)
	}
	return nil
}
