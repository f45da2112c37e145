package dataset

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/parquet-go/parquet-go"
	"gopkg.in/yaml.v3"

	"github.com/lehigh-university-libraries/bookstock/internal/models"
)

// Loader reads a book list from a file
type Loader struct {
	path string
}

// NewLoader creates a new loader for path
func NewLoader(path string) *Loader {
	return &Loader{
		path: path,
	}
}

// Load reads every record in the file, picking the codec from its extension
func (l *Loader) Load() ([]models.Book, error) {
	format, err := FormatFromPath(l.path)
	if err != nil {
		return nil, err
	}

	slog.Debug("Opening seed file", "path", l.path, "format", format)

	file, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer file.Close()

	var books []models.Book
	switch format {
	case FormatYAML:
		books, err = decodeYAML(file)
	case FormatJSON:
		books, err = decodeJSON(file)
	case FormatJSONL:
		books, err = decodeJSONL(file)
	case FormatCSV:
		books, err = decodeCSV(file)
	case FormatParquet:
		books, err = decodeParquet(file)
	}
	if err != nil {
		return nil, err
	}

	slog.Debug("Finished reading seed file", "path", l.path, "books", len(books))
	return books, nil
}

func decodeYAML(r io.Reader) ([]models.Book, error) {
	var books []models.Book
	if err := yaml.NewDecoder(r).Decode(&books); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return books, nil
}

func decodeJSON(r io.Reader) ([]models.Book, error) {
	var books []models.Book
	if err := json.NewDecoder(r).Decode(&books); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return books, nil
}

func decodeJSONL(r io.Reader) ([]models.Book, error) {
	var books []models.Book
	scanner := bufio.NewScanner(r)

	// Allow long lines
	const maxCapacity = 1024 * 1024
	scanner.Buffer(make([]byte, 0, 64*1024), maxCapacity)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var book models.Book
		if err := json.Unmarshal(line, &book); err != nil {
			return nil, fmt.Errorf("failed to parse JSON at line %d: %w", lineNum, err)
		}
		books = append(books, book)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading seed file: %w", err)
	}
	return books, nil
}

func decodeCSV(r io.Reader) ([]models.Book, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(csvHeader)

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	books := make([]models.Book, 0, len(records)-1)
	// First record is the header
	for i, rec := range records[1:] {
		book, err := csvRecordToBook(rec)
		if err != nil {
			return nil, fmt.Errorf("failed to parse CSV row %d: %w", i+2, err)
		}
		books = append(books, book)
	}
	return books, nil
}

func csvRecordToBook(rec []string) (models.Book, error) {
	id, err := strconv.Atoi(rec[0])
	if err != nil {
		return models.Book{}, fmt.Errorf("invalid id: %w", err)
	}
	price, err := strconv.ParseFloat(rec[4], 64)
	if err != nil {
		return models.Book{}, fmt.Errorf("invalid price: %w", err)
	}
	stock, err := strconv.Atoi(rec[5])
	if err != nil {
		return models.Book{}, fmt.Errorf("invalid stock: %w", err)
	}
	return bookRow{
		ID:          int64(id),
		Title:       rec[1],
		Author:      rec[2],
		ISBN:        rec[3],
		Price:       price,
		Stock:       int64(stock),
		Category:    rec[6],
		PublishDate: rec[7],
	}.toBook()
}

func decodeParquet(file *os.File) ([]models.Book, error) {
	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pf, err := parquet.OpenFile(file, info.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet: %w", err)
	}

	slog.Debug("Parquet file opened successfully", "num_rows", pf.NumRows(), "num_row_groups", len(pf.RowGroups()))

	reader := parquet.NewGenericReader[bookRow](pf)
	defer reader.Close()

	books := make([]models.Book, 0, pf.NumRows())
	rows := make([]bookRow, 128) // Read in batches

	for {
		n, err := reader.Read(rows)
		for _, row := range rows[:n] {
			book, convErr := row.toBook()
			if convErr != nil {
				return nil, fmt.Errorf("failed to convert parquet row: %w", convErr)
			}
			books = append(books, book)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read parquet rows: %w", err)
		}
	}

	return books, nil
}
