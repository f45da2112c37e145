package inventory

import "github.com/lehigh-university-libraries/bookstock/internal/models"

// lowStockThreshold is the highest stock count still reported as low
const lowStockThreshold = 2

// StockLevel classifies a single record's stock
type StockLevel string

const (
	InStock    StockLevel = "in_stock"
	LowStock   StockLevel = "low_stock"
	OutOfStock StockLevel = "out_of_stock"
)

// Stats holds the aggregate figures shown above the book table
type Stats struct {
	TotalStockUnits int `json:"total_stock_units" yaml:"total_stock_units"`
	LowStock        int `json:"low_stock" yaml:"low_stock"`
	OutOfStock      int `json:"out_of_stock" yaml:"out_of_stock"`
}

// LevelOf reports whether b is in stock, low (1 or 2 units) or out (0 or fewer)
func LevelOf(b models.Book) StockLevel {
	switch {
	case b.Stock <= 0:
		return OutOfStock
	case b.Stock <= lowStockThreshold:
		return LowStock
	default:
		return InStock
	}
}

// LowStockCount counts books with 1 or 2 units
func LowStockCount(books []models.Book) int {
	return countLevel(books, LowStock)
}

// OutOfStockCount counts books with 0 or fewer units
func OutOfStockCount(books []models.Book) int {
	return countLevel(books, OutOfStock)
}

// TotalStockUnits sums stock across books. Callers pass the unfiltered list
// for the "Total Books" figure.
func TotalStockUnits(books []models.Book) int {
	total := 0
	for _, b := range books {
		total += b.Stock
	}
	return total
}

// Summarize computes all three statistics over books
func Summarize(books []models.Book) Stats {
	return Stats{
		TotalStockUnits: TotalStockUnits(books),
		LowStock:        LowStockCount(books),
		OutOfStock:      OutOfStockCount(books),
	}
}

func countLevel(books []models.Book, level StockLevel) int {
	n := 0
	for _, b := range books {
		if LevelOf(b) == level {
			n++
		}
	}
	return n
}
