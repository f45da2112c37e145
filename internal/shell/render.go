package shell

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/lehigh-university-libraries/bookstock/internal/inventory"
	"github.com/lehigh-university-libraries/bookstock/internal/models"
	"github.com/lehigh-university-libraries/bookstock/internal/openlibrary"
)

var levelLabels = map[inventory.StockLevel]string{
	inventory.InStock:    "",
	inventory.LowStock:   "low",
	inventory.OutOfStock: "out",
}

// WriteTable prints books as an aligned table
func WriteTable(w io.Writer, books []models.Book) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tAUTHOR\tCATEGORY\tPRICE\tSTOCK\tSTATUS")
	for _, b := range books {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%d\t%s\n",
			b.ID, b.Title, b.Author, b.Category, formatPrice(b.Price), b.Stock, levelLabels[inventory.LevelOf(b)])
	}
	return tw.Flush()
}

// WriteCandidates prints lookup results numbered for the import command
func WriteCandidates(w io.Writer, books []models.Book) error {
	if len(books) == 0 {
		_, err := fmt.Fprintln(w, "No results.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tTITLE\tAUTHOR\tISBN\tCATEGORY\tPUBLISHED")
	for i, b := range books {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", i+1, b.Title, b.Author, b.ISBN, b.Category, b.PublishDate)
	}
	return tw.Flush()
}

// WriteStats prints the three inventory figures
func WriteStats(w io.Writer, stats inventory.Stats) error {
	_, err := fmt.Fprintf(w, "Total Books: %d   Low Stock: %d   Out of Stock: %d\n",
		stats.TotalStockUnits, stats.LowStock, stats.OutOfStock)
	return err
}

// WriteDetail prints every field of one book
func WriteDetail(w io.Writer, b models.Book) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%d\n", b.ID)
	fmt.Fprintf(tw, "Title:\t%s\n", b.Title)
	fmt.Fprintf(tw, "Author:\t%s\n", b.Author)
	fmt.Fprintf(tw, "ISBN:\t%s\n", b.ISBN)
	fmt.Fprintf(tw, "Price:\t%s\n", formatPrice(b.Price))
	fmt.Fprintf(tw, "Stock:\t%d\n", b.Stock)
	fmt.Fprintf(tw, "Category:\t%s\n", b.Category)
	fmt.Fprintf(tw, "Published:\t%s\n", b.PublishDate)
	if cover := openlibrary.CoverURL(b.ISBN, openlibrary.CoverLarge); cover != "" {
		fmt.Fprintf(tw, "Cover:\t%s\n", cover)
	}
	return tw.Flush()
}

func formatPrice(price float64) string {
	if price < 0 {
		return fmt.Sprintf("-$%.2f", -price)
	}
	return fmt.Sprintf("$%.2f", price)
}
