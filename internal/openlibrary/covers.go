package openlibrary

import (
	"fmt"
	"net/url"
)

// CoverSize selects one of the Open Library cover renditions
type CoverSize string

const (
	CoverSmall  CoverSize = "S"
	CoverMedium CoverSize = "M"
	CoverLarge  CoverSize = "L"
)

const coversBaseURL = "https://covers.openlibrary.org"

// CoverURL returns the Open Library Covers API URL for isbn, or "" when the
// record has no usable ISBN.
func CoverURL(isbn string, size CoverSize) string {
	if isbn == "" || isbn == UnknownISBN {
		return ""
	}
	if size == "" {
		size = CoverMedium
	}
	return fmt.Sprintf("%s/b/isbn/%s-%s.jpg", coversBaseURL, url.PathEscape(isbn), size)
}
