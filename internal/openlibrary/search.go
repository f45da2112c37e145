package openlibrary

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lehigh-university-libraries/bookstock/internal/models"
)

const (
	// MaxResults caps the candidates returned by one search
	MaxResults = 10

	DefaultPrice    = 9.99
	UnknownAuthor   = "Unknown Author"
	UnknownISBN     = "N/A"
	UnknownCategory = "Uncategorized"
)

// searchResponse is the subset of /search.json this client reads
type searchResponse struct {
	Docs []searchDoc `json:"docs"`
}

type searchDoc struct {
	Title            string   `json:"title"`
	AuthorName       []string `json:"author_name"`
	ISBN             []string `json:"isbn"`
	Subject          []string `json:"subject"`
	FirstPublishYear *int     `json:"first_publish_year"`
}

// Search looks query up and maps up to MaxResults matches to candidate
// books. Any failure is logged and yields an empty result.
//
// Every candidate from one call carries the same id: the allocator is asked
// once, before mapping, and nothing is added to the store in between.
// Callers adding several candidates should reassign ids themselves.
func (c *Client) Search(ctx context.Context, query string) []models.Book {
	docs, err := c.search(ctx, query)
	if err != nil {
		c.logger.Error("Open Library search failed", "query", query, "err", err)
		return []models.Book{}
	}

	if len(docs) > MaxResults {
		docs = docs[:MaxResults]
	}

	id := c.ids.NextID()
	today := models.DateOf(c.now())

	books := make([]models.Book, 0, len(docs))
	for _, doc := range docs {
		books = append(books, doc.toBook(id, today))
	}

	c.logger.Debug("Open Library search results", "query", query, "count", len(books), "id", id)
	return books
}

func (c *Client) search(ctx context.Context, query string) ([]searchDoc, error) {
	if err := c.wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	searchURL := fmt.Sprintf("%s/search.json?q=%s", strings.TrimRight(c.BaseURL, "/"), url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch from Open Library: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("Open Library returned status %d: %s", resp.StatusCode, string(body))
	}

	var searchResp searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, fmt.Errorf("failed to decode Open Library response: %w", err)
	}

	return searchResp.Docs, nil
}

func (d searchDoc) toBook(id int, today models.Date) models.Book {
	publishDate := today
	if d.FirstPublishYear != nil && *d.FirstPublishYear != 0 {
		publishDate = models.NewDate(*d.FirstPublishYear, time.January, 1)
	}

	return models.Book{
		ID:          id,
		Title:       d.Title,
		Author:      firstOr(d.AuthorName, UnknownAuthor),
		ISBN:        firstOr(d.ISBN, UnknownISBN),
		Price:       DefaultPrice,
		Stock:       0,
		Category:    firstOr(d.Subject, UnknownCategory),
		PublishDate: publishDate,
	}
}

// firstOr returns the first non-empty value, or fallback
func firstOr(values []string, fallback string) string {
	if len(values) == 0 || values[0] == "" {
		return fallback
	}
	return values[0]
}
