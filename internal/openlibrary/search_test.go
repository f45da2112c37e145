package openlibrary

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lehigh-university-libraries/bookstock/internal/models"
	"github.com/lehigh-university-libraries/bookstock/internal/storage"
)

type fixedIDs int

func (f fixedIDs) NextID() int { return int(f) }

func newTestClient(t *testing.T, handler http.HandlerFunc, ids IDAllocator) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(server.URL, ids,
		WithHTTPClient(server.Client()),
		WithInterval(0),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	client.now = func() time.Time {
		return time.Date(2025, time.March, 14, 15, 9, 26, 0, time.UTC)
	}
	return client, server
}

func respond(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func TestSearchWithoutAuthorsSharesOneID(t *testing.T) {
	store := storage.New(models.SampleBooks())
	body := `{"docs": [{"title": "A"}, {"title": "B"}, {"title": "C"}]}`
	client, _ := newTestClient(t, respond(http.StatusOK, body), store)

	books := client.Search(context.Background(), "anything")

	require.Len(t, books, 3)
	for _, b := range books {
		assert.Equal(t, UnknownAuthor, b.Author)
		assert.Equal(t, 6, b.ID)
	}
	assert.Equal(t, []string{"A", "B", "C"}, []string{books[0].Title, books[1].Title, books[2].Title})
}

func TestSearchMapsFields(t *testing.T) {
	body := `{"docs": [
		{
			"title": "The Left Hand of Darkness",
			"author_name": ["Ursula K. Le Guin", "Someone Else"],
			"isbn": ["9780441478125", "0441478123"],
			"subject": ["Science Fiction", "Gender"],
			"first_publish_year": 1969
		},
		{"title": "Untitled", "author_name": [], "isbn": [""]}
	]}`
	client, _ := newTestClient(t, respond(http.StatusOK, body), fixedIDs(42))

	books := client.Search(context.Background(), "le guin")

	require.Len(t, books, 2)
	assert.Equal(t, models.Book{
		ID:          42,
		Title:       "The Left Hand of Darkness",
		Author:      "Ursula K. Le Guin",
		ISBN:        "9780441478125",
		Price:       9.99,
		Stock:       0,
		Category:    "Science Fiction",
		PublishDate: models.NewDate(1969, time.January, 1),
	}, books[0])
	assert.Equal(t, models.Book{
		ID:          42,
		Title:       "Untitled",
		Author:      UnknownAuthor,
		ISBN:        UnknownISBN,
		Price:       9.99,
		Category:    UnknownCategory,
		PublishDate: models.NewDate(2025, time.March, 14),
	}, books[1])
}

func TestSearchZeroYearUsesToday(t *testing.T) {
	body := `{"docs": [{"title": "Undated", "first_publish_year": 0}]}`
	client, _ := newTestClient(t, respond(http.StatusOK, body), fixedIDs(1))

	books := client.Search(context.Background(), "undated")

	require.Len(t, books, 1)
	assert.Equal(t, models.NewDate(2025, time.March, 14), books[0].PublishDate)
}

func TestSearchCapsResults(t *testing.T) {
	docs := make([]string, 0, 15)
	for range 15 {
		docs = append(docs, `{"title": "x"}`)
	}
	body := `{"docs": [` + strings.Join(docs, ",") + `]}`
	client, _ := newTestClient(t, respond(http.StatusOK, body), fixedIDs(1))

	assert.Len(t, client.Search(context.Background(), "x"), MaxResults)
}

func TestSearchEscapesQuery(t *testing.T) {
	var gotPath, gotQuery string
	handler := func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("q")
		respond(http.StatusOK, `{"docs": []}`)(w, r)
	}
	client, _ := newTestClient(t, handler, fixedIDs(1))

	books := client.Search(context.Background(), "war & peace?")

	assert.NotNil(t, books)
	assert.Empty(t, books)
	assert.Equal(t, "/search.json", gotPath)
	assert.Equal(t, "war & peace?", gotQuery)
}

func TestSearchFailuresReturnEmpty(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{name: "server error", handler: respond(http.StatusInternalServerError, "boom")},
		{name: "not found", handler: respond(http.StatusNotFound, "")},
		{name: "malformed body", handler: respond(http.StatusOK, `{"docs": [`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, tt.handler, fixedIDs(1))

			books := client.Search(context.Background(), "q")

			assert.NotNil(t, books)
			assert.Empty(t, books)
		})
	}
}

func TestSearchNetworkErrorReturnsEmpty(t *testing.T) {
	client, server := newTestClient(t, respond(http.StatusOK, `{"docs": [{"title": "A"}]}`), fixedIDs(1))
	server.Close()

	books := client.Search(context.Background(), "q")

	assert.NotNil(t, books)
	assert.Empty(t, books)
}

func TestSearchCancelledContextReturnsEmpty(t *testing.T) {
	client, _ := newTestClient(t, respond(http.StatusOK, `{"docs": [{"title": "A"}]}`), fixedIDs(1))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Empty(t, client.Search(ctx, "q"))
}

func TestNewClientDefaults(t *testing.T) {
	client := NewClient("", fixedIDs(1))

	assert.Equal(t, DefaultBaseURL, client.BaseURL)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
}

func TestWithTimeoutCopiesClient(t *testing.T) {
	shared := &http.Client{Timeout: time.Minute}

	client := NewClient("", fixedIDs(1), WithHTTPClient(shared), WithTimeout(5*time.Second))

	assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
	assert.Equal(t, time.Minute, shared.Timeout)
}

func TestCoverURL(t *testing.T) {
	assert.Equal(t, "https://covers.openlibrary.org/b/isbn/9780547928227-M.jpg", CoverURL("9780547928227", ""))
	assert.Equal(t, "https://covers.openlibrary.org/b/isbn/9780547928227-L.jpg", CoverURL("9780547928227", CoverLarge))
	assert.Empty(t, CoverURL(UnknownISBN, CoverSmall))
	assert.Empty(t, CoverURL("", CoverSmall))
}
