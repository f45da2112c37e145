package inventory

import (
	"log/slog"
	"slices"
	"sync"

	"github.com/lehigh-university-libraries/bookstock/internal/models"
)

// Source is anything that publishes book list snapshots
type Source interface {
	Subscribe(observer func(snapshot []models.Book)) (cancel func())
}

// Result is what a front end renders for the current inputs
type Result struct {
	Books      []models.Book
	Stats      Stats
	SearchTerm string
	Category   string
	Total      int
}

// View follows a Source and recomputes the filtered list and statistics
// whenever the snapshot, the search term or the category filter changes.
type View struct {
	mu         sync.RWMutex
	all        []models.Book
	searchTerm string
	category   string
	result     Result
	cancel     func()
}

// NewView subscribes to src. The first snapshot arrives before NewView returns.
func NewView(src Source) *View {
	v := &View{}
	v.cancel = src.Subscribe(v.onSnapshot)
	return v
}

// Close stops following the source
func (v *View) Close() {
	if v.cancel != nil {
		v.cancel()
	}
}

// SetSearchTerm changes the search term and recomputes
func (v *View) SetSearchTerm(term string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.searchTerm = term
	v.recompute()
}

// SetCategory changes the category filter and recomputes. An empty
// category shows every category.
func (v *View) SetCategory(category string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.category = category
	v.recompute()
}

// Current returns the latest computed result. Books is a copy.
func (v *View) Current() Result {
	v.mu.RLock()
	defer v.mu.RUnlock()
	result := v.result
	result.Books = slices.Clone(v.result.Books)
	return result
}

func (v *View) onSnapshot(snapshot []models.Book) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.all = snapshot
	v.recompute()
	slog.Debug("View recomputed", "books", len(snapshot), "shown", len(v.result.Books))
}

// recompute must be called with mu held
func (v *View) recompute() {
	v.result = Result{
		Books:      Filter(v.all, v.searchTerm, v.category),
		Stats:      Summarize(v.all),
		SearchTerm: v.searchTerm,
		Category:   v.category,
		Total:      len(v.all),
	}
}
