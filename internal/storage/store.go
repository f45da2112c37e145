package storage

import (
	"log/slog"
	"slices"
	"sync"

	"github.com/lehigh-university-libraries/bookstock/internal/models"
)

// Observer receives a snapshot of the full book list.
// The slice is a copy owned by the observer.
type Observer = func(snapshot []models.Book)

type subscription struct {
	id       int
	observer Observer
}

// Store is the authoritative in-memory book list. Every mutation is
// followed by exactly one snapshot delivered to every subscriber.
type Store struct {
	books     []models.Book
	observers []subscription
	nextSubID int
	mu        sync.RWMutex

	// emitMu serializes a mutation together with its deliveries so that
	// subscribers see snapshots in the order mutations were applied.
	emitMu sync.Mutex
}

// New creates a store holding a copy of seed
func New(seed []models.Book) *Store {
	return &Store{
		books: slices.Clone(seed),
	}
}

// Subscribe delivers the current snapshot to observer right away and then
// one snapshot per subsequent mutation. Observers may read the store from
// the callback but must not mutate it.
func (s *Store) Subscribe(observer Observer) (cancel func()) {
	s.emitMu.Lock()
	defer s.emitMu.Unlock()

	s.mu.Lock()
	s.nextSubID++
	id := s.nextSubID
	s.observers = append(s.observers, subscription{id: id, observer: observer})
	snapshot := slices.Clone(s.books)
	s.mu.Unlock()

	observer(snapshot)

	return func() {
		s.emitMu.Lock()
		defer s.emitMu.Unlock()
		s.mu.Lock()
		defer s.mu.Unlock()
		s.observers = slices.DeleteFunc(s.observers, func(sub subscription) bool {
			return sub.id == id
		})
	}
}

// Add appends book to the end of the list. Duplicate ids are accepted.
func (s *Store) Add(book models.Book) {
	s.mutate("add", book.ID, func(books []models.Book) []models.Book {
		return append(books, book)
	})
}

// Update replaces the first record whose id matches book.ID, keeping its
// position. A missing id leaves the list untouched.
func (s *Store) Update(book models.Book) {
	s.mutate("update", book.ID, func(books []models.Book) []models.Book {
		if i := indexOf(books, book.ID); i >= 0 {
			books[i] = book
		}
		return books
	})
}

// Remove deletes every record with the given id
func (s *Store) Remove(id int) {
	s.mutate("remove", id, func(books []models.Book) []models.Book {
		return slices.DeleteFunc(books, func(b models.Book) bool {
			return b.ID == id
		})
	})
}

// AdjustStock adds delta to the stock of the first record with the given id.
// Stock is not floored at zero.
func (s *Store) AdjustStock(id, delta int) {
	s.mutate("adjust_stock", id, func(books []models.Book) []models.Book {
		if i := indexOf(books, id); i >= 0 {
			books[i].Stock += delta
		}
		return books
	})
}

// CurrentList returns a snapshot without subscribing
func (s *Store) CurrentList() []models.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.books)
}

// Get returns the first record with the given id
func (s *Store) Get(id int) (models.Book, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := indexOf(s.books, id); i >= 0 {
		return s.books[i], true
	}
	return models.Book{}, false
}

// TotalStockUnits sums stock over every record. It is negative when enough
// records have been driven below zero.
func (s *Store) TotalStockUnits() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0
	for _, b := range s.books {
		total += b.Stock
	}
	return total
}

// NextID returns one more than the largest id in the list, or 1 when the
// list holds no positive ids.
func (s *Store) NextID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	maxID := 0
	for _, b := range s.books {
		maxID = max(maxID, b.ID)
	}
	return maxID + 1
}

func (s *Store) mutate(op string, id int, apply func([]models.Book) []models.Book) {
	s.emitMu.Lock()
	defer s.emitMu.Unlock()

	s.mu.Lock()
	s.books = apply(s.books)
	snapshot := slices.Clone(s.books)
	observers := slices.Clone(s.observers)
	s.mu.Unlock()

	slog.Debug("Inventory changed", "op", op, "id", id, "books", len(snapshot), "observers", len(observers))

	for _, sub := range observers {
		// Each observer gets its own copy so none can disturb another's view.
		sub.observer(slices.Clone(snapshot))
	}
}

func indexOf(books []models.Book, id int) int {
	return slices.IndexFunc(books, func(b models.Book) bool {
		return b.ID == id
	})
}
