// Package shell is the interactive terminal front end. It turns typed
// commands into store intents and renders the derived view.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/shlex"

	"github.com/lehigh-university-libraries/bookstock/internal/inventory"
	"github.com/lehigh-university-libraries/bookstock/internal/models"
	"github.com/lehigh-university-libraries/bookstock/internal/storage"
)

const prompt = "bookstock> "

// errQuit ends the session
var errQuit = errors.New("quit")

// Searcher looks up candidate books outside the inventory
type Searcher interface {
	Search(ctx context.Context, query string) []models.Book
}

// Shell runs one interactive session against a store
type Shell struct {
	store      *storage.Store
	view       *inventory.View
	lookup     Searcher
	out        io.Writer
	candidates []models.Book

	// newDraft starts a record for the add command
	newDraft func() models.Book
}

// New creates a shell following store. lookup may be nil to disable the
// lookup and import commands.
func New(store *storage.Store, lookup Searcher, out io.Writer) *Shell {
	return &Shell{
		store:    store,
		view:     inventory.NewView(store),
		lookup:   lookup,
		out:      out,
		newDraft: models.NewDraft,
	}
}

// Close detaches the shell from the store
func (s *Shell) Close() {
	s.view.Close()
}

// Run reads commands from in until EOF, quit, or ctx is done
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	fmt.Fprint(s.out, prompt)
	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(s.out)
			return nil
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(s.out)
				select {
				case err := <-readErr:
					return err
				default:
					return nil
				}
			}
			if err := s.Exec(ctx, line); err != nil {
				if errors.Is(err, errQuit) {
					return nil
				}
				fmt.Fprintf(s.out, "error: %v\n", err)
			}
			fmt.Fprint(s.out, prompt)
		}
	}
}

// Exec runs a single command line
func (s *Shell) Exec(ctx context.Context, line string) error {
	args, err := shlex.Split(line)
	if err != nil {
		return fmt.Errorf("failed to parse command: %w", err)
	}
	if len(args) == 0 {
		return nil
	}

	cmd, args := strings.ToLower(args[0]), args[1:]
	slog.Debug("Shell command", "cmd", cmd, "args", len(args))

	switch cmd {
	case "list", "ls":
		return s.list()
	case "search":
		s.view.SetSearchTerm(strings.Join(args, " "))
		return s.list()
	case "category":
		s.view.SetCategory(strings.Join(args, " "))
		return s.list()
	case "categories":
		_, err := fmt.Fprintln(s.out, strings.Join(inventory.Categories, ", "))
		return err
	case "stats":
		return WriteStats(s.out, s.view.Current().Stats)
	case "show":
		return s.show(args)
	case "add":
		return s.add(args)
	case "edit":
		return s.edit(args)
	case "delete", "rm":
		return s.delete(args)
	case "stock":
		return s.stock(args)
	case "lookup":
		return s.search(ctx, args)
	case "import":
		return s.importCandidate(args)
	case "help", "?":
		_, err := fmt.Fprint(s.out, helpText)
		return err
	case "quit", "exit":
		return errQuit
	default:
		return fmt.Errorf("unknown command %q (try help)", cmd)
	}
}

func (s *Shell) list() error {
	result := s.view.Current()
	if result.SearchTerm != "" || result.Category != "" {
		fmt.Fprintf(s.out, "Showing %d of %d (search %q, category %q)\n",
			len(result.Books), result.Total, result.SearchTerm, result.Category)
	}
	if err := WriteStats(s.out, result.Stats); err != nil {
		return err
	}
	return WriteTable(s.out, result.Books)
}

func (s *Shell) show(args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	book, ok := s.store.Get(id)
	if !ok {
		_, err := fmt.Fprintf(s.out, "No book with id %d.\n", id)
		return err
	}
	return WriteDetail(s.out, book)
}

func (s *Shell) add(args []string) error {
	book := s.newDraft()
	if err := applyFields(&book, args); err != nil {
		return err
	}
	s.store.Add(book)
	_, err := fmt.Fprintf(s.out, "Added %q with id %d.\n", book.Title, book.ID)
	return err
}

func (s *Shell) edit(args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	book, ok := s.store.Get(id)
	if !ok {
		// edits start from the stored record
		_, err := fmt.Fprintf(s.out, "No book with id %d.\n", id)
		return err
	}
	if err := applyFields(&book, args[1:]); err != nil {
		return err
	}
	if book.ID != id {
		return fmt.Errorf("cannot change the id of book %d", id)
	}
	s.store.Update(book)
	_, err = fmt.Fprintf(s.out, "Updated book %d.\n", book.ID)
	return err
}

func (s *Shell) delete(args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	s.store.Remove(id)
	_, err = fmt.Fprintf(s.out, "Deleted book %d.\n", id)
	return err
}

func (s *Shell) stock(args []string) error {
	if len(args) != 2 {
		return errors.New("usage: stock <id> <delta>")
	}
	id, err := parseID(args)
	if err != nil {
		return err
	}
	delta, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid delta %q: %w", args[1], err)
	}
	s.store.AdjustStock(id, delta)
	book, ok := s.store.Get(id)
	if !ok {
		_, err = fmt.Fprintf(s.out, "No book with id %d.\n", id)
		return err
	}
	_, err = fmt.Fprintf(s.out, "Stock for %d is now %d.\n", id, book.Stock)
	return err
}

func (s *Shell) search(ctx context.Context, args []string) error {
	if s.lookup == nil {
		return errors.New("lookup is not configured")
	}
	query := strings.Join(args, " ")
	if query == "" {
		return errors.New("usage: lookup <query>")
	}
	s.candidates = s.lookup.Search(ctx, query)
	return WriteCandidates(s.out, s.candidates)
}

func (s *Shell) importCandidate(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: import <n>")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(s.candidates) {
		return fmt.Errorf("no lookup result %q", args[0])
	}
	book := s.candidates[n-1]
	s.store.Add(book)
	_, err = fmt.Fprintf(s.out, "Added %q with id %d.\n", book.Title, book.ID)
	return err
}

func parseID(args []string) (int, error) {
	if len(args) == 0 {
		return 0, errors.New("missing book id")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid book id %q: %w", args[0], err)
	}
	return id, nil
}

// applyFields sets book fields from key=value arguments
func applyFields(book *models.Book, args []string) error {
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return fmt.Errorf("expected key=value, got %q", arg)
		}

		switch strings.ToLower(key) {
		case "id":
			id, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("invalid id %q: %w", value, err)
			}
			book.ID = id
		case "title":
			book.Title = value
		case "author":
			book.Author = value
		case "isbn":
			book.ISBN = value
		case "price":
			price, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return fmt.Errorf("invalid price %q: %w", value, err)
			}
			book.Price = price
		case "stock":
			stock, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("invalid stock %q: %w", value, err)
			}
			book.Stock = stock
		case "category":
			book.Category = value
		case "date", "publish_date":
			date, err := models.ParseDate(value)
			if err != nil {
				return err
			}
			book.PublishDate = date
		default:
			return fmt.Errorf("unknown field %q", key)
		}
	}
	return nil
}

const helpText = `Commands:
  list                       show the filtered inventory and totals
  search [term]              filter by title or author (no term clears)
  category [name]            filter by exact category (no name clears)
  categories                 list suggested categories
  stats                      show total, low stock and out of stock counts
  show <id>                  show one book
  add key=value...           add a book (id title author isbn price stock category date)
  edit <id> key=value...     replace fields of a book
  delete <id>                remove a book
  stock <id> <delta>         adjust stock, e.g. stock 3 -1
  lookup <query>             search Open Library
  import <n>                 add lookup result n to the inventory
  quit                       leave the shell
`
