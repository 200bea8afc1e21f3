package addressbook

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// ErrNotFound indicates the requested entry is not in the book.
var ErrNotFound = errors.New("addressbook: entry not found")

// Book is an ordered, in-memory collection of entries.
// It is not safe for concurrent use.
type Book struct {
	entries []Entry
}

// New creates an empty Book.
func New() *Book {
	return &Book{}
}

// Add appends e. Duplicates by field value are allowed. Add does not check
// IDs: adding the same Entry value twice stores its ID twice, and Delete then
// removes only the first copy. Build each entry with NewEntry.
func (b *Book) Add(e Entry) {
	b.entries = append(b.entries, e)
}

// Delete removes the entry with the given ID. If no entry has that ID the
// book is left unchanged and an error wrapping ErrNotFound is returned.
func (b *Book) Delete(id string) error {
	i := slices.IndexFunc(b.entries, func(e Entry) bool { return e.ID == id })
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	b.entries = slices.Delete(b.entries, i, i+1)
	return nil
}

// FindByLastName returns the first entry, in insertion order, whose last
// name equals lastName ignoring case.
func (b *Book) FindByLastName(lastName string) (Entry, bool) {
	key := foldKey(lastName)
	for _, e := range b.entries {
		if foldKey(e.LastName) == key {
			return e, true
		}
	}
	return Entry{}, false
}

// SearchByLastName returns every entry whose last name starts with prefix,
// ignoring case, in insertion order. An empty prefix matches all entries.
func (b *Book) SearchByLastName(prefix string) []Entry {
	key := foldKey(prefix)
	var matches []Entry
	for _, e := range b.entries {
		if strings.HasPrefix(foldKey(e.LastName), key) {
			matches = append(matches, e)
		}
	}
	return matches
}

// OrderedByLastName returns a copy of all entries sorted by last name,
// ignoring case. Entries with equal keys keep their insertion order.
func (b *Book) OrderedByLastName() []Entry {
	sorted := slices.Clone(b.entries)
	slices.SortStableFunc(sorted, func(x, y Entry) int {
		return strings.Compare(foldKey(x.LastName), foldKey(y.LastName))
	})
	return sorted
}

// Entries returns a copy of all entries in insertion order.
func (b *Book) Entries() []Entry {
	return slices.Clone(b.entries)
}

// Len returns the number of entries.
func (b *Book) Len() int {
	return len(b.entries)
}

// foldKey is the single normalization applied to every last name before
// comparison, for exact, prefix and ordering alike.
func foldKey(s string) string {
	return cases.Fold().String(s)
}
