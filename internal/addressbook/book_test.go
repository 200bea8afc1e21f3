package addressbook

import (
	"errors"
	"testing"
)

// entry builds an entry with only the last name set.
func entry(lastName string) Entry {
	return NewEntry("", lastName, Address{}, "", "")
}

// lastNames extracts last names in order.
func lastNames(entries []Entry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.LastName
	}
	return names
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestBook_AddPreservesInsertionOrder(t *testing.T) {
	// Given an empty book
	b := New()

	// When N entries are added
	names := []string{"Zeta", "Alpha", "Mu", "Alpha"}
	for _, n := range names {
		b.Add(entry(n))
	}

	// Then the size is N and entries come back in insertion order
	if b.Len() != len(names) {
		t.Fatalf("Len() = %d, want %d", b.Len(), len(names))
	}
	if got := lastNames(b.Entries()); !equalStrings(got, names) {
		t.Errorf("Entries() = %v, want %v", got, names)
	}
}

func TestBook_FindByLastName_CaseInsensitive(t *testing.T) {
	// Given a book holding Smith
	b := New()
	smith := entry("Smith")
	b.Add(entry("Jones"))
	b.Add(smith)

	for _, q := range []string{"Smith", "smith", "SMITH", "SmItH"} {
		t.Run(q, func(t *testing.T) {
			// When searching by exact last name
			got, ok := b.FindByLastName(q)

			// Then the Smith entry is returned
			if !ok {
				t.Fatalf("FindByLastName(%q) found nothing", q)
			}
			if got.ID != smith.ID {
				t.Errorf("FindByLastName(%q) ID = %q, want %q", q, got.ID, smith.ID)
			}
		})
	}
}

func TestBook_FindByLastName_FirstMatchWins(t *testing.T) {
	b := New()
	first := entry("Pérez")
	b.Add(first)
	b.Add(entry("pérez"))

	got, ok := b.FindByLastName("PÉREZ")
	if !ok {
		t.Fatal("FindByLastName() found nothing")
	}
	if got.ID != first.ID {
		t.Errorf("FindByLastName() returned a later duplicate, want the first")
	}
}

func TestBook_FindByLastName_NoPrefixMatch(t *testing.T) {
	b := New()
	b.Add(entry("Johnson"))

	if _, ok := b.FindByLastName("John"); ok {
		t.Error("FindByLastName(\"John\") should not match \"Johnson\"")
	}
	if _, ok := New().FindByLastName("x"); ok {
		t.Error("FindByLastName on empty book should find nothing")
	}
}

func TestBook_SearchByLastName(t *testing.T) {
	b := New()
	for _, n := range []string{"Gómez", "garcía", "López", "GONZÁLEZ"} {
		b.Add(entry(n))
	}

	tests := []struct {
		name   string
		prefix string
		want   []string
	}{
		{name: "empty prefix matches all", prefix: "", want: []string{"Gómez", "garcía", "López", "GONZÁLEZ"}},
		{name: "prefix ignores case", prefix: "G", want: []string{"Gómez", "garcía", "GONZÁLEZ"}},
		{name: "accented prefix ignores case", prefix: "gó", want: []string{"Gómez"}},
		{name: "full name", prefix: "lópez", want: []string{"López"}},
		{name: "no match", prefix: "x", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lastNames(b.SearchByLastName(tt.prefix))
			if !equalStrings(got, tt.want) {
				t.Errorf("SearchByLastName(%q) = %v, want %v", tt.prefix, got, tt.want)
			}
		})
	}
}

func TestBook_OrderedByLastName(t *testing.T) {
	// Given entries added out of order, with a case-only tie
	b := New()
	beta := entry("Beta")
	alpha1 := entry("alpha")
	alpha2 := entry("Alpha")
	b.Add(beta)
	b.Add(alpha1)
	b.Add(alpha2)

	// When ordering twice
	first := b.OrderedByLastName()
	second := b.OrderedByLastName()

	// Then ties keep insertion order and the result is stable across calls
	wantIDs := []string{alpha1.ID, alpha2.ID, beta.ID}
	for i, e := range first {
		if e.ID != wantIDs[i] {
			t.Errorf("first[%d] = %q, want %q", i, e.LastName, []string{"alpha", "Alpha", "Beta"}[i])
		}
		if second[i].ID != e.ID {
			t.Errorf("second[%d] differs from first call", i)
		}
	}
	for i := 1; i < len(first); i++ {
		if foldKey(first[i-1].LastName) > foldKey(first[i].LastName) {
			t.Errorf("ordering decreases at %d: %q > %q", i, first[i-1].LastName, first[i].LastName)
		}
	}

	// And the book itself keeps insertion order
	if got := lastNames(b.Entries()); !equalStrings(got, []string{"Beta", "alpha", "Alpha"}) {
		t.Errorf("Entries() after ordering = %v, want insertion order", got)
	}
}

func TestBook_OrderedByLastName_ReturnsCopy(t *testing.T) {
	b := New()
	b.Add(entry("B"))
	b.Add(entry("A"))

	ordered := b.OrderedByLastName()
	ordered[0].LastName = "changed"

	if got := lastNames(b.Entries()); !equalStrings(got, []string{"B", "A"}) {
		t.Errorf("Entries() = %v, mutation of result leaked into book", got)
	}
}

func TestBook_Delete(t *testing.T) {
	// Given two entries with identical fields
	b := New()
	a := NewEntry("Ana", "Johnson", Address{}, "a@x.com", "555")
	c := NewEntry("Ana", "Johnson", Address{}, "a@x.com", "555")
	b.Add(a)
	b.Add(c)

	// When the second is deleted by ID
	if err := b.Delete(c.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	// Then only the first remains
	entries := b.Entries()
	if len(entries) != 1 || entries[0].ID != a.ID {
		t.Errorf("Entries() = %v, want only the first entry", entries)
	}
}

func TestBook_DeleteNotFound(t *testing.T) {
	// Given a book with two entries
	b := New()
	b.Add(entry("Uno"))
	b.Add(entry("Dos"))
	stranger := entry("Uno")

	// When deleting an entry that was never added
	err := b.Delete(stranger.ID)

	// Then ErrNotFound is returned and nothing changes
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Delete() error = %v, want ErrNotFound", err)
	}
	if got := lastNames(b.Entries()); !equalStrings(got, []string{"Uno", "Dos"}) {
		t.Errorf("Entries() = %v, want unchanged", got)
	}
}

func TestBook_DeleteTwice(t *testing.T) {
	b := New()
	e := entry("Johnson")
	b.Add(e)

	if err := b.Delete(e.ID); err != nil {
		t.Fatalf("first Delete() error = %v", err)
	}
	if err := b.Delete(e.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}
	if b.Len() != 0 {
		t.Errorf("Len() = %d, want 0", b.Len())
	}
}

func TestBook_AddSameEntryTwice(t *testing.T) {
	// Given the same entry value added twice
	b := New()
	e := entry("Johnson")
	b.Add(e)
	b.Add(e)

	// When deleting by its ID
	if err := b.Delete(e.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	// Then only the first copy goes; a second Delete removes the other
	if b.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", b.Len())
	}
	if err := b.Delete(e.ID); err != nil {
		t.Fatalf("second Delete() error = %v", err)
	}
	if b.Len() != 0 {
		t.Errorf("Len() = %d, want 0", b.Len())
	}
}

func TestBook_NewEntryIDsDiffer(t *testing.T) {
	b := New()
	b.Add(entry("Johnson"))
	b.Add(entry("Johnson"))

	entries := b.Entries()
	if entries[0].ID == entries[1].ID {
		t.Errorf("entries share ID %q", entries[0].ID)
	}
}
