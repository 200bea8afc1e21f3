// Package messages loads the fixed console text shown by the menu.
package messages

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the catalog file name looked up in the filesystem.
const DefaultFile = "es.yaml"

// menuOptionCount is the number of lines in the menu, one per choice a-e.
const menuOptionCount = 5

// ErrMissingKey indicates a catalog is missing one or more required strings.
var ErrMissingKey = errors.New("messages: missing catalog key")

// Catalog holds every string the menu prints.
type Catalog struct {
	Menu   MenuText   `yaml:"menu"`
	Add    AddText    `yaml:"add"`
	Delete DeleteText `yaml:"delete"`
	Search SearchText `yaml:"search"`
	List   ListText   `yaml:"list"`
}

// MenuText is the main menu and its loop messages.
type MenuText struct {
	Title    string   `yaml:"title"`
	Options  []string `yaml:"options"`
	Invalid  string   `yaml:"invalid"`
	Farewell string   `yaml:"farewell"`
}

// AddText holds the prompts for each entry field.
type AddText struct {
	Title     string `yaml:"title"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Street    string `yaml:"street"`
	City      string `yaml:"city"`
	State     string `yaml:"state"`
	ZipCode   string `yaml:"zip_code"`
	Email     string `yaml:"email"`
	Phone     string `yaml:"phone"`
	Done      string `yaml:"done"`
}

// DeleteText holds the delete flow's prompts and outcomes.
type DeleteText struct {
	Title    string `yaml:"title"`
	Prompt   string `yaml:"prompt"`
	NotFound string `yaml:"not_found"`
	Found    string `yaml:"found"`
	Confirm  string `yaml:"confirm"`
	Done     string `yaml:"done"`
	Kept     string `yaml:"kept"`
}

// SearchText holds the last-name prefix search messages.
type SearchText struct {
	Title  string `yaml:"title"`
	Prompt string `yaml:"prompt"`
	None   string `yaml:"none"`
	Found  string `yaml:"found"`
}

// ListText holds the ordered listing messages.
type ListText struct {
	Title string `yaml:"title"`
	Empty string `yaml:"empty"`
	Found string `yaml:"found"`
}

// Load reads and validates the catalog named name from fsys.
// Unknown keys and missing strings are errors.
func Load(fsys fs.FS, name string) (*Catalog, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("messages: loading %s: %w", name, err)
	}
	return Parse(data)
}

// Parse decodes a YAML catalog and checks that every string is present.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("messages: parsing catalog: %w", err)
	}
	if missing := c.missing(); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingKey, strings.Join(missing, ", "))
	}
	return &c, nil
}

// missing lists the dotted keys of empty strings.
func (c *Catalog) missing() []string {
	fields := []struct {
		key   string
		value string
	}{
		{"menu.title", c.Menu.Title},
		{"menu.invalid", c.Menu.Invalid},
		{"menu.farewell", c.Menu.Farewell},
		{"add.title", c.Add.Title},
		{"add.first_name", c.Add.FirstName},
		{"add.last_name", c.Add.LastName},
		{"add.street", c.Add.Street},
		{"add.city", c.Add.City},
		{"add.state", c.Add.State},
		{"add.zip_code", c.Add.ZipCode},
		{"add.email", c.Add.Email},
		{"add.phone", c.Add.Phone},
		{"add.done", c.Add.Done},
		{"delete.title", c.Delete.Title},
		{"delete.prompt", c.Delete.Prompt},
		{"delete.not_found", c.Delete.NotFound},
		{"delete.found", c.Delete.Found},
		{"delete.confirm", c.Delete.Confirm},
		{"delete.done", c.Delete.Done},
		{"delete.kept", c.Delete.Kept},
		{"search.title", c.Search.Title},
		{"search.prompt", c.Search.Prompt},
		{"search.none", c.Search.None},
		{"search.found", c.Search.Found},
		{"list.title", c.List.Title},
		{"list.empty", c.List.Empty},
		{"list.found", c.List.Found},
	}

	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.key)
		}
	}
	if len(c.Menu.Options) != menuOptionCount {
		missing = append(missing, fmt.Sprintf("menu.options (want %d lines, got %d)", menuOptionCount, len(c.Menu.Options)))
	}
	return missing
}
