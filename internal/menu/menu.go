// Package menu implements the interactive address-book console: a loop that
// reads a choice per line and dispatches to add, delete, search and list.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/smileynet/libreta/internal/addressbook"
	"github.com/smileynet/libreta/internal/logging"
	"github.com/smileynet/libreta/internal/messages"
	"github.com/smileynet/libreta/internal/ui"
)

// ErrInputClosed indicates input ended before the user chose to exit.
var ErrInputClosed = errors.New("menu: input closed")

// DefaultConfirm is the affirmative token accepted by the delete prompt.
const DefaultConfirm = "s"

// Menu choices.
const (
	choiceAdd    = 'a'
	choiceDelete = 'b'
	choiceSearch = 'c'
	choiceList   = 'd'
	choiceExit   = 'e'
)

// Menu drives a Book from line-oriented console input.
type Menu struct {
	book    *addressbook.Book
	text    *messages.Catalog
	in      *bufio.Reader
	out     io.Writer
	styles  ui.Styles
	confirm string
	log     *zap.Logger
}

// Option configures a Menu.
type Option func(*Menu)

// WithStyles sets the output styles. Defaults to plain text.
func WithStyles(s ui.Styles) Option {
	return func(m *Menu) { m.styles = s }
}

// WithConfirmToken sets the affirmative token for deletion, compared
// ignoring case. Blank tokens are ignored.
func WithConfirmToken(token string) Option {
	return func(m *Menu) {
		if t := strings.TrimSpace(token); t != "" {
			m.confirm = t
		}
	}
}

// WithLogger sets the diagnostics logger. Defaults to a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(m *Menu) {
		if log != nil {
			m.log = log
		}
	}
}

// New creates a Menu that reads from in, writes to out and mutates book.
func New(book *addressbook.Book, text *messages.Catalog, in io.Reader, out io.Writer, opts ...Option) *Menu {
	m := &Menu{
		book:    book,
		text:    text,
		in:      bufio.NewReader(in),
		out:     out,
		styles:  ui.PlainStyles(),
		confirm: DefaultConfirm,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run shows the menu and handles choices until the user exits.
// It returns nil on exit, ErrInputClosed (after the farewell) if input
// ends first, or ctx's error if ctx is done between prompts.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.showMenu()
		line, err := m.readLine()
		exit := false
		if err == nil {
			exit, err = m.handle(line)
		}
		if errors.Is(err, ErrInputClosed) {
			m.println(m.text.Menu.Farewell)
		}
		if err != nil || exit {
			return err
		}
	}
}

// handle dispatches on the first rune of line. An empty line decodes to
// utf8.RuneError and is reported as an invalid option.
func (m *Menu) handle(line string) (exit bool, err error) {
	choice, _ := utf8.DecodeRuneInString(line)
	switch choice {
	case choiceAdd:
		return false, m.addEntry()
	case choiceDelete:
		return false, m.deleteEntry()
	case choiceSearch:
		return false, m.searchEntries()
	case choiceList:
		m.listEntries()
	case choiceExit:
		m.println(m.text.Menu.Farewell)
		m.log.Debug("menu exit", zap.Int("entries", m.book.Len()))
		return true, nil
	default:
		m.println(m.styles.Error.Render(m.text.Menu.Invalid))
	}
	return false, nil
}

func (m *Menu) showMenu() {
	m.println("")
	m.println(m.styles.Title.Render(m.text.Menu.Title))
	for _, opt := range m.text.Menu.Options {
		m.println(m.styles.Option.Render(opt))
	}
}

// addEntry collects the eight fields in order and appends a new entry.
func (m *Menu) addEntry() error {
	m.println(m.styles.Title.Render(m.text.Add.Title))

	prompts := []string{
		m.text.Add.FirstName,
		m.text.Add.LastName,
		m.text.Add.Street,
		m.text.Add.City,
		m.text.Add.State,
		m.text.Add.ZipCode,
		m.text.Add.Email,
		m.text.Add.Phone,
	}
	values := make([]string, len(prompts))
	for i, p := range prompts {
		v, err := m.ask(p)
		if err != nil {
			return err
		}
		values[i] = v
	}

	addr := addressbook.Address{
		Street:  values[2],
		City:    values[3],
		State:   values[4],
		ZipCode: values[5],
	}
	e := addressbook.NewEntry(values[0], values[1], addr, values[6], values[7])
	m.book.Add(e)

	m.log.Debug("entry added",
		zap.String("id", e.ID),
		zap.String("email", logging.RedactEmail(e.Email)),
		zap.Int("entries", m.book.Len()),
	)
	m.println(m.styles.Success.Render(m.text.Add.Done))
	return nil
}

// deleteEntry offers the first exact last-name match for deletion and
// removes it only on the affirmative token.
func (m *Menu) deleteEntry() error {
	m.println(m.styles.Title.Render(m.text.Delete.Title))

	lastName, err := m.ask(m.text.Delete.Prompt)
	if err != nil {
		return err
	}

	e, ok := m.book.FindByLastName(lastName)
	if !ok {
		m.println(m.styles.Warning.Render(m.text.Delete.NotFound))
		return nil
	}

	m.println(m.text.Delete.Found)
	m.println(e.String())

	answer, err := m.ask(m.text.Delete.Confirm)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, m.confirm) {
		m.println(m.text.Delete.Kept)
		return nil
	}

	if err := m.book.Delete(e.ID); err != nil {
		if errors.Is(err, addressbook.ErrNotFound) {
			m.log.Warn("delete target vanished", zap.String("id", e.ID))
			m.println(m.styles.Warning.Render(m.text.Delete.NotFound))
			return nil
		}
		return fmt.Errorf("menu: deleting entry: %w", err)
	}

	m.log.Debug("entry deleted", zap.String("id", e.ID), zap.Int("entries", m.book.Len()))
	m.println(m.styles.Success.Render(m.text.Delete.Done))
	return nil
}

// searchEntries prints every entry whose last name starts with the prefix.
func (m *Menu) searchEntries() error {
	m.println(m.styles.Title.Render(m.text.Search.Title))

	prefix, err := m.ask(m.text.Search.Prompt)
	if err != nil {
		return err
	}

	matches := m.book.SearchByLastName(prefix)
	m.log.Debug("search", zap.Int("matches", len(matches)))
	if len(matches) == 0 {
		m.println(m.styles.Warning.Render(m.text.Search.None))
		return nil
	}

	m.println(m.text.Search.Found)
	m.printEntries(matches)
	return nil
}

// listEntries prints every entry ordered by last name.
func (m *Menu) listEntries() {
	m.println(m.styles.Title.Render(m.text.List.Title))

	entries := m.book.OrderedByLastName()
	if len(entries) == 0 {
		m.println(m.styles.Warning.Render(m.text.List.Empty))
		return
	}

	m.println(m.text.List.Found)
	m.printEntries(entries)
}

func (m *Menu) printEntries(entries []addressbook.Entry) {
	for _, e := range entries {
		m.println(e.String())
	}
}

// ask prints prompt on its own line and reads the answer.
func (m *Menu) ask(prompt string) (string, error) {
	m.println(m.styles.Prompt.Render(prompt))
	return m.readLine()
}

// readLine reads one line of any length with surrounding whitespace trimmed.
// A final line without a newline is still returned; ErrInputClosed follows
// on the next call.
func (m *Menu) readLine() (string, error) {
	line, err := m.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("menu: reading input: %w", err)
		}
		if line == "" {
			return "", ErrInputClosed
		}
	}
	return strings.TrimSpace(line), nil
}

func (m *Menu) println(s string) {
	_, _ = fmt.Fprintln(m.out, s)
}
