// Package ui styles single-line console output. Styling degrades to plain
// text when the writer is not a terminal or colour is turned off.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ColorMode selects when styled output is emitted.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Style only when the writer is a TTY.
	ColorAlways ColorMode = "always" // Style regardless of the writer.
	ColorNever  ColorMode = "never"  // Never emit escape sequences.
)

// ParseColorMode validates s as a ColorMode. Empty means auto.
func ParseColorMode(s string) (ColorMode, error) {
	switch ColorMode(s) {
	case "", ColorAuto:
		return ColorAuto, nil
	case ColorAlways, ColorNever:
		return ColorMode(s), nil
	default:
		return "", fmt.Errorf("ui: color must be \"auto\", \"always\" or \"never\", got %q", s)
	}
}

// Styles holds the styles used by the menu. Multi-line blocks such as
// rendered entries are printed unstyled; lipgloss pads multi-line text.
type Styles struct {
	Title   lipgloss.Style
	Option  lipgloss.Style
	Prompt  lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

// NewStyles builds Styles bound to a renderer for w.
func NewStyles(w io.Writer, mode ColorMode) Styles {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	case ColorAlways:
		r.SetColorProfile(termenv.ANSI256)
	default:
		if !IsTerminal(w) {
			r.SetColorProfile(termenv.Ascii)
		}
	}

	return Styles{
		Title: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"}),
		Option: r.NewStyle(),
		Prompt: r.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"}),
		Success: r.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "2", Dark: "10"}),
		Warning: r.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "3", Dark: "11"}),
		Error: r.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "1", Dark: "9"}),
	}
}

// PlainStyles returns Styles that never emit escape sequences.
func PlainStyles() Styles {
	return NewStyles(io.Discard, ColorNever)
}

// IsTerminal reports whether w is connected to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
