package picker

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Colour palette for the picker, one set per terminal background.
const (
	colourAccentDark  = lipgloss.Color("39")  // #00AFFF - titles, cursor on dark terminals
	colourAccentLight = lipgloss.Color("25")  // #005FAF - titles, cursor on light terminals
	colourText        = lipgloss.Color("252") // #D0D0D0 - option text on dark terminals
	colourTextLight   = lipgloss.Color("236") // #303030 - option text on light terminals
	colourDim         = lipgloss.Color("243") // #767676 - hints and help on both
)

// Styles contains all lipgloss styles for the picker.
type Styles struct {
	// Title style for the question above the list.
	Title lipgloss.Style

	// Cursor style for the selection indicator.
	Cursor lipgloss.Style

	// Selected style for the option under the cursor.
	Selected lipgloss.Style

	// Option style for unselected options.
	Option lipgloss.Style

	// Hint style for the short descriptions next to options.
	Hint lipgloss.Style

	// Help style for the key legend at the bottom.
	Help lipgloss.Style
}

// DefaultStyles builds the picker styles, choosing the palette by querying
// the terminal background colour. Detection failure falls back to the dark
// palette.
func DefaultStyles() Styles {
	accent := colourAccentDark
	text := colourText
	if !termenv.NewOutput(os.Stdout).HasDarkBackground() {
		accent = colourAccentLight
		text = colourTextLight
	}

	return Styles{
		Title:    lipgloss.NewStyle().Foreground(accent).Bold(true),
		Cursor:   lipgloss.NewStyle().Foreground(accent).Bold(true),
		Selected: lipgloss.NewStyle().Foreground(accent),
		Option:   lipgloss.NewStyle().Foreground(text),
		Hint:     lipgloss.NewStyle().Foreground(colourDim),
		Help:     lipgloss.NewStyle().Foreground(colourDim),
	}
}
