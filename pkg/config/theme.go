package config

import "github.com/gdamore/tcell/v2"

// Theme represents configurable colors for the text area and the status bar.
type Theme struct {
	// Text area
	TextForeground tcell.Color
	TextBackground tcell.Color
	// Filler marks rows past the end of the buffer.
	Filler tcell.Color

	// Status bar; drawn inverse to the text area by default.
	StatusBackground tcell.Color
	StatusForeground tcell.Color
	// Transient messages appended to the status bar (save results).
	MessageForeground tcell.Color
}

// TextStyle returns the style for buffer text.
func (t Theme) TextStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(t.TextForeground).Background(t.TextBackground)
}

// FillerStyle returns the style for the "~" rows past the end of the buffer.
func (t Theme) FillerStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(t.Filler).Background(t.TextBackground)
}

// StatusStyle returns the status bar style.
func (t Theme) StatusStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(t.StatusForeground).Background(t.StatusBackground)
}

// MessageStyle returns the style for status bar messages.
func (t Theme) MessageStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(t.MessageForeground).Background(t.StatusBackground)
}

// DefaultTheme returns the built-in theme: white on black text with an
// inverse status bar.
func DefaultTheme() Theme {
	return Theme{
		TextForeground: tcell.ColorWhite,
		TextBackground: tcell.ColorBlack,
		Filler:         tcell.ColorBlue,

		StatusBackground:  tcell.ColorWhite,
		StatusForeground:  tcell.ColorBlack,
		MessageForeground: tcell.ColorMaroon,
	}
}

// TerminalTheme leverages terminal-provided defaults so the editor follows
// the user's terminal colors. The status bar uses palette gray.
func TerminalTheme() Theme {
	return Theme{
		TextForeground: tcell.ColorDefault,
		TextBackground: tcell.ColorDefault,
		Filler:         tcell.ColorGray,

		StatusBackground:  tcell.ColorGray,
		StatusForeground:  tcell.ColorDefault,
		MessageForeground: tcell.ColorRed,
	}
}

// BuiltinThemes exposes the presets by name.
var BuiltinThemes = map[string]Theme{
	"default":  DefaultTheme(),
	"terminal": TerminalTheme(),
	"dark": {
		TextForeground: tcell.ColorSilver,
		TextBackground: tcell.ColorBlack,
		Filler:         tcell.ColorDarkSlateGray,

		StatusBackground:  tcell.ColorGray,
		StatusForeground:  tcell.ColorWhite,
		MessageForeground: tcell.ColorYellow,
	},
}
