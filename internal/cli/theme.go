package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the styles used for console output
type Theme struct {
	Prompt lipgloss.Style
	plain  bool
}

// DefaultTheme returns the colour theme bound to w. Writers that are not a
// terminal get a renderer without colour support, so output stays plain.
func DefaultTheme(w io.Writer) Theme {
	r := lipgloss.NewRenderer(w)
	return Theme{
		Prompt: r.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
	}
}

// PlainTheme writes the prompt without any styling
var PlainTheme = Theme{plain: true}

func (t Theme) prompt(s string) string {
	if t.plain {
		return s
	}
	return t.Prompt.Render(s)
}
