package app

import (
	"fmt"
	"sort"

	"github.com/Utility-Gods/uwuify/internal/transform"
	"github.com/Utility-Gods/uwuify/pkg/types"
)

// App represents the main application
type App struct {
	Styles   map[string]types.Style
	selected string
}

// NewApp creates a new instance of the application with the default style selected
func NewApp() *App {
	return &App{
		Styles:   transform.Handlers(),
		selected: transform.DefaultStyle,
	}
}

// Select switches the style used by Transform
func (a *App) Select(shortcut string) error {
	if _, exists := a.Styles[shortcut]; !exists {
		return fmt.Errorf("no style found for shortcut '%s'", shortcut)
	}
	a.selected = shortcut
	return nil
}

// Selected returns the style currently in use
func (a *App) Selected() types.Style {
	return a.Styles[a.selected]
}

// Transform rewrites input with the selected style, so an App can be handed
// to anything that takes a types.Transformer.
func (a *App) Transform(input string) string {
	return a.Selected().Transformer.Transform(input)
}

// GetAvailableStyles returns the styles ordered by shortcut
func (a *App) GetAvailableStyles() []types.Style {
	styles := make([]types.Style, 0, len(a.Styles))
	for _, style := range a.Styles {
		styles = append(styles, style)
	}
	sort.Slice(styles, func(i, j int) bool {
		return styles[i].Shortcut < styles[j].Shortcut
	})
	return styles
}
