package transform

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Utility-Gods/uwuify/internal/uwu"
	"github.com/Utility-Gods/uwuify/pkg/types"
)

// DefaultStyle is the shortcut used when none is chosen
const DefaultStyle = "uwu"

// Handlers returns a map of all available styles keyed by shortcut
func Handlers() map[string]types.Style {
	handlers := make(map[string]types.Style)

	handlers["uwu"] = types.Style{Name: "UwU (full)", Shortcut: "uwu", Transformer: uwu.New(uwu.DefaultOptions())}
	handlers["owo"] = types.Style{Name: "OwO (letters only)", Shortcut: "owo", Transformer: uwu.New(uwu.Options{})}
	handlers["shout"] = types.Style{Name: "Shout", Shortcut: "shout", Transformer: &Shout{}}

	return handlers
}

// Lookup resolves a style by shortcut
func Lookup(shortcut string) (types.Style, error) {
	style, exists := Handlers()[strings.ToLower(shortcut)]
	if !exists {
		return types.Style{}, fmt.Errorf("no style found for shortcut '%s' (available: %s)", shortcut, strings.Join(Shortcuts(), ", "))
	}
	return style, nil
}

// Shortcuts returns the sorted list of style shortcuts
func Shortcuts() []string {
	handlers := Handlers()
	shortcuts := make([]string, 0, len(handlers))
	for shortcut := range handlers {
		shortcuts = append(shortcuts, shortcut)
	}
	sort.Strings(shortcuts)
	return shortcuts
}
