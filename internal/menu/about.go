package menu

import (
	"fmt"
	"strings"

	"github.com/Utility-Gods/uwuify/internal/transform"
	"github.com/Utility-Gods/uwuify/internal/version"
	"github.com/charmbracelet/glamour"
)

const sample = "Hello world, I really love this!"

func aboutMarkdown() string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", version.VersionInfo())
	b.WriteString("Type a sentence, get it back uwu-ified.\n\n")
	b.WriteString("| Style | Name | Example |\n")
	b.WriteString("|---|---|---|\n")

	handlers := transform.Handlers()
	for _, shortcut := range transform.Shortcuts() {
		style := handlers[shortcut]
		fmt.Fprintf(&b, "| `%s` | %s | %s |\n", style.Shortcut, style.Name, style.Transformer.Transform(sample))
	}

	return b.String()
}

// RenderAbout renders the about page as terminal markdown
func RenderAbout(opts ...glamour.TermRendererOption) (string, error) {
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("error creating renderer: %w", err)
	}
	return r.Render(aboutMarkdown())
}
