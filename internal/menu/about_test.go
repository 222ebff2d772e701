package menu

import (
	"testing"

	"github.com/Utility-Gods/uwuify/internal/version"
	"github.com/charmbracelet/glamour"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAboutMarkdownListsStyles(t *testing.T) {
	md := aboutMarkdown()

	assert.Contains(t, md, version.VersionInfo())
	assert.Contains(t, md, "`owo`")
	assert.Contains(t, md, "`shout`")
	assert.Contains(t, md, "`uwu`")
	assert.Contains(t, md, "HELLO WORLD, I REALLY LOVE THIS!")
}

func TestRenderAbout(t *testing.T) {
	out, err := RenderAbout(glamour.WithStandardStyle("notty"), glamour.WithWordWrap(120))
	require.NoError(t, err)
	assert.Contains(t, out, version.Version)
}
