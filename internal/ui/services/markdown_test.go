package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockMarkdownRenderer struct {
	width int
}

func (m *MockMarkdownRenderer) Render(content string, width int) (string, error) {
	m.width = width
	return content, nil
}

func TestRenderMarkdown_DefaultWidth(t *testing.T) {
	renderer := &MockMarkdownRenderer{}

	out, err := RenderMarkdown("# hi", 0, renderer)

	require.NoError(t, err)
	assert.Equal(t, "# hi", out)
	assert.Equal(t, DefaultWidth, renderer.width)
}

func TestGlamourRenderer_Render(t *testing.T) {
	renderer := NewGlamourRenderer("notty")

	out, err := renderer.Render("# Title\n\nSome *text* here.", 40)

	require.NoError(t, err)
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "text")
}
