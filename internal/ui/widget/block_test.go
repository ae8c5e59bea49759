package widget

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestBlock(t *testing.T) {
	pane := lipgloss.NewStyle().Border(lipgloss.NormalBorder())

	out := Block(pane, lipgloss.NewStyle(), "a very long title", "ab\ncd", 6, 4)

	assert.Equal(t, []string{
		"┌ a v┐",
		"│ab  │",
		"│cd  │",
		"└────┘",
	}, plainRows(out))
	assert.Equal(t, "", Block(pane, lipgloss.NewStyle(), "t", "", 1, 5))
}

func TestOverlay(t *testing.T) {
	bg := "......\n......\n......"
	out := Overlay(bg, "ab\ncd", 2, 1)
	assert.Equal(t, "......\n..ab..\n..cd..", out)

	out = Overlay(bg, "xy\nzw", 5, 2)
	assert.Equal(t, "......\n......\n.....xy", out)
}

func TestBlockWithStatus(t *testing.T) {
	pane := lipgloss.NewStyle().Border(lipgloss.NormalBorder())

	out := BlockWithStatus(pane, lipgloss.NewStyle(), "t", " 1 / 9 ", "", 14, 3)
	assert.Equal(t, "┌ t ── 1 / 9 ┐", plainRows(out)[0])

	out = BlockWithStatus(pane, lipgloss.NewStyle(), "title", " 1 / 9 ", "", 12, 3)
	assert.Equal(t, "┌ title ───┐", plainRows(out)[0])
}
