package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/animequotes/pkg/app/styles"
	"github.com/stretchr/testify/assert"
)

func TestPositionCount(t *testing.T) {
	p := NewPosition(styles.DefaultTheme(), 0)

	assert.Equal(t, "(2/5)", p.View(1, 5))
}

func TestPositionBar(t *testing.T) {
	p := NewPosition(styles.DefaultTheme(), 10)

	view := p.View(4, 5)
	lines := strings.Split(view, "\n")

	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "(5/5)")
	assert.Equal(t, 10, lipgloss.Width(lines[1]))
	assert.Equal(t, 10, strings.Count(lines[1], "━"), "last slide fills the bar")
}

func TestPositionSingleSlideHasNoBar(t *testing.T) {
	p := NewPosition(styles.DefaultTheme(), 10)

	assert.NotContains(t, p.View(0, 1), "━")
}

func TestRenderPositionBar(t *testing.T) {
	theme := styles.DefaultTheme()

	tests := []struct {
		name     string
		current  int
		total    int
		width    int
		wantFull int
	}{
		{"first of four", 1, 4, 8, 2},
		{"half", 2, 4, 8, 4},
		{"complete", 4, 4, 8, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := renderPositionBar(tt.current, tt.total, tt.width, theme)
			assert.Equal(t, tt.wantFull, strings.Count(bar, "━"))
			assert.Equal(t, tt.width-tt.wantFull, strings.Count(bar, "─"))
		})
	}

	assert.Empty(t, renderPositionBar(1, 0, 8, theme))
}
