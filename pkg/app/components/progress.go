package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/animequotes/pkg/app/styles"
)

// Position shows "(i/N)" with a bar underneath.
type Position struct {
	theme styles.Theme
	width int
}

func NewPosition(theme styles.Theme, width int) *Position {
	return &Position{
		theme: theme,
		width: width,
	}
}

func (p *Position) SetWidth(width int) {
	p.width = width
}

// View renders the position of the zero-based index among total slides.
func (p *Position) View(index, total int) string {
	count := p.theme.Count.Render(fmt.Sprintf("(%d/%d)", index+1, total))
	if total <= 1 || p.width <= 0 {
		return count
	}

	bar := renderPositionBar(index+1, total, p.width, p.theme)
	return lipgloss.JoinVertical(lipgloss.Center, count, bar)
}

func renderPositionBar(current, total, width int, theme styles.Theme) string {
	if total == 0 || width <= 0 {
		return ""
	}

	filled := int(float64(current) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}

	return theme.Bar.Render(strings.Repeat("━", filled)) +
		theme.BarEmpty.Render(strings.Repeat("─", width-filled))
}
