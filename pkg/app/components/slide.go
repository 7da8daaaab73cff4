package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/animequotes/pkg/app/styles"
	"github.com/kerbaras/animequotes/pkg/data"
)

// QuoteText renders the text half of a slide. Optional fields that are
// absent produce no line at all.
type QuoteText struct {
	theme styles.Theme
	width int
}

func NewQuoteText(theme styles.Theme, width int) *QuoteText {
	return &QuoteText{theme: theme, width: width}
}

func (q *QuoteText) SetWidth(width int) {
	q.width = width
}

// Lines returns the rendered blocks in display order. With a width set a
// block may span several rows.
func (q *QuoteText) Lines(quote data.Quote) []string {
	var lines []string

	label := func(name string, value *string, style lipgloss.Style) {
		if v, ok := data.Value(value); ok {
			lines = append(lines, q.fit(styles.LabelStyle.Render(name+": ")+style.Render(v)))
		}
	}

	label("Anime", quote.Anime, q.theme.Anime)
	label("Character", quote.Character, q.theme.Character)
	if len(lines) > 0 {
		lines = append(lines, "")
	}

	before := len(lines)
	label("Japanese", quote.Japanese, q.theme.Japanese)
	label("Romaji", quote.Romaji, q.theme.Romaji)
	if len(lines) > before {
		lines = append(lines, "")
	}

	lines = append(lines, q.fit(q.theme.Quote.Render("\""+quote.Text+"\"")))

	return lines
}

// fit wraps and centers a line to the text width, if one is set.
func (q *QuoteText) fit(line string) string {
	if q.width <= 0 {
		return line
	}
	return lipgloss.NewStyle().Width(q.width).Align(lipgloss.Center).Render(line)
}

func (q *QuoteText) View(quote data.Quote) string {
	return lipgloss.JoinVertical(lipgloss.Center, q.Lines(quote)...)
}
