package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/animequotes/pkg/app/styles"
	"github.com/kerbaras/animequotes/pkg/data"
	"github.com/stretchr/testify/assert"
)

func TestQuoteTextFullEntry(t *testing.T) {
	text := NewQuoteText(styles.DefaultTheme(), 0)

	quote := data.Quote{
		Text:      "People's lives don't end when they die.",
		Japanese:  data.Ptr("人の命は死んだ時に終わるのではない"),
		Romaji:    data.Ptr("Hito no inochi wa shinda toki ni owaru no de wa nai"),
		Anime:     data.Ptr("Naruto"),
		Character: data.Ptr("Itachi Uchiha"),
		Image:     "itachi.png",
	}

	view := text.View(quote)

	assert.Contains(t, view, "Anime: ")
	assert.Contains(t, view, "Naruto")
	assert.Contains(t, view, "Character: ")
	assert.Contains(t, view, "Itachi Uchiha")
	assert.Contains(t, view, "Japanese: ")
	assert.Contains(t, view, "Romaji: ")
	assert.Contains(t, view, "Hito no inochi")
	assert.Contains(t, view, `"People's lives don't end when they die."`)
}

func TestQuoteTextOmitsAbsentFields(t *testing.T) {
	text := NewQuoteText(styles.DefaultTheme(), 0)

	lines := text.Lines(data.Quote{Text: "Just the quote", Image: "x.png"})

	assert.Len(t, lines, 1)
	assert.NotContains(t, strings.Join(lines, "\n"), "Romaji")
	assert.NotContains(t, strings.Join(lines, "\n"), "Anime")
}

func TestQuoteTextRomajiWithoutJapanese(t *testing.T) {
	text := NewQuoteText(styles.DefaultTheme(), 0)

	lines := text.Lines(data.Quote{Text: "Hi", Romaji: data.Ptr("yaa"), Image: "x.png"})

	// romaji, blank, quote
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Romaji: ")
}

func TestQuoteTextWraps(t *testing.T) {
	text := NewQuoteText(styles.DefaultTheme(), 20)

	view := text.View(data.Quote{
		Text:  "A long quote that certainly does not fit in twenty cells",
		Image: "x.png",
	})

	for _, line := range strings.Split(view, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 20)
	}
}
