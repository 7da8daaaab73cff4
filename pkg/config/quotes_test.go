package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleQuotes = `
[[quotes]]
japanese = "俺は自分の言葉を曲げない"
romaji = "Ore wa jibun no kotoba wo magenai"
anime = "Naruto"
character = "Naruto Uzumaki"
quote = "I never go back on my word."
image = "images/naruto.png"

[[quotes]]
japanese = "人は何かの犠牲なしに何も得ることはできない"
anime = "Fullmetal Alchemist"
character = "Alphonse Elric"
quote = "A lesson without pain is meaningless."
image = "images/fma.jpg"

[[quotes]]
quote = "Whatever you lose, you'll find it again."
image = "images/kenshin.png"
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func requireConfigError(t *testing.T, err error) *ConfigError {
	t.Helper()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfig), "expected ErrConfig, got %v", err)
	var cerr *ConfigError
	require.True(t, errors.As(err, &cerr), "expected *ConfigError, got %T", err)
	return cerr
}

func TestLoadQuotes(t *testing.T) {
	path := writeFile(t, "anime.toml", sampleQuotes)

	quotes, err := LoadQuotes(path)
	require.NoError(t, err)
	require.Len(t, quotes, 3)

	first := quotes[0]
	assert.Equal(t, "I never go back on my word.", first.Text)
	assert.Equal(t, "images/naruto.png", first.Image)
	require.NotNil(t, first.Romaji)
	assert.Equal(t, "Ore wa jibun no kotoba wo magenai", *first.Romaji)
	require.NotNil(t, first.Anime)
	assert.Equal(t, "Naruto", *first.Anime)

	assert.Nil(t, quotes[1].Romaji, "romaji is optional")
	assert.NotNil(t, quotes[1].Japanese)

	last := quotes[2]
	assert.Nil(t, last.Japanese)
	assert.Nil(t, last.Anime)
	assert.Nil(t, last.Character)
}

func TestLoadQuotesPreservesOrder(t *testing.T) {
	path := writeFile(t, "anime.toml", sampleQuotes)

	quotes, err := LoadQuotes(path)
	require.NoError(t, err)

	images := []string{quotes[0].Image, quotes[1].Image, quotes[2].Image}
	assert.Equal(t, []string{"images/naruto.png", "images/fma.jpg", "images/kenshin.png"}, images)
}

func TestLoadQuotesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.toml")

	_, err := LoadQuotes(path)
	cerr := requireConfigError(t, err)
	assert.Equal(t, path, cerr.File)
	assert.Equal(t, FileField, cerr.Field)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "not found")
}

func TestParseQuotesErrors(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantField string
		wantMsg   string
	}{
		{
			name:      "empty file",
			content:   "",
			wantField: "quotes",
			wantMsg:   "missing required key",
		},
		{
			name:      "empty list",
			content:   "quotes = []",
			wantField: "quotes",
			wantMsg:   "no quotes defined",
		},
		{
			name:      "quotes not an array",
			content:   `quotes = "nope"`,
			wantField: "quotes",
			wantMsg:   "expected an array",
		},
		{
			name:      "missing image",
			content:   "[[quotes]]\nquote = \"Hello\"\n",
			wantField: "quotes[0].image",
			wantMsg:   "missing required key",
		},
		{
			name:      "missing quote text",
			content:   "[[quotes]]\nquote = \"ok\"\nimage = \"a.png\"\n[[quotes]]\nimage = \"b.png\"\n",
			wantField: "quotes[1].quote",
			wantMsg:   "missing required key",
		},
		{
			name:      "blank image",
			content:   "[[quotes]]\nquote = \"Hello\"\nimage = \"  \"\n",
			wantField: "quotes[0].image",
			wantMsg:   "must not be empty",
		},
		{
			name:      "image wrong type",
			content:   "[[quotes]]\nquote = \"Hello\"\nimage = 42\n",
			wantField: "quotes[0].image",
			wantMsg:   "expected a string, got integer",
		},
		{
			name:      "romaji wrong type",
			content:   "[[quotes]]\nquote = \"Hello\"\nimage = \"a.png\"\nromaji = true\n",
			wantField: "quotes[0].romaji",
			wantMsg:   "expected a string, got boolean",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseQuotes("anime.toml", []byte(tt.content))
			cerr := requireConfigError(t, err)
			assert.Equal(t, "anime.toml", cerr.File)
			assert.Equal(t, tt.wantField, cerr.Field)
			assert.Contains(t, cerr.Message, tt.wantMsg)
			assert.Contains(t, err.Error(), "anime.toml")
			assert.Contains(t, err.Error(), tt.wantField)
		})
	}
}

func TestParseQuotesInvalidTOML(t *testing.T) {
	_, err := ParseQuotes("anime.toml", []byte("[[quotes]\nquote = "))
	cerr := requireConfigError(t, err)
	assert.Equal(t, "invalid TOML", cerr.Message)
	assert.Contains(t, cerr.Field, "line")
}

func TestParseQuotesIgnoresUnknownKeys(t *testing.T) {
	content := "[[quotes]]\nquote = \"Hello\"\nimage = \"a.png\"\nepisode = 12\n"

	quotes, err := ParseQuotes("anime.toml", []byte(content))
	require.NoError(t, err)
	assert.Len(t, quotes, 1)
}
