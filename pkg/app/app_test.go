package app

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/animequotes/pkg/config"
	"github.com/kerbaras/animequotes/pkg/data"
	"github.com/stretchr/testify/assert"
)

func TestRunQuitsOnQ(t *testing.T) {
	bundle := &config.Bundle{
		Quotes: []data.Quote{
			{Text: "Believe it!", Image: "missing.png"},
		},
		Display:   config.DefaultDisplaySettings(),
		AssetsDir: t.TempDir(),
	}

	var out bytes.Buffer
	app := NewApp(bundle,
		tea.WithInput(strings.NewReader("q")),
		tea.WithOutput(&out),
		tea.WithoutSignalHandler(),
	)

	assert.NoError(t, app.Run())
}
