package config

import (
	"path/filepath"

	"github.com/kerbaras/animequotes/pkg/data"
)

// Paths locates the two configuration files and the image assets.
type Paths struct {
	Quotes  string
	Display string
	// Assets is the directory image paths are relative to.
	// Empty means the directory holding the quote file.
	Assets string
}

// DefaultPaths returns the file names looked up in the working directory.
func DefaultPaths() Paths {
	return Paths{
		Quotes:  DefaultQuotesPath,
		Display: DefaultDisplayPath,
	}
}

// Bundle is everything the slide screen needs from configuration.
type Bundle struct {
	Quotes    []data.Quote
	Display   *DisplaySettings
	AssetsDir string
}

// Load reads both files. The first failure is returned as a *ConfigError.
func Load(paths Paths) (*Bundle, error) {
	quotes, err := LoadQuotes(paths.Quotes)
	if err != nil {
		return nil, err
	}

	display, err := LoadDisplay(paths.Display)
	if err != nil {
		return nil, err
	}

	assets := paths.Assets
	if assets == "" {
		assets = filepath.Dir(paths.Quotes)
	}

	return &Bundle{
		Quotes:    quotes,
		Display:   display,
		AssetsDir: assets,
	}, nil
}
