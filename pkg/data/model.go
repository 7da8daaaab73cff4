package data

import "path/filepath"

type Quote struct {
	Text      string
	Japanese  *string
	Romaji    *string // transliteration of Japanese
	Anime     *string
	Character *string
	Image     string // relative to the assets directory
}

// ImagePath resolves the quote's image against the assets directory.
// Absolute image paths are returned unchanged.
func (q Quote) ImagePath(assetsDir string) string {
	if filepath.IsAbs(q.Image) || assetsDir == "" {
		return q.Image
	}
	return filepath.Join(assetsDir, q.Image)
}

// Value returns the optional string and whether it was set.
func Value(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	return *s, true
}

// Ptr is a helper for building optional fields.
func Ptr(s string) *string {
	return &s
}
