package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Role is a semantic UI element that can be colored.
type Role string

const (
	RoleAnime        Role = "anime"
	RoleCharacter    Role = "character"
	RoleJapanese     Role = "japanese"
	RoleRomaji       Role = "romaji"
	RoleQuote        Role = "quote"
	RoleCount        Role = "count"
	RoleInstructions Role = "instructions"
	RoleBorder       Role = "border"
	RoleTitle        Role = "title"
	RoleError        Role = "error"
)

// Fallback colors for roles missing from the color table.
var defaultColors = map[Role]lipgloss.Color{
	RoleAnime:        ansiNames["yellow"],
	RoleCharacter:    ansiNames["cyan"],
	RoleJapanese:     ansiNames["green"],
	RoleRomaji:       ansiNames["magenta"],
	RoleQuote:        ansiNames["white"],
	RoleCount:        ansiNames["gray"],
	RoleInstructions: ansiNames["blue"],
	RoleBorder:       ansiNames["white"],
	RoleTitle:        ansiNames["white"],
	RoleError:        ansiNames["red"],
}

var ansiNames = map[string]lipgloss.Color{
	"black":     "0",
	"red":       "1",
	"green":     "2",
	"yellow":    "3",
	"blue":      "4",
	"magenta":   "5",
	"cyan":      "6",
	"gray":      "7",
	"grey":      "7",
	"lightgray": "7",
	"lightgrey": "7",
	"darkgray":  "8",
	"darkgrey":  "8",
	"white":     "15",
}

// Roles returns every recognized role in a stable order.
func Roles() []Role {
	roles := make([]Role, 0, len(defaultColors))
	for r := range defaultColors {
		roles = append(roles, r)
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i] < roles[j] })
	return roles
}

// IsRole reports whether name is a recognized role.
func IsRole(name string) bool {
	_, ok := defaultColors[Role(name)]
	return ok
}

// Palette maps roles to colors. Missing roles resolve to their fallback.
type Palette map[Role]lipgloss.Color

// DefaultPalette returns a palette holding every fallback color.
func DefaultPalette() Palette {
	p := make(Palette, len(defaultColors))
	for r, c := range defaultColors {
		p[r] = c
	}
	return p
}

// Get returns the color for role.
func (p Palette) Get(role Role) lipgloss.Color {
	if c, ok := p[role]; ok {
		return c
	}
	return defaultColors[role]
}

// ParseColor accepts a color name, #rgb, #rrggbb or an ANSI index 0-255.
func ParseColor(value string) (lipgloss.Color, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return "", fmt.Errorf("empty color")
	}

	if c, ok := ansiNames[v]; ok {
		return c, nil
	}

	if strings.HasPrefix(v, "#") {
		return parseHexColor(v)
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return "", fmt.Errorf("unknown color %q", value)
	}
	if n < 0 || n > 255 {
		return "", fmt.Errorf("ANSI color %d out of range 0-255", n)
	}
	return lipgloss.Color(strconv.Itoa(n)), nil
}

func parseHexColor(v string) (lipgloss.Color, error) {
	hex := v[1:]
	switch len(hex) {
	case 6:
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	default:
		return "", fmt.Errorf("hex color %q must have 3 or 6 digits", v)
	}
	if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
		return "", fmt.Errorf("invalid hex color %q", v)
	}
	return lipgloss.Color("#" + hex), nil
}
