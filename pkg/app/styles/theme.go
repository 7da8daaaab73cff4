package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/animequotes/pkg/config"
)

var (
	// Static colors for chrome the palette does not cover
	Muted      = lipgloss.Color("#546E7A")
	Foreground = lipgloss.Color("#EEFFFF")

	ThickBorder = lipgloss.ThickBorder()
)

var (
	// Muted/dimmed text
	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// Help text
	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Plain labels such as "Anime: "
	LabelStyle = lipgloss.NewStyle().
			Foreground(Foreground)
)

// Theme holds the styles derived from the configured color roles.
type Theme struct {
	Title        lipgloss.Style
	Frame        lipgloss.Style
	Anime        lipgloss.Style
	Character    lipgloss.Style
	Japanese     lipgloss.Style
	Romaji       lipgloss.Style
	Quote        lipgloss.Style
	Count        lipgloss.Style
	Instructions lipgloss.Style
	Error        lipgloss.Style
	Bar          lipgloss.Style
	BarEmpty     lipgloss.Style
}

func NewTheme(p config.Palette) Theme {
	return Theme{
		Title: lipgloss.NewStyle().
			Foreground(p.Get(config.RoleTitle)).
			Bold(true),
		Frame: lipgloss.NewStyle().
			Border(ThickBorder).
			BorderForeground(p.Get(config.RoleBorder)).
			Padding(0, 1),
		Anime: lipgloss.NewStyle().
			Foreground(p.Get(config.RoleAnime)).
			Bold(true),
		Character: lipgloss.NewStyle().
			Foreground(p.Get(config.RoleCharacter)).
			Bold(true),
		Japanese: lipgloss.NewStyle().
			Foreground(p.Get(config.RoleJapanese)).
			Bold(true),
		Romaji: lipgloss.NewStyle().
			Foreground(p.Get(config.RoleRomaji)),
		Quote: lipgloss.NewStyle().
			Foreground(p.Get(config.RoleQuote)).
			Italic(true),
		Count: lipgloss.NewStyle().
			Foreground(p.Get(config.RoleCount)),
		Instructions: lipgloss.NewStyle().
			Foreground(p.Get(config.RoleInstructions)).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(p.Get(config.RoleError)).
			Bold(true),
		Bar: lipgloss.NewStyle().
			Foreground(p.Get(config.RoleCount)),
		BarEmpty: MutedStyle,
	}
}

// DefaultTheme uses the fallback color for every role.
func DefaultTheme() Theme {
	return NewTheme(config.DefaultPalette())
}
