package screens

import (
	"fmt"
	"image"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/animequotes/pkg/app/components"
	"github.com/kerbaras/animequotes/pkg/app/styles"
	"github.com/kerbaras/animequotes/pkg/config"
	"github.com/kerbaras/animequotes/pkg/logging"
	"github.com/kerbaras/animequotes/pkg/render"
)

const (
	title = " Anime Quotes "

	imageTopPadding = 1
	imageTextGap    = 1
	// border plus horizontal padding of the frame
	frameChromeWidth  = 4
	frameBorderWidth  = 2
	frameChromeHeight = 2
)

// decoded is a cached image load, failures included.
type decoded struct {
	img image.Image
	err error
}

type SlideScreen struct {
	nav       *components.Navigator
	display   *config.DisplaySettings
	assetsDir string

	theme    styles.Theme
	keys     components.KeyMap
	help     help.Model
	text     *components.QuoteText
	position *components.Position

	// Current slide, re-rendered on every index or size change.
	frame     render.Frame
	renderErr error
	box       render.Settings
	images    map[int]decoded

	// autoplaying is set while a tick is pending.
	autoplaying bool

	log *logging.Logger

	width  int
	height int
}

func NewSlideScreen(bundle *config.Bundle) *SlideScreen {
	theme := styles.NewTheme(bundle.Display.Colors)

	h := help.New()
	h.Styles.ShortKey = theme.Instructions
	h.Styles.FullKey = theme.Instructions
	h.Styles.ShortDesc = styles.HelpStyle
	h.Styles.FullDesc = styles.HelpStyle

	s := &SlideScreen{
		nav:       components.NewNavigator(bundle.Quotes, bundle.Display.Wrap),
		display:   bundle.Display,
		assetsDir: bundle.AssetsDir,
		theme:     theme,
		keys:      components.DefaultKeyMap(),
		help:      h,
		text:      components.NewQuoteText(theme, 0),
		position:  components.NewPosition(theme, 0),
		images:    make(map[int]decoded),
		log:       logging.Global().With("screen", "slides"),
	}
	s.box = s.imageBox()
	s.renderCurrent()
	return s
}

type autoplayMsg struct{}

func (s *SlideScreen) Init() tea.Cmd {
	return s.scheduleAutoplay()
}

func (s *SlideScreen) scheduleAutoplay() tea.Cmd {
	if s.display.Autoplay <= 0 {
		return nil
	}
	s.autoplaying = true
	return tea.Tick(s.display.Autoplay, func(time.Time) tea.Msg {
		return autoplayMsg{}
	})
}

func (s *SlideScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.help.Width = msg.Width
		s.text.SetWidth(s.innerWidth())
		s.position.SetWidth(min(s.innerWidth(), s.display.TargetWidth))
		if box := s.imageBox(); box != s.box {
			s.box = box
			s.renderCurrent()
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, s.keys.Quit):
			return s, tea.Quit
		case key.Matches(msg, s.keys.Help):
			s.help.ShowAll = !s.help.ShowAll
			s.box = s.imageBox()
			s.renderCurrent()
		case key.Matches(msg, s.keys.Prev):
			return s, s.moveManually(s.nav.Retreat)
		case key.Matches(msg, s.keys.Next):
			return s, s.moveManually(s.nav.Advance)
		case key.Matches(msg, s.keys.First):
			return s, s.moveManually(s.nav.First)
		case key.Matches(msg, s.keys.Last):
			return s, s.moveManually(s.nav.Last)
		}

	case autoplayMsg:
		s.autoplaying = false
		s.move(s.nav.Advance)
		if s.nav.AtEnd() && !s.nav.Wraps() {
			return s, nil
		}
		return s, s.scheduleAutoplay()
	}

	return s, nil
}

// move applies a navigation step and re-renders if the index changed.
func (s *SlideScreen) move(step func() bool) bool {
	if !step() {
		return false
	}
	s.log.Debug("slide changed", "index", s.nav.Index(), "total", s.nav.Len())
	s.renderCurrent()
	return true
}

// moveManually is a key driven move. Autoplay that ran out on the last
// slide starts again once the user steps back.
func (s *SlideScreen) moveManually(step func() bool) tea.Cmd {
	if !s.move(step) || s.autoplaying || s.nav.AtEnd() {
		return nil
	}
	return s.scheduleAutoplay()
}

func (s *SlideScreen) renderCurrent() {
	s.frame = render.Frame{}
	s.renderErr = nil

	if s.box.Width <= 0 || s.box.Height <= 0 {
		return
	}

	img, err := s.image()
	if err == nil {
		s.frame, err = render.NewProcessor(s.box).ProcessDecoded(img)
	}
	if err != nil {
		s.log.Warn("failed to render slide image", "index", s.nav.Index(), "error", err)
		s.renderErr = err
	}
}

// image decodes the current slide's picture once; resizes only repaint it.
func (s *SlideScreen) image() (image.Image, error) {
	if d, ok := s.images[s.nav.Index()]; ok {
		return d.img, d.err
	}

	path := s.nav.Current().ImagePath(s.assetsDir)
	img, err := render.Load(path)
	s.images[s.nav.Index()] = decoded{img: img, err: err}
	return img, err
}

// imageBox clamps the configured image size to the space the terminal
// leaves after the frame, title, text and help line.
func (s *SlideScreen) imageBox() render.Settings {
	box := render.SettingsFrom(s.display)
	if s.width == 0 || s.height == 0 {
		return box
	}

	box.Width = min(box.Width, s.innerWidth())

	reserved := frameChromeHeight + 1 + imageTopPadding + imageTextGap + s.textHeight()
	if s.showFooter() {
		reserved += lipgloss.Height(s.help.View(s.keys))
	}
	box.Height = max(0, min(box.Height, s.height-reserved))

	return box
}

func (s *SlideScreen) innerWidth() int {
	return max(0, s.width-frameChromeWidth)
}

func (s *SlideScreen) textHeight() int {
	return lipgloss.Height(s.text.View(s.nav.Current())) + 1 + lipgloss.Height(s.position.View(s.nav.Index(), s.nav.Len()))
}

func (s *SlideScreen) showFooter() bool {
	return s.display.ShowInstructions || s.help.ShowAll
}

func (s *SlideScreen) View() string {
	if s.width == 0 {
		return "Loading..."
	}

	inner := s.innerWidth()
	parts := []string{
		lipgloss.PlaceHorizontal(inner, lipgloss.Center, s.theme.Title.Render(title)),
	}
	if img := s.renderImage(inner); img != "" {
		parts = append(parts, lipgloss.NewStyle().PaddingTop(imageTopPadding).Render(img))
	}
	parts = append(parts,
		"",
		s.text.View(s.nav.Current()),
		"",
		s.position.View(s.nav.Index(), s.nav.Len()),
	)
	body := lipgloss.JoinVertical(lipgloss.Center, parts...)

	// Width counts the padding but not the border.
	frame := s.theme.Frame.
		Width(max(0, s.width-frameBorderWidth)).
		Align(lipgloss.Center).
		Render(body)

	if s.showFooter() {
		footer := lipgloss.PlaceHorizontal(s.width, lipgloss.Center, s.help.View(s.keys))
		frame = lipgloss.JoinVertical(lipgloss.Center, frame, footer)
	}

	return lipgloss.Place(s.width, s.height, lipgloss.Center, lipgloss.Center, frame)
}

func (s *SlideScreen) renderImage(width int) string {
	if s.renderErr != nil {
		placeholder := lipgloss.JoinVertical(
			lipgloss.Center,
			styles.MutedStyle.Render("Image not available"),
			s.theme.Error.Width(width).Align(lipgloss.Center).Render(fmt.Sprintf("%v", s.renderErr)),
		)
		return lipgloss.NewStyle().MaxHeight(max(1, s.box.Height)).Render(placeholder)
	}
	if s.frame.Height() == 0 {
		return ""
	}
	return s.frame.String()
}

// Index exposes the cursor for callers and tests.
func (s *SlideScreen) Index() int {
	return s.nav.Index()
}

// RenderErr is the error from the last image render, if any.
func (s *SlideScreen) RenderErr() error {
	return s.renderErr
}
