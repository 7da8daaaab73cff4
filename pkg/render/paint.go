package render

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/animequotes/pkg/config"
)

const upperHalfBlock = "▀"

type painter interface {
	paint(img *image.RGBA) Frame
}

// blockPainter draws two pixels per cell: the top one as the foreground
// of an upper half block, the bottom one as its background.
type blockPainter struct{}

func (blockPainter) paint(img *image.RGBA) Frame {
	b := img.Bounds()
	lines := make([]string, 0, (b.Dy()+1)/2)

	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		var sb strings.Builder
		for x := b.Min.X; x < b.Max.X; x++ {
			style := lipgloss.NewStyle().Foreground(hexColor(img.RGBAAt(x, y)))
			if y+1 < b.Max.Y {
				style = style.Background(hexColor(img.RGBAAt(x, y+1)))
			}
			sb.WriteString(style.Render(upperHalfBlock))
		}
		lines = append(lines, sb.String())
	}

	return Frame{Lines: lines, Width: b.Dx()}
}

func hexColor(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

// asciiPainter maps luminance onto a character ramp. The ramp runs from
// densest to lightest, and bright pixels get dense glyphs so pictures read
// correctly on dark terminals.
type asciiPainter struct {
	ramp []rune
}

func newASCIIPainter(gradient string) asciiPainter {
	if strings.TrimSpace(gradient) == "" {
		gradient = config.DefaultGradient
	}
	return asciiPainter{ramp: []rune(gradient)}
}

func (a asciiPainter) paint(img *image.RGBA) Frame {
	gray := toGrayscale(img)
	b := gray.Bounds()
	last := len(a.ramp) - 1

	lines := make([]string, 0, b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		var sb strings.Builder
		for x := b.Min.X; x < b.Max.X; x++ {
			lum := int(gray.GrayAt(x, y).Y)
			sb.WriteRune(a.ramp[last-lum*last/255])
		}
		lines = append(lines, sb.String())
	}

	return Frame{Lines: lines, Width: b.Dx()}
}

// toGrayscale converts an image to grayscale
func toGrayscale(img image.Image) *image.Gray {
	bounds := img.Bounds()
	gray := image.NewGray(bounds)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			gray.Set(x, y, img.At(x, y))
		}
	}

	return gray
}
