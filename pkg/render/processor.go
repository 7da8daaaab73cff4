// Package render turns image files into terminal cells.
package render

import (
	"errors"
	"fmt"
	"image"
	"io"
	"math"
	"os"
	"strings"

	// Registered image formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/kerbaras/animequotes/pkg/config"
)

// Settings controls how images are fitted and painted.
type Settings struct {
	Width    int // cells
	Height   int // cells
	Filter   config.ScalingFilter
	Mode     config.PaintMode
	Gradient string
}

// SettingsFrom extracts the image settings from display settings.
func SettingsFrom(d *config.DisplaySettings) Settings {
	return Settings{
		Width:    d.TargetWidth,
		Height:   d.TargetHeight,
		Filter:   d.Filter,
		Mode:     d.Mode,
		Gradient: d.Gradient,
	}
}

// Frame is a painted image, one string per terminal row.
type Frame struct {
	Lines []string
	Width int // cells
}

func (f Frame) Height() int {
	return len(f.Lines)
}

func (f Frame) String() string {
	return strings.Join(f.Lines, "\n")
}

// Processor renders images into frames
type Processor struct {
	settings Settings
	painter  painter
}

// NewProcessor creates a new processor with the given settings
func NewProcessor(settings Settings) *Processor {
	var p painter = blockPainter{}
	if settings.Mode == config.ModeASCII {
		p = newASCIIPainter(settings.Gradient)
	}

	return &Processor{
		settings: settings,
		painter:  p,
	}
}

// Load opens and decodes the image at path.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &RenderError{Path: path, Op: "open", Err: err}
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, &RenderError{Path: path, Op: "decode", Err: err}
	}
	return img, nil
}

// Render opens, decodes and paints the image at path.
func (p *Processor) Render(path string) (Frame, error) {
	img, err := Load(path)
	if err != nil {
		return Frame{}, err
	}

	frame, err := p.ProcessDecoded(img)
	if err != nil {
		var rerr *RenderError
		if errors.As(err, &rerr) {
			rerr.Path = path
		}
		return Frame{}, err
	}
	return frame, nil
}

// ProcessImage decodes an image stream and paints it
func (p *Processor) ProcessImage(input io.Reader) (Frame, error) {
	img, _, err := image.Decode(input)
	if err != nil {
		return Frame{}, &RenderError{Op: "decode", Err: err}
	}
	return p.ProcessDecoded(img)
}

// ProcessDecoded fits, scales and paints an already decoded image.
func (p *Processor) ProcessDecoded(img image.Image) (Frame, error) {
	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return Frame{}, &RenderError{Op: "scale", Err: fmt.Errorf("empty image %dx%d", bounds.Dx(), bounds.Dy())}
	}

	// Each cell holds two vertically stacked pixels.
	width, height := p.calculateDimensions(bounds.Dx(), bounds.Dy())
	rows := height
	if p.settings.Mode == config.ModeASCII {
		rows = (height + 1) / 2
	}

	scaled := scale(img, width, rows, p.settings.Filter)
	return p.painter.paint(scaled), nil
}

// calculateDimensions fits width x height pixels into the cell box while
// maintaining aspect ratio. Unlike a thumbnailer it also scales up.
func (p *Processor) calculateDimensions(width, height int) (int, int) {
	maxWidth := p.settings.Width
	maxHeight := p.settings.Height * 2

	widthScale := float64(maxWidth) / float64(width)
	heightScale := float64(maxHeight) / float64(height)

	scale := widthScale
	if heightScale < widthScale {
		scale = heightScale
	}

	newWidth := int(math.Round(float64(width) * scale))
	newHeight := int(math.Round(float64(height) * scale))

	return clampInt(newWidth, 1, maxWidth), clampInt(newHeight, 1, maxHeight)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
