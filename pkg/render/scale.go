package render

import (
	"image"

	"github.com/kerbaras/animequotes/pkg/config"
	"golang.org/x/image/draw"
)

// interpolator maps a configured filter onto x/image/draw.
func interpolator(filter config.ScalingFilter) draw.Interpolator {
	switch filter {
	case config.FilterNearest:
		return draw.NearestNeighbor
	case config.FilterApproxBilinear:
		return draw.ApproxBiLinear
	case config.FilterBilinear:
		return draw.BiLinear
	default:
		return draw.CatmullRom
	}
}

// scale resizes img to exactly width x height. Transparent areas end up
// black since the destination starts zeroed.
func scale(img image.Image, width, height int, filter config.ScalingFilter) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	interpolator(filter).Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}
