package optics

import (
	"image"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// False-color visualizations for inspecting kernels and distortion
// fields. Debug aids only; the pipeline consumes the numeric data, not
// these images.

// heatColor maps an intensity in [0, 1] onto a cold-to-hot HSV ramp:
// deep blue at zero through red at one, with brightness tracking the
// value so near-zero regions stay dark.
func heatColor(v float64) color.RGBA {
	v = clamp01(v)
	hue := 240.0 * (1.0 - v) // blue -> red
	c := colorful.Hsv(hue, 1.0, 0.15+0.85*v)
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Heatmap renders the kernel as a false-color image.
func (k *Kernel) Heatmap() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, k.size, k.size))
	for y := 0; y < k.size; y++ {
		for x := 0; x < k.size; x++ {
			img.SetRGBA(x, y, heatColor(k.data[y*k.size+x]))
		}
	}
	return img
}

// DistortionHeatmap renders the displacement magnitude of the anamorphic
// distortion model over a width x height frame, normalized so the
// largest displacement maps to full intensity. Useful for eyeballing
// where a coefficient set pushes pixels hardest.
func DistortionHeatmap(width, height int, c Coeffs, effectiveSqueeze float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if width <= 0 || height <= 0 {
		return img
	}

	mag := make([]float64, width*height)
	maxMag := 0.0
	for y := 0; y < height; y++ {
		cy := (2.0*(float64(y)+0.5))/float64(height) - 1.0
		for x := 0; x < width; x++ {
			cx := (2.0*(float64(x)+0.5))/float64(width) - 1.0
			p := Point{X: cx, Y: cy}
			d := c.DistortAnamorphic(p, effectiveSqueeze).Distance(p)
			mag[y*width+x] = d
			maxMag = math.Max(maxMag, d)
		}
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := 0.0
			if maxMag > 0 {
				v = mag[y*width+x] / maxMag
			}
			img.SetRGBA(x, y, heatColor(v))
		}
	}
	return img
}
