package optics

import (
	"image"
	"image/color"
	"io"
	"time"

	"golang.org/x/image/tiff"

	"github.com/cinekit/optics/internal/parallel"
)

// STMapMode selects which direction of the distortion model an ST map
// encodes.
type STMapMode int

const (
	// STMapUndistort produces the map a sampler uses to remove lens
	// distortion: each output texel stores the forward-distorted source
	// position to pull from.
	STMapUndistort STMapMode = iota

	// STMapRedistort produces the map that re-applies lens distortion to
	// clean (CG) imagery, built from the iterative inverse solver.
	STMapRedistort
)

// anamorphicSqueezeThreshold decides when the effective squeeze is far
// enough from spherical to route through the anamorphic model.
const anamorphicSqueezeThreshold = 1.01

// STMap is a UV lookup table for external resamplers: for each texel it
// stores, in the red and green channels, the normalized [0, 1] position to
// sample the source image at. The map only carries coordinates; the
// resampling itself is the consumer's job.
type STMap struct {
	width, height int
	data          []float32 // row-major, 2 values (u, v) per texel
}

// RenderSTMap evaluates the distortion model over a width x height texel
// grid, row-parallel. effectiveSqueeze above 1.01 routes the forward
// direction through [Coeffs.DistortAnamorphic]; at or below it the
// spherical model is used. workers <= 0 means GOMAXPROCS.
func RenderSTMap(width, height int, c Coeffs, mode STMapMode, effectiveSqueeze float64, workers int) *STMap {
	m := &STMap{
		width:  width,
		height: height,
		data:   make([]float32, width*height*2),
	}
	if width <= 0 || height <= 0 {
		return m
	}

	start := time.Now()

	pool := parallel.NewPool(workers)
	defer pool.Close()

	tasks := make([]func(), height)
	for y := 0; y < height; y++ {
		row := y // capture for closure
		tasks[row] = func() {
			v := (float64(row) + 0.5) / float64(height)
			cy := v*2.0 - 1.0
			base := row * width * 2
			for x := 0; x < width; x++ {
				u := (float64(x) + 0.5) / float64(width)
				cx := u*2.0 - 1.0

				var out Point
				in := Point{X: cx, Y: cy}
				switch mode {
				case STMapRedistort:
					out = c.Undistort(in)
				default:
					if effectiveSqueeze > anamorphicSqueezeThreshold {
						out = c.DistortAnamorphic(in, effectiveSqueeze)
					} else {
						out = c.Distort(in)
					}
				}

				m.data[base+x*2] = float32(out.X*0.5 + 0.5)
				m.data[base+x*2+1] = float32(out.Y*0.5 + 0.5)
			}
		}
	}
	pool.ExecuteAll(tasks)

	Logger().Debug("stmap rendered",
		"width", width,
		"height", height,
		"mode", int(mode),
		"effective_squeeze", effectiveSqueeze,
		"elapsed", time.Since(start))

	return m
}

// Width returns the map width in texels.
func (m *STMap) Width() int { return m.width }

// Height returns the map height in texels.
func (m *STMap) Height() int { return m.height }

// At returns the (u, v) sample position stored at texel (x, y).
// Out-of-bounds coordinates return (0, 0).
func (m *STMap) At(x, y int) (u, v float32) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0, 0
	}
	i := (y*m.width + x) * 2
	return m.data[i], m.data[i+1]
}

// Image converts the map to a 16-bit RGBA image with U in red and V in
// green, the channel layout STMap-consuming compositors expect. Values
// outside [0, 1] (strong distortion near the frame corners) clamp.
func (m *STMap) Image() *image.RGBA64 {
	img := image.NewRGBA64(image.Rect(0, 0, m.width, m.height))
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			i := (y*m.width + x) * 2
			img.SetRGBA64(x, y, color.RGBA64{
				R: quantize16(m.data[i]),
				G: quantize16(m.data[i+1]),
				B: 0,
				A: 0xffff,
			})
		}
	}
	return img
}

// EncodeTIFF writes the map as an uncompressed 16-bit TIFF.
func (m *STMap) EncodeTIFF(w io.Writer) error {
	return tiff.Encode(w, m.Image(), &tiff.Options{Compression: tiff.Uncompressed})
}

// quantize16 maps a [0, 1] float to a 16-bit channel value, clamping.
func quantize16(v float32) uint16 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xffff
	}
	return uint16(v*65535.0 + 0.5)
}
