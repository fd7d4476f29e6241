package optics

import (
	"image"
	"image/png"
	"os"
	"time"

	"github.com/cinekit/optics/internal/parallel"
)

// Kernel is a square bokeh intensity grid produced by [RenderKernel],
// suitable for use directly as a convolution PSF (after [Kernel.Normalize])
// or as a preview image.
type Kernel struct {
	size int
	data []float64 // row-major, size*size values in [0, 1]
}

// RenderKernel evaluates [IrisCoverage] over a size x size grid spanning
// [-1, 1] on both axes, dispatching rows across a worker pool. Pixel
// centers are sampled, so the grid is symmetric for odd and even sizes
// alike.
//
// Defaults: 11 blades, squeeze 1.0, rotation 0, GOMAXPROCS workers.
func RenderKernel(size int, opts ...KernelOption) *Kernel {
	o := defaultKernelOptions()
	for _, opt := range opts {
		opt(&o)
	}

	k := &Kernel{
		size: size,
		data: make([]float64, size*size),
	}
	if size <= 0 {
		return k
	}

	start := time.Now()

	pool := parallel.NewPool(o.workers)
	defer pool.Close()

	tasks := make([]func(), size)
	for y := 0; y < size; y++ {
		row := y // capture for closure
		tasks[row] = func() {
			cy := (2.0*(float64(row)+0.5))/float64(size) - 1.0
			base := row * size
			for x := 0; x < size; x++ {
				cx := (2.0*(float64(x)+0.5))/float64(size) - 1.0
				k.data[base+x] = IrisCoverage(cx, cy, o.blades, o.squeeze, o.rotationDeg)
			}
		}
	}
	pool.ExecuteAll(tasks)

	Logger().Debug("kernel rendered",
		"size", size,
		"blades", o.blades,
		"squeeze", o.squeeze,
		"workers", pool.Workers(),
		"elapsed", time.Since(start))

	return k
}

// Size returns the kernel's edge length in texels.
func (k *Kernel) Size() int {
	return k.size
}

// At returns the intensity at (x, y). Out-of-bounds coordinates return 0.
func (k *Kernel) At(x, y int) float64 {
	if x < 0 || x >= k.size || y < 0 || y >= k.size {
		return 0
	}
	return k.data[y*k.size+x]
}

// Data returns the raw row-major intensity values.
func (k *Kernel) Data() []float64 {
	return k.data
}

// Sum returns the total intensity across the kernel.
func (k *Kernel) Sum() float64 {
	sum := 0.0
	for _, v := range k.data {
		sum += v
	}
	return sum
}

// Normalize scales the kernel in place to unit sum, the form an
// energy-preserving convolution expects. An all-zero kernel is left
// unchanged.
func (k *Kernel) Normalize() {
	sum := k.Sum()
	if sum == 0 {
		return
	}
	for i := range k.data {
		k.data[i] /= sum
	}
}

// Image converts the kernel to an 8-bit grayscale image.
func (k *Kernel) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, k.size, k.size))
	for y := 0; y < k.size; y++ {
		for x := 0; x < k.size; x++ {
			img.Pix[y*img.Stride+x] = uint8(clamp01(k.data[y*k.size+x])*255.0 + 0.5)
		}
	}
	return img
}

// SavePNG saves the kernel to a grayscale PNG file.
func (k *Kernel) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, k.Image())
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
