package optics

import (
	"errors"

	"gonum.org/v1/gonum/dsp/fourier"
)

// FFT convolution of an image plane with a bokeh kernel, the operation
// behind anamorphic flare and defocus looks: extract the highlights,
// convolve them with the iris shape, add the result back over the frame.
// The add-back and any tone handling belong to the caller.

// BrightExtract returns a copy of src with everything at or below
// threshold set to zero and the remainder shifted down by threshold, the
// usual bright-pass feeding a flare convolution.
func BrightExtract(src [][]float64, threshold float64) [][]float64 {
	out := make([][]float64, len(src))
	for y, row := range src {
		out[y] = make([]float64, len(row))
		for x, v := range row {
			if v > threshold {
				out[y][x] = v - threshold
			}
		}
	}
	return out
}

// Convolve convolves src with the kernel using zero-padded FFT
// multiplication and returns a same-sized result. The kernel is treated
// as centered (its peak near the middle of the grid) and is normalized by
// its total energy, so flat regions of src pass through unchanged.
//
// src must be rectangular and non-empty; the kernel must be non-empty and
// carry non-zero energy.
func Convolve(src [][]float64, psf *Kernel) ([][]float64, error) {
	h, w, err := rectSize(src)
	if err != nil {
		return nil, err
	}
	if psf == nil || psf.Size() == 0 {
		return nil, errors.New("empty convolution kernel")
	}
	psfSum := psf.Sum()
	if psfSum == 0 {
		return nil, errors.New("convolution kernel has zero energy")
	}
	n := psf.Size()

	// FFT grid large enough for linear (not circular) convolution.
	// Power-of-two sizes keep gonum's transforms on their fast path.
	fh := nextPow2(h + n - 1)
	fw := nextPow2(w + n - 1)

	a := makeComplex2D(fh, fw)
	b := makeComplex2D(fh, fw)

	// Image embedded top-left, zero padding elsewhere.
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a[y][x] = complex(src[y][x], 0)
		}
	}

	// Kernel embedded top-left as-is; the centered crop below undoes the
	// translation a corner-anchored kernel introduces.
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			b[y][x] = complex(psf.At(x, y), 0)
		}
	}

	fft2InPlace(a, true)
	fft2InPlace(b, true)

	for y := 0; y < fh; y++ {
		for x := 0; x < fw; x++ {
			a[y][x] *= b[y][x]
		}
	}

	fft2InPlace(a, false)

	// Gonum transforms are unnormalized: forward then inverse multiplies
	// by the grid size.
	scale := float64(fh*fw) * psfSum

	// Centered crop of the full result back to src dimensions.
	offY, offX := n/2, n/2
	out := make([][]float64, h)
	for y := 0; y < h; y++ {
		out[y] = make([]float64, w)
		for x := 0; x < w; x++ {
			out[y][x] = real(a[y+offY][x+offX]) / scale
		}
	}
	return out, nil
}

// fft2InPlace applies a 2D FFT (rows then columns) to a rectangular
// complex grid, forward or inverse.
func fft2InPlace(grid [][]complex128, forward bool) {
	h := len(grid)
	if h == 0 {
		return
	}
	w := len(grid[0])

	rowFFT := fourier.NewCmplxFFT(w)
	tmpRow := make([]complex128, w)
	for y := 0; y < h; y++ {
		if forward {
			rowFFT.Coefficients(tmpRow, grid[y])
		} else {
			rowFFT.Sequence(tmpRow, grid[y])
		}
		copy(grid[y], tmpRow)
	}

	colFFT := fourier.NewCmplxFFT(h)
	col := make([]complex128, h)
	tmpCol := make([]complex128, h)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			col[y] = grid[y][x]
		}
		if forward {
			colFFT.Coefficients(tmpCol, col)
		} else {
			colFFT.Sequence(tmpCol, col)
		}
		for y := 0; y < h; y++ {
			grid[y][x] = tmpCol[y]
		}
	}
}

// rectSize validates that m is rectangular and returns its dimensions.
func rectSize(m [][]float64) (h, w int, err error) {
	h = len(m)
	if h == 0 {
		return 0, 0, errors.New("empty image")
	}
	w = len(m[0])
	if w == 0 {
		return 0, 0, errors.New("empty image")
	}
	for _, row := range m {
		if len(row) != w {
			return 0, 0, errors.New("ragged image rows")
		}
	}
	return h, w, nil
}

func makeComplex2D(h, w int) [][]complex128 {
	out := make([][]complex128, h)
	for y := range out {
		out[y] = make([]complex128, w)
	}
	return out
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
