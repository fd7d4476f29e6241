package optics

// Brown-Conrady distortion, forward and inverse, plus the anamorphic
// composition used by front-anamorphic lens models.
//
// All three functions operate in centered coordinate space and always
// return a value; see the package documentation for the error-handling
// contract.

const (
	// undistortMaxIter bounds the inverse solver. Worst-case latency per
	// pixel is therefore fixed and predictable.
	undistortMaxIter = 10

	// undistortTolerance is the convergence threshold on the residual
	// vector length.
	undistortTolerance = 1e-6
)

// Distort applies radial and tangential distortion to a centered
// coordinate. Any finite input produces a finite output; coefficient
// sanity is the caller's responsibility.
func (c Coeffs) Distort(p Point) Point {
	x, y := p.X, p.Y

	r2 := x*x + y*y
	r4 := r2 * r2
	r6 := r4 * r2

	// Radial term (Brown-Conrady)
	radial := 1.0 + c.K1*r2 + c.K2*r4 + c.K3*r6

	// Tangential term
	dx := 2.0*c.P1*x*y + c.P2*(r2+2.0*x*x)
	dy := c.P1*(r2+2.0*y*y) + 2.0*c.P2*x*y

	return Point{
		X: x*radial + dx,
		Y: y*radial + dy,
	}
}

// Undistort maps a distorted coordinate back to the undistorted coordinate
// that [Coeffs.Distort] would have produced it from, within a small
// tolerance.
//
// The solver is a first-order fixed-point correction: the guess starts at
// the distorted input and the forward-model residual is subtracted each
// step, treating the local distortion as identity plus a small
// perturbation. No Jacobian is computed. Up to 10 iterations are run; if
// the residual never drops below 1e-6 the best available guess is returned
// with no error indication. Reliable for small-to-moderate distortion;
// convergence is not guaranteed for strongly distorting coefficient sets.
func (c Coeffs) Undistort(p Point) Point {
	uv := p
	for iter := 0; iter < undistortMaxIter; iter++ {
		err := c.Distort(uv).Sub(p)
		if err.Length() < undistortTolerance {
			break
		}
		uv = uv.Sub(err)
	}
	return uv
}

// DistortAnamorphic applies radial and tangential distortion and then
// scales the two axes independently: X by effectiveSqueeze (the dynamic
// squeeze at the current focus distance, typically [FocusCurve.Eval]
// output) and Y by a radius-dependent blend toward SqueezeUniformity, so
// squeeze non-uniformity grows toward the frame edge.
func (c Coeffs) DistortAnamorphic(p Point, effectiveSqueeze float64) Point {
	x, y := p.X, p.Y

	r2 := x*x + y*y
	r4 := r2 * r2
	r6 := r4 * r2

	// Radial term (Brown-Conrady)
	radial := 1.0 + c.K1*r2 + c.K2*r4 + c.K3*r6

	// Tangential term
	dx := 2.0*c.P1*x*y + c.P2*(r2+2.0*x*x)
	dy := c.P1*(r2+2.0*y*y) + 2.0*c.P2*x*y

	// Squeeze non-uniformity across the frame, weighted by squared radius.
	sqVar := lerp(1.0, c.SqueezeUniformity, r2)

	return Point{
		X: (x*radial + dx) * effectiveSqueeze,
		Y: (y*radial + dy) * sqVar,
	}
}
