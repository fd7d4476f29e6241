package optics

import "math"

// irisEdgeWidth is the half-width of the anti-aliased transition band at
// the iris edge, in kernel-space units. Fixed regardless of kernel
// resolution so the silhouette softness is consistent across sizes.
const irisEdgeWidth = 0.02

// minIrisSqueeze floors the squeeze divisor to keep the pre-squeeze
// finite for zero or negative inputs.
const minIrisSqueeze = 0.01

// IrisCoverage computes the iris intensity at a centered kernel-space
// coordinate: 1 fully inside the polygonal aperture, 0 fully outside,
// with a narrow smoothstep transition at the edge.
//
// blades is the number of iris diaphragm blades (11 for a Cooke
// Anamorphic/i). Values below 3 do not describe a polygon and are not
// guarded here; validate at the boundary. squeeze is the anamorphic
// squeeze baked into the kernel (1.0 = spherical, 2.0 = 2x); it is
// floor-clamped to 0.01. rotationDeg rotates the blade pattern.
func IrisCoverage(cx, cy float64, blades int, squeeze, rotationDeg float64) float64 {
	// Undo the anamorphic stretch on X so the polygon math runs in
	// circular space.
	sx := cx / math.Max(squeeze, minIrisSqueeze)
	sy := cy

	r := math.Sqrt(sx*sx + sy*sy)
	theta := math.Atan2(sy, sx) + rotationDeg*(math.Pi/180.0)

	// Signed angular offset from the nearest blade-sector center.
	// The floor-based reduction is load-bearing: modulo formulations
	// round differently at sector boundaries.
	bladeAngle := 2.0 * math.Pi / float64(blades)
	sector := theta - bladeAngle*math.Floor(theta/bladeAngle+0.5)

	// Regular-polygon edge radius at this angle.
	edge := math.Cos(math.Pi/float64(blades)) / math.Cos(sector)

	return 1.0 - smoothstep(edge-irisEdgeWidth, edge+irisEdgeWidth, r)
}

// smoothstep is the standard cubic Hermite step between edge0 and edge1.
func smoothstep(edge0, edge1, x float64) float64 {
	t := (x - edge0) / (edge1 - edge0)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return t * t * (3.0 - 2.0*t)
}

// lerp performs linear interpolation between a and b.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
