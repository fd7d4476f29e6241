// Package optics provides per-pixel optical math for simulating physical
// cinema lenses: Brown-Conrady distortion (forward and inverse), anamorphic
// squeeze with focus-dependent breathing, polygonal iris (bokeh) kernels,
// and the exposure calculators that go with them.
//
// # Overview
//
// The core of the package is a set of pure functions over small value types.
// A caller maps pixel coordinates into a centered, unit-scaled space
// (origin at the image center, roughly [-1, 1] per axis), evaluates the
// distortion or iris functions there, and maps the results back out. Every
// function is deterministic and safe to call from any number of goroutines
// at once.
//
// # Quick Start
//
//	import "github.com/cinekit/optics"
//
//	coeffs := optics.Coeffs{K1: -0.05, K2: 0.01, SqueezeUniformity: 0.98}
//
//	// Distort a centered coordinate.
//	p := coeffs.Distort(optics.Pt(0.4, -0.2))
//
//	// Round-trip it back.
//	q := coeffs.Undistort(p)
//
//	// Render an 11-blade iris kernel and save it.
//	k := optics.RenderKernel(256, optics.WithBlades(11), optics.WithSqueeze(2.0))
//	k.SavePNG("iris.png")
//
// # Error Handling
//
// The per-pixel functions never fail: degenerate inputs produce a documented
// best-effort numeric fallback instead of an error, because aborting a render
// halfway through a frame is worse than a slightly wrong pixel. Validation
// lives at the boundary, in [Coeffs.CheckValid] and the preset package.
//
// # Coordinate System
//
//   - Origin at the image (or kernel) center
//   - X increases right, Y increases up
//   - Angles in radians unless a parameter name says degrees
//
// # Concurrency
//
// Nothing in this package holds shared mutable state. The image-plane
// renderers ([RenderKernel], [RenderSTMap]) dispatch rows across a bounded
// worker pool; the per-pixel functions themselves impose no scheduling at all.
package optics

// Version information
const (
	// Version is the current version of the library
	Version = "0.4.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 4

	// VersionPatch is the patch version
	VersionPatch = 0
)
