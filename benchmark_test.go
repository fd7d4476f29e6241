package optics

import "testing"

// Per-pixel hot paths: these run once per pixel (or per sample) across
// full frames, so per-call cost matters more than anywhere else in the
// package.

var (
	benchCoeffs = Coeffs{K1: -0.05, K2: 0.008, K3: -0.001, P1: 0.0004, P2: -0.0002, SqueezeUniformity: 0.97}
	sinkPoint   Point
	sinkFloat   float64
)

func BenchmarkDistort(b *testing.B) {
	p := Pt(0.6, -0.4)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkPoint = benchCoeffs.Distort(p)
	}
}

func BenchmarkUndistort(b *testing.B) {
	p := benchCoeffs.Distort(Pt(0.6, -0.4))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkPoint = benchCoeffs.Undistort(p)
	}
}

func BenchmarkDistortAnamorphic(b *testing.B) {
	p := Pt(0.6, -0.4)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkPoint = benchCoeffs.DistortAnamorphic(p, 1.85)
	}
}

func BenchmarkIrisCoverage(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkFloat = IrisCoverage(0.62, 0.31, 11, 1.85, 15)
	}
}

func BenchmarkFocusCurveEval(b *testing.B) {
	curve := FocusCurve{
		Focus:   []float64{0.84, 1.5, 3.0, 10.0, 1e10},
		Values:  []float64{1.82, 1.90, 1.95, 1.98, 2.0},
		Nominal: 2.0,
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkFloat = curve.Eval(2.2)
	}
}

func BenchmarkRenderKernel256(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		RenderKernel(256, WithBlades(11), WithSqueeze(1.85))
	}
}

func BenchmarkRenderSTMap(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		RenderSTMap(480, 270, benchCoeffs, STMapUndistort, 1.85, 0)
	}
}
