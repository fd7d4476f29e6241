package optics

import (
	"bytes"
	"image"
	"testing"

	"golang.org/x/image/tiff"
)

func TestRenderSTMap_IdentityCoeffs(t *testing.T) {
	c := Coeffs{SqueezeUniformity: 1.0}
	m := RenderSTMap(64, 32, c, STMapUndistort, 1.0, 1)

	// With zero coefficients and no squeeze the map is the identity:
	// each texel points at its own pixel-center UV.
	for _, xy := range [][2]int{{0, 0}, {31, 15}, {63, 31}, {10, 20}} {
		u, v := m.At(xy[0], xy[1])
		wantU := (float64(xy[0]) + 0.5) / 64.0
		wantV := (float64(xy[1]) + 0.5) / 32.0
		if !almostEqual(float64(u), wantU, 1e-6) || !almostEqual(float64(v), wantV, 1e-6) {
			t.Errorf("At%v = (%v, %v), want (%v, %v)", xy, u, v, wantU, wantV)
		}
	}
}

func TestRenderSTMap_ModesAreInverse(t *testing.T) {
	c := Coeffs{K1: -0.06, K2: 0.008, SqueezeUniformity: 1.0}
	fwd := RenderSTMap(48, 48, c, STMapUndistort, 1.0, 2)
	inv := RenderSTMap(48, 48, c, STMapRedistort, 1.0, 2)

	// Sampling the forward map at a texel, then the inverse model at the
	// same centered coordinate, must round-trip. Check the interior where
	// the solver is solidly convergent.
	for y := 12; y < 36; y += 6 {
		for x := 12; x < 36; x += 6 {
			cx := (float64(x)+0.5)/48.0*2.0 - 1.0
			cy := (float64(y)+0.5)/48.0*2.0 - 1.0
			p := Pt(cx, cy)
			back := c.Undistort(c.Distort(p))
			if !back.Approx(p, 1e-4) {
				t.Errorf("model round trip failed at %v: %v", p, back)
			}

			u, _ := fwd.At(x, y)
			iu, _ := inv.At(x, y)
			// Forward pushes one way, inverse the other, relative to the
			// identity position.
			idU := (float64(x) + 0.5) / 48.0
			fwdDelta := float64(u) - idU
			invDelta := float64(iu) - idU
			if fwdDelta*invDelta > 0 && !almostEqual(fwdDelta, 0, 1e-6) {
				t.Errorf("texel (%d,%d): forward and inverse deltas share sign: %v, %v",
					x, y, fwdDelta, invDelta)
			}
		}
	}
}

func TestRenderSTMap_AnamorphicThreshold(t *testing.T) {
	c := Coeffs{SqueezeUniformity: 1.0}

	// At or below the 1.01 threshold the spherical path runs and the
	// squeeze is ignored entirely.
	spherical := RenderSTMap(32, 32, c, STMapUndistort, 1.01, 1)
	u, _ := spherical.At(24, 16)
	if !almostEqual(float64(u), (24.0+0.5)/32.0, 1e-6) {
		t.Errorf("squeeze at threshold should not apply, got u=%v", u)
	}

	// Above it, X scales by the effective squeeze.
	squeezed := RenderSTMap(32, 32, c, STMapUndistort, 2.0, 1)
	us, _ := squeezed.At(24, 16)
	cx := (24.0+0.5)/32.0*2.0 - 1.0
	want := (cx*2.0)*0.5 + 0.5
	if !almostEqual(float64(us), want, 1e-6) {
		t.Errorf("squeezed u = %v, want %v", us, want)
	}
}

func TestSTMap_EncodeTIFF(t *testing.T) {
	c := Coeffs{K1: -0.05, SqueezeUniformity: 1.0}
	m := RenderSTMap(40, 20, c, STMapUndistort, 1.0, 1)

	var buf bytes.Buffer
	if err := m.EncodeTIFF(&buf); err != nil {
		t.Fatalf("EncodeTIFF: %v", err)
	}

	decoded, err := tiff.Decode(&buf)
	if err != nil {
		t.Fatalf("decoding written TIFF: %v", err)
	}
	if decoded.Bounds() != image.Rect(0, 0, 40, 20) {
		t.Errorf("decoded bounds = %v, want 40x20", decoded.Bounds())
	}

	// Spot-check the center texel: barrel distortion keeps it near the
	// identity UV.
	u, v := m.At(20, 10)
	r, g, _, _ := decoded.At(20, 10).RGBA()
	if !almostEqual(float64(r)/65535.0, float64(u), 1e-3) {
		t.Errorf("decoded R = %v, want ~%v", float64(r)/65535.0, u)
	}
	if !almostEqual(float64(g)/65535.0, float64(v), 1e-3) {
		t.Errorf("decoded G = %v, want ~%v", float64(g)/65535.0, v)
	}
}

func TestSTMap_AtOutOfBounds(t *testing.T) {
	m := RenderSTMap(8, 8, Coeffs{SqueezeUniformity: 1.0}, STMapUndistort, 1.0, 1)
	if u, v := m.At(-1, 3); u != 0 || v != 0 {
		t.Errorf("out-of-bounds At = (%v, %v), want (0, 0)", u, v)
	}
	if u, v := m.At(3, 8); u != 0 || v != 0 {
		t.Errorf("out-of-bounds At = (%v, %v), want (0, 0)", u, v)
	}
}
