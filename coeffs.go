package optics

import (
	"math"

	"github.com/pkg/errors"
)

// Coeffs holds the distortion terms for a single lens: the Brown-Conrady
// radial and tangential coefficients plus the anamorphic squeeze-uniformity
// term. There are no implicit defaults; construct with all six fields.
//
// Sign convention: negative-dominant radial terms produce barrel distortion,
// positive-dominant produce pincushion.
type Coeffs struct {
	K1 float64 // radial (barrel/pincushion)
	K2 float64 // higher-order radial
	K3 float64 // highest-order radial
	P1 float64 // tangential
	P2 float64 // tangential

	// SqueezeUniformity controls how constant the anamorphic squeeze is
	// across the frame: 1.0 = perfectly uniform, values below 1.0 make the
	// squeeze vary with radial distance from center.
	SqueezeUniformity float64
}

// CheckValid reports whether the coefficient set is usable at the pipeline
// boundary. The per-pixel functions themselves never validate; they produce
// a best-effort result for any finite input.
func (c Coeffs) CheckValid() error {
	for _, v := range []float64{c.K1, c.K2, c.K3, c.P1, c.P2, c.SqueezeUniformity} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.New("invalid distortion_parameters: non-finite coefficient")
		}
	}
	if c.SqueezeUniformity <= 0 || c.SqueezeUniformity > 1 {
		return errors.Errorf("invalid distortion_parameters: squeeze_uniformity %v outside (0, 1]", c.SqueezeUniformity)
	}
	return nil
}

// Parameters returns the coefficients as a flat slice, in the order
// k1, k2, k3, p1, p2, squeeze_uniformity.
func (c Coeffs) Parameters() []float64 {
	return []float64{c.K1, c.K2, c.K3, c.P1, c.P2, c.SqueezeUniformity}
}
