package preset

import "github.com/cinekit/optics"

// CookeAnamorphicS35 returns a built-in preset for a Cooke Anamorphic/i
// S35 50mm prime: 2x front-anamorphic glass whose effective squeeze
// drops toward MOD (the "mumps" look). Used by tests and the demo CLI so
// neither needs a JSON file on disk.
func CookeAnamorphicS35() *Spec {
	return &Spec{
		LensID:        "cooke_ana_i_s35_50",
		Manufacturer:  "Cooke",
		Series:        "Anamorphic/i S35",
		FocalLengthMM: 50,
		TStopMin:      2.3,
		TStopMax:      22,
		IrisBlades:    11,
		CloseFocusM:   0.84,
		ImageCircleMM: 31.1,
		SqueezeRatio:  2.0,
		Distortion: optics.Coeffs{
			K1:                -0.042,
			K2:                0.008,
			K3:                -0.001,
			P1:                0.0004,
			P2:                -0.0002,
			SqueezeUniformity: 0.97,
		},
		Breathing: optics.FocusCurve{
			Focus:   []float64{0.84, 1.5, 3.0, 10.0, infinityFocusM},
			Values:  []float64{2.8, 1.6, 0.7, 0.2, 0.0},
			Nominal: 0,
		},
		SqueezeBreathing: optics.FocusCurve{
			Focus:   []float64{0.84, 1.5, 3.0, 10.0, infinityFocusM},
			Values:  []float64{1.82, 1.90, 1.95, 1.98, 2.0},
			Nominal: 2.0,
		},
	}
}
