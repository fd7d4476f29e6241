package optics

import "testing"

func TestFocusCurve_Eval(t *testing.T) {
	curve := FocusCurve{
		Focus:   []float64{1.0, 2.0, 5.0},
		Values:  []float64{1.3, 1.7, 1.85},
		Nominal: 2.0,
	}

	tests := []struct {
		name  string
		focus float64
		want  float64
	}{
		{"clamp below first breakpoint", 0.5, 1.3},
		{"exactly first breakpoint", 1.0, 1.3},
		{"midpoint interpolation", 1.5, 1.5},
		{"interior interpolation", 3.5, 1.775},
		{"exactly last breakpoint", 5.0, 1.85},
		{"clamp above last breakpoint", 10.0, 1.85},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := curve.Eval(tt.focus)
			if !almostEqual(got, tt.want, 1e-12) {
				t.Errorf("Eval(%v) = %v, want %v", tt.focus, got, tt.want)
			}
		})
	}
}

func TestFocusCurve_DegenerateFallback(t *testing.T) {
	tests := []struct {
		name  string
		curve FocusCurve
	}{
		{"empty", FocusCurve{Nominal: 2.0}},
		{"mismatched lengths", FocusCurve{
			Focus:   []float64{1.0, 2.0},
			Values:  []float64{1.5},
			Nominal: 2.0,
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, focus := range []float64{0.1, 1.0, 100.0} {
				if got := tt.curve.Eval(focus); got != 2.0 {
					t.Errorf("Eval(%v) = %v, want nominal 2.0", focus, got)
				}
			}
		})
	}
}

func TestFocusCurve_SinglePoint(t *testing.T) {
	curve := FocusCurve{
		Focus:   []float64{3.0},
		Values:  []float64{1.9},
		Nominal: 2.0,
	}
	// A single breakpoint clamps on both sides.
	for _, focus := range []float64{0.5, 3.0, 50.0} {
		if got := curve.Eval(focus); got != 1.9 {
			t.Errorf("Eval(%v) = %v, want 1.9", focus, got)
		}
	}
}

func TestFocusCurve_ZeroValue(t *testing.T) {
	var curve FocusCurve
	if got := curve.Eval(1.0); got != 0 {
		t.Errorf("zero-value curve Eval = %v, want 0", got)
	}
}
