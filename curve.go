package optics

// FocusCurve is a piecewise-linear function of focus distance, used for
// focus-dependent lens behavior: squeeze breathing ("mumps") on
// front-anamorphic lenses, and FOV breathing.
//
// Focus holds breakpoints in meters, sorted ascending; Values holds one
// sample per breakpoint. Nominal is the fallback returned when the curve
// is empty or malformed. The zero value is a valid curve that always
// evaluates to 0.
type FocusCurve struct {
	Focus   []float64
	Values  []float64
	Nominal float64
}

// Eval returns the curve value at the given focus distance.
//
// Queries below the first breakpoint clamp to the first value, queries
// above the last clamp to the last; no extrapolation. Empty curves, or
// curves whose Focus and Values lengths differ, return Nominal rather
// than failing.
func (fc FocusCurve) Eval(focusM float64) float64 {
	n := len(fc.Focus)
	if n == 0 {
		return fc.Nominal
	}
	if n != len(fc.Values) {
		return fc.Nominal // guard
	}

	if focusM <= fc.Focus[0] {
		return fc.Values[0]
	}
	if focusM >= fc.Focus[n-1] {
		return fc.Values[n-1]
	}

	for i := 0; i < n-1; i++ {
		if fc.Focus[i] <= focusM && focusM <= fc.Focus[i+1] {
			t := (focusM - fc.Focus[i]) / (fc.Focus[i+1] - fc.Focus[i])
			return lerp(fc.Values[i], fc.Values[i+1], t)
		}
	}
	return fc.Nominal
}
