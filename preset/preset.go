// Package preset loads and validates cinema lens presets: the coefficient
// sets, iris geometry, and focus curves that drive the optics package.
//
// Presets arrive as JSON. The v4 schema carries mechanical and
// squeeze-breathing data; v3 files (without them) load cleanly with the
// missing curves left empty.
package preset

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/cinekit/optics"
)

// Spec describes one physical lens: identity, optical geometry, iris
// shape, and the focus-dependent curves. Immutable once loaded.
type Spec struct {
	LensID        string
	Manufacturer  string
	Series        string
	FocalLengthMM float64
	TStopMin      float64
	TStopMax      float64
	IrisBlades    int
	CloseFocusM   float64
	ImageCircleMM float64

	// SqueezeRatio is the nominal anamorphic squeeze (1.0 for spherical
	// glass); the effective squeeze at a given focus distance comes from
	// SqueezeBreathing.
	SqueezeRatio float64

	Distortion optics.Coeffs

	// Breathing maps focus distance to FOV shift percent (0 at infinity,
	// positive = wider at close focus).
	Breathing optics.FocusCurve

	// SqueezeBreathing maps focus distance to effective squeeze; falls
	// back to SqueezeRatio outside (or without) curve data.
	SqueezeBreathing optics.FocusCurve
}

// EffectiveSqueeze returns the squeeze factor at the given focus
// distance, for feeding [optics.Coeffs.DistortAnamorphic].
func (s *Spec) EffectiveSqueeze(focusM float64) float64 {
	return s.SqueezeBreathing.Eval(focusM)
}

// BreathingShiftPct returns the FOV shift percent at the given focus
// distance.
func (s *Spec) BreathingShiftPct(focusM float64) float64 {
	return s.Breathing.Eval(focusM)
}

// infinityFocusM stands in for an "infinity" focus breakpoint so the
// curves stay plain ascending numbers.
const infinityFocusM = 1e10

// focusMeters decodes a JSON focus distance that is either a number or
// the string "infinity".
type focusMeters float64

func (f *focusMeters) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if !strings.EqualFold(s, "infinity") {
			return errors.Errorf("focus_m: expected number or \"infinity\", got %q", s)
		}
		*f = infinityFocusM
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = focusMeters(v)
	return nil
}

type distortionJSON struct {
	K1                float64  `json:"k1"`
	K2                float64  `json:"k2"`
	K3                float64  `json:"k3"`
	P1                float64  `json:"p1"`
	P2                float64  `json:"p2"`
	SqueezeUniformity *float64 `json:"squeeze_uniformity"`
}

type breathingPointJSON struct {
	FocusM      focusMeters `json:"focus_m"`
	FOVShiftPct float64     `json:"fov_shift_pct"`
}

type squeezePointJSON struct {
	FocusM           focusMeters `json:"focus_m"`
	EffectiveSqueeze float64     `json:"effective_squeeze"`
}

type specJSON struct {
	LensID           string               `json:"lens_id"`
	Manufacturer     string               `json:"manufacturer"`
	Series           string               `json:"series"`
	FocalLengthMM    float64              `json:"focal_length_mm"`
	TStopRange       []float64            `json:"t_stop_range"`
	IrisBlades       int                  `json:"iris_blades"`
	CloseFocusM      float64              `json:"close_focus_m"`
	ImageCircleMM    float64              `json:"image_circle_mm"`
	SqueezeRatio     float64              `json:"squeeze_ratio"`
	Distortion       distortionJSON       `json:"distortion"`
	Breathing        []breathingPointJSON `json:"breathing"`
	SqueezeBreathing []squeezePointJSON   `json:"squeeze_breathing"`
}

// FromJSON parses and validates a lens preset. v3 files load without
// squeeze-breathing data; the resulting curve then always evaluates to
// the nominal squeeze ratio.
func FromJSON(data []byte) (*Spec, error) {
	var raw specJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "parsing lens preset")
	}

	if raw.LensID == "" {
		return nil, errors.New("invalid lens preset: missing lens_id")
	}
	if raw.FocalLengthMM <= 0 {
		return nil, errors.Errorf("invalid lens preset %q: focal_length_mm must be positive", raw.LensID)
	}
	if len(raw.TStopRange) != 2 {
		return nil, errors.Errorf("invalid lens preset %q: t_stop_range must have 2 entries", raw.LensID)
	}
	if raw.IrisBlades < 3 {
		return nil, errors.Errorf("invalid lens preset %q: iris_blades %d below minimum of 3", raw.LensID, raw.IrisBlades)
	}
	if raw.CloseFocusM <= 0 {
		return nil, errors.Errorf("invalid lens preset %q: close_focus_m must be positive", raw.LensID)
	}

	imageCircle := raw.ImageCircleMM
	if imageCircle == 0 {
		imageCircle = 31.1 // Super 35 anamorphic default
		optics.Logger().Warn("lens preset missing image_circle_mm, using default",
			"lens_id", raw.LensID, "default", imageCircle)
	}

	squeezeUniformity := 1.0
	if raw.Distortion.SqueezeUniformity != nil {
		squeezeUniformity = *raw.Distortion.SqueezeUniformity
	}
	coeffs := optics.Coeffs{
		K1:                raw.Distortion.K1,
		K2:                raw.Distortion.K2,
		K3:                raw.Distortion.K3,
		P1:                raw.Distortion.P1,
		P2:                raw.Distortion.P2,
		SqueezeUniformity: squeezeUniformity,
	}
	if err := coeffs.CheckValid(); err != nil {
		return nil, errors.Wrapf(err, "invalid lens preset %q", raw.LensID)
	}

	breathing := optics.FocusCurve{Nominal: 0}
	for _, bp := range raw.Breathing {
		breathing.Focus = append(breathing.Focus, float64(bp.FocusM))
		breathing.Values = append(breathing.Values, bp.FOVShiftPct)
	}
	sortCurve(&breathing)

	nominal := raw.SqueezeRatio
	if nominal == 0 {
		nominal = 2.0
	}
	squeezeBreathing := optics.FocusCurve{Nominal: nominal}
	for _, sp := range raw.SqueezeBreathing {
		if sp.EffectiveSqueeze < 1.0 || sp.EffectiveSqueeze > 3.0 {
			return nil, errors.Errorf("invalid lens preset %q: effective_squeeze %v outside [1, 3]",
				raw.LensID, sp.EffectiveSqueeze)
		}
		squeezeBreathing.Focus = append(squeezeBreathing.Focus, float64(sp.FocusM))
		squeezeBreathing.Values = append(squeezeBreathing.Values, sp.EffectiveSqueeze)
	}
	sortCurve(&squeezeBreathing)

	return &Spec{
		LensID:           raw.LensID,
		Manufacturer:     raw.Manufacturer,
		Series:           raw.Series,
		FocalLengthMM:    raw.FocalLengthMM,
		TStopMin:         raw.TStopRange[0],
		TStopMax:         raw.TStopRange[1],
		IrisBlades:       raw.IrisBlades,
		CloseFocusM:      raw.CloseFocusM,
		ImageCircleMM:    imageCircle,
		SqueezeRatio:     raw.SqueezeRatio,
		Distortion:       coeffs,
		Breathing:        breathing,
		SqueezeBreathing: squeezeBreathing,
	}, nil
}

// sortCurve orders curve points by ascending focus distance, keeping the
// value pairing intact. The raw evaluator assumes sorted input.
func sortCurve(fc *optics.FocusCurve) {
	type pair struct{ f, v float64 }
	pairs := make([]pair, len(fc.Focus))
	for i := range fc.Focus {
		pairs[i] = pair{fc.Focus[i], fc.Values[i]}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].f < pairs[j].f })
	for i, p := range pairs {
		fc.Focus[i] = p.f
		fc.Values[i] = p.v
	}
}
