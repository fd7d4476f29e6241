package optics

import "math"

// Exposure and focus calculators. Pure math over scalar lens/sensor
// parameters; usable standalone for validating a lens setup without any
// image pipeline attached.

// CircleOfConfusion returns the standard circle of confusion in mm for
// acceptable sharpness on a sensor with the given diagonal.
// Industry convention: diagonal / 1500.
func CircleOfConfusion(sensorDiagonalMM float64) float64 {
	return sensorDiagonalMM / 1500.0
}

// FOV returns the field of view in degrees for a focal length and an
// aperture dimension (sensor width for horizontal FOV, height for
// vertical). breathingShiftPct adjusts for focus breathing: positive
// shift widens the FOV. Non-positive focal length or aperture returns 0.
func FOV(focalLengthMM, apertureMM, breathingShiftPct float64) float64 {
	if focalLengthMM <= 0 || apertureMM <= 0 {
		return 0.0
	}
	base := 2.0 * (180.0 / math.Pi) * math.Atan(apertureMM/(2.0*focalLengthMM))
	return base * (1.0 + breathingShiftPct/100.0)
}

// Hyperfocal returns the hyperfocal distance in meters:
//
//	H = f²/(N·c) + f
//
// where f is focal length (mm), N the f-number and c the circle of
// confusion (mm). Non-positive N or c returns +Inf.
func Hyperfocal(focalLengthMM, fNumber, cocMM float64) float64 {
	if fNumber <= 0 || cocMM <= 0 {
		return math.Inf(1)
	}
	hMM := focalLengthMM*focalLengthMM/(fNumber*cocMM) + focalLengthMM
	return hMM / 1000.0
}

// DOF returns the near and far depth-of-field limits in meters for a
// given focus distance. far is +Inf when focus is at or beyond the
// hyperfocal distance. Non-positive focus distance returns (0, 0).
func DOF(focalLengthMM, fNumber, focusDistanceM, cocMM float64) (near, far float64) {
	if focusDistanceM <= 0 {
		return 0.0, 0.0
	}

	hyperfocalMM := Hyperfocal(focalLengthMM, fNumber, cocMM) * 1000.0
	focusMM := focusDistanceM * 1000.0

	denomNear := hyperfocalMM + focusMM - 2.0*focalLengthMM
	if denomNear <= 0 {
		near = 0.0
	} else {
		near = focusMM * (hyperfocalMM - focalLengthMM) / denomNear / 1000.0
	}

	denomFar := hyperfocalMM - focusMM
	if denomFar <= 0 {
		far = math.Inf(1)
	} else {
		far = focusMM * (hyperfocalMM - focalLengthMM) / denomFar / 1000.0
	}

	return math.Max(0.0, near), far
}
