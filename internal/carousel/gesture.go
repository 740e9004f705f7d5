package carousel

import "math"

// DefaultSwipeThreshold is the confidence magnitude a drag must exceed to
// navigate, in pixel * pixel-per-second units.
const DefaultSwipeThreshold = 10000.0

// GestureSample is the horizontal offset and release velocity of one
// completed drag.
type GestureSample struct {
	// Offset in pixels, positive to the right.
	Offset float64
	// Velocity in pixels per second, positive to the right.
	Velocity float64
}

// Confidence returns |offset| * velocity. The sign follows the velocity.
func (g GestureSample) Confidence() float64 {
	return math.Abs(g.Offset) * g.Velocity
}

// Valid reports whether both components are finite numbers.
func (g GestureSample) Valid() bool {
	return isFinite(g.Offset) && isFinite(g.Velocity)
}

// Interpret maps a sample to a pagination step.
//
// A confident drag toward the left (negative confidence) advances, one
// toward the right goes back. Anything within the threshold, or a sample
// with NaN or infinite components, yields 0 and the card springs back.
func Interpret(g GestureSample, threshold float64) int {
	if !g.Valid() {
		return 0
	}
	if !isFinite(threshold) || threshold < 0 {
		threshold = DefaultSwipeThreshold
	}
	c := g.Confidence()
	switch {
	case c < -threshold:
		return 1
	case c > threshold:
		return -1
	default:
		return 0
	}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
