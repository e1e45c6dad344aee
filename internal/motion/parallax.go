package motion

// Interpolate maps v from the input range onto the output range, clamping
// at both ends. Both ranges must be ascending-input pairs of equal length
// with at least two points; otherwise the first output value is returned.
func Interpolate(v float64, input, output []float64) float64 {
	if len(input) < 2 || len(input) != len(output) {
		if len(output) > 0 {
			return output[0]
		}
		return 0
	}
	if v <= input[0] {
		return output[0]
	}
	last := len(input) - 1
	if v >= input[last] {
		return output[last]
	}
	for i := 0; i < last; i++ {
		if v >= input[i] && v <= input[i+1] {
			span := input[i+1] - input[i]
			if span == 0 {
				return output[i+1]
			}
			t := (v - input[i]) / span
			return output[i] + (output[i+1]-output[i])*t
		}
	}
	return output[last]
}

// Transform is a scroll-derived offset and opacity for a section.
type Transform struct {
	Offset  float64
	Opacity float64
}

// Style renders the transform as inline declarations.
func (t Transform) Style() string {
	return "transform: translateY(" + num(t.Offset) + "px); opacity: " + num(t.Opacity) + ";"
}

// HeroParallax returns the hero's offset and opacity for a page scroll
// progress in [0,1]. The offset moves 0→300 over the whole page while the
// opacity fades 1→0 over the first half.
func HeroParallax(progress float64) Transform {
	return Transform{
		Offset:  Interpolate(progress, []float64{0, 1}, []float64{0, 300}),
		Opacity: Interpolate(progress, []float64{0, 0.5}, []float64{1, 0}),
	}
}
