package format

import "strings"

// Direction is the visual treatment of a percentage change.
type Direction int

const (
	// Unknown means the provider sent no value. It is not the same as zero.
	Unknown Direction = iota
	Positive
	Negative
)

// String returns a lowercase name usable as a CSS modifier.
func (d Direction) String() string {
	switch d {
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	default:
		return "unknown"
	}
}

// Placeholder is shown when the change is absent.
const Placeholder = "—"

// Classify returns Positive for v >= 0 (zero included) and Negative otherwise.
func Classify(v float64) Direction {
	if v >= 0 {
		return Positive
	}
	return Negative
}

// Percent renders a change with exactly two decimals: "+1.23%", "-3.46%", "+0.00%".
func Percent(v float64) string {
	s := fixed2(v)
	if !finite(v) {
		return s + "%"
	}
	if Classify(v) == Positive {
		return "+" + strings.TrimPrefix(s, "-") + "%"
	}
	if !strings.HasPrefix(s, "-") {
		// a tiny negative rounds to zero but keeps its sign
		s = "-" + s
	}
	return s + "%"
}

// PercentPtr renders an optional change. nil yields the placeholder and Unknown.
func PercentPtr(v *float64) (string, Direction) {
	if v == nil {
		return Placeholder, Unknown
	}
	return Percent(*v), Classify(*v)
}
