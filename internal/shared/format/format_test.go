package format

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{"exact billion", 1_000_000_000, "$1.00B"},
		{"billions", 1_500_000_000, "$1.50B"},
		{"trillion stays in billions", 1_337_000_000_000, "$1337.00B"},
		{"just under billion", 999_999_999, "$1000.00M"},
		{"exact million", 1_000_000, "$1.00M"},
		{"millions", 2_300_000, "$2.30M"},
		{"just under million", 999_999.99, "$999,999.99"},
		{"thousands with fraction", 1234.5, "$1,234.50"},
		{"thousands with cents", 1234.56, "$1,234.56"},
		{"whole thousands", 67890, "$67,890"},
		{"zero", 0, "$0"},
		{"sub-dollar", 0.5, "$0.50"},
		{"rounds to cents", 1.006, "$1.01"},
		{"rounds to whole", 2.999, "$3"},
		{"tiny rounds to zero", 0.004, "$0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, Currency(tt.input))
		})
	}
}

func TestCurrency_AlwaysDollarPrefixed(t *testing.T) {
	t.Parallel()

	for _, v := range []float64{0, 0.01, 1, 999, 1e3, 1e5, 1e6 - 1, 1e6, 5e8, 1e9, 1e12, math.MaxFloat64} {
		assert.True(t, strings.HasPrefix(Currency(v), "$"), "Currency(%v) = %q", v, Currency(v))
	}
}

// Negative amounts are not sign-guarded; large ones are not abbreviated.
func TestCurrency_NegativeFallsThrough(t *testing.T) {
	t.Parallel()

	got := Currency(-2_000_000_000)
	assert.False(t, strings.HasSuffix(got, "B"))
	assert.False(t, strings.HasSuffix(got, "M"))
	assert.Contains(t, got, "2,000,000,000")
}

func TestClassify(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Positive, Classify(0))
	assert.Equal(t, Positive, Classify(math.Copysign(0, -1)))
	assert.Equal(t, Positive, Classify(12.3))
	assert.Equal(t, Negative, Classify(-3.456))
	assert.Equal(t, Negative, Classify(-0.0001))
}

func TestPercent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{"zero is positive", 0, "+0.00%"},
		{"negative zero is positive", math.Copysign(0, -1), "+0.00%"},
		{"negative rounded", -3.456, "-3.46%"},
		{"positive rounded", 1.234, "+1.23%"},
		{"large stays fixed", 12345.678, "+12345.68%"},
		{"tiny negative keeps sign", -0.001, "-0.00%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, Percent(tt.input))
		})
	}
}

func TestPercentPtr(t *testing.T) {
	t.Parallel()

	s, dir := PercentPtr(nil)
	assert.Equal(t, Placeholder, s)
	assert.Equal(t, Unknown, dir)

	v := -3.456
	s, dir = PercentPtr(&v)
	assert.Equal(t, "-3.46%", s)
	assert.Equal(t, Negative, dir)

	zero := 0.0
	s, dir = PercentPtr(&zero)
	assert.Equal(t, "+0.00%", s)
	assert.Equal(t, Positive, dir, "zero is data, not unknown")
}

func TestDirection_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "positive", Positive.String())
	assert.Equal(t, "negative", Negative.String())
	assert.Equal(t, "unknown", Unknown.String())
}
