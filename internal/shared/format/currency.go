// Package format renders market numbers as display strings.
package format

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	billion = 1_000_000_000
	million = 1_000_000
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Currency abbreviates a USD amount: "$1.50B", "$2.30M", "$1,234.56".
// Thresholds are inclusive and not sign-guarded: a large negative amount
// falls through to the unabbreviated branch.
func Currency(value float64) string {
	switch {
	case value >= billion:
		return "$" + fixed2(value/billion) + "B"
	case value >= million:
		return "$" + fixed2(value/million) + "M"
	default:
		return "$" + grouped(value)
	}
}

// fixed2 rounds half away from zero to exactly two decimals.
func fixed2(v float64) string {
	if !finite(v) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return decimal.NewFromFloat(v).StringFixed(2)
}

// grouped renders v with en-US thousands separators. Whole amounts (after
// rounding to cents) have no fraction; others show two digits.
func grouped(v float64) string {
	if !finite(v) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	d := decimal.NewFromFloat(v).Round(2)
	digits := 2
	if d.Equal(d.Truncate(0)) {
		digits = 0
	}
	f, _ := d.Float64()
	return printer.Sprint(number.Decimal(f, number.MinFractionDigits(digits), number.MaxFractionDigits(digits)))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
