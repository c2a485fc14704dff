package stats

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var displayPrinter = message.NewPrinter(language.English)

// FormatDisplay renders a value for presentation: numbers get thousands
// grouping and at most three decimals, strings are returned unchanged.
// percent appends a "%" sign.
func FormatDisplay(v Value, percent bool) string {
	s := formatValue(v)
	if percent {
		s += "%"
	}
	return s
}

func formatValue(v Value) string {
	if !v.IsNumber() {
		return v.String()
	}
	f := v.Float()
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "∞"
	case math.IsInf(f, -1):
		return "-∞"
	}
	return displayPrinter.Sprint(number.Decimal(f, number.MaxFractionDigits(3)))
}

// formatPercentile renders a percentile the way the provider prints it, without grouping.
func formatPercentile(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64) + "%"
}
