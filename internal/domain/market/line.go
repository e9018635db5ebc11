package market

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatMode selects how a line is rendered.
type FormatMode int

const (
	// FormatDisplay renders canonical text such as "0.75" or "-2".
	FormatDisplay FormatMode = iota
	// FormatStorage renders spreadsheet-safe text such as "'0,75".
	FormatStorage
)

const (
	noLine      = "-"
	unknownLine = "?"
)

var (
	decQuarter      = decimal.RequireFromString("0.25")
	decHalf         = decimal.RequireFromString("0.5")
	decThreeQuarter = decimal.RequireFromString("0.75")
	decOne          = decimal.NewFromInt(1)
)

// ParseLine converts a handicap or goal-line token into a signed number.
// Split tokens like "0/0.5" average both halves; "-" and "?" mean no line.
func ParseLine(text string) (float64, bool) {
	trimmed := strings.TrimSpace(text)
	s := strings.ReplaceAll(trimmed, " ", "")
	if s == "" || s == noLine || s == unknownLine {
		return 0, false
	}

	if !strings.Contains(s, "/") {
		return parseFinite(s)
	}

	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return 0, false
	}
	first, second := parts[0], parts[1]
	v1, ok := parseFinite(first)
	if !ok {
		return 0, false
	}
	v2, ok := parseFinite(second)
	if !ok {
		return 0, false
	}

	secondSigned := strings.HasPrefix(second, "-") || strings.HasPrefix(second, "+")
	switch {
	case v1 < 0 && !secondSigned && v2 > 0:
		v2 = -math.Abs(v2)
	case strings.HasPrefix(trimmed, "-") && v1 == 0 && (first == "0" || first == "-0") && !secondSigned && v2 > 0:
		// "-0/0.5" carries its sign on the zero half only.
		v2 = -math.Abs(v2)
	}

	return (v1 + v2) / 2, true
}

func parseFinite(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Format renders value at the nearest canonical quarter point.
func Format(value float64, mode FormatMode) string {
	out := formatCanonical(value)
	if mode == FormatStorage {
		return "'" + strings.ReplaceAll(out, ".", ",")
	}
	return out
}

// FormatText parses text and renders it like Format. Unparsable input
// renders as "-"; a literal "-" or "?" is echoed back unchanged.
func FormatText(text string, mode FormatMode) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == noLine || trimmed == unknownLine {
		return trimmed
	}
	value, ok := ParseLine(trimmed)
	if !ok {
		return noLine
	}
	return Format(value, mode)
}

func formatCanonical(value float64) string {
	if value == 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return "0"
	}

	abs := decimal.NewFromFloat(math.Abs(value))
	whole := abs.Floor()
	remainder := abs.Sub(whole)

	rounded := abs
	switch {
	case remainder.IsZero(), remainder.Equal(decQuarter), remainder.Equal(decHalf), remainder.Equal(decThreeQuarter):
	case remainder.LessThan(decQuarter):
		rounded = whole
	case remainder.LessThan(decThreeQuarter):
		rounded = whole.Add(decHalf)
	default:
		rounded = whole.Add(decOne)
	}
	if rounded.IsZero() {
		return "0"
	}

	places := int32(2)
	switch frac := rounded.Sub(rounded.Floor()); {
	case frac.IsZero():
		places = 0
	case frac.Equal(decHalf):
		places = 1
	}

	out := rounded.StringFixed(places)
	if value < 0 {
		out = "-" + out
	}
	return out
}
