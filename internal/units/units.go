// Package units converts metric-prefixed instrument units to canonical base
// units. Composite units (e.g. "mV/s") and unknown tokens pass through
// untouched; normalization never fails.
package units

import (
	"strings"
	"unicode/utf8"
)

// prefixFactor maps a metric prefix to its multiplier.
var prefixFactor = map[string]float64{
	"T": 1e12,
	"G": 1e9,
	"M": 1e6,
	"k": 1e3,
	"c": 1e-2,
	"m": 1e-3,
	"u": 1e-6,
	"µ": 1e-6,
	"n": 1e-9,
	"p": 1e-12,
	"f": 1e-15,
}

// baseUnit maps accepted base-unit spellings to their canonical form.
var baseUnit = map[string]string{
	"V":   "V",
	"A":   "A",
	"Hz":  "Hz",
	"s":   "s",
	"m":   "m",
	"ohm": "ohm",
	"Ohm": "ohm",
	"Ω":   "ohm",
	"F":   "F",
}

// timeFactor maps non-SI time units to their factor into seconds.
var timeFactor = map[string]float64{
	"min": 60,
	"hr":  3600,
	"h":   3600,
}

// Normalize converts (value, unit) to (value, canonical base unit) using
// metric-prefix scaling. Only singular unit tokens are converted; composite
// units and unrecognized tokens are returned unchanged.
func Normalize(value float64, unit string) (float64, string) {
	unit = strings.TrimSpace(unit)
	if unit == "" || strings.ContainsAny(unit, "/*^") {
		return value, unit
	}

	if factor, ok := timeFactor[unit]; ok {
		return value * factor, "s"
	}

	if canonical, ok := baseUnit[unit]; ok {
		return value, canonical
	}

	// Try a single-rune metric prefix followed by a base unit.
	prefix, size := utf8.DecodeRuneInString(unit)
	if size > 0 && size < len(unit) {
		factor, ok := prefixFactor[string(prefix)]
		if !ok {
			return value, unit
		}
		if canonical, ok := baseUnit[unit[size:]]; ok {
			return value * factor, canonical
		}
		if f, ok := timeFactor[unit[size:]]; ok {
			return value * factor * f, "s"
		}
	}

	return value, unit
}

// Known reports whether Normalize recognizes the unit token as singular and
// convertible.
func Known(unit string) bool {
	unit = strings.TrimSpace(unit)
	if _, ok := baseUnit[unit]; ok {
		return true
	}
	if _, ok := timeFactor[unit]; ok {
		return true
	}
	prefix, size := utf8.DecodeRuneInString(unit)
	if size == 0 || size >= len(unit) {
		return false
	}
	if _, ok := prefixFactor[string(prefix)]; !ok {
		return false
	}
	if _, ok := baseUnit[unit[size:]]; ok {
		return true
	}
	_, ok := timeFactor[unit[size:]]
	return ok
}
