package dta

import (
	"strconv"
	"strings"

	"gamrycli/internal/units"
	"gamrycli/pkg/contracts/domain"
)

// LabelKey is the reserved notes key surfaced as a signal's display label.
const LabelKey = "label"

// ParseNotes parses the notes region into a parameter mapping. Parsing is
// maximally tolerant: lines without the "KEY : VALUE" shape are skipped, and
// on duplicate keys the last occurrence wins.
func ParseNotes(lines []string) *domain.Params {
	params := domain.NewParams()
	for _, line := range lines {
		key, rest, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value := strings.TrimSpace(rest)
		if key == "" || value == "" {
			continue
		}
		params.Set(key, parseValue(value))
	}
	return params
}

// parseValue turns a notes value into a typed parameter. "<number> <unit>"
// with a recognized singular unit normalizes through the units package; a
// bare number stays numeric; everything else (including composite units like
// "mV/s") is kept as an opaque string.
func parseValue(raw string) domain.ParamValue {
	fields := strings.Fields(raw)
	switch len(fields) {
	case 1:
		if n, err := strconv.ParseFloat(fields[0], 64); err == nil {
			return domain.NumberValue(n, "")
		}
	case 2:
		if n, err := strconv.ParseFloat(fields[0], 64); err == nil && units.Known(fields[1]) {
			normalized, unit := units.Normalize(n, fields[1])
			return domain.NumberValue(normalized, unit)
		}
	}
	return domain.TextValue(raw)
}
