package signal

import (
	"strings"

	"gamrycli/pkg/contracts/domain"
)

// FilterOptions are the attribute constraints a signal must satisfy to pass
// Filter. Zero-valued fields are unconstrained.
type FilterOptions struct {
	// Type requires an exact technique match.
	Type domain.SignalType
	// Label requires the label to contain this substring.
	Label string
	// Params requires each key to exist with an equal normalized value.
	Params map[string]domain.ParamValue
}

// Filter returns the subset of signals satisfying all constraints. The input
// slice is not modified; result order follows the input.
func Filter(signals []Signal, opts FilterOptions) []Signal {
	var out []Signal
	for _, s := range signals {
		if opts.Type != "" && s.Type() != opts.Type {
			continue
		}
		if opts.Label != "" && !strings.Contains(s.Label(), opts.Label) {
			continue
		}
		if !matchesParams(s.Params(), opts.Params) {
			continue
		}
		out = append(out, s)
	}
	return out
}

func matchesParams(params *domain.Params, constraints map[string]domain.ParamValue) bool {
	for key, want := range constraints {
		got, ok := params.Get(strings.ToLower(key))
		if !ok || !got.Equal(want) {
			return false
		}
	}
	return true
}
