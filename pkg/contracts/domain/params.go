package domain

// ParamValue is one parsed notes value. Either a number (optionally carrying
// a canonical unit) or an opaque string when the value was non-numeric or the
// unit was composite.
type ParamValue struct {
	Number float64 `json:"number,omitempty"`
	Unit   string  `json:"unit,omitempty"`
	Text   string  `json:"text,omitempty"`
	IsText bool    `json:"is_text"`
}

// NumberValue builds a numeric ParamValue.
func NumberValue(n float64, unit string) ParamValue {
	return ParamValue{Number: n, Unit: unit}
}

// TextValue builds an opaque string ParamValue.
func TextValue(s string) ParamValue {
	return ParamValue{Text: s, IsText: true}
}

// Equal reports value equality after normalization: numbers compare by
// number and unit, strings by exact text.
func (v ParamValue) Equal(other ParamValue) bool {
	if v.IsText != other.IsText {
		return false
	}
	if v.IsText {
		return v.Text == other.Text
	}
	return v.Number == other.Number && v.Unit == other.Unit
}

// Params is an ordered mapping of case-normalized parameter names to values.
// Insertion order is preserved; re-setting an existing key keeps its
// original position (last occurrence wins on value).
type Params struct {
	keys   []string
	values map[string]ParamValue
}

// NewParams returns an empty parameter mapping.
func NewParams() *Params {
	return &Params{values: make(map[string]ParamValue)}
}

// Set stores a value under key, overwriting any previous value.
func (p *Params) Set(key string, value ParamValue) {
	if _, exists := p.values[key]; !exists {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// Get returns the value for key and whether it was present.
func (p *Params) Get(key string) (ParamValue, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Keys returns the parameter names in insertion order.
func (p *Params) Keys() []string {
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Len returns the number of stored parameters.
func (p *Params) Len() int {
	return len(p.keys)
}
