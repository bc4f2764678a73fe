package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ParseError
		expected string
	}{
		{
			name:     "with line number",
			err:      Format("run1.DTA", 14, "invalid numeric cell"),
			expected: "FORMAT_ERROR: run1.DTA line 14: invalid numeric cell",
		},
		{
			name:     "without line number",
			err:      UnsupportedType("run1.DTA"),
			expected: "UNSUPPORTED_TYPE: run1.DTA: no recognized signal type marker",
		},
		{
			name:     "without file",
			err:      New(CodeFormat, "", "missing header"),
			expected: "FORMAT_ERROR: missing header",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestPredicates(t *testing.T) {
	unsupported := UnsupportedType("a.DTA")
	format := Format("a.DTA", 3, "bad cell")

	assert.True(t, IsUnsupportedType(unsupported))
	assert.False(t, IsUnsupportedType(format))
	assert.True(t, IsFormat(format))
	assert.False(t, IsFormat(unsupported))

	// Predicates must see through wrapping.
	wrapped := fmt.Errorf("loading batch: %w", format)
	assert.True(t, IsFormat(wrapped))
	assert.False(t, IsFormat(fmt.Errorf("plain")))
}

func TestFormatf(t *testing.T) {
	err := Formatf("a.DTA", 7, "cell %q in column %s", "x1", "Freq")
	assert.Equal(t, 7, err.Line)
	assert.Contains(t, err.Message, `"x1"`)
	assert.Contains(t, err.Message, "Freq")
}
