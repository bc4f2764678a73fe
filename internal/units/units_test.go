package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name         string
		value        float64
		unit         string
		expectedVal  float64
		expectedUnit string
	}{
		{"millivolt", 500, "mV", 0.5, "V"},
		{"microamp", 2, "uA", 2e-6, "A"},
		{"microamp sign", 2, "µA", 2e-6, "A"},
		{"kilohertz", 1.5, "kHz", 1500, "Hz"},
		{"megaohm", 3, "Mohm", 3e6, "ohm"},
		{"ohm symbol", 3, "Ω", 3, "ohm"},
		{"nanofarad", 10, "nF", 1e-8, "F"},
		{"picofarad", 47, "pF", 4.7e-11, "F"},
		{"centimeter", 5, "cm", 0.05, "m"},
		{"base volt untouched", 0.5, "V", 0.5, "V"},
		{"base hertz untouched", 1000, "Hz", 1000, "Hz"},
		{"minutes to seconds", 5, "min", 300, "s"},
		{"hours to seconds", 2, "hr", 7200, "s"},
		{"hour short form", 1, "h", 3600, "s"},
		{"composite passthrough", 50, "mV/s", 50, "mV/s"},
		{"unknown passthrough", 12, "psi", 12, "psi"},
		{"percent passthrough", 40, "%", 40, "%"},
		{"empty unit", 7, "", 7, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			val, unit := Normalize(tt.value, tt.unit)
			assert.InEpsilon(t, tt.expectedVal, val, 1e-12)
			assert.Equal(t, tt.expectedUnit, unit)
		})
	}
}

func TestNormalize_ZeroValue(t *testing.T) {
	val, unit := Normalize(0, "mV")
	assert.Equal(t, 0.0, val)
	assert.Equal(t, "V", unit)
}

func TestNormalize_UnknownIdentity(t *testing.T) {
	// Unrecognized units must come back untouched, whatever they are.
	for _, u := range []string{"xyz", "q", "mX", "Vs", "dB"} {
		val, unit := Normalize(3.25, u)
		assert.Equal(t, 3.25, val, u)
		assert.Equal(t, u, unit, u)
	}
}

func TestKnown(t *testing.T) {
	assert.True(t, Known("mV"))
	assert.True(t, Known("Hz"))
	assert.True(t, Known("min"))
	assert.True(t, Known("Ω"))
	assert.False(t, Known("mV/s"))
	assert.False(t, Known("%"))
	assert.False(t, Known(""))
	assert.False(t, Known("psi"))
}
