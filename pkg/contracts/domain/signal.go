package domain

// SignalType identifies which instrument technique produced a file.
type SignalType string

const (
	// SignalTypeEISPOT is potentiostatic electrochemical impedance spectroscopy.
	SignalTypeEISPOT SignalType = "EISPOT"
	// SignalTypeEISMON is single-frequency impedance monitoring.
	SignalTypeEISMON SignalType = "EISMON"
	// SignalTypeCV is cyclic voltammetry.
	SignalTypeCV SignalType = "CV"
	// SignalTypeCPC is controlled-potential coulometry.
	SignalTypeCPC SignalType = "CPC"
)

// KnownSignalTypes lists every technique the parser understands, in the
// order markers are probed.
var KnownSignalTypes = []SignalType{
	SignalTypeEISPOT,
	SignalTypeEISMON,
	SignalTypeCV,
	SignalTypeCPC,
}

// Valid reports whether t is one of the supported techniques.
func (t SignalType) Valid() bool {
	for _, known := range KnownSignalTypes {
		if t == known {
			return true
		}
	}
	return false
}

// CornerParams holds a corner-frequency fit for an impedance spectrum.
// A zero Found means the spectrum never crossed the threshold; the numeric
// fields are meaningless in that case.
type CornerParams struct {
	Found bool `json:"found"`
	// Freq is the corner frequency in Hz, interpolated on the
	// log-frequency axis between the two bracketing samples.
	Freq float64 `json:"freq,omitempty"`
	// Threshold is the crossed level: the plateau-midpoint magnitude in dB
	// for the magnitude corner, -45 degrees for the phase corner.
	Threshold float64 `json:"threshold,omitempty"`
	// Capacitance is 1/(2*pi*Rs*Freq) in farads.
	Capacitance float64 `json:"capacitance,omitempty"`
	// CapacitancePerArea is Capacitance divided by the electrode area (F/cm2).
	CapacitancePerArea float64 `json:"capacitance_per_area,omitempty"`
	// Factor is CapacitancePerArea relative to the reference areal
	// capacitance (dimensionless).
	Factor float64 `json:"factor,omitempty"`
}
