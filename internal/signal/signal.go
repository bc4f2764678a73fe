package signal

import (
	"fmt"

	"gamrycli/pkg/contracts/domain"
)

// DefaultArea is the electrode area (cm2) assumed when neither the caller
// nor the file's notes supply one.
const DefaultArea = 1.0

// DefaultReferenceCapacitance is the areal capacitance (F/cm2) the corner
// fit's Factor field is expressed against.
const DefaultReferenceCapacitance = 20e-6

// Signal is one parsed instrument export file.
type Signal interface {
	// ID is a unique identifier assigned at construction.
	ID() string
	// Type is the technique tag the file declared.
	Type() domain.SignalType
	// Label is the display name, from the reserved notes key or the filename.
	Label() string
	// Params holds the parsed notes parameters.
	Params() *domain.Params
	// Table holds the extracted numeric data.
	Table() *domain.Table
	// Area is the electrode area in cm2.
	Area() float64
	// SetArea updates the electrode area and recomputes any area-derived
	// attributes. Non-positive areas are rejected.
	SetArea(area float64) error
}

type base struct {
	id     string
	typ    domain.SignalType
	label  string
	params *domain.Params
	table  *domain.Table
	area   float64
}

func (b *base) ID() string                { return b.id }
func (b *base) Type() domain.SignalType   { return b.typ }
func (b *base) Label() string             { return b.label }
func (b *base) Params() *domain.Params    { return b.params }
func (b *base) Table() *domain.Table      { return b.table }
func (b *base) Area() float64             { return b.area }

func (b *base) SetArea(area float64) error {
	if area <= 0 {
		return fmt.Errorf("electrode area must be positive, got %g", area)
	}
	b.area = area
	return nil
}

// EISMON is a single-frequency impedance monitoring signal.
type EISMON struct{ base }

// CV is a cyclic voltammetry signal. Its table carries a Curve column
// tagging each row with its 1-based voltammetry cycle.
type CV struct{ base }

// CPC is a controlled-potential coulometry signal.
type CPC struct{ base }

// EISPOT is a potentiostatic impedance spectrum with corner-frequency fits.
type EISPOT struct {
	base
	rs          float64
	refCap      float64
	dbCorner    domain.CornerParams
	phaseCorner domain.CornerParams
}

// Rs is the solution resistance: the minimum impedance magnitude over the
// spectrum.
func (s *EISPOT) Rs() float64 { return s.rs }

// DBCorner is the magnitude corner-frequency fit.
func (s *EISPOT) DBCorner() domain.CornerParams { return s.dbCorner }

// PhaseCorner is the phase corner-frequency fit.
func (s *EISPOT) PhaseCorner() domain.CornerParams { return s.phaseCorner }

// SetArea updates the electrode area and recomputes both corner fits before
// returning, so they are never stale relative to the table and area.
func (s *EISPOT) SetArea(area float64) error {
	if err := s.base.SetArea(area); err != nil {
		return err
	}
	s.recompute()
	return nil
}

func (s *EISPOT) recompute() {
	s.dbCorner, s.phaseCorner = ComputeCornerParams(s.table, s.area, s.refCap)
}
