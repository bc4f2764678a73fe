package signal

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"gamrycli/pkg/contracts/domain"
)

// ComputeCornerParams extracts magnitude and phase corner-frequency fits
// from an impedance spectrum, assuming the usual solution-resistance in
// series with a parallel RC electrode model.
//
// The magnitude curve is 20*log10(|Z|*area) (area-normalized impedance in
// ohm*cm2); its corner is where the curve crosses the midpoint between the
// lowest-frequency and highest-frequency plateau values. The phase curve is
// atan2(Im(Z), Re(Z)) in degrees; its corner is the -45 degree crossing.
// Both crossings are interpolated linearly on the log-frequency axis between
// the bracketing samples. A spectrum that never crosses its threshold yields
// a fit with Found unset; no error is possible for a well-formed table.
func ComputeCornerParams(t *domain.Table, area, refCap float64) (db, phase domain.CornerParams) {
	freq := t.Column("Freq")
	re := t.Column("Re(Z)")
	im := t.Column("Im(Z)")
	mod := t.Column("|Z|")
	if len(freq) < 2 || re == nil || im == nil || mod == nil {
		return domain.CornerParams{}, domain.CornerParams{}
	}
	if refCap <= 0 {
		refCap = DefaultReferenceCapacitance
	}

	rs := floats.Min(mod)

	mag := make([]float64, len(freq))
	deg := make([]float64, len(freq))
	for i := range freq {
		mag[i] = 20 * math.Log10(mod[i]*area)
		deg[i] = math.Atan2(im[i], re[i]) * 180 / math.Pi
	}

	// Plateau values sit at the sampled frequency extremes. Equal plateaus
	// mean the spectrum has no corner in range at all.
	loPlateau := mag[floats.MinIdx(freq)]
	hiPlateau := mag[floats.MaxIdx(freq)]
	if math.Abs(hiPlateau-loPlateau) > 1e-9 {
		db = findCrossing(freq, mag, (loPlateau+hiPlateau)/2)
	}
	phase = findCrossing(freq, deg, -45)
	attachCircuitFit(&db, rs, area, refCap)
	attachCircuitFit(&phase, rs, area, refCap)
	return db, phase
}

// findCrossing locates the first threshold crossing of y over freq,
// interpolating on the log10-frequency axis. Exact hits count as crossings.
func findCrossing(freq, y []float64, threshold float64) domain.CornerParams {
	for i := 0; i < len(y); i++ {
		d1 := y[i] - threshold
		if d1 == 0 {
			return domain.CornerParams{Found: true, Freq: freq[i], Threshold: threshold}
		}
		if i+1 == len(y) {
			break
		}
		d2 := y[i+1] - threshold
		if d1*d2 < 0 {
			lf1 := math.Log10(freq[i])
			lf2 := math.Log10(freq[i+1])
			frac := d1 / (d1 - d2)
			return domain.CornerParams{
				Found:     true,
				Freq:      math.Pow(10, lf1+frac*(lf2-lf1)),
				Threshold: threshold,
			}
		}
	}
	return domain.CornerParams{}
}

// attachCircuitFit derives the equivalent-circuit capacitance quantities for
// a found corner: C = 1/(2*pi*Rs*fc), its per-area value, and the ratio to
// the reference areal capacitance.
func attachCircuitFit(c *domain.CornerParams, rs, area, refCap float64) {
	if !c.Found || c.Freq <= 0 || rs <= 0 {
		return
	}
	c.Capacitance = 1 / (2 * math.Pi * rs * c.Freq)
	c.CapacitancePerArea = c.Capacitance / area
	c.Factor = c.CapacitancePerArea / refCap
}
