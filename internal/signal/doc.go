// Package signal turns parsed export files into typed signal records.
//
// A Signal is one instrument export: its technique tag, display label,
// notes-derived parameters, numeric data table and electrode area. Concrete
// variants exist per technique (EISPOT, EISMON, CV, CPC); the factory picks
// the variant from the file's TAG marker. The potentiostatic EIS variant
// additionally carries magnitude and phase corner-frequency fits, recomputed
// whenever the electrode area changes.
//
// Signals are immutable after construction except for the electrode area,
// which is only reachable through SetArea so the dependent corner parameters
// can never go stale.
package signal
