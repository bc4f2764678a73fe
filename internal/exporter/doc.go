// Package exporter renders parsed signals into downstream file formats.
//
// Two exports exist, both pure transformations of already-parsed signals:
//
// ZViewWriter converts impedance-spectroscopy signals into the block layout
// impedance-analysis tools import: per signal a label line, a point count,
// then one frequency/real/imaginary row per data point.
//
// CombinedWriter flattens every signal's table plus selected notes
// parameters into one long-format table (one output row per data row) for
// statistical tooling, written as CSV or as an XLSX workbook.
package exporter
