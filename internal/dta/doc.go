// Package dta parses Gamry instrument export files (.DTA).
//
// An export file is Windows-1252 encoded, line-oriented and tab-separated:
// a fixed block of leading metadata lines (including a TAG line naming the
// technique), a free-form notes region of "KEY : VALUE" lines, then one or
// more data blocks each introduced by a marker token (ZCURVE, CURVE,
// CURVE1...), a column-header row, a units row, and numeric data rows.
//
// The package is organized into three components:
//
//  1. Reader: decodes the file into raw lines and detects the signal type.
//  2. Extractor: locates the notes region and extracts the numeric table
//     for a given signal type, failing fast on structural problems.
//  3. Notes parser: tolerantly recovers typed key/value parameters from the
//     notes region, normalizing singular units.
//
// Structural failures surface as *errors.ParseError with FORMAT_ERROR or
// UNSUPPORTED_TYPE codes; notes parsing never fails.
package dta
